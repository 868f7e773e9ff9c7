package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PublicCache set Cache-Control publik; pengganti revalidate window di
// halaman publik (konten boleh basi selama maksimal `seconds`).
func PublicCache(c *fiber.Ctx, seconds int) {
	c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", seconds, seconds*2))
}
