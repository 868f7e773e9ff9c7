package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/home/banners/controller"
)

func BannerPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBannerController(db, nil)

	banner := api.Group("/banners")
	banner.Get("/hero", ctrl.GetHeroBanner) // 🎡 Hero aktif (atau default)
}
