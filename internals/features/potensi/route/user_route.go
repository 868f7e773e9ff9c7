package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/potensi/controller"
)

func PotensiPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPotensiController(db, nil)

	potensi := api.Group("/potensi")
	potensi.Get("/", ctrl.GetAllPotensiPublic)    // 🌾 Potensi aktif
	potensi.Get("/:slug", ctrl.GetPotensiBySlug)  // 🔎 Detail via slug
}
