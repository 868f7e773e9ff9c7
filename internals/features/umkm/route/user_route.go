package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/umkm/controller"
)

func UmkmPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUmkmController(db, nil)

	umkm := api.Group("/umkm")
	umkm.Get("/", ctrl.GetAllUmkmPublic)   // 🏪 Direktori UMKM aktif
	umkm.Get("/:slug", ctrl.GetUmkmBySlug) // 🔎 Detail via slug
}
