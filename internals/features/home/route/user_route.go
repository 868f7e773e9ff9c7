package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/home/controller"
)

func HomePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeController(db)

	api.Get("/home", ctrl.GetHome) // 🏠 Agregat halaman depan
}
