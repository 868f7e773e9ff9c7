package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/profil/controller"
)

func ProfilAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfilController(db)

	profil := api.Group("/profil")
	profil.Get("/", ctrl.GetProfil)    // 📄 Profil saat ini
	profil.Put("/", ctrl.UpsertProfil) // 💾 Simpan (upsert singleton)
}
