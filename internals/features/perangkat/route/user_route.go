package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/perangkat/controller"
)

func PerangkatPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPerangkatController(db, nil)

	perangkat := api.Group("/perangkat-desa")
	perangkat.Get("/", ctrl.GetAllPerangkatPublic) // 🏛️ Struktur organisasi aktif
	perangkat.Get("/kepala", ctrl.GetKepalaDesa)   // 👤 Kepala desa (urutan terkecil)
}
