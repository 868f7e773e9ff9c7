package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/perangkat/controller"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func PerangkatAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewPerangkatController(db, blob)

	perangkat := api.Group("/perangkat-desa")
	perangkat.Get("/", ctrl.GetAllPerangkatAdmin)              // 📄 Semua perangkat
	perangkat.Post("/", ctrl.CreatePerangkat)                  // ➕ Tambah perangkat
	perangkat.Patch("/:id/status", ctrl.TogglePerangkatStatus) // 🔄 Aktif/non-aktifkan
	perangkat.Delete("/:id", ctrl.DeletePerangkat)             // 🗑️ Hapus perangkat
}
