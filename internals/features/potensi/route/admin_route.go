package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/potensi/controller"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func PotensiAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewPotensiController(db, blob)

	potensi := api.Group("/potensi")
	potensi.Get("/", ctrl.GetAllPotensiAdmin)              // 📄 Semua potensi
	potensi.Post("/", ctrl.CreatePotensi)                  // ➕ Tambah potensi
	potensi.Patch("/:id/status", ctrl.TogglePotensiStatus) // 🔄 Aktif/non-aktifkan
	potensi.Delete("/:id", ctrl.DeletePotensi)             // 🗑️ Hapus potensi
}
