package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/umkm/controller"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func UmkmAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewUmkmController(db, blob)

	umkm := api.Group("/umkm")
	umkm.Get("/", ctrl.GetAllUmkmAdmin)              // 📄 Semua UMKM
	umkm.Post("/", ctrl.CreateUmkm)                  // ➕ Tambah UMKM
	umkm.Patch("/:id/status", ctrl.ToggleUmkmStatus) // 🔄 Aktif/non-aktifkan
	umkm.Delete("/:id", ctrl.DeleteUmkm)             // 🗑️ Hapus UMKM
}
