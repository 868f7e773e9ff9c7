package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/home/dokumentasi/controller"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func DokumentasiAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewDokumentasiController(db, blob)

	dok := api.Group("/dokumentasi")
	dok.Get("/", ctrl.GetAllDokumentasi)      // 📄 Semua dokumentasi
	dok.Post("/", ctrl.CreateDokumentasi)     // ➕ Upload dokumentasi kegiatan
	dok.Delete("/:id", ctrl.DeleteDokumentasi) // 🗑️ Hapus dokumentasi
}
