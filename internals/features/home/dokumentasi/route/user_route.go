package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/home/dokumentasi/controller"
)

func DokumentasiPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDokumentasiController(db, nil)

	dok := api.Group("/dokumentasi")
	dok.Get("/", ctrl.GetAllDokumentasi) // 🖼️ Galeri kegiatan desa
}
