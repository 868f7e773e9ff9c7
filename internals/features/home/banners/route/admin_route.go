package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/home/banners/controller"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func BannerAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewBannerController(db, blob)

	banner := api.Group("/banners")
	banner.Get("/", ctrl.GetAllBannersAdmin)           // 📄 Semua banner (termasuk non-aktif)
	banner.Post("/", ctrl.CreateBanner)                // ➕ Upload banner baru
	banner.Patch("/:id/status", ctrl.ToggleBannerStatus) // 🔄 Aktif/non-aktifkan
	banner.Delete("/:id", ctrl.DeleteBanner)           // 🗑️ Hapus banner
}
