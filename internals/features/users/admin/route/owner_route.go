package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/users/admin/controller"
)

func AdminUserOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminUserController(db)

	admins := api.Group("/admin-users")
	admins.Get("/", ctrl.GetAllAdmins)                 // 📄 Semua akun admin
	admins.Post("/", ctrl.CreateAdmin)                 // ➕ Buat akun admin
	admins.Patch("/:id/status", ctrl.ToggleAdminActive) // 🔄 Aktif/non-aktifkan akun
}
