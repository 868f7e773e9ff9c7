package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/features/users/auth/controller"
	"desacitamiang_backend/internals/middlewares"
	authMw "desacitamiang_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)              // 🔑 Username + password
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle) // 🔑 Google ID token
	api.Post("/refresh-token", ctrl.Refresh)                                          // ♻️ Rotasi refresh token
	api.Post("/logout", ctrl.Logout)                                            // 🚪 Hapus sesi

	protected := api.Group("", authMw.AuthMiddleware())
	protected.Get("/me", ctrl.Me)                          // 👤 Profil admin login
	protected.Post("/change-password", ctrl.ChangePassword) // 🔒 Ganti password
}
