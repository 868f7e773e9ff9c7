package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "desacitamiang_backend/internals/helpers"

	adminDTO "desacitamiang_backend/internals/features/users/admin/dto"
	adminModel "desacitamiang_backend/internals/features/users/admin/model"
	"desacitamiang_backend/internals/features/users/auth/dto"
	"desacitamiang_backend/internals/features/users/auth/service"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ✅ POST /login: username + password → access JWT + refresh cookie
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, err := service.Login(ctrl.DB, req.Username, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.issueSession(c, admin, "Login berhasil")
}

// ✅ POST /login-google: Google ID token → sesi yang sama dengan login biasa
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, err := service.LoginGoogle(ctrl.DB, req.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.issueSession(c, admin, "Login berhasil")
}

// ✅ POST /refresh-token: rotasi refresh token dari cookie → access token baru
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	admin, err := service.ConsumeRefreshToken(ctrl.DB, c.Cookies("refresh_token"))
	if err != nil {
		service.ClearAuthCookies(c)
		return helper.FromFiberError(c, err)
	}
	return ctrl.issueSession(c, admin, "Token diperbarui")
}

// ✅ POST /logout: hapus sesi + cookie. Selalu 200, logout idempoten.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	service.RevokeRefreshToken(ctrl.DB, c.Cookies("refresh_token"))
	service.ClearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ✅ GET /me: identitas admin dari access token
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(uint)
	if adminID == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin adminModel.AdminUserModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil")
	}
	return helper.JsonOK(c, "", adminDTO.ToAdminUserResponse(admin))
}

// ✅ POST /change-password: verifikasi password lama, ganti hash, cabut
// semua sesi lalu terbitkan sesi baru untuk device ini.
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(uint)
	if adminID == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.ChangePassword(ctrl.DB, adminID, req.OldPassword, req.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}

	var admin adminModel.AdminUserModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil")
	}
	return ctrl.issueSession(c, &admin, "Password berhasil diganti")
}

func (ctrl *AuthController) issueSession(c *fiber.Ctx, admin *adminModel.AdminUserModel, message string) error {
	accessToken, err := service.CreateAccessToken(admin)
	if err != nil {
		log.Println("[ERROR] Gagal buat access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat sesi login")
	}
	refreshToken, err := service.IssueRefreshToken(ctrl.DB, admin.AdminID)
	if err != nil {
		log.Println("[ERROR] Gagal buat refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat sesi login")
	}

	service.SetAuthCookies(c, accessToken, refreshToken)
	return helper.JsonOK(c, message, dto.LoginResponse{
		AccessToken: accessToken,
		Admin:       adminDTO.ToAdminUserResponse(*admin),
	})
}
