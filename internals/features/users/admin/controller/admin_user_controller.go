package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	helper "desacitamiang_backend/internals/helpers"

	"desacitamiang_backend/internals/features/users/admin/dto"
	"desacitamiang_backend/internals/features/users/admin/model"
	authService "desacitamiang_backend/internals/features/users/auth/service"
)

var validateAdminUser = validator.New()

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// ✅ GET: Owner - semua akun admin
func (ctrl *AdminUserController) GetAllAdmins(c *fiber.Ctx) error {
	var admins []model.AdminUserModel
	if err := ctrl.DB.Order("admin_created_at ASC").Find(&admins).Error; err != nil {
		log.Println("[ERROR] Gagal ambil daftar admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil daftar admin")
	}
	return helper.JsonList(c, "", dto.ToAdminUserResponseList(admins), nil)
}

// ✅ POST: Owner - buat akun admin baru
func (ctrl *AdminUserController) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateAdminUser.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.AdminPassword)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat akun admin")
	}

	admin := model.AdminUserModel{
		AdminUsername:     req.AdminUsername,
		AdminPasswordHash: hash,
		AdminNamaLengkap:  req.AdminNamaLengkap,
		AdminEmail:        req.AdminEmail,
		AdminRole:         req.AdminRole,
		AdminIsActive:     true,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah dipakai")
		}
		log.Println("[ERROR] Gagal buat akun admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat akun admin")
	}

	return helper.JsonCreated(c, "Akun admin berhasil dibuat", dto.ToAdminUserResponse(admin))
}

// ✅ PATCH: Owner - aktifkan/non-aktifkan akun admin. Akun non-aktif
// ditolak saat login dan saat refresh token.
func (ctrl *AdminUserController) ToggleAdminActive(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	selfID, _ := c.Locals("admin_id").(uint)
	if selfID == uint(id) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menon-aktifkan akun sendiri")
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update akun")
	}

	newActive := !admin.AdminIsActive
	if err := ctrl.DB.Model(&admin).Update("admin_is_active", newActive).Error; err != nil {
		log.Println("[ERROR] Gagal toggle akun admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update akun")
	}

	// Cabut sesi akun yang dimatikan supaya refresh token-nya mati juga.
	if !newActive {
		authService.RevokeAllSessions(ctrl.DB, admin.AdminID)
	}

	return helper.JsonUpdated(c, "Status akun diperbarui", fiber.Map{
		"admin_id":        id,
		"admin_is_active": newActive,
	})
}
