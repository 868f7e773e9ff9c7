package service

import (
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/configs"
	adminModel "desacitamiang_backend/internals/features/users/admin/model"
)

// Login memverifikasi username + password (bcrypt). Username salah dan
// password salah mengembalikan pesan yang sama supaya tidak bisa dipakai
// menebak akun.
func Login(db *gorm.DB, username, password string) (*adminModel.AdminUserModel, error) {
	var admin adminModel.AdminUserModel
	err := db.Where("lower(admin_username) = lower(?)", strings.TrimSpace(username)).
		First(&admin).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	if !CheckPassword(admin.AdminPasswordHash, password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	if !admin.AdminIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun sudah dinon-aktifkan")
	}
	return &admin, nil
}

// LoginGoogle memverifikasi Google ID token lalu mencocokkan akun via
// google_id, fallback email. Tidak pernah membuat akun baru: admin panel
// tertutup, akun dibuat owner.
func LoginGoogle(db *gorm.DB, idToken string) (*adminModel.AdminUserModel, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[WARN] Google ID token ditolak:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google token tidak valid")
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google token tidak valid")
	}

	var admin adminModel.AdminUserModel
	err = db.Where("admin_google_id = ?", claims.Sub).First(&admin).Error
	if err != nil {
		// Fallback: cocokkan email, lalu tautkan google_id untuk login berikutnya.
		err = db.Where("lower(admin_email) = lower(?)", claims.Email).First(&admin).Error
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun Google tidak terdaftar")
		}
		sub := claims.Sub
		if uerr := db.Model(&admin).Update("admin_google_id", &sub).Error; uerr != nil {
			log.Println("[WARN] Gagal tautkan google_id:", uerr)
		}
	}

	if !admin.AdminIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun sudah dinon-aktifkan")
	}
	return &admin, nil
}

// ChangePassword memverifikasi password lama lalu mengganti hash. Semua
// sesi lain dicabut setelah ganti password.
func ChangePassword(db *gorm.DB, adminID uint, oldPassword, newPassword string) error {
	var admin adminModel.AdminUserModel
	if err := db.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
	}

	if !CheckPassword(admin.AdminPasswordHash, oldPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ganti password")
	}
	if err := db.Model(&admin).Update("admin_password_hash", hash).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal ganti password")
	}

	RevokeAllSessions(db, adminID)
	return nil
}
