package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/configs"
	adminModel "desacitamiang_backend/internals/features/users/admin/model"
	"desacitamiang_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CreateAccessToken menandatangani JWT access-token (HS256) untuk admin.
func CreateAccessToken(admin *adminModel.AdminUserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      admin.AdminID,
		"username": admin.AdminUsername,
		"role":     admin.AdminRole,
		"typ":      "access",
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh token acak, menyimpan hash-nya di DB,
// dan mengembalikan raw token untuk cookie.
func IssueRefreshToken(db *gorm.DB, adminID uint) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	row := model.RefreshTokenModel{
		TokenAdminID:   adminID,
		TokenHash:      hashToken(token),
		TokenExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeRefreshToken memvalidasi raw token lalu MENGHAPUS row-nya
// (rotasi: token lama mati begitu dipakai). Mengembalikan admin pemilik.
func ConsumeRefreshToken(db *gorm.DB, rawToken string) (*adminModel.AdminUserModel, error) {
	if rawToken == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	var row model.RefreshTokenModel
	err := db.Where("token_hash = ?", hashToken(rawToken)).First(&row).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Sekali pakai: hapus dulu sebelum cek lain supaya replay langsung gagal.
	if err := db.Delete(&model.RefreshTokenModel{}, "token_id = ?", row.TokenID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	if time.Now().After(row.TokenExpiresAt) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token kadaluarsa")
	}

	var admin adminModel.AdminUserModel
	if err := db.First(&admin, "admin_id = ?", row.TokenAdminID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	if !admin.AdminIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun sudah dinon-aktifkan")
	}
	return &admin, nil
}

// RevokeRefreshToken menghapus satu sesi berdasarkan raw token (logout).
func RevokeRefreshToken(db *gorm.DB, rawToken string) {
	if rawToken == "" {
		return
	}
	if err := db.Delete(&model.RefreshTokenModel{}, "token_hash = ?", hashToken(rawToken)).Error; err != nil {
		log.Println("[WARN] Gagal hapus refresh token:", err)
	}
}

// RevokeAllSessions menghapus semua refresh token milik satu admin.
func RevokeAllSessions(db *gorm.DB, adminID uint) {
	if err := db.Delete(&model.RefreshTokenModel{}, "token_admin_id = ?", adminID).Error; err != nil {
		log.Println("[WARN] Gagal hapus sesi admin:", err)
	}
}

// SetAuthCookies memasang access & refresh token sebagai cookie HttpOnly.
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(AccessTokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/auth",
		MaxAge:   int(RefreshTokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAuthCookies menghapus cookie sesi di klien.
func ClearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		path := "/"
		if name == "refresh_token" {
			path = "/api/auth"
		}
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			MaxAge:   -1,
			HTTPOnly: true,
		})
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
