package service

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"desacitamiang_backend/internals/configs"
	"desacitamiang_backend/internals/constants"
	adminModel "desacitamiang_backend/internals/features/users/admin/model"
	"desacitamiang_backend/internals/features/users/auth/model"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&adminModel.AdminUserModel{}, &model.RefreshTokenModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string, active bool) adminModel.AdminUserModel {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := adminModel.AdminUserModel{
		AdminUsername:     username,
		AdminPasswordHash: hash,
		AdminRole:         constants.RoleAdmin,
		AdminIsActive:     active,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func countSessions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	db.Model(&model.RefreshTokenModel{}).Count(&n)
	return n
}

func TestLoginSuccess(t *testing.T) {
	db := newAuthTestDB(t)
	seedAdmin(t, db, "admindesa", "rahasia-banget", true)

	admin, err := Login(db, "AdminDesa", "rahasia-banget")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin.AdminUsername != "admindesa" {
		t.Fatalf("username = %q", admin.AdminUsername)
	}
}

func TestLoginWrongPasswordWritesNoSession(t *testing.T) {
	db := newAuthTestDB(t)
	seedAdmin(t, db, "admindesa", "rahasia-banget", true)

	_, err := Login(db, "admindesa", "password-salah")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	if n := countSessions(t, db); n != 0 {
		t.Fatalf("login gagal tapi ada %d sesi tersimpan", n)
	}
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	db := newAuthTestDB(t)
	seedAdmin(t, db, "admindesa", "rahasia-banget", true)

	_, errUser := Login(db, "tidakada", "rahasia-banget")
	_, errPass := Login(db, "admindesa", "password-salah")
	if errUser == nil || errPass == nil {
		t.Fatal("expected errors")
	}
	if errUser.Error() != errPass.Error() {
		t.Fatalf("pesan beda (%q vs %q), bisa dipakai menebak akun", errUser.Error(), errPass.Error())
	}
}

func TestLoginInactiveAccountForbidden(t *testing.T) {
	db := newAuthTestDB(t)
	seedAdmin(t, db, "nonaktif", "rahasia-banget", false)

	_, err := Login(db, "nonaktif", "rahasia-banget")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusForbidden {
		t.Fatalf("err = %v, want 403", err)
	}
}

func TestAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	admin := adminModel.AdminUserModel{
		AdminID:       7,
		AdminUsername: "admindesa",
		AdminRole:     constants.RoleAdmin,
	}

	signed, err := CreateAccessToken(&admin)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["sub"].(float64) != 7 {
		t.Fatalf("sub = %v", claims["sub"])
	}
	if claims["role"] != constants.RoleAdmin || claims["typ"] != "access" {
		t.Fatalf("claims = %v", claims)
	}
}

func TestRefreshTokenRotationSingleUse(t *testing.T) {
	db := newAuthTestDB(t)
	admin := seedAdmin(t, db, "admindesa", "rahasia-banget", true)

	raw, err := IssueRefreshToken(db, admin.AdminID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if n := countSessions(t, db); n != 1 {
		t.Fatalf("sesi = %d, want 1", n)
	}

	got, err := ConsumeRefreshToken(db, raw)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if got.AdminID != admin.AdminID {
		t.Fatalf("admin id = %d", got.AdminID)
	}

	// Replay token yang sama harus ditolak.
	_, err = ConsumeRefreshToken(db, raw)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("replay err = %v, want 401", err)
	}
}

func TestConsumeRefreshTokenInactiveAccount(t *testing.T) {
	db := newAuthTestDB(t)
	admin := seedAdmin(t, db, "admindesa", "rahasia-banget", true)
	raw, err := IssueRefreshToken(db, admin.AdminID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	db.Model(&adminModel.AdminUserModel{}).
		Where("admin_id = ?", admin.AdminID).
		Update("admin_is_active", false)

	_, err = ConsumeRefreshToken(db, raw)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusForbidden {
		t.Fatalf("err = %v, want 403", err)
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	db := newAuthTestDB(t)
	admin := seedAdmin(t, db, "admindesa", "rahasia-banget", true)
	if _, err := IssueRefreshToken(db, admin.AdminID); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := ChangePassword(db, admin.AdminID, "rahasia-banget", "rahasia-baru-123"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if n := countSessions(t, db); n != 0 {
		t.Fatalf("sesi lama masih hidup: %d", n)
	}

	if _, err := Login(db, "admindesa", "rahasia-banget"); err == nil {
		t.Fatal("password lama masih bisa dipakai")
	}
	if _, err := Login(db, "admindesa", "rahasia-baru-123"); err != nil {
		t.Fatalf("password baru ditolak: %v", err)
	}
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	db := newAuthTestDB(t)
	admin := seedAdmin(t, db, "admindesa", "rahasia-banget", true)

	err := ChangePassword(db, admin.AdminID, "salah", "rahasia-baru-123")
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}
