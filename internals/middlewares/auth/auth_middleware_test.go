package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"desacitamiang_backend/internals/configs"
	"desacitamiang_backend/internals/constants"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		AuthMiddleware(),
		OnlyRolesSlice(constants.RoleErrorAdmin("tes"), constants.AdminAndAbove),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"admin_id": c.Locals("admin_id"),
				"role":     c.Locals("admin_role"),
			})
		})
	app.Get("/owner",
		AuthMiddleware(),
		OnlyRolesSlice(constants.RoleErrorOwner("tes"), constants.OwnerOnly),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":  float64(1),
		"role": constants.RoleAdmin,
		"typ":  "access",
		"exp":  time.Now().Add(-5 * time.Minute).Unix(),
	})
	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsWrongSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	token := signToken(t, "secret-lain", jwt.MapClaims{
		"sub":  float64(1),
		"role": constants.RoleAdmin,
		"typ":  "access",
		"exp":  time.Now().Add(5 * time.Minute).Unix(),
	})
	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsRefreshTokenType(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":  float64(1),
		"role": constants.RoleAdmin,
		"typ":  "refresh",
		"exp":  time.Now().Add(5 * time.Minute).Unix(),
	})
	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRoleGateAdminCannotAccessOwnerArea(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":  float64(1),
		"role": constants.RoleAdmin,
		"typ":  "access",
		"exp":  time.Now().Add(5 * time.Minute).Unix(),
	})

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("/admin status = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/owner", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("/owner status = %d, want 403", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newGuardedApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":      float64(42),
		"username": "admindesa",
		"role":     constants.RoleOwner,
		"typ":      "access",
		"exp":      time.Now().Add(5 * time.Minute).Unix(),
	})
	req := httptest.NewRequest(fiber.MethodGet, "/owner", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
