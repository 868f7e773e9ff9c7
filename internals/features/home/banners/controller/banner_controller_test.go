package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"desacitamiang_backend/internals/constants"
	"desacitamiang_backend/internals/features/home/banners/model"
	uploadModel "desacitamiang_backend/internals/features/storage/uploads/model"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
)

func newBannerTestApp(t *testing.T, blob helperOSS.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.BannerModel{}, &uploadModel.UploadModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewBannerController(db, blob)
	app.Get("/api/public/banners/hero", ctrl.GetHeroBanner)
	app.Get("/api/a/banners", ctrl.GetAllBannersAdmin)
	app.Post("/api/a/banners", ctrl.CreateBanner)
	app.Patch("/api/a/banners/:id/status", ctrl.ToggleBannerStatus)
	app.Delete("/api/a/banners/:id", ctrl.DeleteBanner)
	return app, db
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return out
}

func TestGetHeroBannerFallback(t *testing.T) {
	app, _ := newBannerTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/banners/hero", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	if data["is_fallback"] != true {
		t.Fatalf("is_fallback = %v, want true", data["is_fallback"])
	}
	if data["banner_title"] != constants.DefaultHeroTitle {
		t.Fatalf("banner_title = %v", data["banner_title"])
	}
}

func TestGetHeroBannerUsesActiveRow(t *testing.T) {
	app, db := newBannerTestApp(t, nil)
	db.Create(&model.BannerModel{BannerTitle: "HUT Desa", BannerStatus: constants.StatusAktif})
	db.Create(&model.BannerModel{BannerTitle: "Lama", BannerStatus: constants.StatusNonAktif})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/banners/hero", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	if data["banner_title"] != "HUT Desa" {
		t.Fatalf("banner_title = %v, want HUT Desa", data["banner_title"])
	}
	if data["is_fallback"] == true {
		t.Fatal("is_fallback seharusnya false")
	}
}

func TestToggleBannerEndpointKeepsSingleActive(t *testing.T) {
	app, db := newBannerTestApp(t, nil)
	b1 := model.BannerModel{BannerTitle: "A", BannerStatus: constants.StatusNonAktif}
	b2 := model.BannerModel{BannerTitle: "B", BannerStatus: constants.StatusNonAktif}
	db.Create(&b1)
	db.Create(&b2)

	for _, id := range []uint{b1.BannerID, b2.BannerID} {
		req := httptest.NewRequest(fiber.MethodPatch,
			"/api/a/banners/"+strconv.Itoa(int(id))+"/status", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("toggle %d status = %d", id, resp.StatusCode)
		}
	}

	var n int64
	db.Model(&model.BannerModel{}).
		Where("banner_status = ?", constants.StatusAktif).
		Count(&n)
	if n != 1 {
		t.Fatalf("banner aktif = %d, want 1", n)
	}
}

func TestToggleBannerNotFound(t *testing.T) {
	app, _ := newBannerTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPatch, "/api/a/banners/999/status", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateBannerRequiresImage(t *testing.T) {
	app, _ := newBannerTestApp(t, &helperOSS.MockBlobService{})

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	_ = w.WriteField("banner_title", "Banner Tanpa Gambar")
	_ = w.Close()

	req := httptest.NewRequest(fiber.MethodPost, "/api/a/banners", buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateBannerBornNonActive(t *testing.T) {
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
			return "https://cdn.example.com/banners/foto.webp", "banners/foto.webp", nil
		},
	}
	app, db := newBannerTestApp(t, blob)

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	_ = w.WriteField("banner_title", "Banner Baru")
	fw, _ := w.CreateFormFile("image", "foto.jpg")
	_, _ = fw.Write([]byte("fake-image-bytes"))
	_ = w.Close()

	req := httptest.NewRequest(fiber.MethodPost, "/api/a/banners", buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var banner model.BannerModel
	if err := db.First(&banner).Error; err != nil {
		t.Fatalf("banner tidak tersimpan: %v", err)
	}
	if banner.BannerStatus != constants.StatusNonAktif {
		t.Fatalf("banner lahir %q, want non-aktif", banner.BannerStatus)
	}
}

func TestDeleteBannerReleasesImage(t *testing.T) {
	var deleted []string
	blob := &helperOSS.MockBlobService{
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	app, db := newBannerTestApp(t, blob)
	b := model.BannerModel{
		BannerTitle:    "Hapus Saya",
		BannerImageURL: "https://cdn.example.com/banners/foto.webp",
		BannerStatus:   constants.StatusNonAktif,
	}
	db.Create(&b)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/a/banners/"+strconv.Itoa(int(b.BannerID)), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var n int64
	db.Model(&model.BannerModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("banner masih ada: %d", n)
	}
	if len(deleted) != 1 || deleted[0] != b.BannerImageURL {
		t.Fatalf("object tidak dilepas: %v", deleted)
	}
}
