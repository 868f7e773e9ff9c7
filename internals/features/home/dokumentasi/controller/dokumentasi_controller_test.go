package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"desacitamiang_backend/internals/features/home/dokumentasi/model"
	uploadModel "desacitamiang_backend/internals/features/storage/uploads/model"
)

func newDokumentasiTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.DokumentasiModel{}, &uploadModel.UploadModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewDokumentasiController(db, nil)
	app.Get("/api/public/dokumentasi", ctrl.GetAllDokumentasi)
	return app, db
}

func seedDok(t *testing.T, db *gorm.DB, title, kategori string, tanggal time.Time) {
	t.Helper()
	if err := db.Create(&model.DokumentasiModel{
		DokumentasiTitle:    title,
		DokumentasiImageURL: "https://cdn.example.com/dokumentasi/x.webp",
		DokumentasiTanggal:  tanggal,
		DokumentasiKategori: kategori,
	}).Error; err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
}

func listDok(t *testing.T, app *fiber.App, path string) []any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return body["data"].([]any)
}

func TestDokumentasiOrderedByTanggalDesc(t *testing.T) {
	app, db := newDokumentasiTestApp(t)
	seedDok(t, db, "Kerja Bakti", "gotong-royong", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	seedDok(t, db, "HUT RI", "upacara", time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC))
	seedDok(t, db, "Posyandu", "kesehatan", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))

	data := listDok(t, app, "/api/public/dokumentasi")
	if len(data) != 3 {
		t.Fatalf("len = %d", len(data))
	}
	want := []string{"HUT RI", "Posyandu", "Kerja Bakti"}
	for i, d := range data {
		if got := d.(map[string]any)["dokumentasi_title"]; got != want[i] {
			t.Fatalf("urutan[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestDokumentasiKategoriFilter(t *testing.T) {
	app, db := newDokumentasiTestApp(t)
	seedDok(t, db, "Kerja Bakti", "gotong-royong", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	seedDok(t, db, "HUT RI", "upacara", time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC))

	data := listDok(t, app, "/api/public/dokumentasi?kategori=upacara")
	if len(data) != 1 {
		t.Fatalf("len = %d, want 1", len(data))
	}
	if data[0].(map[string]any)["dokumentasi_title"] != "HUT RI" {
		t.Fatalf("data = %v", data[0])
	}
}

func TestDokumentasiPagination(t *testing.T) {
	app, db := newDokumentasiTestApp(t)
	for i := 0; i < 5; i++ {
		seedDok(t, db, "Kegiatan", "umum", time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC))
	}

	data := listDok(t, app, "/api/public/dokumentasi?page=2&per_page=2")
	if len(data) != 2 {
		t.Fatalf("len halaman 2 = %d, want 2", len(data))
	}
}
