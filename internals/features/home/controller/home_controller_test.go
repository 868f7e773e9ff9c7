package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"desacitamiang_backend/internals/constants"
	bannerModel "desacitamiang_backend/internals/features/home/banners/model"
	dokumentasiModel "desacitamiang_backend/internals/features/home/dokumentasi/model"
	perangkatModel "desacitamiang_backend/internals/features/perangkat/model"
	potensiModel "desacitamiang_backend/internals/features/potensi/model"
	umkmModel "desacitamiang_backend/internals/features/umkm/model"
)

func newHomeTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&bannerModel.BannerModel{},
		&dokumentasiModel.DokumentasiModel{},
		&potensiModel.PotensiModel{},
		&umkmModel.UmkmModel{},
		&perangkatModel.PerangkatModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewHomeController(db)
	app.Get("/api/public/home", ctrl.GetHome)
	return app, db
}

func getHome(t *testing.T, app *fiber.App) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/home", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return resp, body
}

func TestHomeEmptyDatabaseStillServes(t *testing.T) {
	app, _ := newHomeTestApp(t)

	resp, body := getHome(t, app)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	data := body["data"].(map[string]any)
	hero := data["hero"].(map[string]any)
	if hero["is_fallback"] != true {
		t.Fatalf("hero fallback = %v, want true", hero["is_fallback"])
	}
	if hero["banner_title"] != constants.DefaultHeroTitle {
		t.Fatalf("hero title = %v", hero["banner_title"])
	}
	if len(data["dokumentasi"].([]any)) != 0 {
		t.Fatalf("dokumentasi harus kosong")
	}
	if data["kepala_desa"] != nil {
		t.Fatalf("kepala_desa = %v, want null", data["kepala_desa"])
	}
}

func TestHomeAggregatesSections(t *testing.T) {
	app, db := newHomeTestApp(t)

	if err := db.Create(&bannerModel.BannerModel{
		BannerTitle:  "Festival Panen",
		BannerStatus: constants.StatusAktif,
	}).Error; err != nil {
		t.Fatalf("seed banner: %v", err)
	}

	// 4 dokumentasi: hanya 3 tanggal terbaru yang tampil
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		if err := db.Create(&dokumentasiModel.DokumentasiModel{
			DokumentasiTitle:    "Kegiatan " + strings.Repeat("I", i+1),
			DokumentasiTanggal:  base.AddDate(0, 0, i),
			DokumentasiKategori: "kegiatan",
		}).Error; err != nil {
			t.Fatalf("seed dokumentasi: %v", err)
		}
	}

	for i, row := range []potensiModel.PotensiModel{
		{PotensiNama: "Sawah", PotensiSlug: "sawah", PotensiKategori: "pertanian", PotensiStatus: constants.StatusAktif},
		{PotensiNama: "Curug", PotensiSlug: "curug", PotensiKategori: "wisata", PotensiStatus: constants.StatusNonAktif},
		{PotensiNama: "Bambu", PotensiSlug: "bambu", PotensiKategori: "kerajinan", PotensiStatus: constants.StatusAktif},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed potensi %d: %v", i, err)
		}
	}

	if err := db.Create(&umkmModel.UmkmModel{
		UmkmNama: "Keripik Singkong", UmkmSlug: "keripik-singkong",
		UmkmKategori: "kuliner", UmkmStatus: constants.StatusAktif,
	}).Error; err != nil {
		t.Fatalf("seed umkm: %v", err)
	}

	for _, row := range []perangkatModel.PerangkatModel{
		{PerangkatNamaLengkap: "Pak Sekdes", PerangkatJabatan: "Sekretaris", PerangkatUrutan: 2, PerangkatStatus: constants.StatusAktif},
		{PerangkatNamaLengkap: "Bu Kades", PerangkatJabatan: "Kepala Desa", PerangkatUrutan: 1, PerangkatStatus: constants.StatusAktif},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed perangkat: %v", err)
		}
	}

	resp, body := getHome(t, app)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "public") {
		t.Fatalf("Cache-Control = %q, harus cache publik", cc)
	}

	data := body["data"].(map[string]any)

	hero := data["hero"].(map[string]any)
	if hero["banner_title"] != "Festival Panen" || hero["is_fallback"] == true {
		t.Fatalf("hero = %v", hero)
	}

	dok := data["dokumentasi"].([]any)
	if len(dok) != 3 {
		t.Fatalf("dokumentasi len = %d, want 3", len(dok))
	}
	if first := dok[0].(map[string]any); first["dokumentasi_tanggal"] != "2025-06-04" {
		t.Fatalf("dokumentasi pertama = %v, harus tanggal terbaru", first["dokumentasi_tanggal"])
	}

	potensi := data["potensi"].([]any)
	if len(potensi) != 2 {
		t.Fatalf("potensi len = %d, want 2 (non-aktif tersaring)", len(potensi))
	}

	if len(data["umkm"].([]any)) != 1 {
		t.Fatalf("umkm len = %d", len(data["umkm"].([]any)))
	}

	kepala := data["kepala_desa"].(map[string]any)
	if kepala["perangkat_nama_lengkap"] != "Bu Kades" {
		t.Fatalf("kepala_desa = %v, harus urutan terkecil", kepala["perangkat_nama_lengkap"])
	}
}
