package helper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wisata Curug Citamiang", "wisata-curug-citamiang"},
		{"  Kopi & Gula Aren  ", "kopi-gula-aren"},
		{"Émpal Géntong", "empal-gentong"},
		{"UMKM---Keripik!!!", "umkm-keripik"},
		{"", ""},
		{"???", ""},
	}
	for _, c := range cases {
		if got := GenerateSlug(c.in); got != c.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Slug string `gorm:"column:potensi_slug;uniqueIndex"`
}

func (slugRow) TableName() string { return "potensi" }

func TestGenerateUniqueSlugSuffixing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&slugRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	opts := SlugOptions{Table: "potensi", SlugColumn: "potensi_slug", DefaultBase: "potensi"}

	s1, err := GenerateUniqueSlug(db, opts, "Curug Citamiang")
	if err != nil {
		t.Fatalf("slug 1: %v", err)
	}
	if s1 != "curug-citamiang" {
		t.Fatalf("slug 1 = %q", s1)
	}
	db.Create(&slugRow{Slug: s1})

	s2, err := GenerateUniqueSlug(db, opts, "Curug Citamiang")
	if err != nil {
		t.Fatalf("slug 2: %v", err)
	}
	if s2 != "curug-citamiang-2" {
		t.Fatalf("slug 2 = %q", s2)
	}
	db.Create(&slugRow{Slug: s2})

	s3, err := GenerateUniqueSlug(db, opts, "Curug Citamiang")
	if err != nil {
		t.Fatalf("slug 3: %v", err)
	}
	if s3 != "curug-citamiang-3" {
		t.Fatalf("slug 3 = %q", s3)
	}
}

func TestGenerateUniqueSlugEmptyBaseFallsBack(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&slugRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	opts := SlugOptions{Table: "potensi", SlugColumn: "potensi_slug", DefaultBase: "potensi"}
	s, err := GenerateUniqueSlug(db, opts, "???")
	if err != nil {
		t.Fatalf("slug: %v", err)
	}
	if s != "potensi" {
		t.Fatalf("slug = %q, want potensi", s)
	}
}
