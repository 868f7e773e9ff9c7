package model

import "time"

// Galeri dokumentasi kegiatan desa. Tidak punya status: semua item tampil
// di halaman publik. Lifecycle: create, delete (tanpa update).
type DokumentasiModel struct {
	DokumentasiID          uint      `gorm:"column:dokumentasi_id;primaryKey;autoIncrement" json:"dokumentasi_id"`
	DokumentasiTitle       string    `gorm:"column:dokumentasi_title;type:varchar(255);not null" json:"dokumentasi_title"`
	DokumentasiDescription string    `gorm:"column:dokumentasi_description;type:text" json:"dokumentasi_description"`
	DokumentasiImageURL    string    `gorm:"column:dokumentasi_image_url;type:text" json:"dokumentasi_image_url"`
	DokumentasiThumbURL    string    `gorm:"column:dokumentasi_thumb_url;type:text" json:"dokumentasi_thumb_url"`
	DokumentasiTanggal     time.Time `gorm:"column:dokumentasi_tanggal;type:date;not null" json:"dokumentasi_tanggal"`
	DokumentasiKategori    string    `gorm:"column:dokumentasi_kategori;type:varchar(64);not null" json:"dokumentasi_kategori"`
	DokumentasiCreatedAt   time.Time `gorm:"column:dokumentasi_created_at;autoCreateTime" json:"dokumentasi_created_at"`
}

func (DokumentasiModel) TableName() string {
	return "dokumentasi"
}
