package model

import (
	"time"

	"desacitamiang_backend/internals/constants"
)

// Potensi desa (wisata, pertanian, dll). Lahir aktif; slug unik dipakai
// sebagai URL detail publik.
type PotensiModel struct {
	PotensiID        uint      `gorm:"column:potensi_id;primaryKey;autoIncrement" json:"potensi_id"`
	PotensiNama      string    `gorm:"column:potensi_nama;type:varchar(255);not null" json:"potensi_nama"`
	PotensiSlug      string    `gorm:"column:potensi_slug;type:varchar(160);uniqueIndex;not null" json:"potensi_slug"`
	PotensiDeskripsi string    `gorm:"column:potensi_deskripsi;type:text" json:"potensi_deskripsi"`
	PotensiImageURL  string    `gorm:"column:potensi_image_url;type:text" json:"potensi_image_url"`
	PotensiKategori  string    `gorm:"column:potensi_kategori;type:varchar(64)" json:"potensi_kategori"`
	PotensiLokasi    string    `gorm:"column:potensi_lokasi;type:varchar(255)" json:"potensi_lokasi"`
	PotensiStatus    string    `gorm:"column:potensi_status;type:varchar(16);not null;default:'aktif'" json:"potensi_status"`
	PotensiCreatedAt time.Time `gorm:"column:potensi_created_at;autoCreateTime" json:"potensi_created_at"`
	PotensiUpdatedAt time.Time `gorm:"column:potensi_updated_at;autoUpdateTime" json:"potensi_updated_at"`
}

func (PotensiModel) TableName() string {
	return "potensi"
}

func (m *PotensiModel) IsActive() bool {
	return m.PotensiStatus == constants.StatusAktif
}
