package model

import (
	"time"

	"desacitamiang_backend/internals/constants"
)

// Direktori UMKM desa. Lahir aktif; kontak dipakai frontend untuk tautan
// WhatsApp/telepon pemilik usaha.
type UmkmModel struct {
	UmkmID        uint      `gorm:"column:umkm_id;primaryKey;autoIncrement" json:"umkm_id"`
	UmkmNama      string    `gorm:"column:umkm_nama;type:varchar(255);not null" json:"umkm_nama"`
	UmkmSlug      string    `gorm:"column:umkm_slug;type:varchar(160);uniqueIndex;not null" json:"umkm_slug"`
	UmkmPemilik   string    `gorm:"column:umkm_pemilik;type:varchar(255)" json:"umkm_pemilik"`
	UmkmKontak    string    `gorm:"column:umkm_kontak;type:varchar(32)" json:"umkm_kontak"`
	UmkmDeskripsi string    `gorm:"column:umkm_deskripsi;type:text" json:"umkm_deskripsi"`
	UmkmImageURL  string    `gorm:"column:umkm_image_url;type:text" json:"umkm_image_url"`
	UmkmKategori  string    `gorm:"column:umkm_kategori;type:varchar(64)" json:"umkm_kategori"`
	UmkmStatus    string    `gorm:"column:umkm_status;type:varchar(16);not null;default:'aktif'" json:"umkm_status"`
	UmkmCreatedAt time.Time `gorm:"column:umkm_created_at;autoCreateTime" json:"umkm_created_at"`
	UmkmUpdatedAt time.Time `gorm:"column:umkm_updated_at;autoUpdateTime" json:"umkm_updated_at"`
}

func (UmkmModel) TableName() string {
	return "umkm"
}

func (m *UmkmModel) IsActive() bool {
	return m.UmkmStatus == constants.StatusAktif
}
