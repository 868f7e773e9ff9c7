package model

import (
	"time"

	"desacitamiang_backend/internals/constants"
)

// Perangkat (aparatur) desa. Urutan menentukan posisi tampil di struktur
// organisasi; urutan terkecil yang aktif dianggap kepala desa.
type PerangkatModel struct {
	PerangkatID          uint      `gorm:"column:perangkat_id;primaryKey;autoIncrement" json:"perangkat_id"`
	PerangkatNamaLengkap string    `gorm:"column:perangkat_nama_lengkap;type:varchar(255);not null" json:"perangkat_nama_lengkap"`
	PerangkatJabatan     string    `gorm:"column:perangkat_jabatan;type:varchar(128);not null" json:"perangkat_jabatan"`
	PerangkatImageURL    string    `gorm:"column:perangkat_image_url;type:text" json:"perangkat_image_url"`
	PerangkatUrutan      int       `gorm:"column:perangkat_urutan;not null;default:0;index" json:"perangkat_urutan"`
	PerangkatStatus      string    `gorm:"column:perangkat_status;type:varchar(16);not null;default:'aktif'" json:"perangkat_status"`
	PerangkatCreatedAt   time.Time `gorm:"column:perangkat_created_at;autoCreateTime" json:"perangkat_created_at"`
	PerangkatUpdatedAt   time.Time `gorm:"column:perangkat_updated_at;autoUpdateTime" json:"perangkat_updated_at"`
}

func (PerangkatModel) TableName() string {
	return "perangkat_desa"
}

func (m *PerangkatModel) IsActive() bool {
	return m.PerangkatStatus == constants.StatusAktif
}
