package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Profil desa adalah singleton: satu row dengan id tetap 1, di-upsert dari
// halaman pengaturan admin.
const ProfilSingletonID uint = 1

type ProfilModel struct {
	ProfilID          uint           `gorm:"column:profil_id;primaryKey" json:"profil_id"`
	ProfilNamaDesa    string         `gorm:"column:profil_nama_desa;type:varchar(128);not null" json:"profil_nama_desa"`
	ProfilKecamatan   string         `gorm:"column:profil_kecamatan;type:varchar(128)" json:"profil_kecamatan"`
	ProfilKabupaten   string         `gorm:"column:profil_kabupaten;type:varchar(128)" json:"profil_kabupaten"`
	ProfilProvinsi    string         `gorm:"column:profil_provinsi;type:varchar(128)" json:"profil_provinsi"`
	ProfilTentang     string         `gorm:"column:profil_tentang;type:text" json:"profil_tentang"`
	ProfilVisi        string         `gorm:"column:profil_visi;type:text" json:"profil_visi"`
	ProfilMisiItems   pq.StringArray `gorm:"column:profil_misi_items;type:text[]" json:"profil_misi_items"`
	ProfilAlamat      string         `gorm:"column:profil_alamat;type:text" json:"profil_alamat"`
	ProfilEmail       string         `gorm:"column:profil_email;type:varchar(255)" json:"profil_email"`
	ProfilTelepon     string         `gorm:"column:profil_telepon;type:varchar(32)" json:"profil_telepon"`
	ProfilSocialLinks datatypes.JSON `gorm:"column:profil_social_links;type:jsonb" json:"profil_social_links"`
	ProfilLatitude    float64        `gorm:"column:profil_latitude" json:"profil_latitude"`
	ProfilLongitude   float64        `gorm:"column:profil_longitude" json:"profil_longitude"`
	ProfilUpdatedAt   time.Time      `gorm:"column:profil_updated_at;autoUpdateTime" json:"profil_updated_at"`
}

func (ProfilModel) TableName() string {
	return "profil_desa"
}
