package model

import (
	"time"

	"desacitamiang_backend/internals/constants"
)

// Banner hero halaman depan. Invariant: maksimal satu row berstatus aktif;
// banner baru selalu lahir non-aktif dan diaktifkan eksplisit oleh admin.
type BannerModel struct {
	BannerID          uint      `gorm:"column:banner_id;primaryKey;autoIncrement" json:"banner_id"`
	BannerTitle       string    `gorm:"column:banner_title;type:varchar(255);not null" json:"banner_title"`
	BannerDescription string    `gorm:"column:banner_description;type:text" json:"banner_description"`
	BannerImageURL    string    `gorm:"column:banner_image_url;type:text" json:"banner_image_url"`
	BannerStatus      string    `gorm:"column:banner_status;type:varchar(16);not null;default:'non-aktif'" json:"banner_status"`
	BannerCreatedAt   time.Time `gorm:"column:banner_created_at;autoCreateTime" json:"banner_created_at"`
	BannerUpdatedAt   time.Time `gorm:"column:banner_updated_at;autoUpdateTime" json:"banner_updated_at"`
}

func (BannerModel) TableName() string {
	return "banners"
}

func (m *BannerModel) IsActive() bool {
	return m.BannerStatus == constants.StatusAktif
}
