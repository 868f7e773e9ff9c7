package dto

import (
	"time"

	"desacitamiang_backend/internals/features/home/banners/model"
)

// ============================
// Response DTO
// ============================

type BannerResponse struct {
	BannerID          uint   `json:"banner_id"`
	BannerTitle       string `json:"banner_title"`
	BannerDescription string `json:"banner_description"`
	BannerImageURL    string `json:"banner_image_url"`
	BannerStatus      string `json:"banner_status"`
	BannerCreatedAt   string `json:"banner_created_at"`
	BannerUpdatedAt   string `json:"banner_updated_at"`
}

// HeroResponse adalah proyeksi hero publik. Saat belum ada banner aktif,
// judul/deskripsi diisi default dan IsFallback bernilai true.
type HeroResponse struct {
	BannerTitle       string `json:"banner_title"`
	BannerDescription string `json:"banner_description"`
	BannerImageURL    string `json:"banner_image_url,omitempty"`
	IsFallback        bool   `json:"is_fallback"`
}

// ============================
// Create Request DTO
// ============================

type CreateBannerRequest struct {
	BannerTitle       string `form:"banner_title" json:"banner_title" validate:"required,min=3,max=255"`
	BannerDescription string `form:"banner_description" json:"banner_description" validate:"max=2000"`
}

// ============================
// Converter
// ============================

func ToBannerResponse(m model.BannerModel) BannerResponse {
	return BannerResponse{
		BannerID:          m.BannerID,
		BannerTitle:       m.BannerTitle,
		BannerDescription: m.BannerDescription,
		BannerImageURL:    m.BannerImageURL,
		BannerStatus:      m.BannerStatus,
		BannerCreatedAt:   m.BannerCreatedAt.Format(time.RFC3339),
		BannerUpdatedAt:   m.BannerUpdatedAt.Format(time.RFC3339),
	}
}

func ToBannerResponseList(list []model.BannerModel) []BannerResponse {
	out := make([]BannerResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBannerResponse(m))
	}
	return out
}
