package dto

import (
	"time"

	"desacitamiang_backend/internals/features/potensi/model"
)

// ============================
// Response DTO
// ============================

type PotensiResponse struct {
	PotensiID        uint   `json:"potensi_id"`
	PotensiNama      string `json:"potensi_nama"`
	PotensiSlug      string `json:"potensi_slug"`
	PotensiDeskripsi string `json:"potensi_deskripsi"`
	PotensiImageURL  string `json:"potensi_image_url"`
	PotensiKategori  string `json:"potensi_kategori"`
	PotensiLokasi    string `json:"potensi_lokasi"`
	PotensiStatus    string `json:"potensi_status"`
	PotensiCreatedAt string `json:"potensi_created_at"`
	PotensiUpdatedAt string `json:"potensi_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreatePotensiRequest struct {
	PotensiNama      string `form:"potensi_nama" json:"potensi_nama" validate:"required,min=3,max=255"`
	PotensiDeskripsi string `form:"potensi_deskripsi" json:"potensi_deskripsi" validate:"max=5000"`
	PotensiKategori  string `form:"potensi_kategori" json:"potensi_kategori" validate:"required,max=64"`
	PotensiLokasi    string `form:"potensi_lokasi" json:"potensi_lokasi" validate:"max=255"`
}

// ============================
// Converter
// ============================

func ToPotensiResponse(m model.PotensiModel) PotensiResponse {
	return PotensiResponse{
		PotensiID:        m.PotensiID,
		PotensiNama:      m.PotensiNama,
		PotensiSlug:      m.PotensiSlug,
		PotensiDeskripsi: m.PotensiDeskripsi,
		PotensiImageURL:  m.PotensiImageURL,
		PotensiKategori:  m.PotensiKategori,
		PotensiLokasi:    m.PotensiLokasi,
		PotensiStatus:    m.PotensiStatus,
		PotensiCreatedAt: m.PotensiCreatedAt.Format(time.RFC3339),
		PotensiUpdatedAt: m.PotensiUpdatedAt.Format(time.RFC3339),
	}
}

func ToPotensiResponseList(list []model.PotensiModel) []PotensiResponse {
	out := make([]PotensiResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPotensiResponse(m))
	}
	return out
}
