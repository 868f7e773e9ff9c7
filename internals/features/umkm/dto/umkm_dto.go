package dto

import (
	"time"

	"desacitamiang_backend/internals/features/umkm/model"
)

// ============================
// Response DTO
// ============================

type UmkmResponse struct {
	UmkmID        uint   `json:"umkm_id"`
	UmkmNama      string `json:"umkm_nama"`
	UmkmSlug      string `json:"umkm_slug"`
	UmkmPemilik   string `json:"umkm_pemilik"`
	UmkmKontak    string `json:"umkm_kontak"`
	UmkmDeskripsi string `json:"umkm_deskripsi"`
	UmkmImageURL  string `json:"umkm_image_url"`
	UmkmKategori  string `json:"umkm_kategori"`
	UmkmStatus    string `json:"umkm_status"`
	UmkmCreatedAt string `json:"umkm_created_at"`
	UmkmUpdatedAt string `json:"umkm_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateUmkmRequest struct {
	UmkmNama      string `form:"umkm_nama" json:"umkm_nama" validate:"required,min=3,max=255"`
	UmkmPemilik   string `form:"umkm_pemilik" json:"umkm_pemilik" validate:"max=255"`
	UmkmKontak    string `form:"umkm_kontak" json:"umkm_kontak" validate:"max=32"`
	UmkmDeskripsi string `form:"umkm_deskripsi" json:"umkm_deskripsi" validate:"max=5000"`
	UmkmKategori  string `form:"umkm_kategori" json:"umkm_kategori" validate:"required,max=64"`
}

// ============================
// Converter
// ============================

func ToUmkmResponse(m model.UmkmModel) UmkmResponse {
	return UmkmResponse{
		UmkmID:        m.UmkmID,
		UmkmNama:      m.UmkmNama,
		UmkmSlug:      m.UmkmSlug,
		UmkmPemilik:   m.UmkmPemilik,
		UmkmKontak:    m.UmkmKontak,
		UmkmDeskripsi: m.UmkmDeskripsi,
		UmkmImageURL:  m.UmkmImageURL,
		UmkmKategori:  m.UmkmKategori,
		UmkmStatus:    m.UmkmStatus,
		UmkmCreatedAt: m.UmkmCreatedAt.Format(time.RFC3339),
		UmkmUpdatedAt: m.UmkmUpdatedAt.Format(time.RFC3339),
	}
}

func ToUmkmResponseList(list []model.UmkmModel) []UmkmResponse {
	out := make([]UmkmResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToUmkmResponse(m))
	}
	return out
}
