package dto

import (
	"time"

	"desacitamiang_backend/internals/features/home/dokumentasi/model"
)

type DokumentasiResponse struct {
	DokumentasiID          uint   `json:"dokumentasi_id"`
	DokumentasiTitle       string `json:"dokumentasi_title"`
	DokumentasiDescription string `json:"dokumentasi_description"`
	DokumentasiImageURL    string `json:"dokumentasi_image_url"`
	DokumentasiThumbURL    string `json:"dokumentasi_thumb_url,omitempty"`
	DokumentasiTanggal     string `json:"dokumentasi_tanggal"`
	DokumentasiKategori    string `json:"dokumentasi_kategori"`
	DokumentasiCreatedAt   string `json:"dokumentasi_created_at"`
}

type CreateDokumentasiRequest struct {
	DokumentasiTitle       string `form:"dokumentasi_title" json:"dokumentasi_title" validate:"required,min=3,max=255"`
	DokumentasiDescription string `form:"dokumentasi_description" json:"dokumentasi_description" validate:"max=2000"`
	DokumentasiTanggal     string `form:"dokumentasi_tanggal" json:"dokumentasi_tanggal" validate:"required,datetime=2006-01-02"`
	DokumentasiKategori    string `form:"dokumentasi_kategori" json:"dokumentasi_kategori" validate:"required,max=64"`
}

func ToDokumentasiResponse(m model.DokumentasiModel) DokumentasiResponse {
	return DokumentasiResponse{
		DokumentasiID:          m.DokumentasiID,
		DokumentasiTitle:       m.DokumentasiTitle,
		DokumentasiDescription: m.DokumentasiDescription,
		DokumentasiImageURL:    m.DokumentasiImageURL,
		DokumentasiThumbURL:    m.DokumentasiThumbURL,
		DokumentasiTanggal:     m.DokumentasiTanggal.Format("2006-01-02"),
		DokumentasiKategori:    m.DokumentasiKategori,
		DokumentasiCreatedAt:   m.DokumentasiCreatedAt.Format(time.RFC3339),
	}
}

func ToDokumentasiResponseList(list []model.DokumentasiModel) []DokumentasiResponse {
	out := make([]DokumentasiResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToDokumentasiResponse(m))
	}
	return out
}
