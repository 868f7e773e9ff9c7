package dto

import (
	"time"

	"desacitamiang_backend/internals/features/perangkat/model"
)

type PerangkatResponse struct {
	PerangkatID          uint   `json:"perangkat_id"`
	PerangkatNamaLengkap string `json:"perangkat_nama_lengkap"`
	PerangkatJabatan     string `json:"perangkat_jabatan"`
	PerangkatImageURL    string `json:"perangkat_image_url"`
	PerangkatUrutan      int    `json:"perangkat_urutan"`
	PerangkatStatus      string `json:"perangkat_status"`
	PerangkatCreatedAt   string `json:"perangkat_created_at"`
	PerangkatUpdatedAt   string `json:"perangkat_updated_at"`
}

type CreatePerangkatRequest struct {
	PerangkatNamaLengkap string `form:"perangkat_nama_lengkap" json:"perangkat_nama_lengkap" validate:"required,min=3,max=255"`
	PerangkatJabatan     string `form:"perangkat_jabatan" json:"perangkat_jabatan" validate:"required,max=128"`
	PerangkatUrutan      int    `form:"perangkat_urutan" json:"perangkat_urutan" validate:"min=0"`
}

func ToPerangkatResponse(m model.PerangkatModel) PerangkatResponse {
	return PerangkatResponse{
		PerangkatID:          m.PerangkatID,
		PerangkatNamaLengkap: m.PerangkatNamaLengkap,
		PerangkatJabatan:     m.PerangkatJabatan,
		PerangkatImageURL:    m.PerangkatImageURL,
		PerangkatUrutan:      m.PerangkatUrutan,
		PerangkatStatus:      m.PerangkatStatus,
		PerangkatCreatedAt:   m.PerangkatCreatedAt.Format(time.RFC3339),
		PerangkatUpdatedAt:   m.PerangkatUpdatedAt.Format(time.RFC3339),
	}
}

func ToPerangkatResponseList(list []model.PerangkatModel) []PerangkatResponse {
	out := make([]PerangkatResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPerangkatResponse(m))
	}
	return out
}
