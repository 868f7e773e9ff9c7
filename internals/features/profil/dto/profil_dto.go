package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"desacitamiang_backend/internals/features/profil/model"
)

type ProfilResponse struct {
	ProfilNamaDesa    string            `json:"profil_nama_desa"`
	ProfilKecamatan   string            `json:"profil_kecamatan"`
	ProfilKabupaten   string            `json:"profil_kabupaten"`
	ProfilProvinsi    string            `json:"profil_provinsi"`
	ProfilTentang     string            `json:"profil_tentang"`
	ProfilVisi        string            `json:"profil_visi"`
	ProfilMisiItems   []string          `json:"profil_misi_items"`
	ProfilAlamat      string            `json:"profil_alamat"`
	ProfilEmail       string            `json:"profil_email"`
	ProfilTelepon     string            `json:"profil_telepon"`
	ProfilSocialLinks map[string]string `json:"profil_social_links"`
	ProfilLatitude    float64           `json:"profil_latitude"`
	ProfilLongitude   float64           `json:"profil_longitude"`
	ProfilUpdatedAt   string            `json:"profil_updated_at"`
}

// UpsertProfilRequest: seluruh profil dikirim utuh dari halaman pengaturan,
// bukan patch per-field.
type UpsertProfilRequest struct {
	ProfilNamaDesa    string            `json:"profil_nama_desa" validate:"required,min=3,max=128"`
	ProfilKecamatan   string            `json:"profil_kecamatan" validate:"max=128"`
	ProfilKabupaten   string            `json:"profil_kabupaten" validate:"max=128"`
	ProfilProvinsi    string            `json:"profil_provinsi" validate:"max=128"`
	ProfilTentang     string            `json:"profil_tentang" validate:"max=10000"`
	ProfilVisi        string            `json:"profil_visi" validate:"max=2000"`
	ProfilMisiItems   []string          `json:"profil_misi_items" validate:"max=20,dive,max=500"`
	ProfilAlamat      string            `json:"profil_alamat" validate:"max=500"`
	ProfilEmail       string            `json:"profil_email" validate:"omitempty,email,max=255"`
	ProfilTelepon     string            `json:"profil_telepon" validate:"max=32"`
	ProfilSocialLinks map[string]string `json:"profil_social_links" validate:"omitempty,dive,keys,max=32,endkeys,url"`
	ProfilLatitude    float64           `json:"profil_latitude" validate:"min=-90,max=90"`
	ProfilLongitude   float64           `json:"profil_longitude" validate:"min=-180,max=180"`
}

func (r *UpsertProfilRequest) ToModel() (model.ProfilModel, error) {
	links := datatypes.JSON([]byte("{}"))
	if len(r.ProfilSocialLinks) > 0 {
		raw, err := json.Marshal(r.ProfilSocialLinks)
		if err != nil {
			return model.ProfilModel{}, err
		}
		links = datatypes.JSON(raw)
	}
	return model.ProfilModel{
		ProfilID:          model.ProfilSingletonID,
		ProfilNamaDesa:    r.ProfilNamaDesa,
		ProfilKecamatan:   r.ProfilKecamatan,
		ProfilKabupaten:   r.ProfilKabupaten,
		ProfilProvinsi:    r.ProfilProvinsi,
		ProfilTentang:     r.ProfilTentang,
		ProfilVisi:        r.ProfilVisi,
		ProfilMisiItems:   r.ProfilMisiItems,
		ProfilAlamat:      r.ProfilAlamat,
		ProfilEmail:       r.ProfilEmail,
		ProfilTelepon:     r.ProfilTelepon,
		ProfilSocialLinks: links,
		ProfilLatitude:    r.ProfilLatitude,
		ProfilLongitude:   r.ProfilLongitude,
	}, nil
}

func ToProfilResponse(m model.ProfilModel) ProfilResponse {
	links := map[string]string{}
	if len(m.ProfilSocialLinks) > 0 {
		_ = json.Unmarshal(m.ProfilSocialLinks, &links)
	}
	misi := []string(m.ProfilMisiItems)
	if misi == nil {
		misi = []string{}
	}
	return ProfilResponse{
		ProfilNamaDesa:    m.ProfilNamaDesa,
		ProfilKecamatan:   m.ProfilKecamatan,
		ProfilKabupaten:   m.ProfilKabupaten,
		ProfilProvinsi:    m.ProfilProvinsi,
		ProfilTentang:     m.ProfilTentang,
		ProfilVisi:        m.ProfilVisi,
		ProfilMisiItems:   misi,
		ProfilAlamat:      m.ProfilAlamat,
		ProfilEmail:       m.ProfilEmail,
		ProfilTelepon:     m.ProfilTelepon,
		ProfilSocialLinks: links,
		ProfilLatitude:    m.ProfilLatitude,
		ProfilLongitude:   m.ProfilLongitude,
		ProfilUpdatedAt:   m.ProfilUpdatedAt.Format(time.RFC3339),
	}
}
