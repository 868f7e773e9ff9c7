package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/constants"
	helper "desacitamiang_backend/internals/helpers"

	bannerCtrl "desacitamiang_backend/internals/features/home/banners/controller"
	bannerDTO "desacitamiang_backend/internals/features/home/banners/dto"
	dokumentasiDTO "desacitamiang_backend/internals/features/home/dokumentasi/dto"
	dokumentasiModel "desacitamiang_backend/internals/features/home/dokumentasi/model"
	perangkatCtrl "desacitamiang_backend/internals/features/perangkat/controller"
	perangkatDTO "desacitamiang_backend/internals/features/perangkat/dto"
	potensiDTO "desacitamiang_backend/internals/features/potensi/dto"
	potensiModel "desacitamiang_backend/internals/features/potensi/model"
	umkmDTO "desacitamiang_backend/internals/features/umkm/dto"
	umkmModel "desacitamiang_backend/internals/features/umkm/model"
)

// Jumlah item per section di halaman depan
const homeSectionLimit = 3

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

type HomeResponse struct {
	Hero        bannerDTO.HeroResponse               `json:"hero"`
	Dokumentasi []dokumentasiDTO.DokumentasiResponse `json:"dokumentasi"`
	Potensi     []potensiDTO.PotensiResponse         `json:"potensi"`
	Umkm        []umkmDTO.UmkmResponse               `json:"umkm"`
	KepalaDesa  *perangkatDTO.PerangkatResponse      `json:"kepala_desa"`
}

// ✅ GET: agregat halaman depan — hero + dokumentasi/potensi/UMKM terbaru
// + kepala desa, satu request untuk first paint website desa.
func (ctrl *HomeController) GetHome(c *fiber.Ctx) error {
	hero, err := bannerCtrl.ProjectHero(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal ambil hero untuk home:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data halaman depan")
	}

	var dokumentasi []dokumentasiModel.DokumentasiModel
	if err := ctrl.DB.
		Order("dokumentasi_tanggal DESC, dokumentasi_id DESC").
		Limit(homeSectionLimit).
		Find(&dokumentasi).Error; err != nil {
		log.Println("[ERROR] Gagal ambil dokumentasi untuk home:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data halaman depan")
	}

	var potensi []potensiModel.PotensiModel
	if err := ctrl.DB.
		Where("potensi_status = ?", constants.StatusAktif).
		Order("potensi_created_at DESC, potensi_id DESC").
		Limit(homeSectionLimit).
		Find(&potensi).Error; err != nil {
		log.Println("[ERROR] Gagal ambil potensi untuk home:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data halaman depan")
	}

	var umkm []umkmModel.UmkmModel
	if err := ctrl.DB.
		Where("umkm_status = ?", constants.StatusAktif).
		Order("umkm_created_at DESC, umkm_id DESC").
		Limit(homeSectionLimit).
		Find(&umkm).Error; err != nil {
		log.Println("[ERROR] Gagal ambil UMKM untuk home:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data halaman depan")
	}

	// Kepala desa boleh kosong (null) saat roster belum diisi
	var kepala *perangkatDTO.PerangkatResponse
	if row, err := perangkatCtrl.ProjectKepalaDesa(ctrl.DB); err == nil {
		resp := perangkatDTO.ToPerangkatResponse(row)
		kepala = &resp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Gagal ambil kepala desa untuk home:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data halaman depan")
	}

	helper.PublicCache(c, 60)
	return helper.JsonOK(c, "", HomeResponse{
		Hero:        hero,
		Dokumentasi: dokumentasiDTO.ToDokumentasiResponseList(dokumentasi),
		Potensi:     potensiDTO.ToPotensiResponseList(potensi),
		Umkm:        umkmDTO.ToUmkmResponseList(umkm),
		KepalaDesa:  kepala,
	})
}
