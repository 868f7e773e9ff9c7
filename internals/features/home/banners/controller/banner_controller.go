package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "desacitamiang_backend/internals/helpers"
	helperOSS "desacitamiang_backend/internals/helpers/oss"

	"desacitamiang_backend/internals/constants"
	"desacitamiang_backend/internals/features/home/banners/dto"
	"desacitamiang_backend/internals/features/home/banners/model"
	publication "desacitamiang_backend/internals/features/publication/service"
)

var validateBanner = validator.New()

var bannerSpec = publication.StatusSpec{
	Table:        "banners",
	IDColumn:     "banner_id",
	StatusColumn: "banner_status",
	Singleton:    true,
}

type BannerController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewBannerController(db *gorm.DB, blob helperOSS.BlobService) *BannerController {
	return &BannerController{DB: db, Blob: blob}
}

// ✅ GET: Admin - semua banner (termasuk non-aktif), terbaru dulu
func (ctrl *BannerController) GetAllBannersAdmin(c *fiber.Ctx) error {
	var banners []model.BannerModel
	if err := ctrl.DB.Order("banner_created_at DESC").Find(&banners).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data banner:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data banner")
	}
	return helper.JsonList(c, "", dto.ToBannerResponseList(banners), nil)
}

// ✅ POST: Admin - tambah banner (multipart, gambar wajib). Lahir non-aktif.
func (ctrl *BannerController) CreateBanner(c *fiber.Ctx) error {
	var req dto.CreateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateBanner.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fh, err := helperOSS.GetImageFile(c, "image", "foto")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gambar banner wajib diupload")
	}

	var created model.BannerModel
	err = publication.CreateWithImage(c.UserContext(), ctrl.DB, ctrl.Blob, "banners", fh,
		func(tx *gorm.DB, up publication.UploadResult) error {
			created = model.BannerModel{
				BannerTitle:       req.BannerTitle,
				BannerDescription: req.BannerDescription,
				BannerImageURL:    up.PublicURL,
				BannerStatus:      constants.StatusNonAktif,
			}
			return tx.Create(&created).Error
		})
	if err != nil {
		log.Println("[ERROR] Gagal tambah banner:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Banner berhasil ditambahkan", dto.ToBannerResponse(created))
}

// ✅ PATCH: Admin - toggle status. Mengaktifkan satu banner otomatis
// menon-aktifkan banner lain (satu transaksi).
func (ctrl *BannerController) ToggleBannerStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	newStatus, err := publication.ToggleStatus(ctrl.DB, bannerSpec, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status banner diperbarui", fiber.Map{
		"banner_id":     id,
		"banner_status": newStatus,
	})
}

// ✅ DELETE: Admin - hapus banner + lepas gambarnya (best-effort)
func (ctrl *BannerController) DeleteBanner(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing model.BannerModel
	if err := ctrl.DB.First(&existing, "banner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if err := ctrl.DB.Delete(&model.BannerModel{}, "banner_id = ?", id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus banner:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	publication.ReleaseImages(c.UserContext(), ctrl.DB, ctrl.Blob, existing.BannerImageURL)

	return helper.JsonDeleted(c, "Banner berhasil dihapus", fiber.Map{"banner_id": id})
}

// ✅ GET: Publik - hero banner aktif; fallback default kalau belum ada.
func (ctrl *BannerController) GetHeroBanner(c *fiber.Ctx) error {
	hero, err := ProjectHero(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal ambil hero banner:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data banner")
	}
	helper.PublicCache(c, 60)
	return helper.JsonOK(c, "", hero)
}

// ProjectHero: proyeksi hero publik — row aktif (maksimal satu), atau
// default hardcoded kalau tidak ada. Tidak pernah error karena kosong.
func ProjectHero(db *gorm.DB) (dto.HeroResponse, error) {
	var banner model.BannerModel
	err := db.Where("banner_status = ?", constants.StatusAktif).
		Order("banner_updated_at DESC").
		First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.HeroResponse{
				BannerTitle:       constants.DefaultHeroTitle,
				BannerDescription: constants.DefaultHeroDescription,
				IsFallback:        true,
			}, nil
		}
		return dto.HeroResponse{}, err
	}
	return dto.HeroResponse{
		BannerTitle:       banner.BannerTitle,
		BannerDescription: banner.BannerDescription,
		BannerImageURL:    banner.BannerImageURL,
	}, nil
}
