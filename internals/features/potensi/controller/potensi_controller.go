package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "desacitamiang_backend/internals/helpers"
	helperOSS "desacitamiang_backend/internals/helpers/oss"

	"desacitamiang_backend/internals/constants"
	"desacitamiang_backend/internals/features/potensi/dto"
	"desacitamiang_backend/internals/features/potensi/model"
	publication "desacitamiang_backend/internals/features/publication/service"
)

var validatePotensi = validator.New()

var potensiSpec = publication.StatusSpec{
	Table:        "potensi",
	IDColumn:     "potensi_id",
	StatusColumn: "potensi_status",
	Singleton:    false,
}

var potensiSlugOpts = helper.SlugOptions{
	Table:       "potensi",
	SlugColumn:  "potensi_slug",
	DefaultBase: "potensi",
}

type PotensiController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewPotensiController(db *gorm.DB, blob helperOSS.BlobService) *PotensiController {
	return &PotensiController{DB: db, Blob: blob}
}

// ✅ GET: Publik - hanya potensi aktif, terbaru dulu. Query: ?kategori=
func (ctrl *PotensiController) GetAllPotensiPublic(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PotensiModel{}).
		Where("potensi_status = ?", constants.StatusAktif)
	if kategori := strings.TrimSpace(c.Query("kategori")); kategori != "" {
		q = q.Where("potensi_kategori = ?", kategori)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung potensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data potensi")
	}

	var items []model.PotensiModel
	if err := q.Order("potensi_created_at DESC, potensi_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil potensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data potensi")
	}

	helper.PublicCache(c, 60)
	return helper.JsonList(c, "", dto.ToPotensiResponseList(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET: Publik - detail potensi aktif via slug.
func (ctrl *PotensiController) GetPotensiBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak valid")
	}

	var item model.PotensiModel
	err := ctrl.DB.
		Where("potensi_slug = ? AND potensi_status = ?", slug, constants.StatusAktif).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Potensi tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil detail potensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data potensi")
	}

	helper.PublicCache(c, 60)
	return helper.JsonOK(c, "", dto.ToPotensiResponse(item))
}

// ✅ GET: Admin - semua potensi (termasuk non-aktif), terbaru dulu
func (ctrl *PotensiController) GetAllPotensiAdmin(c *fiber.Ctx) error {
	var items []model.PotensiModel
	if err := ctrl.DB.Order("potensi_created_at DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data potensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data potensi")
	}
	return helper.JsonList(c, "", dto.ToPotensiResponseList(items), nil)
}

// ✅ POST: Admin - tambah potensi (multipart, gambar wajib). Lahir aktif.
func (ctrl *PotensiController) CreatePotensi(c *fiber.Ctx) error {
	var req dto.CreatePotensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validatePotensi.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fh, err := helperOSS.GetImageFile(c, "image", "foto")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gambar potensi wajib diupload")
	}

	var created model.PotensiModel
	err = publication.CreateWithImage(c.UserContext(), ctrl.DB, ctrl.Blob, "potensi", fh,
		func(tx *gorm.DB, up publication.UploadResult) error {
			slug, serr := helper.GenerateUniqueSlug(tx, potensiSlugOpts, req.PotensiNama)
			if serr != nil {
				return serr
			}
			created = model.PotensiModel{
				PotensiNama:      req.PotensiNama,
				PotensiSlug:      slug,
				PotensiDeskripsi: req.PotensiDeskripsi,
				PotensiImageURL:  up.PublicURL,
				PotensiKategori:  req.PotensiKategori,
				PotensiLokasi:    req.PotensiLokasi,
				PotensiStatus:    constants.StatusAktif,
			}
			return tx.Create(&created).Error
		})
	if err != nil {
		log.Println("[ERROR] Gagal tambah potensi:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Potensi berhasil ditambahkan", dto.ToPotensiResponse(created))
}

// ✅ PATCH: Admin - toggle status aktif/non-aktif
func (ctrl *PotensiController) TogglePotensiStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	newStatus, err := publication.ToggleStatus(ctrl.DB, potensiSpec, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status potensi diperbarui", fiber.Map{
		"potensi_id":     id,
		"potensi_status": newStatus,
	})
}

// ✅ DELETE: Admin - hapus potensi + lepas gambarnya (best-effort)
func (ctrl *PotensiController) DeletePotensi(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing model.PotensiModel
	if err := ctrl.DB.First(&existing, "potensi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if err := ctrl.DB.Delete(&model.PotensiModel{}, "potensi_id = ?", id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus potensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	publication.ReleaseImages(c.UserContext(), ctrl.DB, ctrl.Blob, existing.PotensiImageURL)

	return helper.JsonDeleted(c, "Potensi berhasil dihapus", fiber.Map{"potensi_id": id})
}
