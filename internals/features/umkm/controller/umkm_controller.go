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
	"desacitamiang_backend/internals/features/umkm/dto"
	"desacitamiang_backend/internals/features/umkm/model"
	publication "desacitamiang_backend/internals/features/publication/service"
)

var validateUmkm = validator.New()

var umkmSpec = publication.StatusSpec{
	Table:        "umkm",
	IDColumn:     "umkm_id",
	StatusColumn: "umkm_status",
	Singleton:    false,
}

var umkmSlugOpts = helper.SlugOptions{
	Table:       "umkm",
	SlugColumn:  "umkm_slug",
	DefaultBase: "umkm",
}

type UmkmController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewUmkmController(db *gorm.DB, blob helperOSS.BlobService) *UmkmController {
	return &UmkmController{DB: db, Blob: blob}
}

// ✅ GET: Publik - hanya UMKM aktif, terbaru dulu. Query: ?kategori=
func (ctrl *UmkmController) GetAllUmkmPublic(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UmkmModel{}).
		Where("umkm_status = ?", constants.StatusAktif)
	if kategori := strings.TrimSpace(c.Query("kategori")); kategori != "" {
		q = q.Where("umkm_kategori = ?", kategori)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung UMKM:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data UMKM")
	}

	var items []model.UmkmModel
	if err := q.Order("umkm_created_at DESC, umkm_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil UMKM:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data UMKM")
	}

	helper.PublicCache(c, 60)
	return helper.JsonList(c, "", dto.ToUmkmResponseList(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET: Publik - detail UMKM aktif via slug.
func (ctrl *UmkmController) GetUmkmBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak valid")
	}

	var item model.UmkmModel
	err := ctrl.DB.
		Where("umkm_slug = ? AND umkm_status = ?", slug, constants.StatusAktif).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "UMKM tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil detail UMKM:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data UMKM")
	}

	helper.PublicCache(c, 60)
	return helper.JsonOK(c, "", dto.ToUmkmResponse(item))
}

// ✅ GET: Admin - semua UMKM (termasuk non-aktif), terbaru dulu
func (ctrl *UmkmController) GetAllUmkmAdmin(c *fiber.Ctx) error {
	var items []model.UmkmModel
	if err := ctrl.DB.Order("umkm_created_at DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data UMKM:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data UMKM")
	}
	return helper.JsonList(c, "", dto.ToUmkmResponseList(items), nil)
}

// ✅ POST: Admin - tambah UMKM (multipart, gambar wajib). Lahir aktif.
func (ctrl *UmkmController) CreateUmkm(c *fiber.Ctx) error {
	var req dto.CreateUmkmRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateUmkm.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fh, err := helperOSS.GetImageFile(c, "image", "foto")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto UMKM wajib diupload")
	}

	var created model.UmkmModel
	err = publication.CreateWithImage(c.UserContext(), ctrl.DB, ctrl.Blob, "umkm", fh,
		func(tx *gorm.DB, up publication.UploadResult) error {
			slug, serr := helper.GenerateUniqueSlug(tx, umkmSlugOpts, req.UmkmNama)
			if serr != nil {
				return serr
			}
			created = model.UmkmModel{
				UmkmNama:      req.UmkmNama,
				UmkmSlug:      slug,
				UmkmPemilik:   req.UmkmPemilik,
				UmkmKontak:    req.UmkmKontak,
				UmkmDeskripsi: req.UmkmDeskripsi,
				UmkmImageURL:  up.PublicURL,
				UmkmKategori:  req.UmkmKategori,
				UmkmStatus:    constants.StatusAktif,
			}
			return tx.Create(&created).Error
		})
	if err != nil {
		log.Println("[ERROR] Gagal tambah UMKM:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "UMKM berhasil ditambahkan", dto.ToUmkmResponse(created))
}

// ✅ PATCH: Admin - toggle status aktif/non-aktif
func (ctrl *UmkmController) ToggleUmkmStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	newStatus, err := publication.ToggleStatus(ctrl.DB, umkmSpec, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status UMKM diperbarui", fiber.Map{
		"umkm_id":     id,
		"umkm_status": newStatus,
	})
}

// ✅ DELETE: Admin - hapus UMKM + lepas gambarnya (best-effort)
func (ctrl *UmkmController) DeleteUmkm(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing model.UmkmModel
	if err := ctrl.DB.First(&existing, "umkm_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if err := ctrl.DB.Delete(&model.UmkmModel{}, "umkm_id = ?", id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus UMKM:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	publication.ReleaseImages(c.UserContext(), ctrl.DB, ctrl.Blob, existing.UmkmImageURL)

	return helper.JsonDeleted(c, "UMKM berhasil dihapus", fiber.Map{"umkm_id": id})
}
