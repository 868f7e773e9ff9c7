package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "desacitamiang_backend/internals/helpers"
	helperOSS "desacitamiang_backend/internals/helpers/oss"

	"desacitamiang_backend/internals/features/home/dokumentasi/dto"
	"desacitamiang_backend/internals/features/home/dokumentasi/model"
	publication "desacitamiang_backend/internals/features/publication/service"
)

var validateDokumentasi = validator.New()

type DokumentasiController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewDokumentasiController(db *gorm.DB, blob helperOSS.BlobService) *DokumentasiController {
	return &DokumentasiController{DB: db, Blob: blob}
}

// ✅ GET: semua dokumentasi, tanggal kegiatan terbaru dulu.
// Dipakai publik dan admin (tidak ada status untuk disaring).
// Query: ?kategori= & ?page= & ?per_page=
func (ctrl *DokumentasiController) GetAllDokumentasi(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DokumentasiModel{})
	if kategori := strings.TrimSpace(c.Query("kategori")); kategori != "" {
		q = q.Where("dokumentasi_kategori = ?", kategori)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung dokumentasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data dokumentasi")
	}

	var items []model.DokumentasiModel
	if err := q.Order("dokumentasi_tanggal DESC, dokumentasi_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil dokumentasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data dokumentasi")
	}

	helper.PublicCache(c, 60)
	return helper.JsonList(c, "", dto.ToDokumentasiResponseList(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ POST: Admin - tambah dokumentasi (multipart, gambar wajib + thumbnail)
func (ctrl *DokumentasiController) CreateDokumentasi(c *fiber.Ctx) error {
	var req dto.CreateDokumentasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateDokumentasi.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	tanggal, err := time.Parse("2006-01-02", req.DokumentasiTanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	fh, err := helperOSS.GetImageFile(c, "image", "foto")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto dokumentasi wajib diupload")
	}

	var created model.DokumentasiModel
	err = publication.CreateWithImageThumb(c.UserContext(), ctrl.DB, ctrl.Blob, "dokumentasi", fh, 400,
		func(tx *gorm.DB, up publication.UploadResult) error {
			created = model.DokumentasiModel{
				DokumentasiTitle:       req.DokumentasiTitle,
				DokumentasiDescription: req.DokumentasiDescription,
				DokumentasiImageURL:    up.PublicURL,
				DokumentasiThumbURL:    up.ThumbURL,
				DokumentasiTanggal:     tanggal,
				DokumentasiKategori:    req.DokumentasiKategori,
			}
			return tx.Create(&created).Error
		})
	if err != nil {
		log.Println("[ERROR] Gagal tambah dokumentasi:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Dokumentasi berhasil ditambahkan", dto.ToDokumentasiResponse(created))
}

// ✅ DELETE: Admin - hapus dokumentasi + lepas gambarnya
func (ctrl *DokumentasiController) DeleteDokumentasi(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing model.DokumentasiModel
	if err := ctrl.DB.First(&existing, "dokumentasi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if err := ctrl.DB.Delete(&model.DokumentasiModel{}, "dokumentasi_id = ?", id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus dokumentasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	publication.ReleaseImages(c.UserContext(), ctrl.DB, ctrl.Blob,
		existing.DokumentasiImageURL, existing.DokumentasiThumbURL)

	return helper.JsonDeleted(c, "Dokumentasi berhasil dihapus", fiber.Map{"dokumentasi_id": id})
}
