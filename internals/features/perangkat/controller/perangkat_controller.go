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
	"desacitamiang_backend/internals/features/perangkat/dto"
	"desacitamiang_backend/internals/features/perangkat/model"
	publication "desacitamiang_backend/internals/features/publication/service"
)

var validatePerangkat = validator.New()

var perangkatSpec = publication.StatusSpec{
	Table:        "perangkat_desa",
	IDColumn:     "perangkat_id",
	StatusColumn: "perangkat_status",
	Singleton:    false,
}

type PerangkatController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewPerangkatController(db *gorm.DB, blob helperOSS.BlobService) *PerangkatController {
	return &PerangkatController{DB: db, Blob: blob}
}

// ✅ GET: Publik - struktur organisasi, hanya yang aktif, urutan menaik.
func (ctrl *PerangkatController) GetAllPerangkatPublic(c *fiber.Ctx) error {
	var items []model.PerangkatModel
	err := ctrl.DB.
		Where("perangkat_status = ?", constants.StatusAktif).
		Order("perangkat_urutan ASC, perangkat_id ASC").
		Find(&items).Error
	if err != nil {
		log.Println("[ERROR] Gagal ambil perangkat desa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data perangkat desa")
	}

	helper.PublicCache(c, 300)
	return helper.JsonList(c, "", dto.ToPerangkatResponseList(items), nil)
}

// ✅ GET: Publik - kepala desa = perangkat aktif dengan urutan terkecil.
func (ctrl *PerangkatController) GetKepalaDesa(c *fiber.Ctx) error {
	kepala, err := ProjectKepalaDesa(ctrl.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kepala desa belum diatur")
		}
		log.Println("[ERROR] Gagal ambil kepala desa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data perangkat desa")
	}
	helper.PublicCache(c, 300)
	return helper.JsonOK(c, "", dto.ToPerangkatResponse(kepala))
}

// ✅ GET: Admin - semua perangkat (termasuk non-aktif), urutan menaik
func (ctrl *PerangkatController) GetAllPerangkatAdmin(c *fiber.Ctx) error {
	var items []model.PerangkatModel
	err := ctrl.DB.
		Order("perangkat_urutan ASC, perangkat_id ASC").
		Find(&items).Error
	if err != nil {
		log.Println("[ERROR] Gagal ambil data perangkat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data perangkat desa")
	}
	return helper.JsonList(c, "", dto.ToPerangkatResponseList(items), nil)
}

// ✅ POST: Admin - tambah perangkat (multipart, foto opsional). Lahir aktif.
func (ctrl *PerangkatController) CreatePerangkat(c *fiber.Ctx) error {
	var req dto.CreatePerangkatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validatePerangkat.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fh, err := helperOSS.GetImageFile(c, "image", "foto")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Foto boleh kosong; banyak perangkat belum punya pas foto digital.
	if fh == nil {
		created := model.PerangkatModel{
			PerangkatNamaLengkap: req.PerangkatNamaLengkap,
			PerangkatJabatan:     req.PerangkatJabatan,
			PerangkatUrutan:      req.PerangkatUrutan,
			PerangkatStatus:      constants.StatusAktif,
		}
		if err := ctrl.DB.Create(&created).Error; err != nil {
			log.Println("[ERROR] Gagal tambah perangkat:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal tambah data perangkat")
		}
		return helper.JsonCreated(c, "Perangkat desa berhasil ditambahkan", dto.ToPerangkatResponse(created))
	}

	var created model.PerangkatModel
	err = publication.CreateWithImage(c.UserContext(), ctrl.DB, ctrl.Blob, "perangkat", fh,
		func(tx *gorm.DB, up publication.UploadResult) error {
			created = model.PerangkatModel{
				PerangkatNamaLengkap: req.PerangkatNamaLengkap,
				PerangkatJabatan:     req.PerangkatJabatan,
				PerangkatImageURL:    up.PublicURL,
				PerangkatUrutan:      req.PerangkatUrutan,
				PerangkatStatus:      constants.StatusAktif,
			}
			return tx.Create(&created).Error
		})
	if err != nil {
		log.Println("[ERROR] Gagal tambah perangkat:", err)
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Perangkat desa berhasil ditambahkan", dto.ToPerangkatResponse(created))
}

// ✅ PATCH: Admin - toggle status aktif/non-aktif
func (ctrl *PerangkatController) TogglePerangkatStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	newStatus, err := publication.ToggleStatus(ctrl.DB, perangkatSpec, uint(id))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status perangkat diperbarui", fiber.Map{
		"perangkat_id":     id,
		"perangkat_status": newStatus,
	})
}

// ✅ DELETE: Admin - hapus perangkat + lepas fotonya (best-effort)
func (ctrl *PerangkatController) DeletePerangkat(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing model.PerangkatModel
	if err := ctrl.DB.First(&existing, "perangkat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if err := ctrl.DB.Delete(&model.PerangkatModel{}, "perangkat_id = ?", id).Error; err != nil {
		log.Println("[ERROR] Gagal hapus perangkat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus data")
	}

	if existing.PerangkatImageURL != "" {
		publication.ReleaseImages(c.UserContext(), ctrl.DB, ctrl.Blob, existing.PerangkatImageURL)
	}

	return helper.JsonDeleted(c, "Perangkat desa berhasil dihapus", fiber.Map{"perangkat_id": id})
}

// ProjectKepalaDesa: perangkat aktif dengan urutan terkecil (tie-break id
// terkecil). Mengembalikan gorm.ErrRecordNotFound bila belum ada yang aktif.
func ProjectKepalaDesa(db *gorm.DB) (model.PerangkatModel, error) {
	var kepala model.PerangkatModel
	err := db.
		Where("perangkat_status = ?", constants.StatusAktif).
		Order("perangkat_urutan ASC, perangkat_id ASC").
		First(&kepala).Error
	return kepala, err
}
