package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "desacitamiang_backend/internals/helpers"

	"desacitamiang_backend/internals/features/profil/dto"
	"desacitamiang_backend/internals/features/profil/model"
)

var validateProfil = validator.New()

type ProfilController struct {
	DB *gorm.DB
}

func NewProfilController(db *gorm.DB) *ProfilController {
	return &ProfilController{DB: db}
}

// ✅ GET: Publik/Admin - profil desa. 404 kalau admin belum pernah mengisi.
func (ctrl *ProfilController) GetProfil(c *fiber.Ctx) error {
	var profil model.ProfilModel
	err := ctrl.DB.Order("profil_id ASC").First(&profil).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil desa belum diatur")
		}
		log.Println("[ERROR] Gagal ambil profil desa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil profil desa")
	}

	helper.PublicCache(c, 300)
	return helper.JsonOK(c, "", dto.ToProfilResponse(profil))
}

// ✅ PUT: Admin - upsert profil singleton (INSERT ... ON CONFLICT UPDATE).
func (ctrl *ProfilController) UpsertProfil(c *fiber.Ctx) error {
	var req dto.UpsertProfilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validateProfil.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	profil, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Social links tidak valid")
	}

	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profil_id"}},
		UpdateAll: true,
	}).Create(&profil).Error
	if err != nil {
		log.Println("[ERROR] Gagal simpan profil desa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan profil desa")
	}

	return helper.JsonUpdated(c, "Profil desa berhasil disimpan", dto.ToProfilResponse(profil))
}
