// file: internals/features/school/academics/assignments/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/assignments/dto"
	"sekolahku_backend/internals/features/school/academics/assignments/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

// POST /a/subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}

	return helper.JsonCreated(c, "Mapel berhasil dibuat", m)
}

// GET /u/subjects?department=&q=
func (h *SubjectController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Where("subject_is_active = ?", true)

	// chairperson membaca dibatasi departemennya oleh filter ini
	if v := strings.TrimSpace(c.Query("department")); v != "" {
		q = q.Where("subject_department = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("subject_name ILIKE ?", "%"+v+"%")
	}

	var subjects []model.SubjectModel
	if err := q.Order("subject_code ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar mapel")
	}
	return helper.JsonOK(c, "ok", subjects)
}
