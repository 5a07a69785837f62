// file: internals/features/school/academics/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/assignments/dto"
	"sekolahku_backend/internals/features/school/academics/assignments/model"
	helper "sekolahku_backend/internals/helpers"
)

type AssignmentController struct {
	DB *gorm.DB
}

/*
=========================================================

	CREATE
	POST /a/assignments

=========================================================
*/
func (h *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdviserAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SchoolYear = strings.TrimSpace(req.SchoolYear)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var created model.AdviserAssignmentModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// === Cek duplikasi kombinasi (alive only) ===
		var cnt int64
		if err := tx.Model(&model.AdviserAssignmentModel{}).
			Where(`
                adviser_assignment_user_id = ?
                AND adviser_assignment_subject_id = ?
                AND adviser_assignment_school_year = ?
                AND adviser_assignment_deleted_at IS NULL
            `, req.UserID, req.SubjectID, req.SchoolYear).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi penugasan")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Penugasan utk adviser+mapel+tahun ini sudah ada")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Penugasan utk adviser+mapel+tahun ini sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat penugasan")
		}
		created = m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Penugasan berhasil dibuat", dto.FromAdviserAssignmentModel(created))
}

/*
=========================================================

	DEACTIVATE
	POST /a/assignments/:id/deactivate

=========================================================
*/
func (h *AssignmentController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AdviserAssignmentModel
	if err := h.DB.WithContext(c.Context()).
		Where("adviser_assignment_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&m).
		Update("adviser_assignment_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan penugasan")
	}
	m.AdviserAssignmentIsActive = false

	return helper.JsonUpdated(c, "Penugasan dinonaktifkan", dto.FromAdviserAssignmentModel(m))
}

/*
=========================================================

	LIST
	GET /a/assignments?user_id=&school_year=

=========================================================
*/
func (h *AssignmentController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).Model(&model.AdviserAssignmentModel{})

	if v := strings.TrimSpace(c.Query("user_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		q = q.Where("adviser_assignment_user_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("school_year")); v != "" {
		q = q.Where("adviser_assignment_school_year = ?", v)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penugasan")
	}

	var items []model.AdviserAssignmentModel
	if err := q.Order("adviser_assignment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", dto.FromAdviserAssignmentModels(items), &pg)
}
