// file: internals/features/school/academics/terms/controller/grading_period_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	"sekolahku_backend/internals/features/school/academics/terms/dto"
	"sekolahku_backend/internals/features/school/academics/terms/model"
	"sekolahku_backend/internals/features/school/academics/terms/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradingPeriodController struct {
	DB *gorm.DB
}

/*
=========================================================

	CREATE
	POST /a/terms

=========================================================
*/
func (h *GradingPeriodController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradingPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var created model.GradingPeriodModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// Jenjang harus ada
		var lvl levelModel.AcademicLevelModel
		if err := tx.Where("academic_level_id = ?", req.LevelID).First(&lvl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Jenjang tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek jenjang")
		}

		// === Invariant: parent harus satu jenjang ===
		if req.ParentID != nil && *req.ParentID != uuid.Nil {
			var parent model.GradingPeriodModel
			if err := tx.Where("grading_period_id = ?", *req.ParentID).First(&parent).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Periode induk tidak ditemukan")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek periode induk")
			}
			if parent.GradingPeriodLevelID != req.LevelID {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Periode induk harus satu jenjang dengan anaknya")
			}
			if !parent.IsRoot() {
				// hierarki cuma dua tingkat
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Periode induk tidak boleh punya induk lagi")
			}
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat periode")
		}
		created = m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Periode berhasil dibuat", dto.FromGradingPeriodModel(created))
}

/*
=========================================================

	UPDATE (partial)
	PUT /a/terms/:id

=========================================================
*/
func (h *GradingPeriodController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGradingPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		req.Name = &n
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var updated model.GradingPeriodModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m model.GradingPeriodModel
		if err := tx.Where("grading_period_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Periode tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil periode")
		}

		if req.ParentID != nil {
			if *req.ParentID == uuid.Nil {
				m.GradingPeriodParentID = nil
			} else {
				var parent model.GradingPeriodModel
				if err := tx.Where("grading_period_id = ?", *req.ParentID).First(&parent).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fiber.NewError(fiber.StatusNotFound, "Periode induk tidak ditemukan")
					}
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek periode induk")
				}
				if parent.GradingPeriodLevelID != m.GradingPeriodLevelID {
					return fiber.NewError(fiber.StatusUnprocessableEntity, "Periode induk harus satu jenjang dengan anaknya")
				}
				if parent.GradingPeriodID == m.GradingPeriodID {
					return fiber.NewError(fiber.StatusUnprocessableEntity, "Periode tidak boleh menjadi induk dirinya sendiri")
				}
				m.GradingPeriodParentID = req.ParentID
			}
		}
		if req.Name != nil && *req.Name != "" {
			m.GradingPeriodName = *req.Name
		}
		if req.SortOrder != nil {
			m.GradingPeriodSortOrder = *req.SortOrder
		}
		if req.IsActive != nil {
			m.GradingPeriodIsActive = *req.IsActive
		}

		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan periode")
		}
		updated = m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Periode berhasil diubah", dto.FromGradingPeriodModel(updated))
}

/*
=========================================================

	LIST (admin)
	GET /a/terms?level_id=

=========================================================
*/
func (h *GradingPeriodController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).Model(&model.GradingPeriodModel{})

	if lv := strings.TrimSpace(c.Query("level_id")); lv != "" {
		id, err := uuid.Parse(lv)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("grading_period_level_id = ?", id)
	}

	var periods []model.GradingPeriodModel
	if err := q.Order("grading_period_sort_order ASC").Find(&periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar periode")
	}
	return helper.JsonOK(c, "ok", dto.FromGradingPeriodModels(periods))
}

/*
=========================================================

	SELECTABLE (dropdown input nilai)
	GET /u/terms/selectable?level_id=&level_key=

=========================================================
*/
func (h *GradingPeriodController) Selectable(c *fiber.Ctx) error {
	levelKey := strings.TrimSpace(c.Query("level_key"))
	levelIDStr := strings.TrimSpace(c.Query("level_id"))
	if levelKey == "" || levelIDStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_key & level_id wajib diisi")
	}
	levelID, err := uuid.Parse(levelIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
	}

	var periods []model.GradingPeriodModel
	if err := h.DB.WithContext(c.Context()).
		Where("grading_period_level_id = ?", levelID).
		Find(&periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}

	out := service.Selectable(levelKey, levelID, periods)
	// "tanpa periode" selalu ditawarkan klien sebagai opsi null — bukan baris di sini
	return helper.JsonOK(c, "ok", dto.FromGradingPeriodModels(out))
}
