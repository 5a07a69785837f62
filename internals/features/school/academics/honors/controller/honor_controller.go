// file: internals/features/school/academics/honors/controller/honor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignRepo "sekolahku_backend/internals/features/school/academics/assignments/repository"
	assignService "sekolahku_backend/internals/features/school/academics/assignments/service"
	"sekolahku_backend/internals/features/school/academics/honors/dto"
	"sekolahku_backend/internals/features/school/academics/honors/model"
	honorRepo "sekolahku_backend/internals/features/school/academics/honors/repository"
	honorService "sekolahku_backend/internals/features/school/academics/honors/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type HonorController struct {
	DB  *gorm.DB
	Svc *honorService.HonorService
}

func NewHonorController(db *gorm.DB) *HonorController {
	authz := assignService.NewAuthzService(assignRepo.NewAssignmentStoreGorm(db))
	return &HonorController{
		DB:  db,
		Svc: honorService.NewHonorService(honorRepo.NewHonorStoreGorm(db), authz),
	}
}

func mapHonorError(c *fiber.Ctx, err error) error {
	var re *honorService.ReasonError
	switch {
	case errors.Is(err, assignService.ErrNotAuthorized):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, honorService.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, honorService.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &re):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.FromFiberError(c, err)
	}
}

func (h *HonorController) parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

// POST /a/honors/:id/approve
func (h *HonorController) Approve(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	rec, err := h.Svc.Approve(c.Context(), id, actor)
	if err != nil {
		return mapHonorError(c, err)
	}
	return helper.JsonUpdated(c, "Predikat disetujui", dto.FromHonorRecordModel(*rec))
}

// POST /a/honors/:id/reject
func (h *HonorController) Reject(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	var req dto.HonorReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	rec, err := h.Svc.Reject(c.Context(), id, actor, req.Reason)
	if err != nil {
		return mapHonorError(c, err)
	}
	return helper.JsonUpdated(c, "Predikat ditolak", dto.FromHonorRecordModel(*rec))
}

// POST /a/honors/:id/override
func (h *HonorController) Override(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	var req dto.HonorReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	rec, err := h.Svc.Override(c.Context(), id, actor, req.Reason)
	if err != nil {
		return mapHonorError(c, err)
	}
	return helper.JsonUpdated(c, "Predikat dikoreksi manual", dto.FromHonorRecordModel(*rec))
}

// GET /a/honors?status=&level_id=&school_year= — antrean review principal.
func (h *HonorController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.WithContext(c.Context()).Model(&model.HonorRecordModel{})

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("honor_record_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("school_year")); v != "" {
		q = q.Where("honor_record_school_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("level_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("honor_record_level_id = ?", id)
	}
	if !actor.IsAdminLike() {
		if len(actor.LevelIDs) == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "tidak ada jenjang dalam scope Anda")
		}
		q = q.Where("honor_record_level_id IN ?", actor.LevelIDs)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung predikat")
	}

	var items []model.HonorRecordModel
	if err := q.Order("honor_record_created_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil predikat")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", dto.FromHonorRecordModels(items), &pg)
}
