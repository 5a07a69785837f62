// file: internals/features/school/academics/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	assignRepo "sekolahku_backend/internals/features/school/academics/assignments/repository"
	assignService "sekolahku_backend/internals/features/school/academics/assignments/service"
	"sekolahku_backend/internals/features/school/academics/grades/dto"
	"sekolahku_backend/internals/features/school/academics/grades/model"
	gradeRepo "sekolahku_backend/internals/features/school/academics/grades/repository"
	gradeService "sekolahku_backend/internals/features/school/academics/grades/service"
	scaleService "sekolahku_backend/internals/features/school/academics/levels/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB       *gorm.DB
	Svc      *gradeService.GradeService
	Students gradeService.StudentDirectory
}

func NewGradeController(db *gorm.DB) *GradeController {
	students := gradeRepo.NewStudentDirectoryGorm(db)
	authz := assignService.NewAuthzService(assignRepo.NewAssignmentStoreGorm(db))
	svc := gradeService.NewGradeService(
		gradeRepo.NewGradeStoreGorm(db),
		students,
		gradeRepo.NewLevelDirectoryGorm(db),
		gradeRepo.NewPeriodDirectoryGorm(db),
		authz,
		configs.GradeEditRequiresResubmit(),
	)
	return &GradeController{DB: db, Svc: svc, Students: students}
}

// mapGradeError menerjemahkan error service ke status HTTP: pelanggaran
// scope harus 403, pelanggaran validasi 422 — jangan dicampur.
func mapGradeError(c *fiber.Ctx, err error) error {
	var oor *scaleService.OutOfRangeError
	var re *gradeService.ReasonError

	switch {
	case errors.Is(err, assignService.ErrNotAuthorized):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, gradeService.ErrInvalidTransition),
		errors.Is(err, gradeService.ErrDuplicateRecord):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gradeService.ErrStudentNotFound),
		errors.Is(err, gradeService.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &oor),
		errors.As(err, &re),
		errors.Is(err, gradeService.ErrInvalidPeriod),
		errors.Is(err, gradeService.ErrEmptyBatch),
		errors.Is(err, scaleService.ErrUnknownLevel):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.FromFiberError(c, err)
	}
}

/*
=========================================================

	UPSERT (input manual)
	POST /u/grades

=========================================================
*/
func (h *GradeController) Upsert(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpsertGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Student = strings.TrimSpace(req.Student)
	req.SchoolYear = strings.TrimSpace(req.SchoolYear)

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	periodID, err := gradeService.ParsePeriodParam(req.PeriodID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "grade_record_period_id tidak valid")
	}

	student, err := h.Students.FindByIDOrNumber(c.Context(), req.Student)
	if err != nil {
		return mapGradeError(c, err)
	}

	rec, created, err := h.Svc.UpsertGrade(c.Context(), gradeService.UpsertGradeInput{
		Student:        *student,
		SubjectID:      req.SubjectID,
		LevelID:        req.LevelID,
		SchoolYear:     req.SchoolYear,
		PeriodID:       periodID,
		Value:          req.Value,
		YearOfStudy:    req.YearOfStudy,
		IsFinalAverage: req.IsFinalAverage,
	}, actor)
	if err != nil {
		return mapGradeError(c, err)
	}

	resp := dto.UpsertGradeResponse{Created: created, Record: dto.FromGradeRecordModel(*rec)}
	if created {
		return helper.JsonCreated(c, "Nilai berhasil dibuat", resp)
	}
	return helper.JsonOK(c, "Nilai berhasil diperbarui", resp)
}

/*
=========================================================

	TRANSISI WORKFLOW
	POST /u/grades/:id/submit
	POST /a/grades/:id/approve
	POST /a/grades/:id/return

=========================================================
*/
func (h *GradeController) Submit(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, err := h.Svc.SubmitForValidation(c.Context(), id, actor)
	if err != nil {
		return mapGradeError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai diajukan untuk validasi", dto.FromGradeRecordModel(*rec))
}

func (h *GradeController) Approve(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, err := h.Svc.Approve(c.Context(), id, actor)
	if err != nil {
		return mapGradeError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai disetujui", dto.FromGradeRecordModel(*rec))
}

func (h *GradeController) Return(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReturnGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	rec, err := h.Svc.Return(c.Context(), id, actor, req.Reason)
	if err != nil {
		return mapGradeError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai dikembalikan untuk revisi", dto.FromGradeRecordModel(*rec))
}

/*
=========================================================

	LIST & DETAIL
	GET /u/grades
	GET /u/grades/:id
	GET /a/grades/queue

=========================================================
*/
func (h *GradeController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).Model(&model.GradeRecordModel{})

	for param, col := range map[string]string{
		"student_id": "grade_record_student_id",
		"subject_id": "grade_record_subject_id",
		"level_id":   "grade_record_level_id",
		"period_id":  "grade_record_period_id",
	} {
		if v := strings.TrimSpace(c.Query(param)); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, param+" tidak valid")
			}
			q = q.Where(col+" = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("school_year")); v != "" {
		q = q.Where("grade_record_school_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("grade_record_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("is_final_average")); v != "" {
		q = q.Where("grade_record_is_final_average = ?", v == "true" || v == "1")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nilai")
	}

	var items []model.GradeRecordModel
	if err := q.Order("grade_record_updated_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", dto.FromGradeRecordModels(items), &pg)
}

func (h *GradeController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var rec model.GradeRecordModel
	if err := h.DB.WithContext(c.Context()).
		Where("grade_record_id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan nilai")
	}
	return helper.JsonOK(c, "ok", dto.FromGradeRecordModel(rec))
}

// Queue: antrean persetujuan (status submitted). final_average=true memberi
// antrean terpisah utk nilai rata-rata akhir — aturan transisinya sama,
// hanya antreannya yang beda. Principal otomatis dibatasi jenjangnya.
func (h *GradeController) Queue(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.WithContext(c.Context()).
		Model(&model.GradeRecordModel{}).
		Where("grade_record_status = ?", model.GradeStatusSubmitted).
		Where("grade_record_is_final_average = ?", strings.TrimSpace(c.Query("final_average")) == "true")

	if v := strings.TrimSpace(c.Query("level_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
		}
		q = q.Where("grade_record_level_id = ?", id)
	}
	if !actor.IsAdminLike() {
		if len(actor.LevelIDs) == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "tidak ada jenjang dalam scope Anda")
		}
		q = q.Where("grade_record_level_id IN ?", actor.LevelIDs)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung antrean")
	}

	var items []model.GradeRecordModel
	if err := q.Order("grade_record_submitted_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrean")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", dto.FromGradeRecordModels(items), &pg)
}
