// file: internals/features/school/academics/grades/service/workflow.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/grades/model"
	scaleService "sekolahku_backend/internals/features/school/academics/levels/service"
	termService "sekolahku_backend/internals/features/school/academics/terms/service"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const maxReasonLen = 1000

// GradeService memegang seluruh siklus hidup catatan nilai: upsert,
// submit, approve, return. Field status hanya boleh berubah lewat sini.
type GradeService struct {
	grades   GradeStore
	students StudentDirectory
	levels   LevelDirectory
	periods  PeriodDirectory
	authz    Authorizer

	// Kalau true, edit nilai pada record Approved mengembalikan statusnya
	// ke draft (wajib submit ulang). Default false: nilai ditimpa diam-diam
	// tanpa membuka ulang workflow (perilaku sistem lama, lihat
	// GRADE_EDIT_REQUIRES_RESUBMIT).
	requireResubmitOnApproved bool
}

func NewGradeService(
	grades GradeStore,
	students StudentDirectory,
	levels LevelDirectory,
	periods PeriodDirectory,
	authz Authorizer,
	requireResubmitOnApproved bool,
) *GradeService {
	return &GradeService{
		grades:                    grades,
		students:                  students,
		levels:                    levels,
		periods:                   periods,
		authz:                     authz,
		requireResubmitOnApproved: requireResubmitOnApproved,
	}
}

// UpsertGradeInput adalah field identitas + nilai satu operasi upsert.
type UpsertGradeInput struct {
	Student        Student
	SubjectID      uuid.UUID
	LevelID        uuid.UUID
	SchoolYear     string
	PeriodID       *uuid.UUID
	Value          float64
	YearOfStudy    *int
	IsFinalAverage bool
}

/*
=========================================================

	UPSERT

=========================================================
*/

// UpsertGrade membuat draft baru atau menimpa nilai record yang sudah ada
// dengan kunci identitas sama. Menimpa TIDAK mereset status workflow —
// hanya submit/return yang menggesernya. Mengembalikan record dan flag
// created (true = baris baru).
func (s *GradeService) UpsertGrade(ctx context.Context, in UpsertGradeInput, actor helperAuth.Actor) (*model.GradeRecordModel, bool, error) {
	levelKey, err := s.levels.KeyByID(ctx, in.LevelID)
	if err != nil {
		return nil, false, err
	}
	if err := s.authz.CanWriteGrade(ctx, actor, in.SubjectID, levelKey, in.SchoolYear); err != nil {
		return nil, false, err
	}
	return s.upsert(ctx, levelKey, in, actor)
}

// upsert adalah jalur bersama manual entry dan import — authz + levelKey
// sudah diselesaikan caller.
func (s *GradeService) upsert(ctx context.Context, levelKey string, in UpsertGradeInput, actor helperAuth.Actor) (*model.GradeRecordModel, bool, error) {
	if err := scaleService.Validate(levelKey, in.Value); err != nil {
		return nil, false, err
	}

	in.PeriodID = NormalizePeriodID(in.PeriodID)
	if in.PeriodID != nil {
		periods, err := s.periods.ListByLevel(ctx, in.LevelID)
		if err != nil {
			return nil, false, err
		}
		if !termService.IsValid(levelKey, in.LevelID, in.PeriodID, periods, true) {
			return nil, false, ErrInvalidPeriod
		}
	}

	key := NewRecordKey(in.Student.ID, in.SubjectID, in.LevelID, in.SchoolYear, in.PeriodID)

	existing, err := s.grades.FindByKey(ctx, key)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, false, err
	}
	if existing != nil {
		return s.overwrite(ctx, existing, in.Value)
	}

	rec := s.newDraft(key, in, actor)
	if err := s.grades.Create(ctx, rec); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			// Kalah race dengan upsert lain berkunci sama: constraint unik
			// store adalah otoritasnya — jalankan ulang sebagai update.
			existing, ferr := s.grades.FindByKey(ctx, key)
			if ferr != nil {
				return nil, false, ferr
			}
			return s.overwrite(ctx, existing, in.Value)
		}
		return nil, false, err
	}
	return rec, true, nil
}

func (s *GradeService) overwrite(ctx context.Context, existing *model.GradeRecordModel, value float64) (*model.GradeRecordModel, bool, error) {
	reopen := s.requireResubmitOnApproved && existing.GradeRecordStatus == model.GradeStatusApproved
	if err := s.grades.UpdateValue(ctx, existing.GradeRecordID, value, reopen); err != nil {
		return nil, false, err
	}
	existing.GradeRecordValue = value
	if reopen {
		existing.GradeRecordStatus = model.GradeStatusDraft
	}
	return existing, false, nil
}

func (s *GradeService) newDraft(key RecordKey, in UpsertGradeInput, actor helperAuth.Actor) *model.GradeRecordModel {
	yos := in.YearOfStudy
	if yos == nil {
		yos = DeriveYearOfStudy(in.Student.YearLevelTag)
	}
	var periodID *uuid.UUID
	if key.PeriodID != uuid.Nil {
		p := key.PeriodID
		periodID = &p
	}
	return &model.GradeRecordModel{
		GradeRecordStudentID:      key.StudentID,
		GradeRecordSubjectID:      key.SubjectID,
		GradeRecordLevelID:        key.LevelID,
		GradeRecordSchoolYear:     key.SchoolYear,
		GradeRecordPeriodID:       periodID,
		GradeRecordYearOfStudy:    yos,
		GradeRecordValue:          in.Value,
		GradeRecordIsFinalAverage: in.IsFinalAverage,
		GradeRecordStatus:         model.GradeStatusDraft,
		GradeRecordCreatedBy:      actor.UserID,
	}
}

/*
=========================================================

	TRANSISI

=========================================================
*/

// SubmitForValidation: draft/returned → submitted. Aktornya penulis nilai
// (adviser ber-assignment atau admin).
func (s *GradeService) SubmitForValidation(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor) (*model.GradeRecordModel, error) {
	rec, err := s.grades.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	levelKey, err := s.levels.KeyByID(ctx, rec.GradeRecordLevelID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanWriteGrade(ctx, actor, rec.GradeRecordSubjectID, levelKey, rec.GradeRecordSchoolYear); err != nil {
		return nil, err
	}
	return s.move(ctx, rec, model.GradeStatusSubmitted, approval.NewStamp(actor.UserID, nil))
}

// Approve: submitted → approved. Aktornya principal jenjang itu (atau
// admin/owner). Stamp approver ditulis seatomik dengan status.
func (s *GradeService) Approve(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor) (*model.GradeRecordModel, error) {
	rec, err := s.grades.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanApprove(actor, rec.GradeRecordLevelID); err != nil {
		return nil, err
	}
	return s.move(ctx, rec, model.GradeStatusApproved, approval.NewStamp(actor.UserID, nil))
}

// Return: submitted → returned, alasan wajib (1..1000 karakter). Alasan
// kosong gagal ValidationError TANPA menyentuh record.
func (s *GradeService) Return(ctx context.Context, recordID uuid.UUID, actor helperAuth.Actor, reason string) (*model.GradeRecordModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ReasonError{Msg: "alasan pengembalian wajib diisi"}
	}
	if len(reason) > maxReasonLen {
		return nil, &ReasonError{Msg: "alasan pengembalian maksimal 1000 karakter"}
	}

	rec, err := s.grades.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanApprove(actor, rec.GradeRecordLevelID); err != nil {
		return nil, err
	}
	return s.move(ctx, rec, model.GradeStatusReturned, approval.NewStamp(actor.UserID, &reason))
}

func (s *GradeService) move(ctx context.Context, rec *model.GradeRecordModel, to approval.Status, stamp approval.Stamp) (*model.GradeRecordModel, error) {
	from := rec.GradeRecordStatus
	if !model.GradeTransitions.CanMove(from, to) {
		return nil, ErrInvalidTransition
	}
	// Guard status asal di store menutup race antara pembacaan di atas dan
	// penulisan di sini.
	if err := s.grades.ApplyTransition(ctx, rec.GradeRecordID, from, to, stamp); err != nil {
		return nil, err
	}

	rec.GradeRecordStatus = to
	switch to {
	case model.GradeStatusSubmitted:
		rec.GradeRecordSubmittedBy = &stamp.ActorID
		rec.GradeRecordSubmittedAt = &stamp.At
	case model.GradeStatusApproved:
		rec.GradeRecordApprovedBy = &stamp.ActorID
		rec.GradeRecordApprovedAt = &stamp.At
	case model.GradeStatusReturned:
		rec.GradeRecordReturnedBy = &stamp.ActorID
		rec.GradeRecordReturnedAt = &stamp.At
		rec.GradeRecordReturnReason = stamp.Reason
	}
	return rec, nil
}
