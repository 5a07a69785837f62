// file: internals/features/school/academics/grades/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/grades/model"
	termModel "sekolahku_backend/internals/features/school/academics/terms/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// Student adalah irisan profil siswa yang dibutuhkan alur nilai.
type Student struct {
	ID           uuid.UUID
	Name         string
	YearLevelTag string // mis. "grade_10" — sumber derivasi tahun belajar
}

// StudentDirectory me-resolve identifier (uuid ATAU nomor induk) ke siswa,
// terbatas role student. ErrStudentNotFound kalau tidak ketemu.
type StudentDirectory interface {
	FindByIDOrNumber(ctx context.Context, identifier string) (*Student, error)
}

// GradeStore adalah persistence minimal yang dibutuhkan workflow nilai.
// Constraint unik pada kunci identitas ada di store; Create wajib
// menerjemahkan pelanggarannya jadi ErrDuplicateRecord supaya caller bisa
// retry-as-update.
type GradeStore interface {
	FindByKey(ctx context.Context, key RecordKey) (*model.GradeRecordModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.GradeRecordModel, error)
	Create(ctx context.Context, rec *model.GradeRecordModel) error

	// UpdateValue menimpa nilai tanpa menyentuh status; reopen=true
	// sekaligus mengembalikan status ke draft (satu transaksi).
	UpdateValue(ctx context.Context, id uuid.UUID, value float64, reopen bool) error

	// ApplyTransition menulis status baru + stamp audit seatomik, dengan
	// guard status asal. ErrInvalidTransition kalau status sudah bergeser,
	// ErrRecordNotFound kalau record tidak ada.
	ApplyTransition(ctx context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error
}

// LevelDirectory menerjemahkan id jenjang ke key-nya (elementary, dst).
type LevelDirectory interface {
	KeyByID(ctx context.Context, levelID uuid.UUID) (string, error)
}

// PeriodDirectory membaca periode milik satu jenjang (reference data).
type PeriodDirectory interface {
	ListByLevel(ctx context.Context, levelID uuid.UUID) ([]termModel.GradingPeriodModel, error)
}

// Authorizer adalah scope guard; dipenuhi assignments/service.AuthzService.
type Authorizer interface {
	CanWriteGrade(ctx context.Context, actor helperAuth.Actor, subjectID uuid.UUID, levelKey, schoolYear string) error
	CanApprove(actor helperAuth.Actor, levelID uuid.UUID) error
}
