// file: internals/features/school/academics/assignments/service/authz.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// ErrNotAuthorized: pelanggaran scope — caller harus render 403, bukan 422.
var ErrNotAuthorized = errors.New("tidak berwenang untuk operasi ini")

// AssignmentStore adalah akses minimal ke tabel penugasan adviser.
type AssignmentStore interface {
	HasActiveAssignment(ctx context.Context, adviserID, subjectID uuid.UUID, schoolYear string) (bool, error)
}

// Jenjang yang nilainya diinput adviser; SMA/kuliah lewat aktor lain.
var adviserLevelKeys = map[string]bool{
	levelModel.LevelKeyElementary: true,
	levelModel.LevelKeyJuniorHigh: true,
}

// AuthzService menghitung scope tulis/approve per aktor.
type AuthzService struct {
	store AssignmentStore
}

func NewAuthzService(store AssignmentStore) *AuthzService {
	return &AuthzService{store: store}
}

// CanWriteGrade: adviser boleh menulis nilai hanya kalau memegang penugasan
// aktif pada (mapel, tahun ajaran) itu persis, dan jenjangnya termasuk yang
// dipegang adviser. Penugasan tahun lain tidak berlaku.
func (s *AuthzService) CanWriteGrade(ctx context.Context, actor helperAuth.Actor, subjectID uuid.UUID, levelKey, schoolYear string) error {
	if actor.IsAdminLike() {
		return nil
	}
	if actor.Role != constants.RoleAdviser {
		return ErrNotAuthorized
	}
	if !adviserLevelKeys[levelKey] {
		return ErrNotAuthorized
	}
	ok, err := s.store.HasActiveAssignment(ctx, actor.UserID, subjectID, schoolYear)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthorized
	}
	return nil
}

// CanApprove: principal hanya di jenjang yang dia pegang; admin/owner bebas.
// Chairperson read-only — tidak pernah lolos di sini.
func (s *AuthzService) CanApprove(actor helperAuth.Actor, levelID uuid.UUID) error {
	if actor.IsAdminLike() {
		return nil
	}
	if actor.Role != constants.RolePrincipal {
		return ErrNotAuthorized
	}
	if !actor.HasLevel(levelID) {
		return ErrNotAuthorized
	}
	return nil
}
