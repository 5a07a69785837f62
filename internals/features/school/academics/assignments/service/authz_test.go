package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type fakeAssignmentStore struct {
	// key: adviser|subject|year
	active map[string]bool
}

func (f *fakeAssignmentStore) HasActiveAssignment(_ context.Context, adviserID, subjectID uuid.UUID, schoolYear string) (bool, error) {
	return f.active[adviserID.String()+"|"+subjectID.String()+"|"+schoolYear], nil
}

func TestCanWriteGrade(t *testing.T) {
	adviser := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdviser}
	subject := uuid.New()
	store := &fakeAssignmentStore{active: map[string]bool{
		adviser.UserID.String() + "|" + subject.String() + "|2025/2026": true,
	}}
	svc := NewAuthzService(store)
	ctx := context.Background()

	// penugasan pas → boleh
	assert.NoError(t, svc.CanWriteGrade(ctx, adviser, subject, levelModel.LevelKeyJuniorHigh, "2025/2026"))

	// mapel sama tapi tahun ajaran beda → ditolak
	assert.ErrorIs(t, svc.CanWriteGrade(ctx, adviser, subject, levelModel.LevelKeyJuniorHigh, "2024/2025"), ErrNotAuthorized)

	// mapel lain → ditolak
	assert.ErrorIs(t, svc.CanWriteGrade(ctx, adviser, uuid.New(), levelModel.LevelKeyElementary, "2025/2026"), ErrNotAuthorized)

	// jenjang di luar pegangan adviser → ditolak walau penugasan ada
	assert.ErrorIs(t, svc.CanWriteGrade(ctx, adviser, subject, levelModel.LevelKeySeniorHigh, "2025/2026"), ErrNotAuthorized)
	assert.ErrorIs(t, svc.CanWriteGrade(ctx, adviser, subject, levelModel.LevelKeyCollege, "2025/2026"), ErrNotAuthorized)

	// role lain → ditolak
	chair := helperAuth.Actor{UserID: adviser.UserID, Role: constants.RoleChairperson}
	assert.ErrorIs(t, svc.CanWriteGrade(ctx, chair, subject, levelModel.LevelKeyJuniorHigh, "2025/2026"), ErrNotAuthorized)

	// admin bypass
	admin := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
	assert.NoError(t, svc.CanWriteGrade(ctx, admin, subject, levelModel.LevelKeySeniorHigh, "2025/2026"))
}

func TestCanApprove(t *testing.T) {
	level := uuid.New()
	other := uuid.New()
	svc := NewAuthzService(&fakeAssignmentStore{})

	principal := helperAuth.Actor{UserID: uuid.New(), Role: constants.RolePrincipal, LevelIDs: []uuid.UUID{level}}
	assert.NoError(t, svc.CanApprove(principal, level))
	assert.ErrorIs(t, svc.CanApprove(principal, other), ErrNotAuthorized)

	// chairperson read-only
	chair := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleChairperson, LevelIDs: []uuid.UUID{level}}
	assert.ErrorIs(t, svc.CanApprove(chair, level), ErrNotAuthorized)

	// adviser tidak boleh approve
	adviser := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleAdviser, LevelIDs: []uuid.UUID{level}}
	assert.ErrorIs(t, svc.CanApprove(adviser, level), ErrNotAuthorized)

	owner := helperAuth.Actor{UserID: uuid.New(), Role: constants.RoleOwner}
	assert.NoError(t, svc.CanApprove(owner, other))
}
