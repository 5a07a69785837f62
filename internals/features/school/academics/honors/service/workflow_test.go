// file: internals/features/school/academics/honors/service/workflow_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/honors/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type fakeHonorStore struct {
	byID map[uuid.UUID]*model.HonorRecordModel
}

func (f *fakeHonorStore) FindByID(_ context.Context, id uuid.UUID) (*model.HonorRecordModel, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeHonorStore) ApplyTransition(_ context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error {
	r, ok := f.byID[id]
	if !ok {
		return ErrRecordNotFound
	}
	if r.HonorRecordStatus != from {
		return ErrInvalidTransition
	}
	r.HonorRecordStatus = to
	switch to {
	case model.HonorStatusApproved:
		r.HonorRecordApprovedBy = &stamp.ActorID
		r.HonorRecordApprovedAt = &stamp.At
	case model.HonorStatusRejected:
		r.HonorRecordRejectedBy = &stamp.ActorID
		r.HonorRecordRejectedAt = &stamp.At
		r.HonorRecordRejectReason = stamp.Reason
	}
	return nil
}

func (f *fakeHonorStore) ApplyOverride(_ context.Context, id uuid.UUID, stamp approval.Stamp) error {
	r, ok := f.byID[id]
	if !ok {
		return ErrRecordNotFound
	}
	r.HonorRecordIsOverridden = true
	r.HonorRecordOverriddenBy = &stamp.ActorID
	r.HonorRecordOverriddenAt = &stamp.At
	r.HonorRecordOverrideReason = stamp.Reason
	return nil
}

type allowAll struct{}

func (allowAll) CanApprove(helperAuth.Actor, uuid.UUID) error { return nil }

func newHonorHarness() (*HonorService, *fakeHonorStore, *model.HonorRecordModel, helperAuth.Actor) {
	store := &fakeHonorStore{byID: map[uuid.UUID]*model.HonorRecordModel{}}
	rec := &model.HonorRecordModel{
		HonorRecordID:         uuid.New(),
		HonorRecordStudentID:  uuid.New(),
		HonorRecordLevelID:    uuid.New(),
		HonorRecordSchoolYear: "2025/2026",
		HonorRecordGPA:        1.45,
		HonorRecordStatus:     model.HonorStatusPending,
	}
	store.byID[rec.HonorRecordID] = rec
	actor := helperAuth.Actor{UserID: uuid.New(), Role: "principal"}
	return NewHonorService(store, allowAll{}), store, rec, actor
}

func TestHonorApprove(t *testing.T) {
	svc, _, rec, actor := newHonorHarness()

	got, err := svc.Approve(context.Background(), rec.HonorRecordID, actor)
	require.NoError(t, err)
	assert.Equal(t, model.HonorStatusApproved, got.HonorRecordStatus)
	require.NotNil(t, got.HonorRecordApprovedBy)
	assert.Equal(t, actor.UserID, *got.HonorRecordApprovedBy)

	// Terminal: approve ulang maupun reject setelahnya ditolak.
	_, err = svc.Approve(context.Background(), rec.HonorRecordID, actor)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Reject(context.Background(), rec.HonorRecordID, actor, "salah hitung")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestHonorReject(t *testing.T) {
	svc, store, rec, actor := newHonorHarness()

	// Alasan kosong: ValidationError, status tidak tersentuh.
	_, err := svc.Reject(context.Background(), rec.HonorRecordID, actor, "  ")
	var re *ReasonError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, model.HonorStatusPending, store.byID[rec.HonorRecordID].HonorRecordStatus)

	got, err := svc.Reject(context.Background(), rec.HonorRecordID, actor, "GPA di bawah ambang")
	require.NoError(t, err)
	assert.Equal(t, model.HonorStatusRejected, got.HonorRecordStatus)
	require.NotNil(t, got.HonorRecordRejectReason)
	assert.Equal(t, "GPA di bawah ambang", *got.HonorRecordRejectReason)
}

func TestHonorOverride_TidakMengubahStatus(t *testing.T) {
	svc, store, rec, actor := newHonorHarness()

	_, err := svc.Approve(context.Background(), rec.HonorRecordID, actor)
	require.NoError(t, err)

	got, err := svc.Override(context.Background(), rec.HonorRecordID, actor, "koreksi manual eligibility")
	require.NoError(t, err)
	assert.True(t, got.HonorRecordIsOverridden)
	assert.Equal(t, model.HonorStatusApproved, got.HonorRecordStatus, "override tidak menggeser status persetujuan")
	require.NotNil(t, got.HonorRecordOverrideReason)

	// Override juga sah di status rejected/pending.
	rec2 := &model.HonorRecordModel{
		HonorRecordID:     uuid.New(),
		HonorRecordStatus: model.HonorStatusPending,
	}
	store.byID[rec2.HonorRecordID] = rec2
	got2, err := svc.Override(context.Background(), rec2.HonorRecordID, actor, "dikecualikan rapat dewan")
	require.NoError(t, err)
	assert.True(t, got2.HonorRecordIsOverridden)
	assert.Equal(t, model.HonorStatusPending, got2.HonorRecordStatus)

	// Tanpa alasan: ditolak tanpa mutasi.
	_, err = svc.Override(context.Background(), rec.HonorRecordID, actor, "")
	var re *ReasonError
	require.ErrorAs(t, err, &re)
}
