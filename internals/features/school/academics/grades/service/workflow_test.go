// file: internals/features/school/academics/grades/service/workflow_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/grades/model"
	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	scaleService "sekolahku_backend/internals/features/school/academics/levels/service"
	termModel "sekolahku_backend/internals/features/school/academics/terms/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================================================
   FAKES in-memory
   ========================================================= */

type fakeGradeStore struct {
	byID map[uuid.UUID]*model.GradeRecordModel

	// missFirstFind menyimulasikan race: FindByKey pertama bilang kosong
	// padahal penulis lain sudah menang — Create lantas kena constraint.
	missFirstFind bool
	finds         int
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{byID: map[uuid.UUID]*model.GradeRecordModel{}}
}

func keyOf(r *model.GradeRecordModel) RecordKey {
	return NewRecordKey(r.GradeRecordStudentID, r.GradeRecordSubjectID, r.GradeRecordLevelID, r.GradeRecordSchoolYear, r.GradeRecordPeriodID)
}

func (f *fakeGradeStore) FindByKey(_ context.Context, key RecordKey) (*model.GradeRecordModel, error) {
	f.finds++
	if f.missFirstFind && f.finds == 1 {
		return nil, ErrRecordNotFound
	}
	for _, r := range f.byID {
		if keyOf(r) == key {
			return r, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (f *fakeGradeStore) FindByID(_ context.Context, id uuid.UUID) (*model.GradeRecordModel, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeGradeStore) Create(_ context.Context, rec *model.GradeRecordModel) error {
	for _, r := range f.byID {
		if keyOf(r) == keyOf(rec) {
			return ErrDuplicateRecord
		}
	}
	rec.GradeRecordID = uuid.New()
	f.byID[rec.GradeRecordID] = rec
	return nil
}

func (f *fakeGradeStore) UpdateValue(_ context.Context, id uuid.UUID, value float64, reopen bool) error {
	r, ok := f.byID[id]
	if !ok {
		return ErrRecordNotFound
	}
	r.GradeRecordValue = value
	if reopen {
		r.GradeRecordStatus = model.GradeStatusDraft
	}
	return nil
}

func (f *fakeGradeStore) ApplyTransition(_ context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error {
	r, ok := f.byID[id]
	if !ok {
		return ErrRecordNotFound
	}
	if r.GradeRecordStatus != from {
		return ErrInvalidTransition
	}
	r.GradeRecordStatus = to
	switch to {
	case model.GradeStatusSubmitted:
		r.GradeRecordSubmittedBy = &stamp.ActorID
		r.GradeRecordSubmittedAt = &stamp.At
	case model.GradeStatusApproved:
		r.GradeRecordApprovedBy = &stamp.ActorID
		r.GradeRecordApprovedAt = &stamp.At
	case model.GradeStatusReturned:
		r.GradeRecordReturnedBy = &stamp.ActorID
		r.GradeRecordReturnedAt = &stamp.At
		r.GradeRecordReturnReason = stamp.Reason
	}
	return nil
}

type fakeStudents struct {
	byIdent map[string]*Student

	// panicOn memicu panic utk identifier tertentu — menguji recover per baris
	// di pipeline impor.
	panicOn string
}

func (f *fakeStudents) FindByIDOrNumber(_ context.Context, identifier string) (*Student, error) {
	if f.panicOn != "" && strings.TrimSpace(identifier) == f.panicOn {
		panic("direktori siswa rusak")
	}
	s, ok := f.byIdent[strings.TrimSpace(identifier)]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return s, nil
}

type fakeLevels struct {
	keys map[uuid.UUID]string
}

func (f *fakeLevels) KeyByID(_ context.Context, levelID uuid.UUID) (string, error) {
	k, ok := f.keys[levelID]
	if !ok {
		return "", scaleService.ErrUnknownLevel
	}
	return k, nil
}

type fakePeriods struct {
	items []termModel.GradingPeriodModel
}

func (f *fakePeriods) ListByLevel(_ context.Context, levelID uuid.UUID) ([]termModel.GradingPeriodModel, error) {
	out := make([]termModel.GradingPeriodModel, 0, len(f.items))
	for _, p := range f.items {
		if p.GradingPeriodLevelID == levelID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAuthz struct {
	denyWrite   bool
	denyApprove bool
}

func (f *fakeAuthz) CanWriteGrade(context.Context, helperAuth.Actor, uuid.UUID, string, string) error {
	if f.denyWrite {
		return assert.AnError
	}
	return nil
}

func (f *fakeAuthz) CanApprove(helperAuth.Actor, uuid.UUID) error {
	if f.denyApprove {
		return assert.AnError
	}
	return nil
}

/* =========================================================
   HARNESS
   ========================================================= */

type harness struct {
	svc      *GradeService
	store    *fakeGradeStore
	students *fakeStudents
	levels   *fakeLevels
	periods  *fakePeriods
	authz    *fakeAuthz

	levelID   uuid.UUID
	subjectID uuid.UUID
	actor     helperAuth.Actor
}

func newHarness(t *testing.T, requireResubmit bool) *harness {
	t.Helper()

	h := &harness{
		store:     newFakeGradeStore(),
		students:  &fakeStudents{byIdent: map[string]*Student{}},
		periods:   &fakePeriods{},
		authz:     &fakeAuthz{},
		levelID:   uuid.New(),
		subjectID: uuid.New(),
		actor:     helperAuth.Actor{UserID: uuid.New(), Role: "adviser"},
	}
	h.levels = &fakeLevels{keys: map[uuid.UUID]string{h.levelID: levelModel.LevelKeyJuniorHigh}}
	h.svc = NewGradeService(h.store, h.students, h.levels, h.periods, h.authz, requireResubmit)
	return h
}

func (h *harness) addStudent(ident, tag string) Student {
	s := Student{ID: uuid.New(), Name: "Siswa " + ident, YearLevelTag: tag}
	h.students.byIdent[ident] = &s
	return s
}

func (h *harness) input(s Student, value float64) UpsertGradeInput {
	return UpsertGradeInput{
		Student:    s,
		SubjectID:  h.subjectID,
		LevelID:    h.levelID,
		SchoolYear: "2025/2026",
		Value:      value,
	}
}

/* =========================================================
   TESTS
   ========================================================= */

func TestUpsertGrade_CreateLaluUpdate(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	rec, created, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.GradeStatusDraft, rec.GradeRecordStatus)
	require.NotNil(t, rec.GradeRecordYearOfStudy)
	assert.Equal(t, 8, *rec.GradeRecordYearOfStudy, "tahun belajar diturunkan dari tag siswa")

	// Kunci sama, periode kali ini dikirim sebagai uuid.Nil — harus tetap
	// record yang sama, bukan duplikat.
	in := h.input(s, 92)
	nilID := uuid.Nil
	in.PeriodID = &nilID

	rec2, created2, err := h.svc.UpsertGrade(context.Background(), in, h.actor)
	require.NoError(t, err)
	assert.False(t, created2)
	assert.Equal(t, rec.GradeRecordID, rec2.GradeRecordID)
	assert.Equal(t, 92.0, rec2.GradeRecordValue)
	assert.Len(t, h.store.byID, 1)
}

func TestUpsertGrade_TidakMeresetStatus(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	rec, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)
	rec.GradeRecordStatus = model.GradeStatusApproved

	rec2, created, err := h.svc.UpsertGrade(context.Background(), h.input(s, 95), h.actor)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.GradeStatusApproved, rec2.GradeRecordStatus, "timpa nilai tidak membuka ulang workflow")
	assert.Equal(t, 95.0, rec2.GradeRecordValue)
}

func TestUpsertGrade_ResubmitWajibSaatFlagAktif(t *testing.T) {
	h := newHarness(t, true)
	s := h.addStudent("S-001", "grade_8")

	rec, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)
	rec.GradeRecordStatus = model.GradeStatusApproved

	rec2, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 95), h.actor)
	require.NoError(t, err)
	assert.Equal(t, model.GradeStatusDraft, rec2.GradeRecordStatus, "edit record approved wajib submit ulang")
}

func TestUpsertGrade_RaceConstraintJadiUpdate(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	// Penulis lain sudah menang duluan; FindByKey pertama kami masih kosong.
	winner := &model.GradeRecordModel{
		GradeRecordID:         uuid.New(),
		GradeRecordStudentID:  s.ID,
		GradeRecordSubjectID:  h.subjectID,
		GradeRecordLevelID:    h.levelID,
		GradeRecordSchoolYear: "2025/2026",
		GradeRecordValue:      77,
		GradeRecordStatus:     model.GradeStatusDraft,
	}
	h.store.byID[winner.GradeRecordID] = winner
	h.store.missFirstFind = true

	rec, created, err := h.svc.UpsertGrade(context.Background(), h.input(s, 90), h.actor)
	require.NoError(t, err)
	assert.False(t, created, "kalah race harus jadi update, bukan error")
	assert.Equal(t, winner.GradeRecordID, rec.GradeRecordID)
	assert.Equal(t, 90.0, rec.GradeRecordValue)
	assert.Len(t, h.store.byID, 1)
}

func TestUpsertGrade_NilaiDiLuarSkala(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	_, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 150), h.actor)
	var oor *scaleService.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 75.0, oor.Min)
	assert.Equal(t, 100.0, oor.Max)
	assert.Empty(t, h.store.byID, "validasi gagal tidak boleh menulis apa pun")
}

func TestUpsertGrade_PeriodeAsingDitolak(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	foreign := uuid.New()
	in := h.input(s, 80)
	in.PeriodID = &foreign

	_, _, err := h.svc.UpsertGrade(context.Background(), in, h.actor)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSubmitForValidation(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")

	rec, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)

	rec, err = h.svc.SubmitForValidation(context.Background(), rec.GradeRecordID, h.actor)
	require.NoError(t, err)
	assert.Equal(t, model.GradeStatusSubmitted, rec.GradeRecordStatus)
	require.NotNil(t, rec.GradeRecordSubmittedBy)
	assert.Equal(t, h.actor.UserID, *rec.GradeRecordSubmittedBy)

	// Returned boleh submit ulang.
	rec.GradeRecordStatus = model.GradeStatusReturned
	rec, err = h.svc.SubmitForValidation(context.Background(), rec.GradeRecordID, h.actor)
	require.NoError(t, err)
	assert.Equal(t, model.GradeStatusSubmitted, rec.GradeRecordStatus)

	// Approved terminal.
	rec.GradeRecordStatus = model.GradeStatusApproved
	_, err = h.svc.SubmitForValidation(context.Background(), rec.GradeRecordID, h.actor)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApprove_DuaKali(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")
	principal := helperAuth.Actor{UserID: uuid.New(), Role: "principal", LevelIDs: []uuid.UUID{h.levelID}}

	rec, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)
	_, err = h.svc.SubmitForValidation(context.Background(), rec.GradeRecordID, h.actor)
	require.NoError(t, err)

	rec, err = h.svc.Approve(context.Background(), rec.GradeRecordID, principal)
	require.NoError(t, err)
	assert.Equal(t, model.GradeStatusApproved, rec.GradeRecordStatus)
	require.NotNil(t, rec.GradeRecordApprovedBy)
	firstBy := *rec.GradeRecordApprovedBy
	firstAt := *rec.GradeRecordApprovedAt

	_, err = h.svc.Approve(context.Background(), rec.GradeRecordID, principal)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored := h.store.byID[rec.GradeRecordID]
	assert.Equal(t, firstBy, *stored.GradeRecordApprovedBy, "stamp approve pertama tidak boleh berubah")
	assert.Equal(t, firstAt, *stored.GradeRecordApprovedAt)
}

func TestReturn(t *testing.T) {
	h := newHarness(t, false)
	s := h.addStudent("S-001", "grade_8")
	principal := helperAuth.Actor{UserID: uuid.New(), Role: "principal", LevelIDs: []uuid.UUID{h.levelID}}

	rec, _, err := h.svc.UpsertGrade(context.Background(), h.input(s, 80), h.actor)
	require.NoError(t, err)
	_, err = h.svc.SubmitForValidation(context.Background(), rec.GradeRecordID, h.actor)
	require.NoError(t, err)

	// Alasan kosong: ValidationError, record tidak tersentuh.
	_, err = h.svc.Return(context.Background(), rec.GradeRecordID, principal, "   ")
	var re *ReasonError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, model.GradeStatusSubmitted, h.store.byID[rec.GradeRecordID].GradeRecordStatus)

	// Alasan kepanjangan juga ditolak.
	_, err = h.svc.Return(context.Background(), rec.GradeRecordID, principal, strings.Repeat("x", 1001))
	require.ErrorAs(t, err, &re)

	rec, err = h.svc.Return(context.Background(), rec.GradeRecordID, principal, "perlu revisi nilai UTS")
	require.NoError(t, err)
	assert.Equal(t, model.GradeStatusReturned, rec.GradeRecordStatus)
	require.NotNil(t, rec.GradeRecordReturnReason)
	assert.Equal(t, "perlu revisi nilai UTS", *rec.GradeRecordReturnReason)
	require.NotNil(t, rec.GradeRecordReturnedBy)
	assert.Equal(t, principal.UserID, *rec.GradeRecordReturnedBy)
}
