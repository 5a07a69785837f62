// file: internals/features/school/academics/grades/service/ingest_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) ingestCtx() IngestContext {
	return IngestContext{
		SubjectID:  h.subjectID,
		LevelID:    h.levelID,
		SchoolYear: "2025/2026",
	}
}

func TestIngest_LaporanParsialUrut(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")
	h.addStudent("S-003", "grade_8")
	h.addStudent("S-004", "grade_8")
	h.addStudent("S-005", "grade_8")

	rows := [][]string{
		{"S-001", "Andi", "88"},
		{"S-999", "Tidak Dikenal", "80"}, // siswa tidak ada
		{"S-003", "Citra", "91"},
		{"S-004", "Dewi", "150"}, // di luar skala
		{"S-005", "Eka", "76"},
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err, "error per baris tidak boleh menggagalkan batch")

	assert.Equal(t, 3, report.SuccessCount)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 2, report.Errors[0].Line, "nomor baris 1-indexed setelah header")
	assert.Equal(t, 4, report.Errors[1].Line)
	assert.Contains(t, report.Errors[0].Message, "S-999")
	assert.Len(t, h.store.byID, 3)
}

func TestIngest_BarisKosongDanPendekDibuang(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")

	rows := [][]string{
		{"", "", ""},            // kosong total: skip
		{"S-001", "Andi"},       // kurang dari 3 kolom: skip, bukan error
		{"", "Tanpa Id", "88"},  // identifier kosong: skip
		{"S-001", "Andi", "  "}, // nilai kosong: skip
		{"S-001", "Andi", "85"},
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Empty(t, report.Errors, "baris minimum yang tidak terpenuhi dibuang diam-diam")
}

func TestIngest_NilaiTakTerbaca(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")

	rows := [][]string{
		{"S-001", "Andi", "delapan puluh"},
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Line)
}

func TestIngest_KomaDesimalDiterima(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")

	rows := [][]string{
		{"S-001", "Andi", "87,5"},
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	for _, r := range h.store.byID {
		assert.Equal(t, 87.5, r.GradeRecordValue)
	}
}

func TestIngest_UpsertIdempotenDalamBatch(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")

	rows := [][]string{
		{"S-001", "Andi", "80"},
		{"S-001", "Andi", "90"}, // kunci sama: update, bukan duplikat
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	require.Len(t, h.store.byID, 1)
	for _, r := range h.store.byID {
		assert.Equal(t, 90.0, r.GradeRecordValue)
	}
}

func TestIngest_PanicBarisJadiRowError(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")
	h.addStudent("S-003", "grade_8")
	h.students.panicOn = "S-002"

	rows := [][]string{
		{"S-001", "Andi", "88"},
		{"S-002", "Budi", "85"}, // memicu panic di direktori
		{"S-003", "Citra", "91"},
	}

	report, err := h.svc.Ingest(context.Background(), rows, h.ingestCtx(), h.actor)
	require.NoError(t, err, "panic satu baris tidak boleh mematikan batch")

	assert.Equal(t, 2, report.SuccessCount)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Line)
}

func TestIngest_BatchKosong(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.svc.Ingest(context.Background(), nil, h.ingestCtx(), h.actor)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestIngest_OtorisasiGagalMenolakBatch(t *testing.T) {
	h := newHarness(t, false)
	h.addStudent("S-001", "grade_8")
	h.authz.denyWrite = true

	_, err := h.svc.Ingest(context.Background(), [][]string{{"S-001", "Andi", "80"}}, h.ingestCtx(), h.actor)
	assert.Error(t, err, "satu aktor utk seluruh batch — scope dicek sekali di depan")
}
