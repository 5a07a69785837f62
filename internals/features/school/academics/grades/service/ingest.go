// file: internals/features/school/academics/grades/service/ingest.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// IngestContext adalah konteks satu batch impor: semua baris menempel ke
// mapel+jenjang+tahun (dan periode opsional) yang sama.
type IngestContext struct {
	SubjectID          uuid.UUID
	LevelID            uuid.UUID
	PeriodID           *uuid.UUID
	SchoolYear         string
	DefaultYearOfStudy *int
	IsFinalAverage     bool
}

// RowError menunjuk baris sumber yang gagal (1-indexed setelah header)
// supaya operator bisa memperbaiki baris persisnya.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// IngestReport adalah hasil agregat satu batch: jumlah sukses + daftar
// error per baris, urut sesuai input.
type IngestReport struct {
	SuccessCount int        `json:"success_count"`
	Errors       []RowError `json:"errors"`
}

// Ingest memproses baris-baris CSV (header sudah dibuang caller) secara
// berurutan. Fail-soft per baris: error satu baris dicatat lalu lanjut,
// tidak pernah membatalkan batch. Error level pipeline hanya batch kosong
// dan kegagalan otorisasi (satu aktor utk seluruh batch).
func (s *GradeService) Ingest(ctx context.Context, rows [][]string, ic IngestContext, actor helperAuth.Actor) (IngestReport, error) {
	var report IngestReport

	if len(rows) == 0 {
		return report, ErrEmptyBatch
	}

	levelKey, err := s.levels.KeyByID(ctx, ic.LevelID)
	if err != nil {
		return report, err
	}
	if err := s.authz.CanWriteGrade(ctx, actor, ic.SubjectID, levelKey, ic.SchoolYear); err != nil {
		return report, err
	}

	for i, row := range rows {
		line := i + 1

		if isBlankRow(row) {
			continue
		}
		// Baris minimum: kolom 1 = identifier siswa, kolom 3 = nilai.
		// Kurang dari itu bukan error — dibuang diam-diam.
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[2]) == "" {
			continue
		}

		if err := s.ingestRow(ctx, levelKey, row, ic, actor); err != nil {
			report.Errors = append(report.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}
		report.SuccessCount++
	}

	return report, nil
}

// ingestRow memproses satu baris. Panic apa pun di dalamnya ditangkap dan
// dilaporkan sebagai error baris — batch tidak boleh ikut mati.
func (s *GradeService) ingestRow(ctx context.Context, levelKey string, row []string, ic IngestContext, actor helperAuth.Actor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("baris gagal diproses: %v", r)
		}
	}()

	identifier := strings.TrimSpace(row[0])
	student, err := s.students.FindByIDOrNumber(ctx, identifier)
	if err != nil {
		return fmt.Errorf("siswa '%s' tidak ditemukan", identifier)
	}

	raw := strings.TrimSpace(row[2])
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("nilai '%s' tidak bisa dibaca", raw)
	}

	_, _, err = s.upsert(ctx, levelKey, UpsertGradeInput{
		Student:        *student,
		SubjectID:      ic.SubjectID,
		LevelID:        ic.LevelID,
		SchoolYear:     ic.SchoolYear,
		PeriodID:       ic.PeriodID,
		Value:          value,
		YearOfStudy:    ic.DefaultYearOfStudy,
		IsFinalAverage: ic.IsFinalAverage,
	}, actor)
	return err
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
