// file: internals/features/school/academics/grades/controller/import_controller.go
package controller

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/grades/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/*
=========================================================

	IMPORT CSV
	POST /u/grades/import  (multipart: file + konteks batch)

	Baris pertama header (dibuang). Kolom minimum per baris:
	1=identifier siswa, 2=nama (dipakai template saja), 3=nilai,
	4=catatan bebas (diabaikan engine).

=========================================================
*/
func (h *GradeController) Import(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.FormValue("subject_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
	}
	levelID, err := uuid.Parse(strings.TrimSpace(c.FormValue("level_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_id tidak valid")
	}
	schoolYear := strings.TrimSpace(c.FormValue("school_year"))
	if len(schoolYear) != 9 {
		return helper.JsonError(c, fiber.StatusBadRequest, "school_year wajib format 2025/2026")
	}
	periodID, err := service.ParsePeriodParam(c.FormValue("period_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
	}

	var defaultYOS *int
	if v := strings.TrimSpace(c.FormValue("year_of_study")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 14 {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_of_study tidak valid")
		}
		defaultYOS = &n
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file CSV wajib dilampirkan")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file tidak bisa dibuka")
	}
	defer f.Close()

	rows, err := readCSVRows(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file CSV tidak bisa dibaca")
	}

	report, err := h.Svc.Ingest(c.Context(), rows, service.IngestContext{
		SubjectID:          subjectID,
		LevelID:            levelID,
		PeriodID:           periodID,
		SchoolYear:         schoolYear,
		DefaultYearOfStudy: defaultYOS,
		IsFinalAverage:     strings.TrimSpace(c.FormValue("is_final_average")) == "true",
	}, actor)
	if err != nil {
		return mapGradeError(c, err)
	}

	return helper.JsonOK(c, "Impor selesai", report)
}

// readCSVRows membaca semua baris data (header dibuang). FieldsPerRecord=-1:
// jumlah kolom boleh tidak seragam — aturan baris minimum ada di pipeline.
func readCSVRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) <= 1 {
		return nil, nil // hanya header (atau kosong) — biar Ingest yang menolak
	}
	return all[1:], nil
}
