// file: internals/features/school/academics/grades/service/identity.go
package service

import (
	"strings"

	"github.com/google/uuid"
)

// RecordKey adalah kunci unik satu catatan nilai. PeriodID uuid.Nil berarti
// "tanpa periode" — nilai kunci tersendiri, bukan wildcard.
type RecordKey struct {
	StudentID  uuid.UUID
	SubjectID  uuid.UUID
	LevelID    uuid.UUID
	SchoolYear string
	PeriodID   uuid.UUID
}

// NormalizePeriodID meruntuhkan tiga representasi "tanpa periode" (pointer
// nil, uuid.Nil) ke satu bentuk: nil. Dipanggil di boundary sebelum kunci
// dihitung supaya resolver dan identity melihat konsep yang sama.
func NormalizePeriodID(p *uuid.UUID) *uuid.UUID {
	if p == nil || *p == uuid.Nil {
		return nil
	}
	return p
}

// ParsePeriodParam membaca parameter periode dari request/CSV context.
// "" dan "0" adalah sentinel lama untuk "tanpa periode" — keduanya jadi nil.
func ParsePeriodParam(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return NormalizePeriodID(&id), nil
}

// NewRecordKey menghitung kunci unik dari field identitas. Periode nil
// dinormalisasi ke uuid.Nil di dalam kunci.
func NewRecordKey(studentID, subjectID, levelID uuid.UUID, schoolYear string, periodID *uuid.UUID) RecordKey {
	k := RecordKey{
		StudentID:  studentID,
		SubjectID:  subjectID,
		LevelID:    levelID,
		SchoolYear: strings.TrimSpace(schoolYear),
		PeriodID:   uuid.Nil,
	}
	if p := NormalizePeriodID(periodID); p != nil {
		k.PeriodID = *p
	}
	return k
}

// DeriveYearOfStudy mengambil run digit pertama dari tag tingkat siswa,
// misal "grade_10" → 10, "kelas 7B" → 7. Nil kalau tidak ada digit.
func DeriveYearOfStudy(tag string) *int {
	start := -1
	n := 0
	for i, r := range tag {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
			n = n*10 + int(r-'0')
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return nil
	}
	return &n
}
