// file: internals/features/school/academics/levels/service/scale.go
package service

import (
	"errors"
	"fmt"

	"sekolahku_backend/internals/features/school/academics/levels/model"
)

// GradeScale adalah rentang nilai sah satu jenjang (inklusif dua sisi).
type GradeScale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SD/SMP/SMA pakai skala persen 75..100; kuliah pakai skala 1.0..5.0
// (terbalik: angka kecil = lebih baik — rentangnya tetap yang divalidasi).
var scaleByLevelKey = map[string]GradeScale{
	model.LevelKeyElementary: {Min: 75, Max: 100},
	model.LevelKeyJuniorHigh: {Min: 75, Max: 100},
	model.LevelKeySeniorHigh: {Min: 75, Max: 100},
	model.LevelKeyCollege:    {Min: 1.0, Max: 5.0},
}

var ErrUnknownLevel = errors.New("jenjang tidak dikenal")

// OutOfRangeError dikembalikan kalau nilai di luar skala jenjang.
type OutOfRangeError struct {
	Min float64
	Max float64
	Got float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("nilai %g di luar rentang %g..%g", e.Got, e.Min, e.Max)
}

// Range mengembalikan skala nilai untuk satu jenjang.
func Range(levelKey string) (GradeScale, error) {
	sc, ok := scaleByLevelKey[levelKey]
	if !ok {
		return GradeScale{}, ErrUnknownLevel
	}
	return sc, nil
}

// Validate memeriksa nilai terhadap skala jenjang. Nil kalau sah.
func Validate(levelKey string, value float64) error {
	sc, err := Range(levelKey)
	if err != nil {
		return err
	}
	if value < sc.Min || value > sc.Max {
		return &OutOfRangeError{Min: sc.Min, Max: sc.Max, Got: value}
	}
	return nil
}
