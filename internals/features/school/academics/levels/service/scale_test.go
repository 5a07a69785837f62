package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/academics/levels/model"
)

func TestRange(t *testing.T) {
	for _, key := range []string{model.LevelKeyElementary, model.LevelKeyJuniorHigh, model.LevelKeySeniorHigh} {
		sc, err := Range(key)
		require.NoError(t, err, key)
		assert.Equal(t, GradeScale{Min: 75, Max: 100}, sc, key)
	}

	sc, err := Range(model.LevelKeyCollege)
	require.NoError(t, err)
	assert.Equal(t, GradeScale{Min: 1.0, Max: 5.0}, sc)

	_, err = Range("kindergarten")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		value   float64
		wantOK  bool
		wantMin float64
		wantMax float64
	}{
		{"elementary batas bawah", model.LevelKeyElementary, 75, true, 0, 0},
		{"elementary batas atas", model.LevelKeyElementary, 100, true, 0, 0},
		{"elementary di bawah", model.LevelKeyElementary, 74.9, false, 75, 100},
		{"junior_high di atas", model.LevelKeyJuniorHigh, 100.5, false, 75, 100},
		{"senior_high tengah", model.LevelKeySeniorHigh, 86.25, true, 0, 0},
		{"college batas bawah", model.LevelKeyCollege, 1.0, true, 0, 0},
		{"college batas atas", model.LevelKeyCollege, 5.0, true, 0, 0},
		{"college nol", model.LevelKeyCollege, 0.9, false, 1.0, 5.0},
		{"college skala persen salah kaprah", model.LevelKeyCollege, 85, false, 1.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.level, tt.value)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			var oor *OutOfRangeError
			require.True(t, errors.As(err, &oor), "harus OutOfRangeError, dapat %v", err)
			assert.Equal(t, tt.wantMin, oor.Min)
			assert.Equal(t, tt.wantMax, oor.Max)
			assert.Equal(t, tt.value, oor.Got)
		})
	}
}

func TestValidateUnknownLevel(t *testing.T) {
	err := Validate("madrasah", 80)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
