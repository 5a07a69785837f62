// file: internals/features/school/academics/grades/service/identity_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordKey_PeriodNilDanNolSamaKunci(t *testing.T) {
	student := uuid.New()
	subject := uuid.New()
	level := uuid.New()

	nilUUID := uuid.Nil
	k1 := NewRecordKey(student, subject, level, "2025/2026", nil)
	k2 := NewRecordKey(student, subject, level, "2025/2026", &nilUUID)

	assert.Equal(t, k1, k2, "periode nil dan uuid.Nil harus satu kunci")

	real := uuid.New()
	k3 := NewRecordKey(student, subject, level, "2025/2026", &real)
	assert.NotEqual(t, k1, k3, "periode nyata harus kunci berbeda")
}

func TestParsePeriodParam(t *testing.T) {
	for _, raw := range []string{"", "0", "  ", " 0 "} {
		p, err := ParsePeriodParam(raw)
		require.NoError(t, err, "raw=%q", raw)
		assert.Nil(t, p, "raw=%q harus jadi nil", raw)
	}

	id := uuid.New()
	p, err := ParsePeriodParam(id.String())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, *p)

	_, err = ParsePeriodParam("bukan-uuid")
	assert.Error(t, err)
}

func TestDeriveYearOfStudy(t *testing.T) {
	cases := []struct {
		tag  string
		want *int
	}{
		{"grade_10", intPtr(10)},
		{"kelas 7B", intPtr(7)},
		{"12-IPA", intPtr(12)},
		{"grade_1", intPtr(1)},
		{"tanpa angka", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := DeriveYearOfStudy(tc.tag)
		if tc.want == nil {
			assert.Nil(t, got, "tag=%q", tc.tag)
			continue
		}
		require.NotNil(t, got, "tag=%q", tc.tag)
		assert.Equal(t, *tc.want, *got, "tag=%q", tc.tag)
	}
}

func intPtr(v int) *int { return &v }
