// file: internals/features/school/academics/terms/service/period_resolver.go
package service

import (
	"sort"

	"github.com/google/uuid"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	"sekolahku_backend/internals/features/school/academics/terms/model"
)

// Selectable menyaring periode yang boleh dipilih saat input nilai pada satu
// jenjang:
//   - SMA/kuliah: hanya root (semester) — sub-periode semester tidak bisa
//     langsung ditempel ke nilai di jalur input ini.
//   - SD/SMP: semua periode jenjang itu (kuarter adalah leaf, semuanya boleh).
//
// Urut berdasarkan sort_order naik. Periode nonaktif tidak ditawarkan.
func Selectable(levelKey string, levelID uuid.UUID, periods []model.GradingPeriodModel) []model.GradingPeriodModel {
	rootOnly := levelKey == levelModel.LevelKeySeniorHigh || levelKey == levelModel.LevelKeyCollege

	out := make([]model.GradingPeriodModel, 0, len(periods))
	for _, p := range periods {
		if p.GradingPeriodLevelID != levelID || !p.GradingPeriodIsActive {
			continue
		}
		if rootOnly && !p.IsRoot() {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GradingPeriodSortOrder < out[j].GradingPeriodSortOrder
	})
	return out
}

// IsValid memeriksa apakah periodID boleh dipakai untuk nilai pada jenjang
// ini. nil (tanpa periode) hanya sah kalau caller mengizinkan — input manual
// dan import CSV sama-sama mengizinkan.
func IsValid(levelKey string, levelID uuid.UUID, periodID *uuid.UUID, periods []model.GradingPeriodModel, allowNil bool) bool {
	if periodID == nil || *periodID == uuid.Nil {
		return allowNil
	}
	for _, p := range Selectable(levelKey, levelID, periods) {
		if p.GradingPeriodID == *periodID {
			return true
		}
	}
	return false
}
