package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	"sekolahku_backend/internals/features/school/academics/terms/model"
)

func period(levelID uuid.UUID, name string, parent *uuid.UUID, order int) model.GradingPeriodModel {
	return model.GradingPeriodModel{
		GradingPeriodID:        uuid.New(),
		GradingPeriodName:      name,
		GradingPeriodLevelID:   levelID,
		GradingPeriodParentID:  parent,
		GradingPeriodSortOrder: order,
		GradingPeriodIsActive:  true,
	}
}

func TestSelectableRootOnlyForSeniorHighAndCollege(t *testing.T) {
	levelID := uuid.New()

	sem1 := period(levelID, "Semester 1", nil, 1)
	sem2 := period(levelID, "Semester 2", nil, 2)
	sub1 := period(levelID, "Midterm S1", &sem1.GradingPeriodID, 3)
	sub2 := period(levelID, "Finals S1", &sem1.GradingPeriodID, 4)
	all := []model.GradingPeriodModel{sub2, sem2, sub1, sem1} // sengaja acak

	for _, key := range []string{levelModel.LevelKeySeniorHigh, levelModel.LevelKeyCollege} {
		got := Selectable(key, levelID, all)
		require.Len(t, got, 2, key)
		for _, p := range got {
			assert.Nil(t, p.GradingPeriodParentID, "periode ber-parent tidak boleh lolos utk %s", key)
		}
		// urut sort_order naik
		assert.Equal(t, "Semester 1", got[0].GradingPeriodName)
		assert.Equal(t, "Semester 2", got[1].GradingPeriodName)
	}
}

func TestSelectableKeepsLeavesForElementaryAndJuniorHigh(t *testing.T) {
	levelID := uuid.New()

	q1 := period(levelID, "Quarter 1", nil, 1)
	q2 := period(levelID, "Quarter 2", &q1.GradingPeriodID, 2) // parent pun tetap ikut
	q3 := period(levelID, "Quarter 3", nil, 3)
	all := []model.GradingPeriodModel{q3, q1, q2}

	for _, key := range []string{levelModel.LevelKeyElementary, levelModel.LevelKeyJuniorHigh} {
		got := Selectable(key, levelID, all)
		require.Len(t, got, 3, key)
		assert.Equal(t, "Quarter 1", got[0].GradingPeriodName)
		assert.Equal(t, "Quarter 2", got[1].GradingPeriodName)
		assert.Equal(t, "Quarter 3", got[2].GradingPeriodName)
	}
}

func TestSelectableFiltersLevelAndActive(t *testing.T) {
	levelID := uuid.New()
	otherLevel := uuid.New()

	mine := period(levelID, "Quarter 1", nil, 1)
	foreign := period(otherLevel, "Quarter X", nil, 1)
	inactive := period(levelID, "Quarter Lama", nil, 2)
	inactive.GradingPeriodIsActive = false

	got := Selectable(levelModel.LevelKeyElementary, levelID, []model.GradingPeriodModel{foreign, inactive, mine})
	require.Len(t, got, 1)
	assert.Equal(t, mine.GradingPeriodID, got[0].GradingPeriodID)
}

func TestIsValid(t *testing.T) {
	levelID := uuid.New()
	sem1 := period(levelID, "Semester 1", nil, 1)
	sub := period(levelID, "Midterm", &sem1.GradingPeriodID, 2)
	all := []model.GradingPeriodModel{sem1, sub}

	// nil hanya sah kalau diizinkan
	assert.True(t, IsValid(levelModel.LevelKeySeniorHigh, levelID, nil, all, true))
	assert.False(t, IsValid(levelModel.LevelKeySeniorHigh, levelID, nil, all, false))

	// uuid.Nil diperlakukan sama dengan nil
	zero := uuid.Nil
	assert.True(t, IsValid(levelModel.LevelKeySeniorHigh, levelID, &zero, all, true))

	// root sah utk SMA, sub tidak
	assert.True(t, IsValid(levelModel.LevelKeySeniorHigh, levelID, &sem1.GradingPeriodID, all, true))
	assert.False(t, IsValid(levelModel.LevelKeySeniorHigh, levelID, &sub.GradingPeriodID, all, true))

	// di SD sub-periode pun sah
	assert.True(t, IsValid(levelModel.LevelKeyElementary, levelID, &sub.GradingPeriodID, all, true))

	// periode asing tidak sah
	stray := uuid.New()
	assert.False(t, IsValid(levelModel.LevelKeyElementary, levelID, &stray, all, true))
}
