package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRulesRepo_DefaultsSeeded(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRulesRepo(db)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBusinessRules(), *got)
}

func TestBusinessRulesRepo_Save(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRulesRepo(db)
	ctx := context.Background()

	notice := 6
	weekends := true
	peak := []domain.TimeWindow{{Start: 17 * 60, End: 20 * 60}}
	rules := domain.DefaultBusinessRules().Merge(domain.BusinessRulesPatch{
		MinimumNoticeHours:     &notice,
		AllowWeekendScheduling: &weekends,
		PeakHours:              &peak,
	})
	require.NoError(t, repo.Save(ctx, &rules))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, got.MinimumNoticeHours)
	assert.True(t, got.AllowWeekendScheduling)
	assert.Equal(t, 3, got.MaxReschedulingsPerClient)
	require.Len(t, got.PeakHours, 1)
	assert.Equal(t, "17:00-20:00", got.PeakHours[0].String())
}
