package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"trading-journal/internal/model"
)

func TestAccountStatisticsUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountStatisticsRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "u@x.io")
	acc := seedAccount(t, db, user.ID, 1000)

	got, err := repo.GetByAccountID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := &model.AccountStatistics{
		AccountID: acc.ID, TotalTrades: 2, WinRate: 50, ProfitFactor: "2.00", Expectancy: "5.00",
		Assets: datatypes.JSON(`[{"asset":"BTC"}]`), LastUpdated: time.Now(),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &model.AccountStatistics{
		AccountID: acc.ID, TotalTrades: 3, WinRate: 67, ProfitFactor: "3.00", Expectancy: "6.00",
		Assets: datatypes.JSON(`[]`), LastUpdated: time.Now(),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.AccountStatistics{}).Where("account_id = ?", acc.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err = repo.GetByAccountID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TotalTrades)
	assert.Equal(t, "3.00", got.ProfitFactor)
	assert.JSONEq(t, `[]`, string(got.Assets))

	require.NoError(t, repo.DeleteByAccount(ctx, acc.ID))
	got, err = repo.GetByAccountID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
