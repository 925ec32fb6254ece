package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotServiceExecute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@x.io")
	bob := env.register(t, "bob@x.io")
	a1 := env.account(t, alice, 1000)
	a2 := env.account(t, alice, 200)
	b1 := env.account(t, bob, 300)

	env.trade(t, alice, a1.ID, "BTC", "closed", 150, 1)
	env.trade(t, alice, a1.ID, "BTC", "closed", -300, 2)
	env.trade(t, alice, a2.ID, "ETH", "open", 12.5, 1)
	env.trade(t, bob, b1.ID, "SOL", "closed", -50, 1)

	require.NoError(t, env.svc.SnapshotService.Execute(ctx))

	accounts, err := env.repo.AccountRepo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 850.0, accounts[0].CurrentCapital)
	// open trades still move current capital
	assert.Equal(t, 212.5, accounts[1].CurrentCapital)

	snap, err := env.repo.AccountStatisticsRepo.GetByAccountID(ctx, a1.ID)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 2, snap.TotalTrades)
	assert.Equal(t, 1, snap.WinningTrades)
	assert.Equal(t, 1, snap.LosingTrades)
	assert.Equal(t, 150.0, snap.TotalProfit)
	assert.Equal(t, 300.0, snap.TotalLoss)
	assert.Equal(t, "0.50", snap.ProfitFactor)
	assert.Equal(t, 300.0, snap.MaxDrawdown)

	// a second run updates the same row
	require.NoError(t, env.svc.SnapshotService.Execute(ctx))
	var count int64
	require.NoError(t, env.db.Table("account_statistics").Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestSnapshotServiceNoAccounts(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.svc.SnapshotService.Execute(context.Background()))
	assert.NoError(t, env.svc.SnapshotService.ExecuteForUser(context.Background(), 99))
}
