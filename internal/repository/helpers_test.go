package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/postgres"
)

// newTestDB opens a private in-memory SQLite database with the journal
// tables. A single connection keeps every query on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), postgres.GormConfig("Silent", logger.NewNop()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Account{}, &model.Trade{}, &model.AccountStatistics{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Username: email, PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, capital float64) *model.Account {
	t.Helper()
	active := true
	a := &model.Account{UserID: userID, AccountName: "main", InitialCapital: capital, CurrentCapital: capital, Currency: "USD", IsActive: &active}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), a))
	return a
}

func seedTrade(t *testing.T, db *gorm.DB, accountID uint, asset string, pnl float64, day int) *model.Trade {
	t.Helper()
	d := time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC)
	tr := &model.Trade{
		AccountID:  accountID,
		Asset:      asset,
		EntryPrice: 100,
		EntryDate:  d,
		TradeDate:  &d,
		PnLUSD:     &pnl,
		Status:     "closed",
		Direction:  "long",
	}
	require.NoError(t, NewTradeRepository(db).Create(context.Background(), tr))
	return tr
}
