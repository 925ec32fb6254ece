package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/postgres"
)

type testEnv struct {
	cfg   *config.Config
	db    *gorm.DB
	repo  *repository.Repository
	cache cache.Cache
	svc   *Service
}

func testConfig() *config.Config {
	return &config.Config{
		Auth:      config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, BcryptCost: 4},
		Cache:     config.Cache{StatisticsTTL: time.Minute},
		Scheduler: config.Scheduler{MaxConcurrency: 2, TimeoutDuration: 10 * time.Second},
		Stats:     config.Stats{TimeZone: "UTC", MissingDatePolicy: "keep_position"},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), postgres.GormConfig("Silent", logger.NewNop()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Account{}, &model.Trade{}, &model.AccountStatistics{}))

	cfg := testConfig()
	repo := repository.NewRepository(db)
	c := cache.NewCache(time.Minute, time.Minute)
	svc, err := NewService(cfg, logger.NewNop(), repo, c)
	require.NoError(t, err)

	return &testEnv{cfg: cfg, db: db, repo: repo, cache: c, svc: svc}
}

func (e *testEnv) register(t *testing.T, email string) uint {
	t.Helper()
	resp, err := e.svc.AuthService.Register(context.Background(), dto.RegisterRequest{
		Email: email, Username: email, Password: "password1",
	})
	require.NoError(t, err)
	return resp.User.ID
}

func (e *testEnv) account(t *testing.T, userID uint, capital float64) *model.Account {
	t.Helper()
	acc, err := e.svc.AccountService.Create(context.Background(), userID, dto.CreateAccountRequest{
		AccountName: "main", InitialCapital: dto.Float(capital),
	})
	require.NoError(t, err)
	return acc
}

func (e *testEnv) trade(t *testing.T, userID, accountID uint, asset, status string, pnl float64, day int) *model.Trade {
	t.Helper()
	d := time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC)
	tr, err := e.svc.TradeService.Create(context.Background(), userID, dto.CreateTradeRequest{
		AccountID:  accountID,
		Asset:      asset,
		EntryPrice: dto.Float(100),
		PnLUSD:     dto.Float(pnl),
		Status:     status,
		TradeDate:  dto.NullableTime{Time: d, Valid: true, Set: true},
	})
	require.NoError(t, err)
	return tr
}
