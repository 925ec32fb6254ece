package service

import (
	"trading-journal/config"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
)

type Service struct {
	AuthService       AuthService
	AccountService    AccountService
	TradeService      TradeService
	StatisticsService StatisticsService
	SnapshotService   SnapshotService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) (*Service, error) {
	statsOpts, err := StatsOptions(cfg.Stats)
	if err != nil {
		return nil, err
	}

	return &Service{
		AuthService:       NewAuthService(cfg, log, repo.UserRepo),
		AccountService:    NewAccountService(log, repo, inmemoryCache),
		TradeService:      NewTradeService(log, repo, inmemoryCache),
		StatisticsService: NewStatisticsService(cfg, log, repo, inmemoryCache, statsOpts),
		SnapshotService:   NewSnapshotService(cfg, log, repo, statsOpts),
	}, nil
}
