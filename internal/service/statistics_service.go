package service

import (
	"context"
	"fmt"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/internal/stats"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
)

type StatisticsService interface {
	AccountReport(ctx context.Context, userID, accountID uint) (*stats.Report, error)
	Snapshot(ctx context.Context, userID, accountID uint) (*model.AccountStatistics, error)
	Preview(ctx context.Context, req dto.PreviewRequest) stats.Report
}

type statisticsService struct {
	cfg   *config.Config
	log   *logger.Logger
	repo  *repository.Repository
	cache cache.Cache
	opts  []stats.Option
}

func NewStatisticsService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	opts []stats.Option,
) StatisticsService {
	return &statisticsService{
		cfg:   cfg,
		log:   log,
		repo:  repo,
		cache: inmemoryCache,
		opts:  opts,
	}
}

// StatsOptions turns the stats config section into engine options.
func StatsOptions(cfg config.Stats) ([]stats.Option, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	policy, err := stats.ParseMissingDatePolicy(cfg.MissingDatePolicy)
	if err != nil {
		return nil, err
	}
	return []stats.Option{stats.WithLocation(loc), stats.WithMissingDatePolicy(policy)}, nil
}

// AccountReport serves the report from cache until a trade or account
// mutation evicts it.
func (s *statisticsService) AccountReport(ctx context.Context, userID, accountID uint) (*stats.Report, error) {
	account, err := s.repo.AccountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %d: %w", accountID, ErrForbidden)
	}

	key := common.StatisticsReportKey(accountID)
	if report, ok := cache.GetTyped[*stats.Report](s.cache, key); ok {
		s.log.DebugContext(ctx, "Statistics served from cache", logger.UintField("account_id", accountID))
		return report, nil
	}

	trades, err := s.repo.TradeRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	report := stats.Build(account.InitialCapital, model.ToStatsTrades(trades), s.opts...)
	s.cache.Set(key, &report, s.cfg.Cache.StatisticsTTL)

	s.log.DebugContext(ctx, "Statistics computed",
		logger.UintField("account_id", accountID),
		logger.IntField("trades", len(trades)),
	)
	return &report, nil
}

func (s *statisticsService) Snapshot(ctx context.Context, userID, accountID uint) (*model.AccountStatistics, error) {
	account, err := s.repo.AccountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %d: %w", accountID, ErrForbidden)
	}

	snapshot, err := s.repo.AccountStatisticsRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot for account %d: %w", accountID, ErrNotFound)
	}
	return snapshot, nil
}

func (s *statisticsService) Preview(ctx context.Context, req dto.PreviewRequest) stats.Report {
	return stats.Build(req.InitialCapital.Value, req.StatsTrades(), s.opts...)
}
