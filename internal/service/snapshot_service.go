package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"trading-journal/config"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/internal/stats"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

// SnapshotService persists one statistics row per account and refreshes the
// account's current capital.
type SnapshotService interface {
	Execute(ctx context.Context) error
	ExecuteForUser(ctx context.Context, userID uint) error
}

type snapshotService struct {
	cfg  *config.Config
	log  *logger.Logger
	repo *repository.Repository
	opts []stats.Option
	now  func() time.Time
}

func NewSnapshotService(cfg *config.Config, log *logger.Logger, repo *repository.Repository, opts []stats.Option) SnapshotService {
	return &snapshotService{
		cfg:  cfg,
		log:  log,
		repo: repo,
		opts: opts,
		now:  time.Now,
	}
}

func (s *snapshotService) Execute(ctx context.Context) error {
	accounts, err := s.repo.AccountRepo.ListActive(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list accounts", logger.ErrorField(err))
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	return s.run(ctx, accounts)
}

func (s *snapshotService) ExecuteForUser(ctx context.Context, userID uint) error {
	accounts, err := s.repo.AccountRepo.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list accounts", logger.ErrorField(err), logger.UintField("user_id", userID))
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	return s.run(ctx, accounts)
}

func (s *snapshotService) run(ctx context.Context, accounts []model.Account) error {
	if len(accounts) == 0 {
		s.log.InfoContext(ctx, "No accounts to snapshot")
		return nil
	}

	if s.cfg.Scheduler.TimeoutDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Scheduler.TimeoutDuration)
		defer cancel()
	}

	s.log.InfoContext(ctx, "Start snapshot run",
		logger.IntField("account_count", len(accounts)),
		logger.IntField("max_concurrency", s.cfg.Scheduler.MaxConcurrency),
	)

	var failed atomic.Int32
	g := new(errgroup.Group)
	g.SetLimit(max(s.cfg.Scheduler.MaxConcurrency, 1))
	for _, account := range accounts {
		if !utils.ShouldContinue(ctx, s.log) {
			break
		}
		account := account
		g.Go(func() error {
			if err := s.snapshotAccount(ctx, account); err != nil {
				failed.Add(1)
				s.log.ErrorContext(ctx, "Failed to snapshot account",
					logger.ErrorField(err),
					logger.UintField("account_id", account.ID),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d account snapshots failed", n, len(accounts))
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("snapshot run interrupted: %w", err)
	}
	s.log.InfoContext(ctx, "Snapshot run completed", logger.IntField("account_count", len(accounts)))
	return nil
}

func (s *snapshotService) snapshotAccount(ctx context.Context, account model.Account) error {
	trades, err := s.repo.TradeRepo.ListByAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to list trades: %w", err)
	}

	report := stats.Build(account.InitialCapital, model.ToStatsTrades(trades), s.opts...)
	assets, err := json.Marshal(report.Assets)
	if err != nil {
		return fmt.Errorf("failed to encode assets: %w", err)
	}

	snapshot := &model.AccountStatistics{
		AccountID:     account.ID,
		TotalTrades:   report.Summary.TotalTrades,
		WinningTrades: report.Summary.WinningTrades,
		LosingTrades:  report.Summary.LosingTrades,
		TotalProfit:   report.Summary.TotalProfit,
		TotalLoss:     report.Summary.TotalLoss,
		WinRate:       report.Summary.WinRate,
		ProfitFactor:  report.Summary.ProfitFactor,
		Expectancy:    report.Summary.Expectancy,
		MaxDrawdown:   report.Overview.MaxDrawdown,
		Assets:        assets,
		LastUpdated:   s.now(),
	}

	err = s.repo.UnitOfWork.Run(ctx, func(opts ...utils.DBOption) error {
		if err := s.repo.AccountStatisticsRepo.Upsert(ctx, snapshot, opts...); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return s.repo.AccountRepo.UpdateCurrentCapital(ctx, account.ID, report.Overview.CurrentCapital, opts...)
	})
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "Account snapshot saved",
		logger.UintField("account_id", account.ID),
		logger.IntField("total_trades", report.Summary.TotalTrades),
		logger.Float64Field("current_capital", report.Overview.CurrentCapital),
	)
	return nil
}
