package service

import (
	"context"
	"fmt"
	"time"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

type TradeService interface {
	// List returns the trades of accountID, or of every account the user
	// owns when accountID is nil. A non-empty status narrows the result.
	List(ctx context.Context, userID uint, accountID *uint, status string) ([]model.Trade, error)
	Create(ctx context.Context, userID uint, req dto.CreateTradeRequest) (*model.Trade, error)
	Update(ctx context.Context, userID, tradeID uint, req dto.UpdateTradeRequest) (*model.Trade, error)
	Delete(ctx context.Context, userID, tradeID uint) error
}

type tradeService struct {
	log   *logger.Logger
	repo  *repository.Repository
	cache cache.Cache
	now   func() time.Time
}

func NewTradeService(log *logger.Logger, repo *repository.Repository, inmemoryCache cache.Cache) TradeService {
	return &tradeService{
		log:   log,
		repo:  repo,
		cache: inmemoryCache,
		now:   time.Now,
	}
}

func (s *tradeService) List(ctx context.Context, userID uint, accountID *uint, status string) ([]model.Trade, error) {
	var opts []utils.DBOption
	if status != "" {
		opts = append(opts, utils.WithWhere("trades.status = ?", status))
	}
	if accountID == nil {
		return s.repo.TradeRepo.ListByUser(ctx, userID, opts...)
	}
	if err := s.checkOwner(ctx, userID, *accountID); err != nil {
		return nil, err
	}
	return s.repo.TradeRepo.ListByAccount(ctx, *accountID, opts...)
}

func (s *tradeService) Create(ctx context.Context, userID uint, req dto.CreateTradeRequest) (*model.Trade, error) {
	if err := s.checkOwner(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}

	trade := req.ToModel(s.now())
	if err := s.repo.TradeRepo.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}
	s.invalidate(trade.AccountID)

	s.log.InfoContext(ctx, "Trade created",
		logger.UintField("trade_id", trade.ID),
		logger.UintField("account_id", trade.AccountID),
		logger.StringField("asset", trade.Asset),
		logger.StringField("status", trade.Status),
	)
	return trade, nil
}

func (s *tradeService) Update(ctx context.Context, userID, tradeID uint, req dto.UpdateTradeRequest) (*model.Trade, error) {
	trade, err := s.owned(ctx, userID, tradeID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(trade)
	if err := s.repo.TradeRepo.Update(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}
	s.invalidate(trade.AccountID)

	s.log.InfoContext(ctx, "Trade updated", logger.UintField("trade_id", trade.ID))
	return trade, nil
}

func (s *tradeService) Delete(ctx context.Context, userID, tradeID uint) error {
	trade, err := s.owned(ctx, userID, tradeID)
	if err != nil {
		return err
	}
	if err := s.repo.TradeRepo.Delete(ctx, trade.ID); err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	s.invalidate(trade.AccountID)

	s.log.InfoContext(ctx, "Trade deleted", logger.UintField("trade_id", trade.ID))
	return nil
}

func (s *tradeService) checkOwner(ctx context.Context, userID, accountID uint) error {
	account, err := s.repo.AccountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("account %d: %w", accountID, ErrForbidden)
	}
	return nil
}

// owned hides missing trades behind ErrForbidden so ids cannot be probed.
func (s *tradeService) owned(ctx context.Context, userID, tradeID uint) (*model.Trade, error) {
	trade, err := s.repo.TradeRepo.GetByIDForUser(ctx, tradeID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	if trade == nil {
		return nil, fmt.Errorf("trade %d: %w", tradeID, ErrForbidden)
	}
	return trade, nil
}

func (s *tradeService) invalidate(accountID uint) {
	s.cache.Delete(common.StatisticsReportKey(accountID))
}
