package service

import (
	"context"
	"fmt"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

type AccountService interface {
	List(ctx context.Context, userID uint) ([]model.Account, error)
	Get(ctx context.Context, userID, accountID uint) (*model.Account, error)
	Create(ctx context.Context, userID uint, req dto.CreateAccountRequest) (*model.Account, error)
	Delete(ctx context.Context, userID, accountID uint) error
}

type accountService struct {
	log   *logger.Logger
	repo  *repository.Repository
	cache cache.Cache
}

func NewAccountService(log *logger.Logger, repo *repository.Repository, inmemoryCache cache.Cache) AccountService {
	return &accountService{
		log:   log,
		repo:  repo,
		cache: inmemoryCache,
	}
}

func (s *accountService) List(ctx context.Context, userID uint) ([]model.Account, error) {
	return s.repo.AccountRepo.ListByUser(ctx, userID, utils.WithPreload("Statistics"))
}

func (s *accountService) Get(ctx context.Context, userID, accountID uint) (*model.Account, error) {
	account, err := s.repo.AccountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %d: %w", accountID, ErrNotFound)
	}
	return account, nil
}

func (s *accountService) Create(ctx context.Context, userID uint, req dto.CreateAccountRequest) (*model.Account, error) {
	account := req.ToModel(userID)
	if err := s.repo.AccountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.log.InfoContext(ctx, "Account created",
		logger.UintField("account_id", account.ID),
		logger.UintField("user_id", userID),
	)
	return account, nil
}

// Delete removes the account with its trades and statistics snapshot in one
// transaction.
func (s *accountService) Delete(ctx context.Context, userID, accountID uint) error {
	err := s.repo.UnitOfWork.Run(ctx, func(opts ...utils.DBOption) error {
		account, err := s.repo.AccountRepo.GetByIDForUser(ctx, accountID, userID, opts...)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		if account == nil {
			return fmt.Errorf("account %d: %w", accountID, ErrNotFound)
		}
		if err := s.repo.TradeRepo.DeleteByAccount(ctx, accountID, opts...); err != nil {
			return fmt.Errorf("failed to delete trades: %w", err)
		}
		if err := s.repo.AccountStatisticsRepo.DeleteByAccount(ctx, accountID, opts...); err != nil {
			return fmt.Errorf("failed to delete statistics: %w", err)
		}
		return s.repo.AccountRepo.Delete(ctx, accountID, opts...)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(common.StatisticsReportKey(accountID))
	s.log.InfoContext(ctx, "Account deleted",
		logger.UintField("account_id", accountID),
		logger.UintField("user_id", userID),
	)
	return nil
}
