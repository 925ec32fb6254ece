package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type TradeRepository interface {
	ListByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) ([]model.Trade, error)
	ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Trade, error)
	GetByIDForUser(ctx context.Context, id, userID uint, opts ...utils.DBOption) (*model.Trade, error)
	Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
	DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func ownedByUser(userID uint) utils.DBOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN accounts ON accounts.id = trades.account_id").
			Where("accounts.user_id = ?", userID)
	}
}

// ListByAccount returns the account's trades in journal order (trade_date,
// then insertion).
func (r *tradeRepository) ListByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) ([]model.Trade, error) {
	trades := []model.Trade{}
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	err := tx.Where("account_id = ?", accountID).
		Order("trade_date ASC").Order("id ASC").
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Trade, error) {
	trades := []model.Trade{}
	tx := utils.ApplyOptions(r.db.WithContext(ctx), append(opts, ownedByUser(userID))...)
	err := tx.Order("trades.trade_date ASC").Order("trades.id ASC").Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// GetByIDForUser returns nil, nil when the trade does not exist or sits in
// another user's account.
func (r *tradeRepository) GetByIDForUser(ctx context.Context, id, userID uint, opts ...utils.DBOption) (*model.Trade, error) {
	var trade model.Trade
	tx := utils.ApplyOptions(r.db.WithContext(ctx), append(opts, ownedByUser(userID))...)
	err := tx.Where("trades.id = ?", id).First(&trade).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(trade).Error
}

// Update writes every column, so cleared nullable fields are persisted as NULL.
func (r *tradeRepository) Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Save(trade).Error
}

func (r *tradeRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Delete(&model.Trade{}, id).Error
}

func (r *tradeRepository) DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("account_id = ?", accountID).Delete(&model.Trade{}).Error
}
