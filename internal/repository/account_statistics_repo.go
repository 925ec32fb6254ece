package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type AccountStatisticsRepository interface {
	GetByAccountID(ctx context.Context, accountID uint, opts ...utils.DBOption) (*model.AccountStatistics, error)
	Upsert(ctx context.Context, snapshot *model.AccountStatistics, opts ...utils.DBOption) error
	DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error
}

type accountStatisticsRepository struct {
	db *gorm.DB
}

func NewAccountStatisticsRepository(db *gorm.DB) AccountStatisticsRepository {
	return &accountStatisticsRepository{
		db: db,
	}
}

func (r *accountStatisticsRepository) GetByAccountID(ctx context.Context, accountID uint, opts ...utils.DBOption) (*model.AccountStatistics, error) {
	var snapshot model.AccountStatistics
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	err := tx.Where("account_id = ?", accountID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Upsert keeps a single snapshot row per account.
func (r *accountStatisticsRepository) Upsert(ctx context.Context, snapshot *model.AccountStatistics, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_trades", "winning_trades", "losing_trades",
			"total_profit", "total_loss", "win_rate",
			"profit_factor", "expectancy", "max_drawdown",
			"assets", "last_updated",
		}),
	}).Create(snapshot).Error
}

func (r *accountStatisticsRepository) DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("account_id = ?", accountID).Delete(&model.AccountStatistics{}).Error
}
