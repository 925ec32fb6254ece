package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type AccountRepository interface {
	GetByIDForUser(ctx context.Context, id, userID uint, opts ...utils.DBOption) (*model.Account, error)
	ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Account, error)
	ListActive(ctx context.Context, opts ...utils.DBOption) ([]model.Account, error)
	Create(ctx context.Context, account *model.Account, opts ...utils.DBOption) error
	UpdateCurrentCapital(ctx context.Context, id uint, capital float64, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// GetByIDForUser returns nil, nil when the account does not exist or belongs
// to someone else.
func (r *accountRepository) GetByIDForUser(ctx context.Context, id, userID uint, opts ...utils.DBOption) (*model.Account, error) {
	var account model.Account
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Account, error) {
	accounts := []model.Account{}
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) ListActive(ctx context.Context, opts ...utils.DBOption) ([]model.Account, error) {
	accounts := []model.Account{}
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Where("is_active = ?", true).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(account).Error
}

func (r *accountRepository) UpdateCurrentCapital(ctx context.Context, id uint, capital float64, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Model(&model.Account{}).Where("id = ?", id).Update("current_capital", capital).Error
}

func (r *accountRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Delete(&model.Account{}, id).Error
}
