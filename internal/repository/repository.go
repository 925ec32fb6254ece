package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo              UserRepository
	AccountRepo           AccountRepository
	TradeRepo             TradeRepository
	AccountStatisticsRepo AccountStatisticsRepository
	UnitOfWork            UnitOfWork
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:              NewUserRepository(db),
		AccountRepo:           NewAccountRepository(db),
		TradeRepo:             NewTradeRepository(db),
		AccountStatisticsRepo: NewAccountStatisticsRepository(db),
		UnitOfWork:            NewUnitOfWork(db),
	}
}
