package dto

import (
	"trading-journal/internal/model"
	"trading-journal/pkg/utils"
)

type CreateAccountRequest struct {
	AccountName    string        `json:"account_name" validate:"required,max=255"`
	InitialCapital NullableFloat `json:"initial_capital" validate:"required,amount"`
	Currency       string        `json:"currency" validate:"omitempty,len=3,alpha"`
}

// ToModel builds a new account for userID; current capital starts at the
// initial capital.
func (r CreateAccountRequest) ToModel(userID uint) *model.Account {
	currency := r.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return &model.Account{
		UserID:         userID,
		AccountName:    r.AccountName,
		InitialCapital: r.InitialCapital.Value,
		CurrentCapital: r.InitialCapital.Value,
		Currency:       currency,
		IsActive:       utils.ToPointer(true),
	}
}
