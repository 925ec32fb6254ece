package model

import "time"

const DefaultCurrency = "USD"

type Account struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	AccountName    string    `gorm:"not null" json:"account_name"`
	InitialCapital float64   `gorm:"type:numeric(15,2);not null" json:"initial_capital"`
	CurrentCapital float64   `gorm:"type:numeric(15,2);not null" json:"current_capital"`
	Currency       string    `gorm:"not null;default:USD" json:"currency"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Statistics is the last persisted snapshot, loaded on listing only.
	Statistics *AccountStatistics `gorm:"foreignKey:AccountID" json:"statistics,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}
