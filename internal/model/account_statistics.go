package model

import (
	"time"

	"gorm.io/datatypes"
)

// AccountStatistics is the persisted snapshot of an account's report,
// refreshed by the snapshot job.
type AccountStatistics struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AccountID     uint           `gorm:"not null;uniqueIndex" json:"account_id"`
	TotalTrades   int            `gorm:"not null" json:"total_trades"`
	WinningTrades int            `gorm:"not null" json:"winning_trades"`
	LosingTrades  int            `gorm:"not null" json:"losing_trades"`
	TotalProfit   float64        `gorm:"type:numeric(15,2);not null" json:"total_profit"`
	TotalLoss     float64        `gorm:"type:numeric(15,2);not null" json:"total_loss"`
	WinRate       int            `gorm:"not null" json:"win_rate"`
	ProfitFactor  string         `gorm:"not null" json:"profit_factor"`
	Expectancy    string         `gorm:"not null" json:"expectancy"`
	MaxDrawdown   float64        `gorm:"type:numeric(15,2);not null" json:"max_drawdown"`
	Assets        datatypes.JSON `json:"assets"`
	LastUpdated   time.Time      `gorm:"not null" json:"last_updated"`
}

func (AccountStatistics) TableName() string {
	return "account_statistics"
}
