package model

import (
	"time"

	"trading-journal/internal/stats"
)

const (
	DirectionLong  = "long"
	DirectionShort = "short"

	DefaultConfidenceScore = 5
)

type Trade struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	AccountID       uint       `gorm:"not null;index" json:"account_id"`
	Asset           string     `gorm:"not null" json:"asset"`
	EntryPrice      float64    `gorm:"type:numeric(15,2);not null" json:"entry_price"`
	ExitPrice       *float64   `gorm:"type:numeric(15,2)" json:"exit_price"`
	PositionSize    *float64   `gorm:"type:numeric(15,2)" json:"position_size"`
	EntryDate       time.Time  `gorm:"not null" json:"entry_date"`
	ExitDate        *time.Time `json:"exit_date"`
	TradeDate       *time.Time `json:"trade_date"`
	TakeProfit      *float64   `gorm:"type:numeric(15,2)" json:"take_profit"`
	StopLoss        *float64   `gorm:"type:numeric(15,2)" json:"stop_loss"`
	PnLUSD          *float64   `gorm:"column:pnl_usd;type:numeric(15,2)" json:"pnl_usd"`
	ConfidenceScore *int       `json:"confidence_score"`
	Direction       string     `gorm:"default:long" json:"direction"`
	Status          string     `gorm:"not null;default:open" json:"status"`
	Comment         string     `json:"comment"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// ToStats converts the stored row into the engine's view of a trade.
func (t Trade) ToStats() stats.Trade {
	entry := t.EntryDate
	entryPrice := t.EntryPrice
	st := stats.Trade{
		ID:              int64(t.ID),
		Asset:           t.Asset,
		Status:          stats.Status(t.Status),
		PnLUSD:          t.PnLUSD,
		TradeDate:       t.TradeDate,
		EntryPrice:      &entryPrice,
		ExitPrice:       t.ExitPrice,
		TakeProfit:      t.TakeProfit,
		StopLoss:        t.StopLoss,
		PositionSize:    t.PositionSize,
		ConfidenceScore: t.ConfidenceScore,
	}
	if !entry.IsZero() {
		st.EntryDate = &entry
	}
	return st
}

func ToStatsTrades(trades []Trade) []stats.Trade {
	out := make([]stats.Trade, len(trades))
	for i, t := range trades {
		out[i] = t.ToStats()
	}
	return out
}
