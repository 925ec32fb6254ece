package dto

import (
	"time"

	"trading-journal/internal/model"
	"trading-journal/internal/stats"
	"trading-journal/pkg/utils"
)

type CreateTradeRequest struct {
	AccountID       uint          `json:"account_id" validate:"required"`
	Asset           string        `json:"asset" validate:"required,max=100"`
	EntryPrice      NullableFloat `json:"entry_price" validate:"required,amount"`
	ExitPrice       NullableFloat `json:"exit_price" validate:"omitempty,amount"`
	PositionSize    NullableFloat `json:"position_size" validate:"omitempty,amount"`
	EntryDate       NullableTime  `json:"entry_date"`
	ExitDate        NullableTime  `json:"exit_date"`
	TradeDate       NullableTime  `json:"trade_date"`
	TakeProfit      NullableFloat `json:"take_profit" validate:"omitempty,amount"`
	StopLoss        NullableFloat `json:"stop_loss" validate:"omitempty,amount"`
	PnLUSD          NullableFloat `json:"pnl_usd" validate:"omitempty,amount"`
	Status          string        `json:"status" validate:"omitempty,oneof=open closed cancelled"`
	Comment         string        `json:"comment"`
	ConfidenceScore int           `json:"confidence_score" validate:"omitempty,min=1,max=10"`
	Direction       string        `json:"direction" validate:"omitempty,oneof=long short"`
}

// ToModel applies the journal-entry defaults: open status, long direction,
// confidence 5, both dates at now, zero pnl and null for unset prices.
func (r CreateTradeRequest) ToModel(now time.Time) *model.Trade {
	t := &model.Trade{
		AccountID:       r.AccountID,
		Asset:           r.Asset,
		EntryPrice:      r.EntryPrice.Value,
		ExitPrice:       r.ExitPrice.NonZeroPtr(),
		PositionSize:    r.PositionSize.NonZeroPtr(),
		EntryDate:       now,
		ExitDate:        r.ExitDate.Ptr(),
		TakeProfit:      r.TakeProfit.NonZeroPtr(),
		StopLoss:        r.StopLoss.NonZeroPtr(),
		Status:          string(stats.StatusOpen),
		Comment:         r.Comment,
		Direction:       model.DirectionLong,
		ConfidenceScore: utils.ToPointer(model.DefaultConfidenceScore),
	}
	if r.EntryDate.Valid {
		t.EntryDate = r.EntryDate.Time
	}
	tradeDate := now
	if r.TradeDate.Valid {
		tradeDate = r.TradeDate.Time
	}
	t.TradeDate = &tradeDate

	pnl := 0.0
	if r.PnLUSD.Valid {
		pnl = r.PnLUSD.Value
	}
	t.PnLUSD = &pnl

	if r.Status != "" {
		t.Status = r.Status
	}
	if r.Direction != "" {
		t.Direction = r.Direction
	}
	if r.ConfidenceScore != 0 {
		t.ConfidenceScore = utils.ToPointer(r.ConfidenceScore)
	}
	return t
}

// UpdateTradeRequest is a partial update: only keys present in the body are
// applied, and an explicit null clears a nullable column.
type UpdateTradeRequest struct {
	Asset           *string       `json:"asset" validate:"omitempty,min=1,max=100"`
	EntryPrice      NullableFloat `json:"entry_price" validate:"omitempty,amount"`
	ExitPrice       NullableFloat `json:"exit_price" validate:"omitempty,amount"`
	PositionSize    NullableFloat `json:"position_size" validate:"omitempty,amount"`
	EntryDate       NullableTime  `json:"entry_date"`
	ExitDate        NullableTime  `json:"exit_date"`
	TradeDate       NullableTime  `json:"trade_date"`
	TakeProfit      NullableFloat `json:"take_profit" validate:"omitempty,amount"`
	StopLoss        NullableFloat `json:"stop_loss" validate:"omitempty,amount"`
	PnLUSD          NullableFloat `json:"pnl_usd" validate:"omitempty,amount"`
	Status          *string       `json:"status" validate:"omitempty,oneof=open closed cancelled"`
	Comment         *string       `json:"comment"`
	ConfidenceScore *int          `json:"confidence_score" validate:"omitempty,min=1,max=10"`
	Direction       *string       `json:"direction" validate:"omitempty,oneof=long short"`
}

func (r UpdateTradeRequest) ApplyTo(t *model.Trade) {
	if r.Asset != nil {
		t.Asset = *r.Asset
	}
	if r.EntryPrice.Set && r.EntryPrice.Valid {
		t.EntryPrice = r.EntryPrice.Value
	}
	if r.EntryDate.Set && r.EntryDate.Valid {
		t.EntryDate = r.EntryDate.Time
	}
	applyFloat(&t.ExitPrice, r.ExitPrice)
	applyFloat(&t.PositionSize, r.PositionSize)
	applyFloat(&t.TakeProfit, r.TakeProfit)
	applyFloat(&t.StopLoss, r.StopLoss)
	applyFloat(&t.PnLUSD, r.PnLUSD)
	applyTime(&t.ExitDate, r.ExitDate)
	applyTime(&t.TradeDate, r.TradeDate)
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Comment != nil {
		t.Comment = *r.Comment
	}
	if r.ConfidenceScore != nil {
		t.ConfidenceScore = utils.ToPointer(*r.ConfidenceScore)
	}
	if r.Direction != nil {
		t.Direction = *r.Direction
	}
}

func applyFloat(dst **float64, v NullableFloat) {
	if v.Set {
		*dst = v.Ptr()
	}
}

func applyTime(dst **time.Time, v NullableTime) {
	if v.Set {
		*dst = v.Ptr()
	}
}
