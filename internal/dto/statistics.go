package dto

import "trading-journal/internal/stats"

// PreviewRequest carries an ad-hoc trade list for a report that is computed
// without touching storage.
type PreviewRequest struct {
	InitialCapital NullableFloat  `json:"initial_capital"`
	Trades         []PreviewTrade `json:"trades" validate:"dive"`
}

type PreviewTrade struct {
	ID              int64         `json:"id"`
	Asset           string        `json:"asset"`
	Status          string        `json:"status"`
	PnLUSD          NullableFloat `json:"pnl_usd"`
	TradeDate       NullableTime  `json:"trade_date"`
	EntryDate       NullableTime  `json:"entry_date"`
	EntryPrice      NullableFloat `json:"entry_price"`
	ExitPrice       NullableFloat `json:"exit_price"`
	TakeProfit      NullableFloat `json:"take_profit"`
	StopLoss        NullableFloat `json:"stop_loss"`
	PositionSize    NullableFloat `json:"position_size"`
	ConfidenceScore *int          `json:"confidence_score" validate:"omitempty,min=1,max=10"`
}

func (p PreviewTrade) ToStats() stats.Trade {
	return stats.Trade{
		ID:              p.ID,
		Asset:           p.Asset,
		Status:          stats.Status(p.Status),
		PnLUSD:          p.PnLUSD.Ptr(),
		TradeDate:       p.TradeDate.Ptr(),
		EntryDate:       p.EntryDate.Ptr(),
		EntryPrice:      p.EntryPrice.Ptr(),
		ExitPrice:       p.ExitPrice.Ptr(),
		TakeProfit:      p.TakeProfit.Ptr(),
		StopLoss:        p.StopLoss.Ptr(),
		PositionSize:    p.PositionSize.Ptr(),
		ConfidenceScore: p.ConfidenceScore,
	}
}

func (r PreviewRequest) StatsTrades() []stats.Trade {
	out := make([]stats.Trade, len(r.Trades))
	for i, t := range r.Trades {
		out[i] = t.ToStats()
	}
	return out
}
