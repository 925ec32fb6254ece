package stats

import "time"

type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// UnknownAsset labels closed trades that were journaled without an asset.
const UnknownAsset = "Unknown"

// Trade is the engine's read-only view of a journaled trade. Pointer fields
// are nullable; the engine substitutes defaults instead of failing.
type Trade struct {
	ID              int64
	Asset           string
	Status          Status
	PnLUSD          *float64
	TradeDate       *time.Time
	EntryDate       *time.Time
	EntryPrice      *float64
	ExitPrice       *float64
	TakeProfit      *float64
	StopLoss        *float64
	PositionSize    *float64
	ConfidenceScore *int
}

// PnL returns the realized profit/loss, 0 when absent.
func (t Trade) PnL() float64 {
	if t.PnLUSD == nil {
		return 0
	}
	return *t.PnLUSD
}

// EffectiveDate returns trade_date, falling back to entry_date.
func (t Trade) EffectiveDate() (time.Time, bool) {
	if t.TradeDate != nil && !t.TradeDate.IsZero() {
		return *t.TradeDate, true
	}
	if t.EntryDate != nil && !t.EntryDate.IsZero() {
		return *t.EntryDate, true
	}
	return time.Time{}, false
}

func (t Trade) IsClosed() bool {
	return t.Status == StatusClosed
}

func filterClosed(trades []Trade) []Trade {
	closed := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			closed = append(closed, t)
		}
	}
	return closed
}
