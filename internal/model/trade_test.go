package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trading-journal/internal/stats"
)

func TestTradeToStats(t *testing.T) {
	pnl := 12.5
	tradeDate := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		trade     Trade
		wantEntry bool
	}{
		{
			name: "full row",
			trade: Trade{
				ID: 7, AccountID: 1, Asset: "BTC", EntryPrice: 100, PnLUSD: &pnl,
				TradeDate: &tradeDate, EntryDate: tradeDate, Status: "closed",
			},
			wantEntry: true,
		},
		{
			name:  "zero entry date stays absent",
			trade: Trade{ID: 8, Asset: "ETH", EntryPrice: 50, Status: "open"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.trade.ToStats()
			assert.Equal(t, int64(tt.trade.ID), got.ID)
			assert.Equal(t, tt.trade.Asset, got.Asset)
			assert.Equal(t, stats.Status(tt.trade.Status), got.Status)
			assert.Equal(t, tt.trade.EntryPrice, *got.EntryPrice)
			assert.Equal(t, tt.wantEntry, got.EntryDate != nil)
		})
	}
}

func TestToStatsTrades(t *testing.T) {
	got := ToStatsTrades([]Trade{{ID: 1}, {ID: 2}})
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Empty(t, ToStatsTrades(nil))
}
