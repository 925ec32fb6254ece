package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakdownByAsset(t *testing.T) {
	tests := []struct {
		name   string
		trades []Trade
		want   []AssetMetric
	}{
		{
			name:   "no trades",
			trades: nil,
			want:   []AssetMetric{},
		},
		{
			name: "grouped in first seen order",
			trades: []Trade{
				closedTrade("ETH/USDT", 10, "2024-01-02"),
				closedTrade("BTC/USDT", -5, "2024-01-01"),
				closedTrade("ETH/USDT", 20, "2024-01-03"),
				closedTrade("ETH/USDT", -1, "2024-01-04"),
				{Asset: "SOL/USDT", Status: StatusOpen, PnLUSD: ptr(100.0)},
			},
			want: []AssetMetric{
				{Asset: "ETH/USDT", Trades: 3, Wins: 2, Losses: 1, WinRate: 67, PnL: 29},
				{Asset: "BTC/USDT", Trades: 1, Losses: 1, PnL: -5},
			},
		},
		{
			name: "missing asset is Unknown and zero pnl is neither",
			trades: []Trade{
				{Status: StatusClosed, PnLUSD: ptr(0.0)},
				{Status: StatusClosed},
				closedTrade("", 3, ""),
			},
			want: []AssetMetric{
				{Asset: UnknownAsset, Trades: 3, Wins: 1, WinRate: 33, PnL: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BreakdownByAsset(tt.trades))
		})
	}
}
