package stats

import "math"

type AccountOverview struct {
	InitialCapital float64 `json:"initial_capital"`
	CurrentCapital float64 `json:"current_capital"`
	Performance    string  `json:"performance"`
	MaxDrawdown    float64 `json:"max_drawdown"`
	MaxDrawdownPct string  `json:"max_drawdown_pct"`
}

// Overview derives the account header figures. Current capital adds the
// P&L of every trade regardless of status, skipping unusable values.
// Drawdown is measured on curve with the peak seeded at initialCapital.
func Overview(initialCapital float64, trades []Trade, curve []EquityPoint) AccountOverview {
	total := newSum(0)
	for _, t := range trades {
		if pnl := t.PnL(); !math.IsNaN(pnl) {
			total.add(pnl)
		}
	}

	current := initialCapital + total.value()
	ov := AccountOverview{
		InitialCapital: initialCapital,
		CurrentCapital: roundCents(current),
		Performance:    "0.00",
		MaxDrawdownPct: "0.00",
	}
	if initialCapital > 0 {
		ov.Performance = fixed2((current - initialCapital) / initialCapital * 100)
	}

	peak := initialCapital
	for _, p := range curve {
		if p.Capital > peak {
			peak = p.Capital
			continue
		}
		if dd := peak - p.Capital; dd > ov.MaxDrawdown {
			ov.MaxDrawdown = dd
			if peak > 0 {
				ov.MaxDrawdownPct = fixed2(dd / peak * 100)
			}
		}
	}
	ov.MaxDrawdown = roundCents(ov.MaxDrawdown)
	return ov
}
