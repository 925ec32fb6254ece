// Package stats computes journal statistics from a snapshot of trades: the
// summary figures, the per-asset breakdown, the equity curve and the account
// overview. Every function is pure and safe for concurrent use.
package stats

type Report struct {
	Summary     Summary         `json:"summary"`
	Assets      []AssetMetric   `json:"assets"`
	EquityCurve []EquityPoint   `json:"equity_curve"`
	Overview    AccountOverview `json:"overview"`
}

func Build(initialCapital float64, trades []Trade, opts ...Option) Report {
	curve := EquityCurve(initialCapital, trades, opts...)
	return Report{
		Summary:     Summarize(trades),
		Assets:      BreakdownByAsset(trades),
		EquityCurve: curve,
		Overview:    Overview(initialCapital, trades, curve),
	}
}
