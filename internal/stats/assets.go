package stats

type AssetMetric struct {
	Asset   string  `json:"asset"`
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate int     `json:"win_rate"`
	PnL     float64 `json:"pnl"`
}

// BreakdownByAsset groups closed trades by asset in first-seen order.
func BreakdownByAsset(trades []Trade) []AssetMetric {
	index := make(map[string]int)
	metrics := make([]AssetMetric, 0)
	sums := make([]*sum, 0)

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		asset := t.Asset
		if asset == "" {
			asset = UnknownAsset
		}

		i, ok := index[asset]
		if !ok {
			i = len(metrics)
			index[asset] = i
			metrics = append(metrics, AssetMetric{Asset: asset})
			sums = append(sums, newSum(0))
		}

		pnl := t.PnL()
		m := &metrics[i]
		m.Trades++
		if pnl > 0 {
			m.Wins++
		} else if pnl < 0 {
			m.Losses++
		}
		sums[i].add(pnl)
	}

	for i := range metrics {
		metrics[i].WinRate = percent(metrics[i].Wins, metrics[i].Trades)
		metrics[i].PnL = sums[i].value()
	}
	return metrics
}
