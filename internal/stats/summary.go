package stats

import "math"

type Summary struct {
	TotalTrades   int     `json:"total_trades"`
	ClosedTrades  int     `json:"closed_trades"`
	OpenTrades    int     `json:"open_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	TotalProfit   float64 `json:"total_profit"`
	TotalLoss     float64 `json:"total_loss"`
	TotalPnL      float64 `json:"total_pnl"`
	WinRate       int     `json:"win_rate"`
	ProfitFactor  string  `json:"profit_factor"`
	AvgWin        string  `json:"avg_win"`
	AvgLoss       string  `json:"avg_loss"`
	Expectancy    string  `json:"expectancy"`
}

// Summarize aggregates realized results over the closed trades. Expectancy
// divides by every trade in the list, open and cancelled included.
func Summarize(trades []Trade) Summary {
	s := Summary{TotalTrades: len(trades)}

	profit := newSum(0)
	loss := newSum(0)
	// zero and NaN results; only NaN can move it
	rest := newSum(0)

	for _, t := range trades {
		switch t.Status {
		case StatusOpen:
			s.OpenTrades++
			continue
		case StatusClosed:
			s.ClosedTrades++
		default:
			continue
		}

		pnl := t.PnL()
		switch {
		case pnl > 0:
			s.WinningTrades++
			profit.add(pnl)
		case pnl < 0:
			s.LosingTrades++
			loss.add(pnl)
		default:
			rest.add(pnl)
		}
	}

	s.TotalProfit = profit.value()
	s.TotalLoss = math.Abs(loss.value())
	s.TotalPnL = s.TotalProfit - s.TotalLoss + rest.value()
	s.WinRate = percent(s.WinningTrades, s.ClosedTrades)

	s.ProfitFactor = "0.00"
	if s.TotalLoss > 0 {
		s.ProfitFactor = fixed2(s.TotalProfit / s.TotalLoss)
	}
	s.AvgWin = "0.00"
	if s.WinningTrades > 0 {
		s.AvgWin = fixed2(s.TotalProfit / float64(s.WinningTrades))
	}
	s.AvgLoss = "0.00"
	if s.LosingTrades > 0 {
		s.AvgLoss = fixed2(s.TotalLoss / float64(s.LosingTrades))
	}
	s.Expectancy = "0.00"
	if s.TotalTrades > 0 {
		s.Expectancy = fixed2(s.TotalPnL / float64(s.TotalTrades))
	}
	return s
}
