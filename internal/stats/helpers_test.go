package stats

import "time"

func ptr[T any](v T) *T {
	return &v
}

func date(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
	}
	return &t
}

func closedTrade(asset string, pnl float64, tradeDate string) Trade {
	t := Trade{Asset: asset, Status: StatusClosed, PnLUSD: ptr(pnl)}
	if tradeDate != "" {
		t.TradeDate = date(tradeDate)
	}
	return t
}
