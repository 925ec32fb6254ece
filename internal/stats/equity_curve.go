package stats

import (
	"sort"
	"time"
)

const equityLabelLayout = "02/01"

type EquityPoint struct {
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Capital   float64   `json:"capital"`
	Asset     string    `json:"asset"`
	PnL       float64   `json:"pnl"`
}

// EquityCurve replays the closed trades in date order starting from
// initialCapital and emits one point per trade. Capital is rounded to the
// cent on output only; the running balance is never rounded.
//
// The i-th point's timestamp is shifted forward by i hours so points sharing
// a calendar date stay distinct on a time axis. The shift never reorders.
func EquityCurve(initialCapital float64, trades []Trade, opts ...Option) []EquityPoint {
	o := newOptions(opts...)

	closed := sortByDate(filterClosed(trades), o.missingDates)
	curve := make([]EquityPoint, 0, len(closed))
	running := newSum(initialCapital)

	for i, t := range closed {
		pnl := t.PnL()
		running.add(pnl)

		date, ok := t.EffectiveDate()
		if !ok {
			date = o.now()
		}
		shifted := date.Add(time.Duration(i) * time.Hour).In(o.location)

		curve = append(curve, EquityPoint{
			Date:      shifted.Format(equityLabelLayout),
			Timestamp: shifted,
			Capital:   roundCents(running.value()),
			Asset:     t.Asset,
			PnL:       pnl,
		})
	}
	return curve
}

// sortByDate orders trades ascending by effective date, stable for ties.
// trades is sorted in place and returned.
func sortByDate(trades []Trade, policy MissingDatePolicy) []Trade {
	if policy == MissingDateFirst || policy == MissingDateLast {
		sort.SliceStable(trades, func(i, j int) bool {
			di, iok := trades[i].EffectiveDate()
			dj, jok := trades[j].EffectiveDate()
			switch {
			case iok && jok:
				return di.Before(dj)
			case iok == jok:
				return false
			case policy == MissingDateFirst:
				return !iok
			default:
				return iok
			}
		})
		return trades
	}

	slots := make([]int, 0, len(trades))
	dated := make([]Trade, 0, len(trades))
	for i, t := range trades {
		if _, ok := t.EffectiveDate(); ok {
			slots = append(slots, i)
			dated = append(dated, t)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		di, _ := dated[i].EffectiveDate()
		dj, _ := dated[j].EffectiveDate()
		return di.Before(dj)
	})
	for k, idx := range slots {
		trades[idx] = dated[k]
	}
	return trades
}
