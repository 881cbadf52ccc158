package dates

import "time"

// Approximations used to turn a calendar delta into days.
const (
	DaysPerYear  = 365.25
	DaysPerMonth = 30.4
)

// Delta is a calendar difference in whole years, months and days.
type Delta struct {
	Years  int
	Months int
	Days   int
}

// Between returns end minus start with month-aware borrowing, the way a
// person counts: 2019-01-01 to 2021-12-01 is 2 years 11 months.
func Between(start, end time.Time) Delta {
	if end.Before(start) {
		d := Between(end, start)
		return Delta{Years: -d.Years, Months: -d.Months, Days: -d.Days}
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	anchor := addMonths(start, months)
	if anchor.After(end) {
		months--
		anchor = addMonths(start, months)
	}
	days := int(end.Sub(anchor).Hours() / 24)
	return Delta{Years: months / 12, Months: months % 12, Days: days}
}

// addMonths adds n >= 0 months, clamping the day to the target month's length.
func addMonths(t time.Time, n int) time.Time {
	idx := int(t.Month()) - 1 + n
	y, m := t.Year()+idx/12, time.Month(idx%12+1)
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	d := t.Day()
	if d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ApproxDays converts the delta to days.
func (d Delta) ApproxDays() float64 {
	return float64(d.Years)*DaysPerYear + float64(d.Months)*DaysPerMonth + float64(d.Days)
}
