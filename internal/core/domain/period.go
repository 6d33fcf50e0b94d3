package domain

import "time"

// Period is an inclusive calendar-date range used to filter transactions.
// Comparisons are on parsed calendar dates, not timestamps, so transactions
// recorded around midnight don't fall off a period boundary.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateOnly collapses a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthPeriod returns the period covering a whole calendar month.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// NewPeriod builds a period from two timestamps, collapsing both to dates.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: DateOnly(start), End: DateOnly(end)}
}

// Contains reports whether the given timestamp's calendar date falls inside
// the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// Previous returns the immediately preceding period. Month-aligned periods
// yield the previous calendar month; arbitrary ranges shift back by their
// own length in days.
func (p Period) Previous() Period {
	if p.isWholeMonth() {
		prev := p.Start.AddDate(0, -1, 0)
		return MonthPeriod(prev.Year(), prev.Month())
	}
	days := int(p.End.Sub(p.Start).Hours()/24) + 1
	return Period{
		Start: p.Start.AddDate(0, 0, -days),
		End:   p.Start.AddDate(0, 0, -1),
	}
}

func (p Period) isWholeMonth() bool {
	return p.Start.Day() == 1 &&
		p.Start.Month() == p.End.Month() &&
		p.Start.Year() == p.End.Year() &&
		p.End.AddDate(0, 0, 1).Day() == 1
}
