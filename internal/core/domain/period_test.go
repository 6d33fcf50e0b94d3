package domain_test

import (
	"testing"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDateOnly_CollapsesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2025, 6, 15, 23, 45, 12, 0, loc)

	d := domain.DateOnly(ts)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestMonthPeriod_CoversWholeMonth(t *testing.T) {
	p := domain.MonthPeriod(2025, time.February)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), p.End)
}

func TestPeriod_ContainsIsInclusive(t *testing.T) {
	p := domain.MonthPeriod(2025, time.June)

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	// A timestamp late on the last day still counts: comparison is on the
	// calendar date, not the instant.
	assert.True(t, p.Contains(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(p.End.AddDate(0, 0, 1)))
	assert.False(t, p.Contains(p.Start.AddDate(0, 0, -1)))
}

func TestPeriod_PreviousOfWholeMonth(t *testing.T) {
	p := domain.MonthPeriod(2025, time.March)

	prev := p.Previous()

	assert.Equal(t, domain.MonthPeriod(2025, time.February), prev)
}

func TestPeriod_PreviousOfJanuaryCrossesYear(t *testing.T) {
	p := domain.MonthPeriod(2025, time.January)

	prev := p.Previous()

	assert.Equal(t, domain.MonthPeriod(2024, time.December), prev)
}

func TestPeriod_PreviousOfArbitraryRangeShiftsByLength(t *testing.T) {
	p := domain.NewPeriod(
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC),
	)

	prev := p.Previous()

	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), prev.End)
}

func TestPeriod_IsZero(t *testing.T) {
	assert.True(t, domain.Period{}.IsZero())
	assert.False(t, domain.MonthPeriod(2025, time.June).IsZero())
}
