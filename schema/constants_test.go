package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLayout(t *testing.T) {
	ts := time.Date(2024, 3, 5, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2024-03-05", ts.Format(DayPeriod.KeyLayout()))
	assert.Equal(t, "2024-03", ts.Format(MonthPeriod.KeyLayout()))
	assert.Equal(t, "2024", ts.Format(YearPeriod.KeyLayout()))

	// Unknown periods fall back to daily keys.
	assert.Equal(t, DayKeyLayout, GroupPeriod("bogus").KeyLayout())
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(int(time.Monday)))
	assert.Equal(t, 5, WeekdayIndex(int(time.Saturday)))
	assert.Equal(t, 6, WeekdayIndex(int(time.Sunday)))

	// The Monday-first ordering lines up with the display names.
	assert.Equal(t, "Monday", WeekdayNames[WeekdayIndex(int(time.Monday))])
	assert.Equal(t, "Sunday", WeekdayNames[WeekdayIndex(int(time.Sunday))])
}
