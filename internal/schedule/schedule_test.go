package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[16])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1] < slots[i], "slots must be strictly increasing: %s >= %s", slots[i-1], slots[i])
	}
}

func TestTimeSlotsCopy(t *testing.T) {
	a := TimeSlots()
	a[0] = "mutated"
	b := TimeSlots()
	assert.Equal(t, "09:00", b[0])
}

func TestMonthGridShape(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.March},
		{2025, time.June},
		{2024, time.February}, // leap year
		{2025, time.February},
		{2023, time.October}, // month starting on Sunday
		{2025, time.December},
	}

	for _, m := range months {
		t.Run(time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"), func(t *testing.T) {
			cells := MonthGrid(m.year, m.month, "", nil)
			require.Len(t, cells, 42)

			// cell 0 is the Sunday on or before the 1st
			first, err := time.Parse("2006-01-02", cells[0].Date)
			require.NoError(t, err)
			assert.Equal(t, time.Sunday, first.Weekday())
			monthFirst := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
			assert.False(t, first.After(monthFirst))
			assert.True(t, monthFirst.Sub(first) < 7*24*time.Hour)

			// exactly one contiguous run of current-month cells, sized to the month
			daysInMonth := monthFirst.AddDate(0, 1, -1).Day()
			runStart, runLen, runs := -1, 0, 0
			for i, c := range cells {
				if c.IsCurrentMonth {
					if runStart < 0 || !cells[i-1].IsCurrentMonth {
						runs++
						runStart = i
					}
					runLen++
				}
			}
			assert.Equal(t, 1, runs, "current-month cells must be contiguous")
			assert.Equal(t, daysInMonth, runLen)
			assert.Equal(t, int(monthFirst.Weekday()), runStart)
		})
	}
}

func TestMonthGridSelectionAndMarkers(t *testing.T) {
	marked := map[string]bool{"2025-06-05": true, "2025-06-12": true}
	cells := MonthGrid(2025, time.June, "2025-06-05", marked)

	var selected, withAppointments int
	for _, c := range cells {
		if c.IsSelected {
			selected++
			assert.Equal(t, "2025-06-05", c.Date)
			assert.True(t, c.HasAppointments)
		}
		if c.HasAppointments {
			withAppointments++
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, 2, withAppointments)
}

func TestMonthGridDayNumbers(t *testing.T) {
	// June 2025 starts on a Sunday, so cell 0 is June 1st
	cells := MonthGrid(2025, time.June, "", nil)
	assert.Equal(t, "2025-06-01", cells[0].Date)
	assert.Equal(t, 1, cells[0].Day)
	assert.True(t, cells[0].IsCurrentMonth)
	assert.Equal(t, "2025-07-12", cells[41].Date)
	assert.False(t, cells[41].IsCurrentMonth)
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2025, time.February)
	assert.Equal(t, "2025-02-01", first)
	assert.Equal(t, "2025-02-28", last)

	first, last = MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)
}

func TestMonthNavigation(t *testing.T) {
	y, m := PrevMonth(2025, time.January)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)

	y, m = NextMonth(2025, time.December)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.January, m)

	y, m = NextMonth(2025, time.June)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.July, m)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "março de 2025", MonthLabel(2025, time.March))
}

func TestNextDays(t *testing.T) {
	now := time.Date(2025, time.June, 29, 10, 0, 0, 0, time.UTC)
	days := NextDays(now, 7)
	require.Len(t, days, 7)
	assert.Equal(t, "2025-06-29", days[0])
	assert.Equal(t, "2025-07-05", days[6]) // crosses the month boundary
}

func TestFormatDateLongPT(t *testing.T) {
	assert.Equal(t, "quinta-feira, 5 de junho de 2025", FormatDateLongPT("2025-06-05"))
	assert.Equal(t, "not-a-date", FormatDateLongPT("not-a-date"))
}
