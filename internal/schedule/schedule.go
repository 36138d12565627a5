package schedule

import (
	"fmt"
	"time"
)

const (
	openingHour  = 9
	closingHour  = 17
	slotInterval = 30 * time.Minute

	gridCells  = 42
	dateLayout = "2006-01-02"
)

// timeSlots is fixed for the lifetime of the process. Business hours are not
// configurable and existing bookings do not remove slots from the sequence.
var timeSlots = generateTimeSlots()

func generateTimeSlots() []string {
	var slots []string
	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	start := day.Add(openingHour * time.Hour)
	end := day.Add(closingHour * time.Hour)
	// closing hour is itself a bookable slot
	for t := start; !t.After(end); t = t.Add(slotInterval) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

// TimeSlots returns the half-hour booking labels between opening and closing
// time, both inclusive, formatted HH:mm in 24-hour notation.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// Cell is one day of a rendered month grid.
type Cell struct {
	Date            string
	Day             int
	IsCurrentMonth  bool
	IsSelected      bool
	HasAppointments bool
}

// MonthGrid produces the 42-cell (6 weeks x 7 days) grid for the given month,
// starting on the Sunday on or before the 1st. selected is a YYYY-MM-DD date
// string; hasAppointments is the set of dates with at least one appointment.
func MonthGrid(year int, month time.Month, selected string, hasAppointments map[string]bool) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // Sunday == 0

	cells := make([]Cell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		date := first.AddDate(0, 0, i-offset)
		dateStr := date.Format(dateLayout)
		cells = append(cells, Cell{
			Date:            dateStr,
			Day:             date.Day(),
			IsCurrentMonth:  date.Month() == month && date.Year() == year,
			IsSelected:      dateStr == selected,
			HasAppointments: hasAppointments[dateStr],
		})
	}
	return cells
}

// MonthRange returns the first and last day of the month as YYYY-MM-DD
// strings, the window used to fetch appointment markers.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// PrevMonth steps the reference month back by one.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth steps the reference month forward by one.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// MonthLabel renders the pt-BR month heading, e.g. "março de 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", monthNamesPT[month], year)
}

// NextDays returns today plus the following n-1 days as YYYY-MM-DD strings.
func NextDays(now time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return days
}

var monthNamesPT = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

var weekdayNamesPT = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// FormatDateLongPT renders a YYYY-MM-DD date in long pt-BR form, e.g.
// "quinta-feira, 5 de junho de 2025". Unparseable input is returned as-is.
func FormatDateLongPT(dateStr string) string {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdayNamesPT[t.Weekday()], t.Day(), monthNamesPT[t.Month()], t.Year())
}
