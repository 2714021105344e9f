// Package calendar generates booking calendar grids and decides which
// dates fall inside the bookable availability window. It is the single
// source of truth for that window so every booking surface agrees on it.
package calendar

import "time"

// WindowDays is the number of days past today that remain bookable.
// A date is bookable when today <= date <= today+WindowDays, with both
// ends normalized to midnight.
const WindowDays = 7

// GridSize is the fixed number of cells in a month grid (6 rows x 7 columns).
const GridSize = 42

// Day is one cell of a month grid.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	IsAvailable    bool
	IsSelected     bool
	IsToday        bool
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// InWindow reports whether date is inside the availability window
// relative to now. Both values are normalized to midnight first.
func InWindow(date, now time.Time) bool {
	day := Midnight(date)
	today := Midnight(now)
	last := today.AddDate(0, 0, WindowDays)
	return !day.Before(today) && !day.After(last)
}

// MonthGrid returns exactly GridSize cells for the month identified by
// year and month0 (zero-based, January is 0). The first cell is the
// Sunday on or before the first of the month and the grid keeps rolling
// day by day past the end of the month until all cells are filled.
func MonthGrid(year int, month0 int, selected *time.Time, now time.Time) []Day {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, now.Location())
	cursor := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		day := Day{
			Date:           cursor,
			IsCurrentMonth: cursor.Month() == first.Month(),
			IsAvailable:    InWindow(cursor, now),
			IsToday:        SameDay(cursor, now),
		}
		if selected != nil {
			day.IsSelected = SameDay(cursor, *selected)
		}
		grid = append(grid, day)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return grid
}

// CanNavigateBack reports whether the user may page to the month before
// the viewed one. Navigating back stops at the current month; forward
// navigation is never restricted.
func CanNavigateBack(viewYear int, viewMonth0 int, now time.Time) bool {
	if viewYear != now.Year() {
		return viewYear > now.Year()
	}
	return time.Month(viewMonth0+1) > now.Month()
}
