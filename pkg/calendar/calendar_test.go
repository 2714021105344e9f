package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid(t *testing.T) {
	now := date(2025, time.June, 10)

	t.Run("Grid Has Exactly 42 Cells Starting On Sunday", func(t *testing.T) {
		for month0 := 0; month0 < 12; month0++ {
			grid := MonthGrid(2025, month0, nil, now)

			assert.Len(t, grid, GridSize, "every month should produce 42 cells")
			assert.Equal(t, time.Sunday, grid[0].Date.Weekday(), "grid should start on a Sunday")
			for i := 1; i < len(grid); i++ {
				assert.Equal(t, grid[i-1].Date.AddDate(0, 0, 1), grid[i].Date, "cells should be consecutive days")
			}
		}
	})

	t.Run("June 2025 Boundaries", func(t *testing.T) {
		grid := MonthGrid(2025, 5, nil, now)

		assert.Equal(t, date(2025, time.June, 1), grid[0].Date, "first cell should be 2025-06-01")
		assert.Equal(t, date(2025, time.July, 12), grid[GridSize-1].Date, "last cell should roll into July")
	})

	t.Run("Availability Window June 2025", func(t *testing.T) {
		grid := MonthGrid(2025, 5, nil, now)

		firstAvailable := date(2025, time.June, 10)
		lastAvailable := date(2025, time.June, 17)
		for _, day := range grid {
			expected := !day.Date.Before(firstAvailable) && !day.Date.After(lastAvailable)
			assert.Equal(t, expected, day.IsAvailable, "availability flag for %s", day.Date.Format("2006-01-02"))
		}
	})

	t.Run("Current Month And Today Flags", func(t *testing.T) {
		grid := MonthGrid(2025, 5, nil, now)

		todayCount := 0
		for _, day := range grid {
			assert.Equal(t, day.Date.Month() == time.June, day.IsCurrentMonth, "current-month flag for %s", day.Date.Format("2006-01-02"))
			if day.IsToday {
				todayCount++
				assert.Equal(t, now, day.Date, "today flag should land on now's date")
			}
		}
		assert.Equal(t, 1, todayCount, "exactly one cell should be today")
	})

	t.Run("Selected Flag", func(t *testing.T) {
		selected := date(2025, time.June, 12)
		grid := MonthGrid(2025, 5, &selected, now)

		selectedCount := 0
		for _, day := range grid {
			if day.IsSelected {
				selectedCount++
				assert.Equal(t, selected, day.Date, "selected flag should match the selection")
			}
		}
		assert.Equal(t, 1, selectedCount, "exactly one cell should be selected")
	})

	t.Run("Month Starting On Sunday Keeps Its First Day In Cell Zero", func(t *testing.T) {
		grid := MonthGrid(2025, 5, nil, now)
		assert.True(t, grid[0].IsCurrentMonth, "June 2025 starts on a Sunday, so cell zero is in-month")
	})
}

func TestInWindow(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Today Is Inside", func(t *testing.T) {
		assert.True(t, InWindow(date(2025, time.June, 10), now), "today should be bookable")
	})

	t.Run("Last Day Of Window Is Inside", func(t *testing.T) {
		assert.True(t, InWindow(date(2025, time.June, 17), now), "today+7 should be bookable")
	})

	t.Run("Yesterday Is Outside", func(t *testing.T) {
		assert.False(t, InWindow(date(2025, time.June, 9), now), "past dates should not be bookable")
	})

	t.Run("Day After Window Is Outside", func(t *testing.T) {
		assert.False(t, InWindow(date(2025, time.June, 18), now), "today+8 should not be bookable")
	})

	t.Run("Time Of Day Does Not Matter", func(t *testing.T) {
		lateToday := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
		assert.True(t, InWindow(lateToday, now), "window comparison should normalize to midnight")
	})
}

func TestCanNavigateBack(t *testing.T) {
	now := date(2025, time.June, 10)

	t.Run("Current Month Is The Floor", func(t *testing.T) {
		assert.False(t, CanNavigateBack(2025, 5, now), "cannot navigate before the current month")
	})

	t.Run("Future Month Can Go Back", func(t *testing.T) {
		assert.True(t, CanNavigateBack(2025, 6, now), "July can navigate back to June")
	})

	t.Run("Next Year Can Go Back", func(t *testing.T) {
		assert.True(t, CanNavigateBack(2026, 0, now), "January next year can navigate back")
	})

	t.Run("Past Month Cannot Go Further Back", func(t *testing.T) {
		assert.False(t, CanNavigateBack(2025, 4, now), "a month before the current one has no back navigation")
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 10, 22, 15, 0, 0, time.UTC)
	c := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b), "same calendar day at different times")
	assert.False(t, SameDay(a, c), "different calendar days")
}
