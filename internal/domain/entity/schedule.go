package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Bookable time grid: 30-minute steps over the closed interval 08:00-18:30.
const (
	GridOpenHour  = 8
	GridCloseHour = 18
)

// Supported scheduling years. Dates outside this window are rejected.
const (
	MinYear = 2025
	MaxYear = 2026
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var slotGrid = buildSlotGrid()

func buildSlotGrid() []string {
	grid := make([]string, 0, (GridCloseHour-GridOpenHour+1)*2)
	for h := GridOpenHour; h <= GridCloseHour; h++ {
		grid = append(grid, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return grid
}

// SlotGrid returns the full bookable grid in ascending order.
func SlotGrid() []string {
	grid := make([]string, len(slotGrid))
	copy(grid, slotGrid)
	return grid
}

// ValidSlot reports whether the value sits on the bookable grid.
func ValidSlot(slot string) bool {
	if len(slot) != 5 || slot[2] != ':' || !allDigits(slot[:2]) {
		return false
	}
	hour, _ := strconv.Atoi(slot[:2])
	if hour < GridOpenHour || hour > GridCloseHour {
		return false
	}
	return slot[3:] == "00" || slot[3:] == "30"
}

// ValidDay reports whether the value is a well-formed dd/mm/yyyy date in a
// supported year, with the day bounded by the month's length. February is
// capped at 28; neither supported year is a leap year.
func ValidDay(day string) bool {
	parts := strings.Split(day, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) || !allDigits(parts[2]) {
		return false
	}
	d, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	y, _ := strconv.Atoi(parts[2])
	if y < MinYear || y > MaxYear {
		return false
	}
	if m < 1 || m > 12 {
		return false
	}
	return d >= 1 && d <= daysPerMonth[m-1]
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
