package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()
	require.Len(t, grid, 22)
	assert.Equal(t, "08:00", grid[0])
	assert.Equal(t, "18:30", grid[len(grid)-1])
	for _, slot := range grid {
		assert.True(t, ValidSlot(slot), "grid slot %s should be valid", slot)
	}
}

func TestValidSlot(t *testing.T) {
	tests := []struct {
		slot string
		want bool
	}{
		{"08:00", true},
		{"08:30", true},
		{"18:30", true},
		{"18:00", true},
		{"12:30", true},
		{"07:30", false},
		{"19:00", false},
		{"08:15", false},
		{"8:00", false},
		{"08:0", false},
		{"0800", false},
		{"", false},
		{"ab:cd", false},
		{"+8:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSlot(tt.slot))
		})
	}
}

func TestValidDay(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"10/03/2025", true},
		{"01/01/2025", true},
		{"31/12/2026", true},
		{"28/02/2025", true},
		{"29/02/2025", false},
		{"31/04/2025", false},
		{"00/01/2025", false},
		{"01/00/2025", false},
		{"01/13/2025", false},
		{"10/03/2024", false},
		{"10/03/2027", false},
		{"10-03-2025", false},
		{"1/3/2025", false},
		{"10/03/25", false},
		{"aa/bb/cccc", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDay(tt.day))
		})
	}
}

func TestCompositeDate(t *testing.T) {
	date := CompositeDate("10/03/2025", "08:00")
	require.Equal(t, "10/03/2025 08:00", date)

	day, slot := SplitCompositeDate(date)
	assert.Equal(t, "10/03/2025", day)
	assert.Equal(t, "08:00", slot)
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+55 (11) 98765-4321", FormatPhone("11", "987654321"), "mobile numbers split 5-4")
	assert.Equal(t, "+55 (21) 3216-5487", FormatPhone("21", "32165487"), "landlines split 4-4")
}
