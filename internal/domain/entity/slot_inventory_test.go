package entity

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotInventorySetSemantics(t *testing.T) {
	inv := NewSlotInventory()

	require.True(t, inv.AddDay("10/03/2025"), "first AddDay must report creation")
	assert.False(t, inv.AddDay("10/03/2025"), "second AddDay must be a no-op")

	require.True(t, inv.AddSlot("10/03/2025", "08:00"))
	assert.False(t, inv.AddSlot("10/03/2025", "08:00"), "duplicate AddSlot must report false")
	assert.Equal(t, 1, inv.SlotCount("10/03/2025"))
}

func TestSlotInventoryEmptyDayIsValidKey(t *testing.T) {
	inv := NewSlotInventory()
	inv.AddDay("10/03/2025")
	inv.AddSlot("10/03/2025", "08:00")

	require.True(t, inv.RemoveSlot("10/03/2025", "08:00"))
	assert.True(t, inv.HasDay("10/03/2025"), "day key must survive removal of its last slot")
	assert.False(t, inv.HasDay("11/03/2025"))
}

func TestSlotInventoryRemoveDay(t *testing.T) {
	inv := NewSlotInventory()
	inv.AddDay("10/03/2025")
	inv.AddSlot("10/03/2025", "08:00")
	inv.AddSlot("10/03/2025", "08:30")

	require.True(t, inv.RemoveDay("10/03/2025"))
	assert.False(t, inv.HasDay("10/03/2025"))
	assert.False(t, inv.RemoveDay("10/03/2025"), "removing an absent day must report false")
	assert.True(t, inv.Empty())
}

func TestSlotInventoryOrdering(t *testing.T) {
	inv := NewSlotInventory()
	inv.AddDay("20/05/2025")
	inv.AddDay("10/03/2025")
	inv.AddSlot("20/05/2025", "10:00")
	inv.AddSlot("20/05/2025", "08:00")

	assert.Equal(t, []string{"20/05/2025", "10/03/2025"}, inv.Days(), "days keep insertion order")

	stored, ok := inv.SlotsFor("20/05/2025")
	require.True(t, ok)
	assert.Equal(t, []string{"10:00", "08:00"}, stored, "stored slots keep insertion order")

	sorted, ok := inv.SortedSlotsFor("20/05/2025")
	require.True(t, ok)
	assert.Equal(t, []string{"08:00", "10:00"}, sorted, "display slots are sorted ascending")
}

func TestSlotInventoryJSONRoundTrip(t *testing.T) {
	inv := NewSlotInventory()
	inv.AddDay("20/05/2025")
	inv.AddSlot("20/05/2025", "10:00")
	inv.AddSlot("20/05/2025", "08:00")
	inv.AddDay("10/03/2025")

	data, err := json.Marshal(inv)
	require.NoError(t, err)
	// Bare day-keyed object, no wrapping key, in insertion order.
	assert.Equal(t, `{"20/05/2025":["10:00","08:00"],"10/03/2025":[]}`, string(data))

	decoded := NewSlotInventory()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, inv.Days(), decoded.Days())

	slots, ok := decoded.SlotsFor("20/05/2025")
	require.True(t, ok)
	assert.Equal(t, []string{"10:00", "08:00"}, slots)
}

func TestSlotInventoryUnmarshalCollapsesDuplicates(t *testing.T) {
	decoded := NewSlotInventory()
	require.NoError(t, json.Unmarshal([]byte(`{"10/03/2025":["08:00","08:00","08:30"]}`), decoded))
	assert.Equal(t, 2, decoded.SlotCount("10/03/2025"), "duplicate slots collapse on load")
}
