package entity

import (
	"bytes"
	"sort"

	json "github.com/goccy/go-json"
)

// SlotInventory maps a clinic day to its available slots. Days iterate in
// insertion order and each day's slots behave as a set even though they are
// stored as a list: a slot appears at most once per day. A day with zero
// slots is still a valid key, distinct from an absent day.
//
// Slots keep their insertion order in storage; callers that display them
// use SortedSlotsFor.
type SlotInventory struct {
	days  []string
	slots map[string][]string
}

func NewSlotInventory() *SlotInventory {
	return &SlotInventory{slots: make(map[string][]string)}
}

// Days returns the inventory's day keys in insertion order.
func (inv *SlotInventory) Days() []string {
	days := make([]string, len(inv.days))
	copy(days, inv.days)
	return days
}

// HasDay reports whether the day exists as a key, empty or not.
func (inv *SlotInventory) HasDay(day string) bool {
	_, ok := inv.slots[day]
	return ok
}

// SlotsFor returns the day's slots in storage (insertion) order.
func (inv *SlotInventory) SlotsFor(day string) ([]string, bool) {
	slots, ok := inv.slots[day]
	if !ok {
		return nil, false
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return out, true
}

// SortedSlotsFor returns the day's slots in ascending order for display.
func (inv *SlotInventory) SortedSlotsFor(day string) ([]string, bool) {
	slots, ok := inv.SlotsFor(day)
	if !ok {
		return nil, false
	}
	sort.Strings(slots)
	return slots, true
}

// HasSlot reports whether the slot is currently available on the day.
func (inv *SlotInventory) HasSlot(day, slot string) bool {
	for _, s := range inv.slots[day] {
		if s == slot {
			return true
		}
	}
	return false
}

// AddDay creates the day key if absent and reports whether it was created.
// An existing day is left untouched.
func (inv *SlotInventory) AddDay(day string) bool {
	if inv.HasDay(day) {
		return false
	}
	inv.days = append(inv.days, day)
	inv.slots[day] = []string{}
	return true
}

// AddSlot appends the slot to an existing day. It reports false when the
// slot is already present, leaving the day unchanged.
func (inv *SlotInventory) AddSlot(day, slot string) bool {
	if inv.HasSlot(day, slot) {
		return false
	}
	inv.slots[day] = append(inv.slots[day], slot)
	return true
}

// RemoveSlot deletes the slot from the day, reporting whether it was found.
// The day key is retained even when its last slot is removed.
func (inv *SlotInventory) RemoveSlot(day, slot string) bool {
	slots, ok := inv.slots[day]
	if !ok {
		return false
	}
	for i, s := range slots {
		if s == slot {
			inv.slots[day] = append(slots[:i], slots[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveDay deletes the day and all its slots, reporting whether it existed.
func (inv *SlotInventory) RemoveDay(day string) bool {
	if !inv.HasDay(day) {
		return false
	}
	delete(inv.slots, day)
	for i, d := range inv.days {
		if d == day {
			inv.days = append(inv.days[:i], inv.days[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of day keys.
func (inv *SlotInventory) Len() int {
	return len(inv.days)
}

// SlotCount returns the number of available slots on the day.
func (inv *SlotInventory) SlotCount(day string) int {
	return len(inv.slots[day])
}

// Empty reports whether the inventory holds no days at all.
func (inv *SlotInventory) Empty() bool {
	return len(inv.days) == 0
}

// MarshalJSON encodes the inventory as a bare JSON object keyed by day,
// preserving day insertion order and slot storage order.
func (inv *SlotInventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range inv.days {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(day)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		slots, err := json.Marshal(inv.slots[day])
		if err != nil {
			return nil, err
		}
		buf.Write(slots)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the bare day-keyed object, keeping the file's key
// order as the inventory's day order and collapsing any duplicate slots.
func (inv *SlotInventory) UnmarshalJSON(data []byte) error {
	inv.days = nil
	inv.slots = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		day, ok := tok.(string)
		if !ok {
			continue
		}
		var slots []string
		if err := dec.Decode(&slots); err != nil {
			return err
		}
		inv.AddDay(day)
		for _, slot := range slots {
			inv.AddSlot(day, slot)
		}
	}
	_, err := dec.Token() // closing brace
	return err
}
