// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxWindows is the ceiling on simultaneously open windows.
// Every capacity check in the module reads this constant.
const MaxWindows = 5

const windowIDPrefix = "window"

// WindowID identifies a window and its content binding.
// IDs are drawn from a fixed pool of MaxWindows slots ("window1".."window5").
type WindowID string

// WindowIDForSlot returns the ID of the given 1-based pool slot.
func WindowIDForSlot(slot int) WindowID {
	return WindowID(fmt.Sprintf("%s%d", windowIDPrefix, slot))
}

// Slot returns the 1-based pool slot of the ID, or 0 if the ID is not a pool ID.
func (id WindowID) Slot() int {
	s, ok := strings.CutPrefix(string(id), windowIDPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxWindows {
		return 0
	}
	return n
}

// Valid reports whether the ID belongs to the window pool.
func (id WindowID) Valid() bool {
	return id.Slot() != 0
}

func (id WindowID) String() string {
	return string(id)
}

// WindowPool returns every ID of the pool in slot order.
func WindowPool() []WindowID {
	ids := make([]WindowID, 0, MaxWindows)
	for i := 1; i <= MaxWindows; i++ {
		ids = append(ids, WindowIDForSlot(i))
	}
	return ids
}
