package models

import (
	"fmt"
	"strconv"
)

// HookCount is the number of webhook endpoints, one per pipeline stage.
const HookCount = 25

// HookType identifies an inbound webhook endpoint, numbered 1..HookCount.
type HookType int

// Valid reports whether h is inside 1..HookCount.
func (h HookType) Valid() bool {
	return h >= 1 && h <= HookCount
}

// Index is the zero-based position of h in per-hook arrays.
func (h HookType) Index() int {
	return int(h) - 1
}

// CountColumn is the wide-row column holding h's event count.
func (h HookType) CountColumn() string {
	return fmt.Sprintf("hook%d_count", int(h))
}

// SumColumn is the wide-row column holding h's amount sum.
func (h HookType) SumColumn() string {
	return fmt.Sprintf("hook%d_sum", int(h))
}

func (h HookType) String() string {
	return strconv.Itoa(int(h))
}

// ParseHookType parses a decimal hook number. It does not check the range.
func ParseHookType(s string) (HookType, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hook number %q: %w", s, err)
	}
	return HookType(n), nil
}

// AllHookTypes returns 1..HookCount in ascending order.
func AllHookTypes() []HookType {
	hooks := make([]HookType, HookCount)
	for i := range hooks {
		hooks[i] = HookType(i + 1)
	}
	return hooks
}
