package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Filter modes. FilterAll passes everything for the category and
// availability predicates.
const (
	FilterAll               = "all"
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// MachineFilter is a domain-level filter over the machine catalog.
// Zero values pass everything, so the empty filter is the identity.
type MachineFilter struct {
	Search       string           // case-insensitive substring over name, type, description
	Category     string           // exact match; "" or "all" passes
	Condition    MachineCondition // exact match; "" passes
	MinPrice     *decimal.Decimal // inclusive lower bound
	MaxPrice     *decimal.Decimal // inclusive upper bound
	Availability string           // all | available | unavailable; "" passes
}

// Matches reports whether m satisfies every predicate of f (AND semantics).
func (f MachineFilter) Matches(m *Machine) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Type), q) &&
			!strings.Contains(strings.ToLower(m.Description), q) {
			return false
		}
	}

	if f.Category != "" && f.Category != FilterAll && m.Category != f.Category {
		return false
	}

	if f.Condition != "" && m.Condition != f.Condition {
		return false
	}

	if f.MinPrice != nil && m.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && m.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	switch f.Availability {
	case AvailabilityAvailable:
		if !m.Availability {
			return false
		}
	case AvailabilityUnavailable:
		if m.Availability {
			return false
		}
	}

	return true
}

// FilterMachines applies f to machines, preserving relative order.
// Pure function of its inputs: recomputing on any filter change yields
// exactly the subset the current filter tuple selects.
func FilterMachines(machines []Machine, f MachineFilter) []Machine {
	filtered := make([]Machine, 0, len(machines))
	for i := range machines {
		if f.Matches(&machines[i]) {
			filtered = append(filtered, machines[i])
		}
	}
	return filtered
}
