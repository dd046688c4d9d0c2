// Package check holds the state of a single check: line items, the people
// splitting it, per-item assignments, the payer, and the aggregate
// surcharge amounts (tax, tip, fee).
//
// The state is owned by the caller and mutated only through the validated
// methods in this package. Invalid mutations return an error and leave the
// state untouched. Monetary amounts are stored as decimal dollars rounded
// to 2 places; all exact arithmetic happens downstream in the engine.
package check

import "math"

// DefaultPerson is the person seeded into a fresh check.
const DefaultPerson = "Me"

// Item is a single line on the check. Price is the total for the line,
// not per-unit. The ID is assigned at creation and never changes.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Check is the full state of one check.
//
// People is kept in insertion order; names are the identity, there is no
// separate numeric ID. Assignments maps an item ID to the names sharing
// that item's cost. Invariant: Payer is always a member of People, and
// People is never empty.
type Check struct {
	Items       []Item              `json:"items"`
	TaxAmount   float64             `json:"taxAmount"`
	TipAmount   float64             `json:"tipAmount"`
	FeeAmount   float64             `json:"feeAmount"`
	People      []string            `json:"people"`
	Payer       string              `json:"payer"`
	Assignments map[string][]string `json:"assignments"`
}

// Default returns a fresh check with a single person and no items.
func Default() *Check {
	return &Check{
		Items:       []Item{},
		People:      []string{DefaultPerson},
		Payer:       DefaultPerson,
		Assignments: map[string][]string{},
	}
}

// Clone returns a deep copy of the check. Callers that hand state across
// a lock boundary should hand out clones.
func (c *Check) Clone() *Check {
	out := &Check{
		Items:       make([]Item, len(c.Items)),
		TaxAmount:   c.TaxAmount,
		TipAmount:   c.TipAmount,
		FeeAmount:   c.FeeAmount,
		People:      append([]string{}, c.People...),
		Payer:       c.Payer,
		Assignments: make(map[string][]string, len(c.Assignments)),
	}
	copy(out.Items, c.Items)
	for id, names := range c.Assignments {
		out.Assignments[id] = append([]string{}, names...)
	}
	return out
}

// HasPerson reports whether name is a member of the check.
func (c *Check) HasPerson(name string) bool {
	for _, p := range c.People {
		if p == name {
			return true
		}
	}
	return false
}

// ItemByID returns the index of the item with the given ID, or -1.
func (c *Check) itemIndex(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Normalize repairs a check loaded from an untrusted snapshot so that the
// package invariants hold: at least one person exists, the payer is a
// member, amounts are finite and non-negative, and every item has an
// assignment entry naming known, distinct people.
func (c *Check) Normalize() {
	if c.Assignments == nil {
		c.Assignments = map[string][]string{}
	}
	if len(c.People) == 0 {
		c.People = []string{DefaultPerson}
	}
	if !c.HasPerson(c.Payer) {
		c.Payer = c.People[0]
	}
	if c.TaxAmount < 0 || !isFinite(c.TaxAmount) {
		c.TaxAmount = 0
	}
	if c.TipAmount < 0 || !isFinite(c.TipAmount) {
		c.TipAmount = 0
	}
	if c.FeeAmount < 0 || !isFinite(c.FeeAmount) {
		c.FeeAmount = 0
	}
	for i := range c.Items {
		if c.Items[i].Price < 0 || !isFinite(c.Items[i].Price) {
			c.Items[i].Price = 0
		}
		if c.Items[i].Quantity < 1 {
			c.Items[i].Quantity = 1
		}
		c.Assignments[c.Items[i].ID] = c.cleanAssignees(c.Assignments[c.Items[i].ID])
	}
}

// cleanAssignees drops names that are not members of the check and
// collapses duplicates, preserving order.
func (c *Check) cleanAssignees(names []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] || !c.HasPerson(name) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// roundToCents rounds a dollar amount to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
