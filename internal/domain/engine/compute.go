// Package engine computes per-person shares for a check.
//
// Compute is a pure function: it reads a check snapshot, never mutates it,
// and returns the same result for the same input. All arithmetic is done
// in integer cents so that every distribution conserves the total exactly,
// with no rounding loss or gain. Remainder cents are placed by an explicit
// deterministic comparator (largest fractional share first, ties broken by
// ascending name), never by map iteration order.
package engine

import (
	"fmt"
	"sort"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
)

// AddOn holds one person's share of each surcharge, in cents.
type AddOn struct {
	Tax int64 `json:"tax"`
	Tip int64 `json:"tip"`
	Fee int64 `json:"fee"`
}

// BreakdownLine is one labeled entry in a person's item-cost breakdown.
type BreakdownLine struct {
	Label string `json:"label"`
	Cents int64  `json:"cents"`
}

// Result is the full output of one computation. Every known person has an
// entry in each per-person map, even if their share is zero.
type Result struct {
	SubtotalCents int64   `json:"subtotalCents"`
	TaxCents      int64   `json:"taxCents"`
	TipCents      int64   `json:"tipCents"`
	FeeCents      int64   `json:"feeCents"`
	TotalCents    int64   `json:"totalCents"`
	TaxPercent    float64 `json:"taxPercent"`

	BaseByPerson  map[string]int64           `json:"baseByPerson"`
	AddOnByPerson map[string]AddOn           `json:"addOnByPerson"`
	TotalByPerson map[string]int64           `json:"totalByPerson"`
	ItemBreakdown map[string][]BreakdownLine `json:"itemBreakdown"`
}

// Compute distributes every cent of the check across its people.
//
// Items are split evenly among their assignees; an item with no assignees
// still counts toward the subtotal but toward nobody's share. Tax, tip and
// fee are then distributed independently, proportionally to each person's
// item-cost base, over the people whose base is nonzero.
func Compute(c *check.Check) *Result {
	r := &Result{
		TaxCents:      DollarsToCents(c.TaxAmount),
		TipCents:      DollarsToCents(c.TipAmount),
		FeeCents:      DollarsToCents(c.FeeAmount),
		BaseByPerson:  make(map[string]int64, len(c.People)),
		AddOnByPerson: make(map[string]AddOn, len(c.People)),
		TotalByPerson: make(map[string]int64, len(c.People)),
		ItemBreakdown: make(map[string][]BreakdownLine, len(c.People)),
	}
	for _, p := range c.People {
		r.BaseByPerson[p] = 0
		r.AddOnByPerson[p] = AddOn{}
		r.ItemBreakdown[p] = []BreakdownLine{}
	}

	for _, item := range c.Items {
		priceCents := DollarsToCents(item.Price)
		r.SubtotalCents += priceCents

		assignees := c.Assignments[item.ID]
		if len(assignees) == 0 {
			continue
		}

		label := fmt.Sprintf("%s share", item.Description)
		for name, cents := range splitEvenly(priceCents, assignees) {
			r.BaseByPerson[name] += cents
			r.ItemBreakdown[name] = append(r.ItemBreakdown[name], BreakdownLine{Label: label, Cents: cents})
		}
	}

	var participants []string
	for _, p := range c.People {
		if r.BaseByPerson[p] > 0 {
			participants = append(participants, p)
		}
	}

	tax := distributeProportionally(participants, r.BaseByPerson, r.TaxCents)
	tip := distributeProportionally(participants, r.BaseByPerson, r.TipCents)
	fee := distributeProportionally(participants, r.BaseByPerson, r.FeeCents)

	for _, p := range c.People {
		addOn := AddOn{Tax: tax[p], Tip: tip[p], Fee: fee[p]}
		r.AddOnByPerson[p] = addOn
		r.TotalByPerson[p] = r.BaseByPerson[p] + addOn.Tax + addOn.Tip + addOn.Fee
	}

	r.TotalCents = r.SubtotalCents + r.TaxCents + r.TipCents + r.FeeCents
	if r.SubtotalCents > 0 {
		r.TaxPercent = float64(r.TaxCents) / float64(r.SubtotalCents) * 100
	}
	return r
}

// splitEvenly divides priceCents among the assignees: everyone gets the
// floor share, and the remainder cents go one apiece to the assignees with
// the largest fractional share. The fractional parts of an even split are
// identical by construction, so the ordering reduces to ascending name,
// but the comparator keeps the same discipline as the surcharge pass.
func splitEvenly(priceCents int64, assignees []string) map[string]int64 {
	n := int64(len(assignees))
	floor := priceCents / n
	remainder := priceCents - floor*n

	ranked := append([]string{}, assignees...)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i] < ranked[j]
	})

	shares := make(map[string]int64, len(assignees))
	for _, name := range assignees {
		shares[name] = floor
	}
	for i := int64(0); i < remainder; i++ {
		shares[ranked[i]]++
	}
	return shares
}

// distributeProportionally splits totalCents across the participants in
// proportion to their base cost. Each participant gets the floor of their
// exact share; leftover cents go one apiece to participants ranked by
// descending fractional remainder, ties broken by ascending name. The
// fractional ranking compares exact integer remainders over the common
// denominator, so no floating point is involved.
func distributeProportionally(participants []string, baseByPerson map[string]int64, totalCents int64) map[string]int64 {
	out := make(map[string]int64, len(participants))
	for _, p := range participants {
		out[p] = 0
	}
	if len(participants) == 0 || totalCents == 0 {
		return out
	}

	var baseTotal int64
	for _, p := range participants {
		baseTotal += baseByPerson[p]
	}
	if baseTotal == 0 {
		return out
	}

	type allocation struct {
		person string
		floor  int64
		frac   int64 // numerator of the fractional part over baseTotal
	}

	allocations := make([]allocation, len(participants))
	var assigned int64
	for i, p := range participants {
		exact := totalCents * baseByPerson[p]
		floor := exact / baseTotal
		allocations[i] = allocation{person: p, floor: floor, frac: exact % baseTotal}
		assigned += floor
	}

	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].frac != allocations[j].frac {
			return allocations[i].frac > allocations[j].frac
		}
		return allocations[i].person < allocations[j].person
	})

	for _, a := range allocations {
		out[a.person] = a.floor
	}
	remaining := totalCents - assigned
	for i := int64(0); i < remaining; i++ {
		out[allocations[i].person]++
	}
	return out
}
