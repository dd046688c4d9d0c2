package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
)

func TestSettlements(t *testing.T) {
	c := buildCheck(
		[]string{"Me", "Alice", "Bob"},
		[]check.Item{{ID: "i1", Description: "Dinner", Quantity: 1, Price: 30.00}},
		map[string][]string{"i1": {"Me", "Alice", "Bob"}},
	)
	c.Payer = "Alice"

	r := Compute(c)
	debts := Settlements(r, c.Payer, c.People)

	// People order preserved, payer omitted
	assert.Equal(t, []Debt{
		{From: "Me", To: "Alice", Cents: 1000},
		{From: "Bob", To: "Alice", Cents: 1000},
	}, debts)
}

func TestSettlements_SkipsZeroTotals(t *testing.T) {
	c := buildCheck(
		[]string{"Me", "Freeloader"},
		[]check.Item{{ID: "i1", Description: "Coffee", Quantity: 1, Price: 4.00}},
		map[string][]string{"i1": {"Me"}},
	)

	r := Compute(c)
	debts := Settlements(r, "Me", c.People)

	assert.Empty(t, debts)
}
