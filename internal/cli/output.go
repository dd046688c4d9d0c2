package cli

import (
	"fmt"
	"strings"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
	"github.com/NolanFinn/Check-Splitter/internal/domain/engine"
)

// PrintCheck prints the check summary, per-person details and the
// settlement view to stdout.
func PrintCheck(c *check.Check, result *engine.Result, settlements []engine.Debt) {
	fmt.Printf("Check: %d items, %d people (payer: %s)\n", len(c.Items), len(c.People), c.Payer)
	fmt.Println(strings.Repeat("-", 60))

	for _, item := range c.Items {
		assignees := c.Assignments[item.ID]
		shared := "nobody"
		if len(assignees) > 0 {
			shared = strings.Join(assignees, ", ")
		}
		fmt.Printf("  %dx %-24s $%8.2f  (%s)\n", item.Quantity, item.Description, item.Price, shared)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Subtotal: $%.2f | Tax: $%.2f (%.2f%%) | Tip: $%.2f | Fees: $%.2f\n",
		engine.CentsToDollars(result.SubtotalCents),
		engine.CentsToDollars(result.TaxCents),
		result.TaxPercent,
		engine.CentsToDollars(result.TipCents),
		engine.CentsToDollars(result.FeeCents))
	fmt.Printf("Total due: $%.2f\n\n", engine.CentsToDollars(result.TotalCents))

	for _, person := range c.People {
		addOn := result.AddOnByPerson[person]
		fmt.Printf("%s: $%.2f\n", person, engine.CentsToDollars(result.TotalByPerson[person]))
		for _, line := range result.ItemBreakdown[person] {
			fmt.Printf("  %-28s $%8.2f\n", line.Label, engine.CentsToDollars(line.Cents))
		}
		if addOn.Tax+addOn.Tip+addOn.Fee > 0 {
			fmt.Printf("  %-28s $%8.2f\n", "tax / tip / fees",
				engine.CentsToDollars(addOn.Tax+addOn.Tip+addOn.Fee))
		}
	}

	fmt.Println()
	if len(settlements) == 0 {
		fmt.Println("No one owes anything yet.")
		return
	}
	for _, debt := range settlements {
		fmt.Printf("%s owes %s $%.2f\n", debt.From, debt.To, engine.CentsToDollars(debt.Cents))
	}
}
