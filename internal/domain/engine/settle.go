package engine

// Debt is one settlement edge: From owes To the given amount.
type Debt struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Cents int64  `json:"cents"`
}

// Settlements lists who owes the payer, in the check's people order.
// The payer's own total is not owed to themself, and people with a zero
// total are omitted.
func Settlements(r *Result, payer string, people []string) []Debt {
	debts := []Debt{}
	for _, person := range people {
		if person == payer {
			continue
		}
		if total := r.TotalByPerson[person]; total > 0 {
			debts = append(debts, Debt{From: person, To: payer, Cents: total})
		}
	}
	return debts
}
