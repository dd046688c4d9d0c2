package dto

import (
	"github.com/NolanFinn/Check-Splitter/internal/application/service"
	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
	"github.com/NolanFinn/Check-Splitter/internal/domain/engine"
)

// CheckResponse is the full state plus its computed shares. Every
// mutating endpoint returns this shape so clients can re-render without
// a second round trip.
type CheckResponse struct {
	Items       []check.Item        `json:"items"`
	TaxAmount   float64             `json:"taxAmount"`
	TipAmount   float64             `json:"tipAmount"`
	FeeAmount   float64             `json:"feeAmount"`
	People      []string            `json:"people"`
	Payer       string              `json:"payer"`
	Assignments map[string][]string `json:"assignments"`
	Shares      SharesResponse      `json:"shares"`
}

// SharesResponse is the engine result plus the settlement view. All
// monetary figures are integer cents.
type SharesResponse struct {
	SubtotalCents int64                               `json:"subtotalCents"`
	TaxCents      int64                               `json:"taxCents"`
	TipCents      int64                               `json:"tipCents"`
	FeeCents      int64                               `json:"feeCents"`
	TotalCents    int64                               `json:"totalCents"`
	TaxPercent    float64                             `json:"taxPercent"`
	BaseByPerson  map[string]int64                    `json:"baseByPerson"`
	AddOnByPerson map[string]engine.AddOn             `json:"addOnByPerson"`
	TotalByPerson map[string]int64                    `json:"totalByPerson"`
	ItemBreakdown map[string][]engine.BreakdownLine   `json:"itemBreakdown"`
	Settlements   []engine.Debt                       `json:"settlements"`
}

// NewCheckResponse flattens a service snapshot into the wire shape.
func NewCheckResponse(snap service.Snapshot) CheckResponse {
	return CheckResponse{
		Items:       snap.Check.Items,
		TaxAmount:   snap.Check.TaxAmount,
		TipAmount:   snap.Check.TipAmount,
		FeeAmount:   snap.Check.FeeAmount,
		People:      snap.Check.People,
		Payer:       snap.Check.Payer,
		Assignments: snap.Check.Assignments,
		Shares: SharesResponse{
			SubtotalCents: snap.Result.SubtotalCents,
			TaxCents:      snap.Result.TaxCents,
			TipCents:      snap.Result.TipCents,
			FeeCents:      snap.Result.FeeCents,
			TotalCents:    snap.Result.TotalCents,
			TaxPercent:    snap.Result.TaxPercent,
			BaseByPerson:  snap.Result.BaseByPerson,
			AddOnByPerson: snap.Result.AddOnByPerson,
			TotalByPerson: snap.Result.TotalByPerson,
			ItemBreakdown: snap.Result.ItemBreakdown,
			Settlements:   snap.Settlements,
		},
	}
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
