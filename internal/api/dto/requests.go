package dto

// AddItemRequest creates a new line item.
type AddItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// UpdateItemRequest edits an existing line item. All fields are required;
// the handler applies the full triple or nothing.
type UpdateItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// AddPersonRequest adds a person to the check.
type AddPersonRequest struct {
	Name string `json:"name"`
}

// SetPayerRequest changes who fronted the check.
type SetPayerRequest struct {
	Name string `json:"name"`
}

// SetSurchargesRequest sets the aggregate dollar amounts. These are
// dollar figures, not percentages.
type SetSurchargesRequest struct {
	TaxAmount float64 `json:"taxAmount"`
	TipAmount float64 `json:"tipAmount"`
	FeeAmount float64 `json:"feeAmount"`
}
