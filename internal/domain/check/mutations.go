package check

import (
	"strings"

	"github.com/google/uuid"
)

// AddItem appends a validated item and assigns it to every current person.
func (c *Check) AddItem(description string, quantity int, price float64) (Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, ErrEmptyDescription
	}
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	if !isFinite(price) || price < 0 {
		return Item{}, ErrInvalidPrice
	}

	item := Item{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		Price:       roundToCents(price),
	}
	c.Items = append(c.Items, item)
	c.Assignments[item.ID] = append([]string{}, c.People...)
	return item, nil
}

// UpdateItem edits the description, quantity and price of an existing item.
// The item's ID and assignment set are untouched.
func (c *Check) UpdateItem(id, description string, quantity int, price float64) (Item, error) {
	idx := c.itemIndex(id)
	if idx < 0 {
		return Item{}, ErrItemNotFound
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, ErrEmptyDescription
	}
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	if !isFinite(price) || price < 0 {
		return Item{}, ErrInvalidPrice
	}

	c.Items[idx].Description = description
	c.Items[idx].Quantity = quantity
	c.Items[idx].Price = roundToCents(price)
	return c.Items[idx], nil
}

// RemoveItem deletes an item and its assignment entry.
func (c *Check) RemoveItem(id string) error {
	idx := c.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	delete(c.Assignments, id)
	return nil
}

// AddPerson adds a new person to the check. When joinExistingItems is true
// the person is also added to every existing item's assignment set;
// otherwise they only participate in items created after they joined.
func (c *Check) AddPerson(name string, joinExistingItems bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if c.HasPerson(name) {
		return ErrDuplicatePerson
	}

	c.People = append(c.People, name)
	for _, item := range c.Items {
		if joinExistingItems {
			c.Assignments[item.ID] = append(c.Assignments[item.ID], name)
		} else if _, ok := c.Assignments[item.ID]; !ok {
			c.Assignments[item.ID] = []string{}
		}
	}
	return nil
}

// RemovePerson removes a person, strips them from every assignment, and
// reassigns the payer to the first remaining person if needed. Removing
// the last person is rejected.
func (c *Check) RemovePerson(name string) error {
	if !c.HasPerson(name) {
		return ErrUnknownPerson
	}
	if len(c.People) == 1 {
		return ErrLastPerson
	}

	people := c.People[:0]
	for _, p := range c.People {
		if p != name {
			people = append(people, p)
		}
	}
	c.People = people

	for id, names := range c.Assignments {
		kept := names[:0]
		for _, n := range names {
			if n != name {
				kept = append(kept, n)
			}
		}
		c.Assignments[id] = kept
	}

	if c.Payer == name {
		c.Payer = c.People[0]
	}
	return nil
}

// SetPayer changes who fronted the check.
func (c *Check) SetPayer(name string) error {
	if !c.HasPerson(name) {
		return ErrUnknownPerson
	}
	c.Payer = name
	return nil
}

// SetSurcharges sets the aggregate dollar amounts for tax, tip and fees.
// Amounts are rounded to cents here so every downstream computation sees
// the same 2-decimal values the user confirmed.
func (c *Check) SetSurcharges(tax, tip, fee float64) error {
	for _, amount := range []float64{tax, tip, fee} {
		if !isFinite(amount) || amount < 0 {
			return ErrNegativeAmount
		}
	}
	c.TaxAmount = roundToCents(tax)
	c.TipAmount = roundToCents(tip)
	c.FeeAmount = roundToCents(fee)
	return nil
}

// ToggleAssignment flips whether person shares the cost of the given item.
func (c *Check) ToggleAssignment(itemID, person string) error {
	if c.itemIndex(itemID) < 0 {
		return ErrItemNotFound
	}
	if !c.HasPerson(person) {
		return ErrUnknownPerson
	}

	names := c.Assignments[itemID]
	for i, n := range names {
		if n == person {
			c.Assignments[itemID] = append(names[:i], names[i+1:]...)
			return nil
		}
	}
	c.Assignments[itemID] = append(names, person)
	return nil
}
