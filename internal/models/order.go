package models

import (
	"fmt"
	"sync"
)

// The tax rate is shared by every order, open or not: changing it
// changes the tax of every order in the restaurant.
var (
	taxRateMu sync.RWMutex
	taxRate   = 0.125
)

// TaxRate returns the restaurant-wide tax rate
func TaxRate() float64 {
	taxRateMu.RLock()
	defer taxRateMu.RUnlock()
	return taxRate
}

// SetTaxRate changes the restaurant-wide tax rate. Rates outside
// [0, 1] are rejected.
func SetTaxRate(r float64) error {
	if r < 0 || r > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidTaxRate, r)
	}
	taxRateMu.Lock()
	defer taxRateMu.Unlock()
	taxRate = r
	return nil
}

// Order is a customer's running order: an insertion-ordered list of
// items with derived totals. Membership is by identity, not structural
// equality, so two identical-looking items on one order stay distinct.
type Order struct {
	number int
	items  []Item
}

// NewOrder creates an empty order numbered from the process-wide counter
func NewOrder() *Order {
	return NewOrderNumbered(defaultCounter)
}

// NewOrderNumbered creates an empty order numbered from the given counter
func NewOrderNumbered(counter *OrderCounter) *Order {
	return &Order{number: counter.Next()}
}

// Number returns the order number assigned at construction
func (o *Order) Number() int {
	return o.number
}

// Add appends an item to the order
func (o *Order) Add(item Item) {
	o.items = append(o.items, item)
}

// Remove deletes the first identity match of item from the order. It
// is an error to remove an item the order does not hold.
func (o *Order) Remove(item Item) error {
	for i, it := range o.items {
		if it == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInOrder
}

// Contains reports whether the exact item instance is on the order
func (o *Order) Contains(item Item) bool {
	for _, it := range o.items {
		if it == item {
			return true
		}
	}
	return false
}

// Len returns the number of items on the order
func (o *Order) Len() int {
	return len(o.items)
}

// At returns the item at the given insertion position
func (o *Order) At(i int) Item {
	return o.items[i]
}

// Items returns a snapshot of the order in insertion order
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal sums the item prices before tax
func (o *Order) Subtotal() float64 {
	total := 0.0
	for _, it := range o.items {
		total += it.Price()
	}
	return total
}

// Tax returns the shared tax rate applied to the subtotal
func (o *Order) Tax() float64 {
	return TaxRate() * o.Subtotal()
}

// Total returns the subtotal plus tax
func (o *Order) Total() float64 {
	return o.Subtotal() + o.Tax()
}

// Calories sums the item calories
func (o *Order) Calories() int {
	total := 0
	for _, it := range o.items {
		total += it.Calories()
	}
	return total
}
