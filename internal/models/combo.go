package models

import (
	"fmt"
	"sync"
)

// The combo discount is a restaurant-wide promotional amount shared by
// every combo: changing it reprices every combo already assembled.
var (
	discountMu    sync.RWMutex
	comboDiscount = 0.95
)

// Discount returns the restaurant-wide combo discount
func Discount() float64 {
	discountMu.RLock()
	defer discountMu.RUnlock()
	return comboDiscount
}

// SetDiscount changes the restaurant-wide combo discount. Zero is a
// valid discount; negative amounts are rejected.
func SetDiscount(d float64) error {
	if d < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDiscount, d)
	}
	discountMu.Lock()
	defer discountMu.Unlock()
	comboDiscount = d
	return nil
}

// Combo composes one wrap, one drink and one side. The discount is
// applied only when all three slots are populated.
type Combo struct {
	name  string
	wrap  WrapItem
	drink DrinkItem
	side  SideItem
}

// NewCombo creates an empty combo. An empty name means the combo is a
// custom, unnamed one.
func NewCombo(name string) *Combo {
	return &Combo{name: name}
}

// Name returns the combo's name, or "" when it is unnamed
func (c *Combo) Name() string {
	return c.name
}

// SetName renames the combo
func (c *Combo) SetName(name string) {
	c.name = name
}

// Wrap returns the wrap slot, which may be nil
func (c *Combo) Wrap() WrapItem {
	return c.wrap
}

// SetWrap fills or clears the wrap slot
func (c *Combo) SetWrap(w WrapItem) {
	c.wrap = w
}

// Drink returns the drink slot, which may be nil
func (c *Combo) Drink() DrinkItem {
	return c.drink
}

// SetDrink fills or clears the drink slot
func (c *Combo) SetDrink(d DrinkItem) {
	c.drink = d
}

// Side returns the side slot, which may be nil
func (c *Combo) Side() SideItem {
	return c.side
}

// SetSide fills or clears the side slot
func (c *Combo) SetSide(s SideItem) {
	c.side = s
}

// Clear empties all three slots and drops the name
func (c *Combo) Clear() {
	c.wrap = nil
	c.drink = nil
	c.side = nil
	c.name = ""
}

// Price sums the populated slots, minus the shared discount when all
// three are populated
func (c *Combo) Price() float64 {
	if c.wrap != nil && c.drink != nil && c.side != nil {
		return c.wrap.Price() + c.drink.Price() + c.side.Price() - Discount()
	}
	total := 0.0
	if c.wrap != nil {
		total += c.wrap.Price()
	}
	if c.drink != nil {
		total += c.drink.Price()
	}
	if c.side != nil {
		total += c.side.Price()
	}
	return total
}

// Calories sums the populated slots; the discount never affects calories
func (c *Combo) Calories() int {
	total := 0
	if c.wrap != nil {
		total += c.wrap.Calories()
	}
	if c.drink != nil {
		total += c.drink.Calories()
	}
	if c.side != nil {
		total += c.side.Calories()
	}
	return total
}

// Instructions starts with the combo's name (or "Custom Combo") and
// notes the discount when it applies
func (c *Combo) Instructions() []string {
	instructions := make([]string, 0, 2)
	if c.name != "" {
		instructions = append(instructions, c.name)
	} else {
		instructions = append(instructions, "Custom Combo")
	}
	if c.wrap != nil && c.drink != nil && c.side != nil {
		instructions = append(instructions, fmt.Sprintf("$%v Discount Applied", Discount()))
	}
	return instructions
}

// Items returns the populated slots in wrap, drink, side order
func (c *Combo) Items() []Item {
	items := make([]Item, 0, 3)
	if c.wrap != nil {
		items = append(items, c.wrap)
	}
	if c.drink != nil {
		items = append(items, c.drink)
	}
	if c.side != nil {
		items = append(items, c.side)
	}
	return items
}

// Equals reports whether the other item is a combo with the same name
// and structurally equal slots
func (c *Combo) Equals(other Item) bool {
	o, ok := other.(*Combo)
	if !ok {
		return false
	}
	return c.name == o.name &&
		slotEqual(c.wrap, o.wrap) &&
		slotEqual(c.drink, o.drink) &&
		slotEqual(c.side, o.side)
}

// slotEqual compares two possibly-nil slot items structurally
func slotEqual(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
