package models

import "math"

// CustomItem is a user-defined menu entry. It satisfies Item like any
// catalog item, so it can sit on an order next to them; it never has
// preparation instructions.
type CustomItem struct {
	name     string
	price    float64
	calories int
}

// NewCustomItem creates a custom item, rounding the price to cents
func NewCustomItem(name string, price float64, calories int) *CustomItem {
	c := &CustomItem{name: name, calories: calories}
	c.SetPrice(price)
	return c
}

// Name returns the item's name
func (c *CustomItem) Name() string {
	return c.name
}

// SetName renames the item
func (c *CustomItem) SetName(name string) {
	c.name = name
}

// Price returns the item's price
func (c *CustomItem) Price() float64 {
	return c.price
}

// SetPrice sets the price, rounded to two decimal places
func (c *CustomItem) SetPrice(price float64) {
	c.price = math.Round(price*100) / 100
}

// Calories returns the item's calorie count
func (c *CustomItem) Calories() int {
	return c.calories
}

// SetCalories sets the calorie count
func (c *CustomItem) SetCalories(calories int) {
	c.calories = calories
}

// Instructions is always empty for a custom item
func (c *CustomItem) Instructions() []string {
	return nil
}

// Equals reports whether the other item is a custom item with the
// same name, price and calories
func (c *CustomItem) Equals(other Item) bool {
	o, ok := other.(*CustomItem)
	if !ok {
		return false
	}
	return c.name == o.name && c.price == o.price && c.calories == o.calories
}

func (c *CustomItem) String() string {
	return c.name
}
