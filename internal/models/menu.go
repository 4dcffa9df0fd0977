package models

import "strings"

// caloriesUnbounded stands in for "no upper bound" when a filter is
// called with a negative maximum.
const (
	caloriesUnbounded = 5000
	priceUnbounded    = 5000.0
)

// Wraps returns a fresh instance of every wrap on the menu
func Wraps() []Item {
	return []Item{
		NewTheGodfather(),
		NewWestSideStory(),
		NewSomeLikeItHot(),
		NewTheWizardOfOz(),
		NewSpartacus(),
	}
}

// Drinks returns a fresh instance of every drink at every size
func Drinks() []Item {
	var items []Item
	for _, size := range Sizes {
		d := NewForrestGump()
		d.SetSize(size)
		items = append(items, d)
	}
	for _, size := range Sizes {
		d := NewKingKong()
		d.SetSize(size)
		items = append(items, d)
	}
	for _, size := range Sizes {
		d := NewSinginInTheRain()
		d.SetSize(size)
		items = append(items, d)
	}
	return items
}

// Sides returns a fresh instance of every side at every size
func Sides() []Item {
	var items []Item
	for _, size := range Sizes {
		s := NewSnowWhite()
		s.SetSize(size)
		items = append(items, s)
	}
	for _, size := range Sizes {
		s := NewTheFrenchConnection()
		s.SetSize(size)
		items = append(items, s)
	}
	for _, size := range Sizes {
		s := NewYankeeDoodleDandy()
		s.SetSize(size)
		items = append(items, s)
	}
	return items
}

// Combos returns the four preset combos
func Combos() []*Combo {
	names := []string{ComboClassic, ComboHungry, ComboSpicy, ComboGreen}
	combos := make([]*Combo, 0, len(names))
	for _, name := range names {
		c, _ := BuildCombo(name)
		combos = append(combos, c)
	}
	return combos
}

// FullMenu returns every wrap, drink, side and preset combo
func FullMenu() []Item {
	items := Wraps()
	items = append(items, Drinks()...)
	items = append(items, Sides()...)
	for _, c := range Combos() {
		items = append(items, c)
	}
	return items
}

// FilterKeywords keeps the items whose name contains any of the
// whitespace-separated keywords, case-insensitively. Preset combos are
// matched against their wrap's name, not their own, and appended after
// the item matches. An empty keyword string is an identity
// passthrough. Duplicates, by structural equality, are suppressed.
func FilterKeywords(items []Item, keywords string) []Item {
	if keywords == "" {
		return items
	}
	tokens := strings.Fields(strings.ToLower(keywords))
	var output []Item
	for _, token := range tokens {
		for _, item := range items {
			if item == nil {
				continue
			}
			if strings.Contains(strings.ToLower(item.Name()), token) && !containsEqual(output, item) {
				output = append(output, item)
			}
		}
	}
	for _, token := range tokens {
		for _, combo := range Combos() {
			if strings.Contains(strings.ToLower(combo.Wrap().Name()), token) && !containsEqual(output, combo) {
				output = append(output, combo)
			}
		}
	}
	return output
}

// containsEqual reports whether a structurally equal item is already
// in the list
func containsEqual(items []Item, item Item) bool {
	for _, it := range items {
		if it.Equals(item) {
			return true
		}
	}
	return false
}

// FilterType keeps the items whose family matches an enabled flag, in
// a single order-preserving pass
func FilterType(items []Item, wraps, drinks, sides, combos bool) []Item {
	var output []Item
	for _, item := range items {
		switch item.(type) {
		case WrapItem:
			if wraps {
				output = append(output, item)
			}
		case DrinkItem:
			if drinks {
				output = append(output, item)
			}
		case SideItem:
			if sides {
				output = append(output, item)
			}
		case *Combo:
			if combos {
				output = append(output, item)
			}
		}
	}
	return output
}

// FilterCalories keeps the items whose calories fall in [min, max].
// Both bounds negative is an identity passthrough; a negative max
// alone means unbounded. Bounds are applied literally, so an inverted
// range keeps nothing. Nil entries are skipped.
func FilterCalories(items []Item, min, max int) []Item {
	if min < 0 && max < 0 {
		return items
	}
	if max < 0 {
		max = caloriesUnbounded
	}
	var output []Item
	for _, item := range items {
		if item == nil {
			continue
		}
		if c := item.Calories(); c >= min && c <= max {
			output = append(output, item)
		}
	}
	return output
}

// FilterPrice keeps the items whose price falls in [min, max], with
// the same bound handling as FilterCalories
func FilterPrice(items []Item, min, max float64) []Item {
	if min < 0 && max < 0 {
		return items
	}
	if max < 0 {
		max = priceUnbounded
	}
	var output []Item
	for _, item := range items {
		if item == nil {
			continue
		}
		if p := item.Price(); p >= min && p <= max {
			output = append(output, item)
		}
	}
	return output
}
