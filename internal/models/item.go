package models

import "errors"

// Validation errors raised by the order and combo operations.
var (
	// ErrInvalidDiscount is returned when a negative combo discount is set
	ErrInvalidDiscount = errors.New("combo discount must not be negative")
	// ErrInvalidTaxRate is returned when a tax rate outside [0, 1] is set
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 1")
	// ErrUnknownCombo is returned for a combo name the builder does not know
	ErrUnknownCombo = errors.New("unknown combo name")
	// ErrItemNotInOrder is returned when removing an item the order does not hold
	ErrItemNotInOrder = errors.New("item is not in the order")
)

// Item is the capability every orderable thing exposes. Concrete items
// are pointer types, so comparing two Item values with == is reference
// identity; Equals is structural, per variant.
type Item interface {
	Name() string
	Price() float64
	Calories() int
	Instructions() []string
	Equals(other Item) bool
}

// WrapItem is an Item in the wrap family
type WrapItem interface {
	Item
	Shell() Shell
	SetShell(s Shell)
	Addins() []Addin
	HasAddin(a Addin) bool
	AddAddin(a Addin)
	RemoveAddin(a Addin)
}

// DrinkItem is an Item in the drink family. The unexported marker
// keeps the drink and side families distinct type sets even though
// both are sized.
type DrinkItem interface {
	Item
	Size() Size
	SetSize(s Size)
	isDrink()
}

// SideItem is an Item in the side family
type SideItem interface {
	Item
	Size() Size
	SetSize(s Size)
	isSide()
}

// addinSet tracks which addins are currently on a wrap. The zero value
// is an empty set.
type addinSet map[Addin]bool

func newAddinSet(addins ...Addin) addinSet {
	set := make(addinSet, len(addins))
	for _, a := range addins {
		set[a] = true
	}
	return set
}

// list returns the present addins in menu order
func (s addinSet) list() []Addin {
	out := make([]Addin, 0, len(s))
	for _, a := range Addins {
		if s[a] {
			out = append(out, a)
		}
	}
	return out
}

// instructions returns one "Add X" line per present addin, in menu order
func (s addinSet) instructions() []string {
	var out []string
	for _, a := range Addins {
		if s[a] {
			out = append(out, "Add "+a.String())
		}
	}
	return out
}

func (s addinSet) equals(other addinSet) bool {
	if len(s) != len(other) {
		return false
	}
	for a := range s {
		if !other[a] {
			return false
		}
	}
	return true
}
