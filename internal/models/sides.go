package models

import "fmt"

// sideBase carries the size every side is served in. Sides have no
// ingredient toggles, so their instructions are always empty.
type sideBase struct {
	size Size
}

// Size returns the size the side is served in
func (s *sideBase) Size() Size {
	return s.size
}

// SetSize changes the size the side is served in
func (s *sideBase) SetSize(sz Size) {
	s.size = sz
}

// Instructions is always empty for a side
func (s *sideBase) Instructions() []string {
	return nil
}

func (s *sideBase) isSide() {}

// SnowWhite is a sliced apples side
type SnowWhite struct {
	sideBase
}

// NewSnowWhite builds a Snow White at the default indie size
func NewSnowWhite() *SnowWhite {
	return &SnowWhite{sideBase{size: SizeIndie}}
}

// Name returns the menu name of the side
func (s *SnowWhite) Name() string {
	return "Snow White"
}

// Price returns the price for the current size
func (s *SnowWhite) Price() float64 {
	switch s.size {
	case SizeIndie:
		return 1.50
	case SizeStudio:
		return 2.25
	default:
		return 3.00
	}
}

// Calories returns the calorie count for the current size
func (s *SnowWhite) Calories() int {
	switch s.size {
	case SizeIndie:
		return 225
	case SizeStudio:
		return 350
	default:
		return 475
	}
}

// Equals reports whether the other item is a Snow White of the same size
func (s *SnowWhite) Equals(other Item) bool {
	o, ok := other.(*SnowWhite)
	return ok && s.size == o.size
}

func (s *SnowWhite) String() string {
	return fmt.Sprintf("%s Snow White", s.size)
}

// TheFrenchConnection is a french fries side
type TheFrenchConnection struct {
	sideBase
}

// NewTheFrenchConnection builds a French Connection at the default
// indie size
func NewTheFrenchConnection() *TheFrenchConnection {
	return &TheFrenchConnection{sideBase{size: SizeIndie}}
}

// Name returns the menu name of the side
func (s *TheFrenchConnection) Name() string {
	return "The French Connection"
}

// Price returns the price for the current size
func (s *TheFrenchConnection) Price() float64 {
	switch s.size {
	case SizeIndie:
		return 2.75
	case SizeStudio:
		return 4.85
	default:
		return 5.25
	}
}

// Calories returns the calorie count for the current size
func (s *TheFrenchConnection) Calories() int {
	switch s.size {
	case SizeIndie:
		return 550
	case SizeStudio:
		return 700
	default:
		return 950
	}
}

// Equals reports whether the other item is a French Connection of the
// same size
func (s *TheFrenchConnection) Equals(other Item) bool {
	o, ok := other.(*TheFrenchConnection)
	return ok && s.size == o.size
}

func (s *TheFrenchConnection) String() string {
	return fmt.Sprintf("%s The French Connection", s.size)
}

// YankeeDoodleDandy is a macaroni and cheese side
type YankeeDoodleDandy struct {
	sideBase
}

// NewYankeeDoodleDandy builds a Yankee Doodle Dandy at the default
// indie size
func NewYankeeDoodleDandy() *YankeeDoodleDandy {
	return &YankeeDoodleDandy{sideBase{size: SizeIndie}}
}

// Name returns the menu name of the side
func (s *YankeeDoodleDandy) Name() string {
	return "Yankee Doodle Dandy"
}

// Price returns the price for the current size
func (s *YankeeDoodleDandy) Price() float64 {
	switch s.size {
	case SizeIndie:
		return 2.25
	case SizeStudio:
		return 3.65
	default:
		return 6.25
	}
}

// Calories returns the calorie count for the current size
func (s *YankeeDoodleDandy) Calories() int {
	switch s.size {
	case SizeIndie:
		return 400
	case SizeStudio:
		return 650
	default:
		return 875
	}
}

// Equals reports whether the other item is a Yankee Doodle Dandy of
// the same size
func (s *YankeeDoodleDandy) Equals(other Item) bool {
	o, ok := other.(*YankeeDoodleDandy)
	return ok && s.size == o.size
}

func (s *YankeeDoodleDandy) String() string {
	return fmt.Sprintf("%s Yankee Doodle Dandy", s.size)
}
