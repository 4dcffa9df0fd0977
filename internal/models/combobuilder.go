package models

import "fmt"

// Preset combo names accepted by BuildCombo.
const (
	ComboClassic = "Classic"
	ComboHungry  = "Hungry"
	ComboSpicy   = "Spicy"
	ComboGreen   = "Green"
	ComboCustom  = "Custom Combo"
)

// BuildCombo maps the four preset names to their fixed wrap, drink and
// side, and "Custom Combo" to an empty unnamed combo. Any other name
// is an error; the mapping is closed.
func BuildCombo(name string) (*Combo, error) {
	switch name {
	case ComboClassic:
		c := NewCombo(ComboClassic)
		c.SetWrap(NewTheGodfather())
		c.SetDrink(NewSinginInTheRain())
		c.SetSide(NewTheFrenchConnection())
		return c, nil
	case ComboHungry:
		c := NewCombo(ComboHungry)
		c.SetWrap(NewSpartacus())
		c.SetDrink(NewForrestGump())
		c.SetSide(NewYankeeDoodleDandy())
		return c, nil
	case ComboSpicy:
		c := NewCombo(ComboSpicy)
		c.SetWrap(NewSomeLikeItHot())
		c.SetDrink(NewForrestGump())
		c.SetSide(NewTheFrenchConnection())
		return c, nil
	case ComboGreen:
		c := NewCombo(ComboGreen)
		c.SetWrap(NewTheWizardOfOz())
		c.SetDrink(NewKingKong())
		c.SetSide(NewSnowWhite())
		return c, nil
	case ComboCustom:
		return NewCombo(""), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCombo, name)
	}
}
