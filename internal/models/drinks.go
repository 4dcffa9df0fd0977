package models

import "fmt"

// drinkBase carries the size every drink is poured in
type drinkBase struct {
	size Size
}

// Size returns the size the drink is poured in
func (d *drinkBase) Size() Size {
	return d.size
}

// SetSize changes the size the drink is poured in
func (d *drinkBase) SetSize(s Size) {
	d.size = s
}

func (d *drinkBase) isDrink() {}

// ForrestGump is a chocolate shake
type ForrestGump struct {
	drinkBase
	chocolate bool
	vanilla   bool
	caramel   bool
	coffee    bool
}

// NewForrestGump builds a Forrest Gump at the default indie size with
// its base chocolate flavor
func NewForrestGump() *ForrestGump {
	return &ForrestGump{
		drinkBase: drinkBase{size: SizeIndie},
		chocolate: true,
	}
}

// Name returns the menu name of the drink
func (d *ForrestGump) Name() string {
	return "Forrest Gump"
}

// Price returns the price for the current size
func (d *ForrestGump) Price() float64 {
	switch d.size {
	case SizeIndie:
		return 5.25
	case SizeStudio:
		return 7.50
	default:
		return 9.00
	}
}

// Calories returns the calorie count for the current size
func (d *ForrestGump) Calories() int {
	switch d.size {
	case SizeIndie:
		return 980
	case SizeStudio:
		return 1365
	default:
		return 1875
	}
}

// Instructions lists the flavor changes from the default recipe
func (d *ForrestGump) Instructions() []string {
	var specials []string
	if !d.chocolate {
		specials = append(specials, "Hold Chocolate")
	}
	if d.vanilla {
		specials = append(specials, "Add Vanilla")
	}
	if d.caramel {
		specials = append(specials, "Add Caramel")
	}
	if d.coffee {
		specials = append(specials, "Add Coffee")
	}
	return specials
}

// Chocolate reports whether the chocolate base is included
func (d *ForrestGump) Chocolate() bool { return d.chocolate }

// SetChocolate includes or holds the chocolate base
func (d *ForrestGump) SetChocolate(v bool) { d.chocolate = v }

// Vanilla reports whether vanilla is added
func (d *ForrestGump) Vanilla() bool { return d.vanilla }

// SetVanilla adds or drops the vanilla
func (d *ForrestGump) SetVanilla(v bool) { d.vanilla = v }

// Caramel reports whether caramel is added
func (d *ForrestGump) Caramel() bool { return d.caramel }

// SetCaramel adds or drops the caramel
func (d *ForrestGump) SetCaramel(v bool) { d.caramel = v }

// Coffee reports whether coffee is added
func (d *ForrestGump) Coffee() bool { return d.coffee }

// SetCoffee adds or drops the coffee
func (d *ForrestGump) SetCoffee(v bool) { d.coffee = v }

// Equals reports whether the other item is a Forrest Gump with the
// same size and flavors
func (d *ForrestGump) Equals(other Item) bool {
	o, ok := other.(*ForrestGump)
	if !ok {
		return false
	}
	return d.size == o.size && d.chocolate == o.chocolate &&
		d.vanilla == o.vanilla && d.caramel == o.caramel && d.coffee == o.coffee
}

func (d *ForrestGump) String() string {
	return fmt.Sprintf("%s Forrest Gump", d.size)
}

// KingKong is a banana smoothie
type KingKong struct {
	drinkBase
	banana     bool
	strawberry bool
	peach      bool
	mango      bool
}

// NewKingKong builds a King Kong at the default indie size with its
// base banana flavor
func NewKingKong() *KingKong {
	return &KingKong{
		drinkBase: drinkBase{size: SizeIndie},
		banana:    true,
	}
}

// Name returns the menu name of the drink
func (d *KingKong) Name() string {
	return "King Kong"
}

// Price returns the price for the current size
func (d *KingKong) Price() float64 {
	switch d.size {
	case SizeIndie:
		return 4.85
	case SizeStudio:
		return 5.95
	default:
		return 7.45
	}
}

// Calories returns the calorie count for the current size
func (d *KingKong) Calories() int {
	switch d.size {
	case SizeIndie:
		return 465
	case SizeStudio:
		return 625
	default:
		return 860
	}
}

// Instructions lists the flavor changes from the default recipe
func (d *KingKong) Instructions() []string {
	var specials []string
	if !d.banana {
		specials = append(specials, "Hold Banana")
	}
	if d.strawberry {
		specials = append(specials, "Add Strawberry")
	}
	if d.peach {
		specials = append(specials, "Add Peach")
	}
	if d.mango {
		specials = append(specials, "Add Mango")
	}
	return specials
}

// Banana reports whether the banana base is included
func (d *KingKong) Banana() bool { return d.banana }

// SetBanana includes or holds the banana base
func (d *KingKong) SetBanana(v bool) { d.banana = v }

// Strawberry reports whether strawberry is added
func (d *KingKong) Strawberry() bool { return d.strawberry }

// SetStrawberry adds or drops the strawberry
func (d *KingKong) SetStrawberry(v bool) { d.strawberry = v }

// Peach reports whether peach is added
func (d *KingKong) Peach() bool { return d.peach }

// SetPeach adds or drops the peach
func (d *KingKong) SetPeach(v bool) { d.peach = v }

// Mango reports whether mango is added
func (d *KingKong) Mango() bool { return d.mango }

// SetMango adds or drops the mango
func (d *KingKong) SetMango(v bool) { d.mango = v }

// Equals reports whether the other item is a King Kong with the same
// size and flavors
func (d *KingKong) Equals(other Item) bool {
	o, ok := other.(*KingKong)
	if !ok {
		return false
	}
	return d.size == o.size && d.banana == o.banana &&
		d.strawberry == o.strawberry && d.peach == o.peach && d.mango == o.mango
}

func (d *KingKong) String() string {
	return fmt.Sprintf("%s King Kong", d.size)
}

// SinginInTheRain is a cherry soda
type SinginInTheRain struct {
	drinkBase
	cherry     bool
	strawberry bool
	cola       bool
	grape      bool
}

// NewSinginInTheRain builds a Singin' in the Rain at the default indie
// size with its base cherry flavor
func NewSinginInTheRain() *SinginInTheRain {
	return &SinginInTheRain{
		drinkBase: drinkBase{size: SizeIndie},
		cherry:    true,
	}
}

// Name returns the menu name of the drink
func (d *SinginInTheRain) Name() string {
	return "Singin' in the Rain"
}

// Price returns the price for the current size
func (d *SinginInTheRain) Price() float64 {
	switch d.size {
	case SizeIndie:
		return 2.75
	case SizeStudio:
		return 3.25
	default:
		return 4.00
	}
}

// Calories returns the calorie count for the current size
func (d *SinginInTheRain) Calories() int {
	switch d.size {
	case SizeIndie:
		return 360
	case SizeStudio:
		return 400
	default:
		return 550
	}
}

// Instructions lists the flavor changes from the default recipe
func (d *SinginInTheRain) Instructions() []string {
	var specials []string
	if !d.cherry {
		specials = append(specials, "Hold Cherry")
	}
	if d.strawberry {
		specials = append(specials, "Add Strawberry")
	}
	if d.cola {
		specials = append(specials, "Add Cola")
	}
	if d.grape {
		specials = append(specials, "Add Grape")
	}
	return specials
}

// Cherry reports whether the cherry base is included
func (d *SinginInTheRain) Cherry() bool { return d.cherry }

// SetCherry includes or holds the cherry base
func (d *SinginInTheRain) SetCherry(v bool) { d.cherry = v }

// Strawberry reports whether strawberry is added
func (d *SinginInTheRain) Strawberry() bool { return d.strawberry }

// SetStrawberry adds or drops the strawberry
func (d *SinginInTheRain) SetStrawberry(v bool) { d.strawberry = v }

// Cola reports whether cola is added
func (d *SinginInTheRain) Cola() bool { return d.cola }

// SetCola adds or drops the cola
func (d *SinginInTheRain) SetCola(v bool) { d.cola = v }

// Grape reports whether grape is added
func (d *SinginInTheRain) Grape() bool { return d.grape }

// SetGrape adds or drops the grape
func (d *SinginInTheRain) SetGrape(v bool) { d.grape = v }

// Equals reports whether the other item is a Singin' in the Rain with
// the same size and flavors
func (d *SinginInTheRain) Equals(other Item) bool {
	o, ok := other.(*SinginInTheRain)
	if !ok {
		return false
	}
	return d.size == o.size && d.cherry == o.cherry &&
		d.strawberry == o.strawberry && d.cola == o.cola && d.grape == o.grape
}

func (d *SinginInTheRain) String() string {
	return fmt.Sprintf("%s Singin' In The Rain", d.size)
}
