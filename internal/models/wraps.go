package models

import "fmt"

// wrapBase carries the attributes every wrap shares: the shell it is
// rolled in and the set of addins currently on it.
type wrapBase struct {
	shell  Shell
	addins addinSet
}

// Shell returns the shell the wrap is rolled in
func (w *wrapBase) Shell() Shell {
	return w.shell
}

// SetShell changes the shell the wrap is rolled in
func (w *wrapBase) SetShell(s Shell) {
	w.shell = s
}

// Addins returns the addins currently on the wrap, in menu order
func (w *wrapBase) Addins() []Addin {
	return w.addins.list()
}

// HasAddin reports whether the addin is currently on the wrap
func (w *wrapBase) HasAddin(a Addin) bool {
	return w.addins[a]
}

// AddAddin puts an addin on the wrap
func (w *wrapBase) AddAddin(a Addin) {
	w.addins[a] = true
}

// RemoveAddin takes an addin off the wrap
func (w *wrapBase) RemoveAddin(a Addin) {
	delete(w.addins, a)
}

// TheGodfather is a pepperoni and sausage wrap in a stromboli shell
type TheGodfather struct {
	wrapBase
	pepperoni bool
	sausage   bool
	marinara  bool
	cheese    bool
}

// NewTheGodfather builds The Godfather with its default shell, addins
// and ingredients
func NewTheGodfather() *TheGodfather {
	return &TheGodfather{
		wrapBase:  wrapBase{shell: ShellStromboli, addins: newAddinSet(AddinPeppers, AddinOnions)},
		pepperoni: true,
		sausage:   true,
		marinara:  true,
		cheese:    true,
	}
}

// Name returns the menu name of the wrap
func (w *TheGodfather) Name() string {
	return "The Godfather"
}

// Price returns the price for the current shell
func (w *TheGodfather) Price() float64 {
	switch w.shell {
	case ShellStromboli:
		return 9.65
	case ShellSpinach:
		return 9.15
	default:
		return 8.90
	}
}

// Calories returns the calorie count, which does not vary by shell
func (w *TheGodfather) Calories() int {
	return 1268
}

// Instructions lists the preparation changes from the default recipe
func (w *TheGodfather) Instructions() []string {
	var specials []string
	if !w.pepperoni {
		specials = append(specials, "Hold Pepperoni")
	}
	if !w.sausage {
		specials = append(specials, "Hold Sausage")
	}
	if !w.marinara {
		specials = append(specials, "Hold Marinara")
	}
	if !w.cheese {
		specials = append(specials, "Hold Cheese")
	}
	return append(specials, w.addins.instructions()...)
}

// Pepperoni reports whether pepperoni is included
func (w *TheGodfather) Pepperoni() bool { return w.pepperoni }

// SetPepperoni includes or holds the pepperoni
func (w *TheGodfather) SetPepperoni(v bool) { w.pepperoni = v }

// Sausage reports whether sausage is included
func (w *TheGodfather) Sausage() bool { return w.sausage }

// SetSausage includes or holds the sausage
func (w *TheGodfather) SetSausage(v bool) { w.sausage = v }

// Marinara reports whether marinara is included
func (w *TheGodfather) Marinara() bool { return w.marinara }

// SetMarinara includes or holds the marinara
func (w *TheGodfather) SetMarinara(v bool) { w.marinara = v }

// Cheese reports whether cheese is included
func (w *TheGodfather) Cheese() bool { return w.cheese }

// SetCheese includes or holds the cheese
func (w *TheGodfather) SetCheese(v bool) { w.cheese = v }

// Equals reports whether the other item is a Godfather with the same
// shell, addins and ingredients
func (w *TheGodfather) Equals(other Item) bool {
	o, ok := other.(*TheGodfather)
	if !ok {
		return false
	}
	return w.shell == o.shell && w.addins.equals(o.addins) &&
		w.pepperoni == o.pepperoni && w.sausage == o.sausage &&
		w.marinara == o.marinara && w.cheese == o.cheese
}

func (w *TheGodfather) String() string {
	return fmt.Sprintf("The Godfather in a %s Shell", w.shell)
}

// WestSideStory is a corned beef and cabbage wrap in a whole grain shell
type WestSideStory struct {
	wrapBase
	cornedBeef bool
	cabbage    bool
	cheese     bool
}

// NewWestSideStory builds West Side Story with its default shell,
// addins and ingredients
func NewWestSideStory() *WestSideStory {
	return &WestSideStory{
		wrapBase:   wrapBase{shell: ShellWholeGrain, addins: newAddinSet(AddinOnions, AddinPickles, AddinMustard)},
		cornedBeef: true,
		cabbage:    true,
		cheese:     true,
	}
}

// Name returns the menu name of the wrap
func (w *WestSideStory) Name() string {
	return "West Side Story"
}

// Price returns the price for the current shell
func (w *WestSideStory) Price() float64 {
	switch w.shell {
	case ShellWholeGrain:
		return 8.75
	case ShellSpinach:
		return 9.00
	default:
		return 9.50
	}
}

// Calories returns the calorie count, which does not vary by shell
func (w *WestSideStory) Calories() int {
	return 1240
}

// Instructions lists the preparation changes from the default recipe
func (w *WestSideStory) Instructions() []string {
	var specials []string
	if !w.cornedBeef {
		specials = append(specials, "Hold Corned Beef")
	}
	if !w.cabbage {
		specials = append(specials, "Hold Cabbage")
	}
	if !w.cheese {
		specials = append(specials, "Hold Cheese")
	}
	return append(specials, w.addins.instructions()...)
}

// CornedBeef reports whether corned beef is included
func (w *WestSideStory) CornedBeef() bool { return w.cornedBeef }

// SetCornedBeef includes or holds the corned beef
func (w *WestSideStory) SetCornedBeef(v bool) { w.cornedBeef = v }

// Cabbage reports whether cabbage is included
func (w *WestSideStory) Cabbage() bool { return w.cabbage }

// SetCabbage includes or holds the cabbage
func (w *WestSideStory) SetCabbage(v bool) { w.cabbage = v }

// Cheese reports whether cheese is included
func (w *WestSideStory) Cheese() bool { return w.cheese }

// SetCheese includes or holds the cheese
func (w *WestSideStory) SetCheese(v bool) { w.cheese = v }

// Equals reports whether the other item is a West Side Story with the
// same shell, addins and ingredients
func (w *WestSideStory) Equals(other Item) bool {
	o, ok := other.(*WestSideStory)
	if !ok {
		return false
	}
	return w.shell == o.shell && w.addins.equals(o.addins) &&
		w.cornedBeef == o.cornedBeef && w.cabbage == o.cabbage && w.cheese == o.cheese
}

func (w *WestSideStory) String() string {
	return fmt.Sprintf("West Side Story in a %s Shell", w.shell)
}

// SomeLikeItHot is a buffalo chicken wrap in a whole grain shell
type SomeLikeItHot struct {
	wrapBase
	chicken bool
	cheese  bool
}

// NewSomeLikeItHot builds Some Like It Hot with its default shell,
// addins and ingredients
func NewSomeLikeItHot() *SomeLikeItHot {
	return &SomeLikeItHot{
		wrapBase: wrapBase{shell: ShellWholeGrain, addins: newAddinSet(AddinOnions, AddinPeppers, AddinBuffaloSauce)},
		chicken:  true,
		cheese:   true,
	}
}

// Name returns the menu name of the wrap
func (w *SomeLikeItHot) Name() string {
	return "Some Like it Hot"
}

// Price returns the price for the current shell
func (w *SomeLikeItHot) Price() float64 {
	switch w.shell {
	case ShellWholeGrain:
		return 11.45
	case ShellSpinach:
		return 11.70
	default:
		return 12.20
	}
}

// Calories returns the calorie count, which does not vary by shell
func (w *SomeLikeItHot) Calories() int {
	return 1370
}

// Instructions lists the preparation changes from the default recipe
func (w *SomeLikeItHot) Instructions() []string {
	var specials []string
	if !w.chicken {
		specials = append(specials, "Hold Chicken")
	}
	if !w.cheese {
		specials = append(specials, "Hold Cheese")
	}
	return append(specials, w.addins.instructions()...)
}

// Chicken reports whether chicken is included
func (w *SomeLikeItHot) Chicken() bool { return w.chicken }

// SetChicken includes or holds the chicken
func (w *SomeLikeItHot) SetChicken(v bool) { w.chicken = v }

// Cheese reports whether cheese is included
func (w *SomeLikeItHot) Cheese() bool { return w.cheese }

// SetCheese includes or holds the cheese
func (w *SomeLikeItHot) SetCheese(v bool) { w.cheese = v }

// Equals reports whether the other item is a Some Like It Hot with the
// same shell, addins and ingredients
func (w *SomeLikeItHot) Equals(other Item) bool {
	o, ok := other.(*SomeLikeItHot)
	if !ok {
		return false
	}
	return w.shell == o.shell && w.addins.equals(o.addins) &&
		w.chicken == o.chicken && w.cheese == o.cheese
}

func (w *SomeLikeItHot) String() string {
	return fmt.Sprintf("Some Like It Hot in a %s Shell", w.shell)
}

// TheWizardOfOz is a chicken and spinach wrap in a spinach shell
type TheWizardOfOz struct {
	wrapBase
	chicken bool
	spinach bool
	cheese  bool
}

// NewTheWizardOfOz builds The Wizard of Oz with its default shell,
// addins and ingredients
func NewTheWizardOfOz() *TheWizardOfOz {
	return &TheWizardOfOz{
		wrapBase: wrapBase{shell: ShellSpinach, addins: newAddinSet(AddinTomatoes, AddinDressing)},
		chicken:  true,
		spinach:  true,
		cheese:   true,
	}
}

// Name returns the menu name of the wrap
func (w *TheWizardOfOz) Name() string {
	return "The Wizard of Oz"
}

// Price returns the price for the current shell
func (w *TheWizardOfOz) Price() float64 {
	switch w.shell {
	case ShellStromboli:
		return 10.85
	case ShellSpinach:
		return 10.35
	default:
		return 10.10
	}
}

// Calories returns the calorie count, which does not vary by shell
func (w *TheWizardOfOz) Calories() int {
	return 1085
}

// Instructions lists the preparation changes from the default recipe
func (w *TheWizardOfOz) Instructions() []string {
	var specials []string
	if !w.spinach {
		specials = append(specials, "Hold Spinach")
	}
	if !w.chicken {
		specials = append(specials, "Hold Chicken")
	}
	if !w.cheese {
		specials = append(specials, "Hold Cheese")
	}
	return append(specials, w.addins.instructions()...)
}

// Chicken reports whether chicken is included
func (w *TheWizardOfOz) Chicken() bool { return w.chicken }

// SetChicken includes or holds the chicken
func (w *TheWizardOfOz) SetChicken(v bool) { w.chicken = v }

// Spinach reports whether spinach is included
func (w *TheWizardOfOz) Spinach() bool { return w.spinach }

// SetSpinach includes or holds the spinach
func (w *TheWizardOfOz) SetSpinach(v bool) { w.spinach = v }

// Cheese reports whether cheese is included
func (w *TheWizardOfOz) Cheese() bool { return w.cheese }

// SetCheese includes or holds the cheese
func (w *TheWizardOfOz) SetCheese(v bool) { w.cheese = v }

// Equals reports whether the other item is a Wizard of Oz with the
// same shell, addins and ingredients
func (w *TheWizardOfOz) Equals(other Item) bool {
	o, ok := other.(*TheWizardOfOz)
	if !ok {
		return false
	}
	return w.shell == o.shell && w.addins.equals(o.addins) &&
		w.chicken == o.chicken && w.spinach == o.spinach && w.cheese == o.cheese
}

func (w *TheWizardOfOz) String() string {
	return fmt.Sprintf("The Wizard Of Oz in a %s Shell", w.shell)
}

// Spartacus is the everything wrap in a spinach shell
type Spartacus struct {
	wrapBase
	chicken    bool
	cheese     bool
	cornedBeef bool
	pepperoni  bool
	sausage    bool
}

// NewSpartacus builds the Spartacus with its default shell, addins and
// ingredients
func NewSpartacus() *Spartacus {
	return &Spartacus{
		wrapBase: wrapBase{
			shell: ShellSpinach,
			addins: newAddinSet(AddinOnions, AddinPeppers, AddinTomatoes,
				AddinPickles, AddinBuffaloSauce, AddinDressing),
		},
		chicken:    true,
		cheese:     true,
		cornedBeef: true,
		pepperoni:  true,
		sausage:    true,
	}
}

// Name returns the menu name of the wrap
func (w *Spartacus) Name() string {
	return "Spartacus"
}

// Price returns the price for the current shell
func (w *Spartacus) Price() float64 {
	switch w.shell {
	case ShellWholeGrain:
		return 16.30
	case ShellSpinach:
		return 16.55
	default:
		return 17.05
	}
}

// Calories returns the calorie count, which does not vary by shell
func (w *Spartacus) Calories() int {
	return 1874
}

// Instructions lists the preparation changes from the default recipe
func (w *Spartacus) Instructions() []string {
	var specials []string
	if !w.chicken {
		specials = append(specials, "Hold Chicken")
	}
	if !w.cheese {
		specials = append(specials, "Hold Cheese")
	}
	if !w.cornedBeef {
		specials = append(specials, "Hold Corned Beef")
	}
	if !w.sausage {
		specials = append(specials, "Hold Sausage")
	}
	if !w.pepperoni {
		specials = append(specials, "Hold Pepperoni")
	}
	return append(specials, w.addins.instructions()...)
}

// Chicken reports whether chicken is included
func (w *Spartacus) Chicken() bool { return w.chicken }

// SetChicken includes or holds the chicken
func (w *Spartacus) SetChicken(v bool) { w.chicken = v }

// Cheese reports whether cheese is included
func (w *Spartacus) Cheese() bool { return w.cheese }

// SetCheese includes or holds the cheese
func (w *Spartacus) SetCheese(v bool) { w.cheese = v }

// CornedBeef reports whether corned beef is included
func (w *Spartacus) CornedBeef() bool { return w.cornedBeef }

// SetCornedBeef includes or holds the corned beef
func (w *Spartacus) SetCornedBeef(v bool) { w.cornedBeef = v }

// Pepperoni reports whether pepperoni is included
func (w *Spartacus) Pepperoni() bool { return w.pepperoni }

// SetPepperoni includes or holds the pepperoni
func (w *Spartacus) SetPepperoni(v bool) { w.pepperoni = v }

// Sausage reports whether sausage is included
func (w *Spartacus) Sausage() bool { return w.sausage }

// SetSausage includes or holds the sausage
func (w *Spartacus) SetSausage(v bool) { w.sausage = v }

// Equals reports whether the other item is a Spartacus with the same
// shell, addins and ingredients
func (w *Spartacus) Equals(other Item) bool {
	o, ok := other.(*Spartacus)
	if !ok {
		return false
	}
	return w.shell == o.shell && w.addins.equals(o.addins) &&
		w.chicken == o.chicken && w.cheese == o.cheese &&
		w.cornedBeef == o.cornedBeef && w.pepperoni == o.pepperoni &&
		w.sausage == o.sausage
}

func (w *Spartacus) String() string {
	return fmt.Sprintf("Spartacus in a %s Shell", w.shell)
}
