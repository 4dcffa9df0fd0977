package models

// Size represents the portion tiers a drink or side can come in
type Size string

const (
	SizeIndie       Size = "Indie"
	SizeStudio      Size = "Studio"
	SizeBlockbuster Size = "Blockbuster"
)

// String returns the display form of the size
func (s Size) String() string {
	return string(s)
}

// Sizes lists every size in menu order
var Sizes = []Size{SizeIndie, SizeStudio, SizeBlockbuster}

// Shell represents the shells a wrap can come in
type Shell string

const (
	ShellWholeGrain Shell = "Whole Grain"
	ShellSpinach    Shell = "Spinach"
	ShellStromboli  Shell = "Stromboli"
)

// String returns the display form of the shell
func (s Shell) String() string {
	return string(s)
}

// Addin represents an ingredient that can be added to a wrap
type Addin string

const (
	AddinPeppers      Addin = "Peppers"
	AddinOnions       Addin = "Onions"
	AddinTomatoes     Addin = "Tomatoes"
	AddinPickles      Addin = "Pickles"
	AddinDressing     Addin = "Dressing"
	AddinBuffaloSauce Addin = "Buffalo Sauce"
	AddinMustard      Addin = "Mustard"
)

// String returns the display form of the addin
func (a Addin) String() string {
	return string(a)
}

// Addins lists every addin in menu order. Instruction lines for a
// wrap's addin set are emitted in this order so output is stable.
var Addins = []Addin{
	AddinPeppers,
	AddinOnions,
	AddinTomatoes,
	AddinPickles,
	AddinDressing,
	AddinBuffaloSauce,
	AddinMustard,
}
