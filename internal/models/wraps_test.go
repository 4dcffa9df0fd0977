package models

import (
	"reflect"
	"testing"
)

func TestWrapPriceByShell(t *testing.T) {
	tests := []struct {
		name   string
		wrap   WrapItem
		prices map[Shell]float64
	}{
		{
			name: "The Godfather",
			wrap: NewTheGodfather(),
			prices: map[Shell]float64{
				ShellWholeGrain: 8.90,
				ShellSpinach:    9.15,
				ShellStromboli:  9.65,
			},
		},
		{
			name: "West Side Story",
			wrap: NewWestSideStory(),
			prices: map[Shell]float64{
				ShellWholeGrain: 8.75,
				ShellSpinach:    9.00,
				ShellStromboli:  9.50,
			},
		},
		{
			name: "Some Like it Hot",
			wrap: NewSomeLikeItHot(),
			prices: map[Shell]float64{
				ShellWholeGrain: 11.45,
				ShellSpinach:    11.70,
				ShellStromboli:  12.20,
			},
		},
		{
			name: "The Wizard of Oz",
			wrap: NewTheWizardOfOz(),
			prices: map[Shell]float64{
				ShellWholeGrain: 10.10,
				ShellSpinach:    10.35,
				ShellStromboli:  10.85,
			},
		},
		{
			name: "Spartacus",
			wrap: NewSpartacus(),
			prices: map[Shell]float64{
				ShellWholeGrain: 16.30,
				ShellSpinach:    16.55,
				ShellStromboli:  17.05,
			},
		},
	}

	for _, tt := range tests {
		for shell, want := range tt.prices {
			tt.wrap.SetShell(shell)
			if got := tt.wrap.Price(); got != want {
				t.Errorf("%s in %s shell: Price() = %v, want %v", tt.name, shell, got, want)
			}
		}
	}
}

func TestWrapCaloriesConstantAcrossShells(t *testing.T) {
	tests := []struct {
		name     string
		wrap     WrapItem
		calories int
	}{
		{"The Godfather", NewTheGodfather(), 1268},
		{"West Side Story", NewWestSideStory(), 1240},
		{"Some Like it Hot", NewSomeLikeItHot(), 1370},
		{"The Wizard of Oz", NewTheWizardOfOz(), 1085},
		{"Spartacus", NewSpartacus(), 1874},
	}

	for _, tt := range tests {
		for _, shell := range []Shell{ShellWholeGrain, ShellSpinach, ShellStromboli} {
			tt.wrap.SetShell(shell)
			if got := tt.wrap.Calories(); got != tt.calories {
				t.Errorf("%s in %s shell: Calories() = %d, want %d", tt.name, shell, got, tt.calories)
			}
		}
	}
}

func TestWrapDefaults(t *testing.T) {
	tests := []struct {
		name   string
		wrap   WrapItem
		shell  Shell
		addins []Addin
	}{
		{"The Godfather", NewTheGodfather(), ShellStromboli, []Addin{AddinPeppers, AddinOnions}},
		{"West Side Story", NewWestSideStory(), ShellWholeGrain, []Addin{AddinOnions, AddinPickles, AddinMustard}},
		{"Some Like it Hot", NewSomeLikeItHot(), ShellWholeGrain, []Addin{AddinPeppers, AddinOnions, AddinBuffaloSauce}},
		{"The Wizard of Oz", NewTheWizardOfOz(), ShellSpinach, []Addin{AddinTomatoes, AddinDressing}},
		{"Spartacus", NewSpartacus(), ShellSpinach, []Addin{AddinPeppers, AddinOnions, AddinTomatoes, AddinPickles, AddinDressing, AddinBuffaloSauce}},
	}

	for _, tt := range tests {
		if got := tt.wrap.Shell(); got != tt.shell {
			t.Errorf("%s: default Shell() = %v, want %v", tt.name, got, tt.shell)
		}
		for _, a := range tt.addins {
			if !tt.wrap.HasAddin(a) {
				t.Errorf("%s: default addins missing %v", tt.name, a)
			}
		}
		if got := len(tt.wrap.Addins()); got != len(tt.addins) {
			t.Errorf("%s: default addin count = %d, want %d", tt.name, got, len(tt.addins))
		}
		// With every ingredient included, the instructions are one
		// "Add" line per default addin.
		if got := len(tt.wrap.Instructions()); got != len(tt.addins) {
			t.Errorf("%s: default Instructions() has %d lines, want %d", tt.name, got, len(tt.addins))
		}
	}
}

func TestWrapShellChangeRepricesWestSideStory(t *testing.T) {
	w := NewWestSideStory()

	if got := w.Price(); got != 8.75 {
		t.Errorf("default Price() = %v, want 8.75", got)
	}
	w.SetShell(ShellStromboli)
	if got := w.Price(); got != 9.50 {
		t.Errorf("Price() after stromboli shell = %v, want 9.50", got)
	}
	if got := w.Calories(); got != 1240 {
		t.Errorf("Calories() after stromboli shell = %d, want 1240", got)
	}
}

func TestWrapHoldInstructionsPrecedeAddins(t *testing.T) {
	w := NewTheGodfather()
	w.SetPepperoni(false)
	w.SetCheese(false)

	want := []string{"Hold Pepperoni", "Hold Cheese", "Add Peppers", "Add Onions"}
	if got := w.Instructions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions() = %v, want %v", got, want)
	}
}

func TestWrapToggleRoundTrip(t *testing.T) {
	w := NewSomeLikeItHot()
	base := len(w.Instructions())

	w.SetChicken(false)
	if got := len(w.Instructions()); got != base+1 {
		t.Errorf("Instructions() after hold = %d lines, want %d", got, base+1)
	}
	w.SetChicken(true)
	if got := len(w.Instructions()); got != base {
		t.Errorf("Instructions() after round trip = %d lines, want %d", got, base)
	}
}

func TestWrapAddinMutation(t *testing.T) {
	w := NewTheWizardOfOz()

	w.AddAddin(AddinMustard)
	if !w.HasAddin(AddinMustard) {
		t.Error("HasAddin(Mustard) = false after AddAddin")
	}
	w.RemoveAddin(AddinMustard)
	if w.HasAddin(AddinMustard) {
		t.Error("HasAddin(Mustard) = true after RemoveAddin")
	}
	// Removing an absent addin is a no-op.
	w.RemoveAddin(AddinMustard)
	if got := len(w.Addins()); got != 2 {
		t.Errorf("Addins() has %d entries, want 2", got)
	}
}

func TestWrapEqualityIsStructural(t *testing.T) {
	a := NewSpartacus()
	b := NewSpartacus()

	if !a.Equals(b) {
		t.Error("two default Spartacus wraps should be equal")
	}
	b.SetShell(ShellStromboli)
	if a.Equals(b) {
		t.Error("wraps with different shells should not be equal")
	}
	b.SetShell(ShellSpinach)
	b.RemoveAddin(AddinPickles)
	if a.Equals(b) {
		t.Error("wraps with different addins should not be equal")
	}
	if a.Equals(NewTheGodfather()) {
		t.Error("different wrap variants should never be equal")
	}
	if a.Equals(NewSnowWhite()) {
		t.Error("a wrap should never equal a side")
	}
}

func TestWrapString(t *testing.T) {
	tests := []struct {
		wrap interface{ String() string }
		want string
	}{
		{NewTheGodfather(), "The Godfather in a Stromboli Shell"},
		{NewWestSideStory(), "West Side Story in a Whole Grain Shell"},
		{NewSomeLikeItHot(), "Some Like It Hot in a Whole Grain Shell"},
		{NewTheWizardOfOz(), "The Wizard Of Oz in a Spinach Shell"},
		{NewSpartacus(), "Spartacus in a Spinach Shell"},
	}

	for _, tt := range tests {
		if got := tt.wrap.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
