package models

import (
	"reflect"
	"testing"
)

func TestDrinkPriceAndCaloriesBySize(t *testing.T) {
	tests := []struct {
		name     string
		drink    DrinkItem
		price    map[Size]float64
		calories map[Size]int
	}{
		{
			name:     "Forrest Gump",
			drink:    NewForrestGump(),
			price:    map[Size]float64{SizeIndie: 5.25, SizeStudio: 7.50, SizeBlockbuster: 9.00},
			calories: map[Size]int{SizeIndie: 980, SizeStudio: 1365, SizeBlockbuster: 1875},
		},
		{
			name:     "King Kong",
			drink:    NewKingKong(),
			price:    map[Size]float64{SizeIndie: 4.85, SizeStudio: 5.95, SizeBlockbuster: 7.45},
			calories: map[Size]int{SizeIndie: 465, SizeStudio: 625, SizeBlockbuster: 860},
		},
		{
			name:     "Singin' in the Rain",
			drink:    NewSinginInTheRain(),
			price:    map[Size]float64{SizeIndie: 2.75, SizeStudio: 3.25, SizeBlockbuster: 4.00},
			calories: map[Size]int{SizeIndie: 360, SizeStudio: 400, SizeBlockbuster: 550},
		},
	}

	for _, tt := range tests {
		for _, size := range Sizes {
			tt.drink.SetSize(size)
			if got := tt.drink.Price(); got != tt.price[size] {
				t.Errorf("%s %s: Price() = %v, want %v", size, tt.name, got, tt.price[size])
			}
			if got := tt.drink.Calories(); got != tt.calories[size] {
				t.Errorf("%s %s: Calories() = %d, want %d", size, tt.name, got, tt.calories[size])
			}
		}
	}
}

func TestDrinkDefaults(t *testing.T) {
	drinks := []DrinkItem{NewForrestGump(), NewKingKong(), NewSinginInTheRain()}

	for _, d := range drinks {
		if got := d.Size(); got != SizeIndie {
			t.Errorf("%s: default Size() = %v, want Indie", d.Name(), got)
		}
		if got := d.Instructions(); len(got) != 0 {
			t.Errorf("%s: default Instructions() = %v, want empty", d.Name(), got)
		}
	}
}

func TestDrinkFlavorInstructions(t *testing.T) {
	d := NewForrestGump()
	d.SetChocolate(false)
	d.SetVanilla(true)
	d.SetCoffee(true)

	want := []string{"Hold Chocolate", "Add Vanilla", "Add Coffee"}
	if got := d.Instructions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions() = %v, want %v", got, want)
	}

	// Toggling back removes the lines again.
	d.SetChocolate(true)
	d.SetVanilla(false)
	d.SetCoffee(false)
	if got := d.Instructions(); len(got) != 0 {
		t.Errorf("Instructions() after round trip = %v, want empty", got)
	}
}

func TestKingKongInstructions(t *testing.T) {
	d := NewKingKong()
	d.SetBanana(false)
	d.SetStrawberry(true)
	d.SetPeach(true)
	d.SetMango(true)

	want := []string{"Hold Banana", "Add Strawberry", "Add Peach", "Add Mango"}
	if got := d.Instructions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions() = %v, want %v", got, want)
	}
}

func TestSinginInTheRainInstructions(t *testing.T) {
	d := NewSinginInTheRain()
	d.SetCherry(false)
	d.SetCola(true)
	d.SetGrape(true)

	want := []string{"Hold Cherry", "Add Cola", "Add Grape"}
	if got := d.Instructions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Instructions() = %v, want %v", got, want)
	}
}

func TestDrinkEqualityIsStructural(t *testing.T) {
	a := NewKingKong()
	b := NewKingKong()

	if !a.Equals(b) {
		t.Error("two default King Kongs should be equal")
	}
	b.SetSize(SizeBlockbuster)
	if a.Equals(b) {
		t.Error("drinks with different sizes should not be equal")
	}
	b.SetSize(SizeIndie)
	b.SetMango(true)
	if a.Equals(b) {
		t.Error("drinks with different flavors should not be equal")
	}
	if a.Equals(NewForrestGump()) {
		t.Error("different drink variants should never be equal")
	}
}

func TestDrinkString(t *testing.T) {
	d := NewSinginInTheRain()
	d.SetSize(SizeBlockbuster)
	if got := d.String(); got != "Blockbuster Singin' In The Rain" {
		t.Errorf("String() = %q, want %q", got, "Blockbuster Singin' In The Rain")
	}
}
