package custom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"thatsawrap/internal/models"
)

func TestNewListMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customitems.json")

	l, err := NewList(path)
	if err != nil {
		t.Fatalf("NewList() = %v", err)
	}
	if got := l.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestListSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customitems.json")

	l, err := NewList(path)
	if err != nil {
		t.Fatalf("NewList() = %v", err)
	}
	l.Add(models.NewCustomItem("Leftover Surprise", 3.995, 640))
	l.Add(models.NewCustomItem("Kids Plate", 2.25, 300))
	if err := l.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	reloaded, err := NewList(path)
	if err != nil {
		t.Fatalf("NewList() after save = %v", err)
	}
	if got := reloaded.Len(); got != 2 {
		t.Fatalf("Len() after reload = %d, want 2", got)
	}
	entries := reloaded.Entries()
	if got := entries[0].Item.Name(); got != "Leftover Surprise" {
		t.Errorf("first item name = %q", got)
	}
	// The price was rounded to cents before it hit the file.
	if got := entries[0].Item.Price(); got != 4.00 {
		t.Errorf("first item price = %v, want 4.00", got)
	}
}

func TestListCRUDById(t *testing.T) {
	l, err := NewList(filepath.Join(t.TempDir(), "customitems.json"))
	if err != nil {
		t.Fatalf("NewList() = %v", err)
	}

	e := l.Add(models.NewCustomItem("Soup", 2.50, 120))
	if e.ID == "" {
		t.Fatal("Add() assigned an empty id")
	}

	got, err := l.Get(e.ID)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got.Item.Name() != "Soup" {
		t.Errorf("Get() item name = %q", got.Item.Name())
	}

	if err := l.Update(e.ID, models.NewCustomItem("Stew", 3.50, 200)); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	got, _ = l.Get(e.ID)
	if got.Item.Name() != "Stew" {
		t.Errorf("item name after update = %q, want Stew", got.Item.Name())
	}

	if err := l.Remove(e.ID); err != nil {
		t.Fatalf("Remove() = %v", err)
	}
	if _, err := l.Get(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after remove = %v, want ErrNotFound", err)
	}
	if err := l.Remove(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() twice = %v, want ErrNotFound", err)
	}
	if err := l.Update("no-such-id", models.NewCustomItem("x", 1, 1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() with unknown id = %v, want ErrNotFound", err)
	}
}

func TestNewListRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customitems.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewList(path); err == nil {
		t.Error("NewList() on a corrupt file should fail")
	}
}
