// Package custom holds the user-defined menu entries and their
// flat-file persistence.
package custom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"thatsawrap/internal/models"
)

// ErrNotFound is returned when no entry has the requested id
var ErrNotFound = errors.New("custom item not found")

// Entry is a custom item tagged with the id the API addresses it by.
// Ids are assigned at load/add time and are not persisted; the file
// format stays the plain name/price/calories list.
type Entry struct {
	ID   string
	Item *models.CustomItem
}

// fileItem is the on-disk shape of one custom item
type fileItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

// List is the process-wide collection of custom items, backed by a
// JSON file. All methods are safe for concurrent use.
type List struct {
	mu      sync.Mutex
	path    string
	entries []*Entry
}

// NewList creates a list backed by the given file and loads whatever
// it already holds. A missing file just means an empty list.
func NewList(path string) (*List, error) {
	l := &List{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("reading custom items: %w", err)
	}

	var items []fileItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing custom items: %w", err)
	}
	for _, it := range items {
		l.entries = append(l.entries, &Entry{
			ID:   uuid.NewString(),
			Item: models.NewCustomItem(it.Name, it.Price, it.Calories),
		})
	}
	return l, nil
}

// Add stores a new custom item and returns its entry
func (l *List) Add(item *models.CustomItem) *Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := &Entry{ID: uuid.NewString(), Item: item}
	l.entries = append(l.entries, e)
	return e
}

// Get returns the entry with the given id
func (l *List) Get(id string) (*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// Update replaces the item stored under the given id
func (l *List) Update(id string, item *models.CustomItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.ID == id {
			e.Item = item
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the entry with the given id
func (l *List) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the number of custom items
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a snapshot of the list in insertion order
func (l *List) Entries() []*Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Save writes the current list back to the backing file
func (l *List) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]fileItem, 0, len(l.entries))
	for _, e := range l.entries {
		items = append(items, fileItem{
			Name:     e.Item.Name(),
			Price:    e.Item.Price(),
			Calories: e.Item.Calories(),
		})
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding custom items: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("writing custom items: %w", err)
	}
	return nil
}
