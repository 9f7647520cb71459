package nutrition

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Basis states what quantity a library profile's macros describe.
type Basis string

const (
	// BasisPer100g profiles describe 100 grams of the food.
	BasisPer100g Basis = "g"
	// BasisPerUnit profiles describe a single piece.
	BasisPerUnit Basis = "unit"
)

// Divisor is the quantity the profile's macros are stated for. Anything other
// than BasisPerUnit is treated as per-100g.
func (b Basis) Divisor() float64 {
	if b == BasisPerUnit {
		return 1
	}
	return 100
}

// Unit is the entry unit produced when scaling from this basis.
func (b Basis) Unit() Unit {
	if b == BasisPerUnit {
		return UnitCount
	}
	return UnitGrams
}

// DefaultQuantity is the amount a new portion starts at: 100 g or 1 piece.
func (b Basis) DefaultQuantity() float64 {
	return b.Divisor()
}

// Label renders the basis the way the library list shows it.
func (b Basis) Label() string {
	if b == BasisPerUnit {
		return "per unit"
	}
	return "per 100g"
}

// ParseBasis accepts "g", "100g", "unit" and similar spellings.
func ParseBasis(value string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "g", "100g", "per-100g", "grams":
		return BasisPer100g, nil
	case "u", "unit", "per-unit", "piece":
		return BasisPerUnit, nil
	default:
		return "", fmt.Errorf("invalid basis %q (expected g|unit)", value)
	}
}

// LibraryItem is a reusable, named macro profile.
type LibraryItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Basis Basis  `json:"basis"`
	Macros
}

// Validate checks the item can be stored in the library.
func (i LibraryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if i.Basis != BasisPer100g && i.Basis != BasisPerUnit {
		return &ValidationError{Field: "basis", Reason: fmt.Sprintf("unknown basis %q", i.Basis)}
	}
	return i.Macros.Validate()
}

// Library is an ordered collection of profiles, newest first. Methods never
// modify the receiver; they return a fresh slice.
type Library []LibraryItem

// Save inserts item or replaces the item sharing its id. New items are
// prepended and receive an id when they have none; edits keep their position.
func (l Library) Save(item LibraryItem) (Library, LibraryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return l, LibraryItem{}, err
	}

	if item.ID != "" {
		for i, existing := range l {
			if existing.ID == item.ID {
				next := make(Library, len(l))
				copy(next, l)
				next[i] = item
				return next, item, nil
			}
		}
	} else {
		item.ID = NewID()
	}

	next := make(Library, 0, len(l)+1)
	next = append(next, item)
	next = append(next, l...)
	return next, item, nil
}

// Delete removes the item with id. Missing ids leave the library unchanged.
func (l Library) Delete(id string) Library {
	idx := l.index(id)
	if idx < 0 {
		return l
	}
	next := make(Library, 0, len(l)-1)
	next = append(next, l[:idx]...)
	next = append(next, l[idx+1:]...)
	return next
}

// Get returns the item with the exact id.
func (l Library) Get(id string) (LibraryItem, bool) {
	idx := l.index(id)
	if idx < 0 {
		return LibraryItem{}, false
	}
	return l[idx], true
}

// Find resolves ref as an id first, then as a case-insensitive name.
func (l Library) Find(ref string) (LibraryItem, error) {
	ref = strings.TrimSpace(ref)
	if item, ok := l.Get(ref); ok {
		return item, nil
	}
	for _, item := range l {
		if strings.EqualFold(item.Name, ref) {
			return item, nil
		}
	}
	return LibraryItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, ref)
}

// Search filters by case-insensitive substring on the name. An empty term
// returns every item.
func (l Library) Search(term string) []LibraryItem {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]LibraryItem, 0, len(l))
	for _, item := range l {
		if needle == "" || strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

func (l Library) index(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// NewID returns a time-ordered unique id (UUIDv7) that encodes its creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
