package nutrition

import (
	"errors"
	"testing"
)

func TestLibrarySavePrependsNewItems(t *testing.T) {
	lib := StarterLibrary()

	next, saved, err := lib.Save(LibraryItem{Name: "  Oats ", Basis: BasisPer100g, Macros: Macros{Carbs: 66, Protein: 17, Fat: 7, Fiber: 10}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("saved item has no id")
	}
	if saved.Name != "Oats" {
		t.Fatalf("saved name = %q, want trimmed %q", saved.Name, "Oats")
	}
	if len(next) != len(lib)+1 {
		t.Fatalf("len = %d, want %d", len(next), len(lib)+1)
	}
	if next[0].ID != saved.ID {
		t.Fatalf("new item not prepended: first = %q", next[0].Name)
	}
	if len(lib) != 8 || lib[0].ID != "1" {
		t.Fatalf("Save mutated the receiver")
	}
}

func TestLibrarySaveEditsInPlace(t *testing.T) {
	lib := StarterLibrary()

	edited := lib[3]
	edited.Protein = 25
	next, _, err := lib.Save(edited)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(next) != len(lib) {
		t.Fatalf("edit changed length: %d", len(next))
	}
	if next[3].ID != edited.ID || next[3].Protein != 25 {
		t.Fatalf("edit not applied at original position: %+v", next[3])
	}
	if lib[3].Protein != 23.3 {
		t.Fatalf("Save mutated the receiver: %+v", lib[3])
	}
}

func TestLibrarySaveUnknownIDInserts(t *testing.T) {
	lib := StarterLibrary()
	next, saved, err := lib.Save(LibraryItem{ID: "custom", Name: "Rice", Basis: BasisPer100g, Macros: Macros{Carbs: 28}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != "custom" || next[0].ID != "custom" {
		t.Fatalf("expected custom id to be kept and prepended, got %+v", next[0])
	}
}

func TestLibrarySaveRejectsInvalidItems(t *testing.T) {
	lib := StarterLibrary()
	cases := []struct {
		name  string
		item  LibraryItem
		field string
	}{
		{"empty name", LibraryItem{Name: " ", Basis: BasisPer100g}, "name"},
		{"bad basis", LibraryItem{Name: "X", Basis: "cup"}, "basis"},
		{"negative fat", LibraryItem{Name: "X", Basis: BasisPerUnit, Macros: Macros{Fat: -1}}, "fat"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, _, err := lib.Save(tc.item)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Save error = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %q, want %q", verr.Field, tc.field)
			}
			if len(next) != len(lib) {
				t.Fatalf("library changed on invalid save")
			}
		})
	}
}

func TestLibraryDelete(t *testing.T) {
	lib := StarterLibrary()

	next := lib.Delete("4")
	if len(next) != 7 {
		t.Fatalf("len after delete = %d, want 7", len(next))
	}
	if _, ok := next.Get("4"); ok {
		t.Fatalf("item 4 still present")
	}
	if _, ok := lib.Get("4"); !ok {
		t.Fatalf("Delete mutated the receiver")
	}

	again := next.Delete("4")
	if len(again) != len(next) {
		t.Fatalf("deleting a missing id changed the library")
	}
}

func TestLibraryFindAndSearch(t *testing.T) {
	lib := StarterLibrary()

	item, err := lib.Find("greek yogurt")
	if err != nil {
		t.Fatalf("Find by name: %v", err)
	}
	if item.ID != "2" {
		t.Fatalf("Find returned %q, want id 2", item.ID)
	}

	item, err = lib.Find("6")
	if err != nil || item.Name != "Avocado" {
		t.Fatalf("Find by id = %+v, %v", item, err)
	}

	if _, err := lib.Find("pizza"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Find(pizza) error = %v, want ErrItemNotFound", err)
	}

	results := lib.Search("AN")
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	if len(results) != 2 || names[0] != "Banana" || names[1] != "Garbanzo Beans" {
		t.Fatalf("Search(AN) = %v", names)
	}
	if got := lib.Search(""); len(got) != len(lib) {
		t.Fatalf("Search(\"\") len = %d, want %d", len(got), len(lib))
	}
}

func TestPortionFromLibraryRescales(t *testing.T) {
	banana, _ := StarterLibrary().Get("3")

	p := FromLibrary(banana)
	if p.Quantity != 1 || p.Unit != UnitCount {
		t.Fatalf("initial portion = %v %s, want 1 unit", p.Quantity, p.Unit)
	}
	if p.Carbs != 22 {
		t.Fatalf("initial carbs = %v, want 22", p.Carbs)
	}

	p = p.WithQuantity(2)
	if p.Carbs != 44 || p.Fiber != 5 {
		t.Fatalf("after WithQuantity(2) = %+v", p.Macros)
	}

	yogurt, _ := StarterLibrary().Get("2")
	if got := FromLibrary(yogurt); got.Quantity != 100 || got.Unit != UnitGrams || got.Carbs != 4.1 {
		t.Fatalf("yogurt portion = %+v", got)
	}
}

func TestManualPortionUnitSwitchKeepsMacros(t *testing.T) {
	p := Blank()
	p.Name = "Toast"
	p = p.WithMacros(Macros{Carbs: 15, Protein: 3, Fat: 1, Fiber: 1})

	switched := p.WithUnit(UnitCount)
	if switched.Unit != UnitCount {
		t.Fatalf("unit = %s, want unit", switched.Unit)
	}
	if switched.Macros != p.Macros {
		t.Fatalf("unit switch changed macros: %+v", switched.Macros)
	}

	resized := switched.WithQuantity(2)
	if resized.Macros != p.Macros {
		t.Fatalf("manual quantity change rescaled macros: %+v", resized.Macros)
	}
	if resized.Quantity != 2 {
		t.Fatalf("quantity = %v, want 2", resized.Quantity)
	}
}

func TestPortionValidate(t *testing.T) {
	p := Blank()
	p.Name = "Rice"
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	zero := p.WithQuantity(0)
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero quantity rejected: %v", err)
	}

	var verr *ValidationError
	if err := p.WithQuantity(-5).Validate(); !errors.As(err, &verr) || verr.Field != "quantity" {
		t.Fatalf("negative quantity error = %v", err)
	}
	if err := p.WithMacros(Macros{Protein: -1}).Validate(); !errors.As(err, &verr) || verr.Field != "protein" {
		t.Fatalf("negative protein error = %v", err)
	}
}
