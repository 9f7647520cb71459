package nutrition

import "strings"

// Portion is a food being prepared for logging. Base is the library profile it
// was started from, if any; quantity changes rescale macros only when Base is set.
type Portion struct {
	Name     string
	Quantity float64
	Unit     Unit
	Macros
	Base *LibraryItem
}

// Blank returns an empty manual portion of 100 g.
func Blank() Portion {
	return Portion{Quantity: 100, Unit: UnitGrams}
}

// FromLibrary starts a portion at the item's basis quantity with scaled macros.
func FromLibrary(item LibraryItem) Portion {
	base := item
	qty := item.Basis.DefaultQuantity()
	return Portion{
		Name:     item.Name,
		Quantity: qty,
		Unit:     item.Basis.Unit(),
		Macros:   Scale(item, qty),
		Base:     &base,
	}
}

// WithQuantity sets the amount. Macros follow the base profile when there is
// one; a manual portion keeps the macros it was given.
func (p Portion) WithQuantity(qty float64) Portion {
	p.Quantity = qty
	if p.Base != nil {
		p.Macros = Scale(*p.Base, qty)
	}
	return p
}

// WithUnit relabels the portion. Macro values are left untouched.
func (p Portion) WithUnit(unit Unit) Portion {
	p.Unit = unit
	return p
}

// WithMacros overrides the macro values directly.
func (p Portion) WithMacros(m Macros) Portion {
	p.Macros = m
	return p
}

// Validate rejects portions that cannot be logged.
func (p Portion) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.Unit != UnitGrams && p.Unit != UnitCount {
		return &ValidationError{Field: "unit", Reason: "must be g or unit"}
	}
	if err := NonNegative("quantity", p.Quantity); err != nil {
		return err
	}
	return p.Macros.Validate()
}
