package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// Macros holds grams of each tracked macronutrient.
type Macros struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

// Add returns the field-wise sum of m and other. Non-finite fields count as zero.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Carbs:   finite(m.Carbs) + finite(other.Carbs),
		Protein: finite(m.Protein) + finite(other.Protein),
		Fat:     finite(m.Fat) + finite(other.Fat),
		Fiber:   finite(m.Fiber) + finite(other.Fiber),
	}
}

// IsZero reports whether every field is zero.
func (m Macros) IsZero() bool {
	return m == Macros{}
}

// Validate rejects negative or non-finite macro values.
func (m Macros) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"carbs", m.Carbs},
		{"protein", m.Protein},
		{"fat", m.Fat},
		{"fiber", m.Fiber},
	}
	for _, f := range fields {
		if err := NonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// String renders macros as "10.0c 20.0p 5.0f 3.0fib".
func (m Macros) String() string {
	return fmt.Sprintf("%.1fc %.1fp %.1ff %.1ffib", m.Carbs, m.Protein, m.Fat, m.Fiber)
}

// Unit labels the quantity of a logged food.
type Unit string

const (
	// UnitGrams measures food by mass.
	UnitGrams Unit = "g"
	// UnitCount measures food by discrete pieces.
	UnitCount Unit = "unit"
)

// ParseUnit accepts the stored form plus a few spellings users type.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "g", "gram", "grams":
		return UnitGrams, nil
	case "u", "unit", "units", "pc", "pcs":
		return UnitCount, nil
	default:
		return "", fmt.Errorf("invalid unit %q (expected g|unit)", value)
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
