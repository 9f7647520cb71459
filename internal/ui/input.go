package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faizmokh/makan/internal/nutrition"
)

// foodInput is a parsed add-food line. A library line is "@ref [qty]", a
// manual line is "name [qty] [c/p/f[/fib]]".
type foodInput struct {
	fromLibrary bool
	ref         string
	name        string
	quantity    *float64
	unit        *nutrition.Unit
	macros      nutrition.Macros
}

func parseFoodLine(input string) (foodInput, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return foodInput{}, fmt.Errorf("entry cannot be empty")
	}

	var result foodInput
	if strings.HasPrefix(tokens[0], "@") {
		result.fromLibrary = true
		tokens[0] = strings.TrimPrefix(tokens[0], "@")
	}

	if !result.fromLibrary && len(tokens) > 1 && strings.Contains(tokens[len(tokens)-1], "/") {
		macros, err := parseMacros(tokens[len(tokens)-1])
		if err != nil {
			return foodInput{}, err
		}
		result.macros = macros
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) > 1 {
		if qty, unit, ok := parseQuantity(tokens[len(tokens)-1]); ok {
			result.quantity = &qty
			result.unit = unit
			tokens = tokens[:len(tokens)-1]
		}
	}

	name := strings.TrimSpace(strings.Join(tokens, " "))
	if name == "" {
		return foodInput{}, fmt.Errorf("food name is required")
	}
	if result.fromLibrary {
		result.ref = name
	} else {
		result.name = name
	}
	return result, nil
}

// portion builds the manual portion for a non-library line.
func (f foodInput) portion() nutrition.Portion {
	p := nutrition.Blank().WithMacros(f.macros)
	p.Name = f.name
	if f.unit != nil {
		p = p.WithUnit(*f.unit)
		if *f.unit == nutrition.UnitCount && f.quantity == nil {
			p = p.WithQuantity(1)
		}
	}
	if f.quantity != nil {
		p = p.WithQuantity(*f.quantity)
	}
	return p
}

// parseQuantity accepts "150", "150g" or "2u".
func parseQuantity(token string) (float64, *nutrition.Unit, bool) {
	lower := strings.ToLower(token)
	var unit *nutrition.Unit
	for _, suffix := range []struct {
		text string
		unit nutrition.Unit
	}{
		{"units", nutrition.UnitCount},
		{"unit", nutrition.UnitCount},
		{"u", nutrition.UnitCount},
		{"g", nutrition.UnitGrams},
	} {
		if strings.HasSuffix(lower, suffix.text) {
			u := suffix.unit
			unit = &u
			lower = strings.TrimSuffix(lower, suffix.text)
			break
		}
	}
	qty, err := strconv.ParseFloat(lower, 64)
	if err != nil {
		return 0, nil, false
	}
	return qty, unit, true
}

// parseMacros reads "carbs/protein/fat[/fiber]".
func parseMacros(token string) (nutrition.Macros, error) {
	parts := strings.Split(token, "/")
	if len(parts) < 3 || len(parts) > 4 {
		return nutrition.Macros{}, fmt.Errorf("macros %q must look like carbs/protein/fat[/fiber]", token)
	}
	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nutrition.Macros{}, fmt.Errorf("macros %q: %q is not a number", token, part)
		}
		values[i] = v
	}
	return nutrition.Macros{Carbs: values[0], Protein: values[1], Fat: values[2], Fiber: values[3]}, nil
}
