package nutrition

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LenientFloat decodes a JSON number or a numeric string. Anything else,
// including non-finite values, decodes to zero instead of failing.
type LenientFloat float64

func (f *LenientFloat) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	switch x := v.(type) {
	case float64:
		*f = LenientFloat(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			*f = 0
			return nil
		}
		*f = LenientFloat(parsed)
	default:
		*f = 0
	}
	return nil
}

// Int rounds to the nearest whole number.
func (f LenientFloat) Int() int {
	return int(math.Round(float64(f)))
}

// UnmarshalJSON reads the macro fields leniently so one damaged profile
// cannot make a saved library unreadable.
func (i *LibraryItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string       `json:"id"`
		Name    string       `json:"name"`
		Basis   Basis        `json:"basis"`
		Carbs   LenientFloat `json:"carbs"`
		Protein LenientFloat `json:"protein"`
		Fat     LenientFloat `json:"fat"`
		Fiber   LenientFloat `json:"fiber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = LibraryItem{
		ID:    raw.ID,
		Name:  raw.Name,
		Basis: raw.Basis,
		Macros: Macros{
			Carbs:   float64(raw.Carbs),
			Protein: float64(raw.Protein),
			Fat:     float64(raw.Fat),
			Fiber:   float64(raw.Fiber),
		},
	}
	return nil
}
