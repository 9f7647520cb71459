package nutrition

import (
	"math"
	"testing"
)

func TestScaleUsesBasisDivisor(t *testing.T) {
	chicken := LibraryItem{ID: "8", Name: "Chicken Breast", Basis: BasisPer100g, Macros: Macros{Protein: 31, Fat: 3}}
	got := Scale(chicken, 150)
	want := Macros{Protein: 46.5, Fat: 4.5}
	if got != want {
		t.Fatalf("Scale(chicken, 150) = %+v, want %+v", got, want)
	}

	banana := LibraryItem{ID: "3", Name: "Banana", Basis: BasisPerUnit, Macros: Macros{Carbs: 22, Protein: 1, Fiber: 2.5}}
	got = Scale(banana, 2)
	want = Macros{Carbs: 44, Protein: 2, Fiber: 5}
	if got != want {
		t.Fatalf("Scale(banana, 2) = %+v, want %+v", got, want)
	}
}

func TestScaleZeroQuantityIsZeroProfile(t *testing.T) {
	for _, item := range StarterLibrary() {
		if got := Scale(item, 0); !got.IsZero() {
			t.Fatalf("Scale(%s, 0) = %+v, want zero", item.Name, got)
		}
	}
}

func TestScaleRoundsToOneDecimalHalfAwayFromZero(t *testing.T) {
	item := LibraryItem{Name: "Test", Basis: BasisPerUnit, Macros: Macros{Carbs: 1, Protein: 1, Fat: 1, Fiber: 1}}
	cases := []struct {
		qty  float64
		want float64
	}{
		{0.25, 0.3},
		{0.35, 0.4},
		{0.24, 0.2},
		{1.05, 1.1},
	}
	for _, tc := range cases {
		got := Scale(item, tc.qty)
		if got.Carbs != tc.want {
			t.Fatalf("Scale(qty=%v).Carbs = %v, want %v", tc.qty, got.Carbs, tc.want)
		}
	}
}

func TestScaleIsLinearWithinRounding(t *testing.T) {
	// Each of the three scaled values can be off by at most 0.05.
	const tolerance = 0.15 + 1e-9
	pairs := [][2]float64{{50, 50}, {33, 67}, {125, 75}, {12.5, 7.5}, {1, 2}, {0, 80}}

	for _, item := range StarterLibrary() {
		for _, pair := range pairs {
			a := Scale(item, pair[0])
			b := Scale(item, pair[1])
			sum := a.Add(b)
			whole := Scale(item, pair[0]+pair[1])

			diffs := []float64{
				sum.Carbs - whole.Carbs,
				sum.Protein - whole.Protein,
				sum.Fat - whole.Fat,
				sum.Fiber - whole.Fiber,
			}
			for _, d := range diffs {
				if math.Abs(d) > tolerance {
					t.Fatalf("%s: scale(%v)+scale(%v) = %+v, scale(sum) = %+v", item.Name, pair[0], pair[1], sum, whole)
				}
			}
		}
	}
}

func TestUnknownBasisScalesPer100g(t *testing.T) {
	item := LibraryItem{Name: "Legacy", Basis: "", Macros: Macros{Carbs: 10}}
	if got := Scale(item, 200); got.Carbs != 20 {
		t.Fatalf("Scale(legacy, 200).Carbs = %v, want 20", got.Carbs)
	}
}

func TestCaloriesAtwater(t *testing.T) {
	cases := []struct {
		in   Macros
		want int
	}{
		{Macros{Carbs: 50, Protein: 20, Fat: 10}, 370},
		{Macros{Carbs: 10, Protein: 20, Fat: 5, Fiber: 3}, 165},
		{Macros{Carbs: 0.1, Protein: 0, Fat: 0.1}, 1},
		{Macros{Carbs: math.NaN(), Protein: 10}, 40},
		{Macros{}, 0},
	}
	for _, tc := range cases {
		if got := Calories(tc.in); got != tc.want {
			t.Fatalf("Calories(%+v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
