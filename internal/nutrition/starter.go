package nutrition

// StarterLibrary returns the profiles seeded into a fresh library.
func StarterLibrary() Library {
	return Library{
		{ID: "1", Name: "Egg Whites", Basis: BasisPer100g, Macros: Macros{Protein: 11.7}},
		{ID: "2", Name: "Greek Yogurt", Basis: BasisPer100g, Macros: Macros{Carbs: 4.1, Protein: 10.6}},
		{ID: "3", Name: "Banana", Basis: BasisPerUnit, Macros: Macros{Carbs: 22, Protein: 1, Fiber: 2.5}},
		{ID: "4", Name: "Salmon", Basis: BasisPer100g, Macros: Macros{Protein: 23.3, Fat: 12}},
		{ID: "5", Name: "Garbanzo Beans", Basis: BasisPer100g, Macros: Macros{Carbs: 16.9, Protein: 5.4, Fat: 1.5, Fiber: 4.6}},
		{ID: "6", Name: "Avocado", Basis: BasisPer100g, Macros: Macros{Carbs: 8, Protein: 2, Fat: 14, Fiber: 6}},
		{ID: "7", Name: "Quinoa", Basis: BasisPer100g, Macros: Macros{Carbs: 26, Protein: 5, Fat: 2, Fiber: 2}},
		{ID: "8", Name: "Chicken Breast", Basis: BasisPer100g, Macros: Macros{Protein: 31, Fat: 3}},
	}
}
