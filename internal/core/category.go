package core

import "strings"

// Category is a shopping category with an explicit aisle order. Lower
// values appear first in shopping lists.
type Category int

const (
	CategoryVegetables   Category = 1
	CategoryBakery       Category = 2
	CategoryFridge       Category = 3
	CategoryDryFood      Category = 4
	CategoryAsian        Category = 5
	CategoryCans         Category = 6
	CategorySpices       Category = 7
	CategoryTreats       Category = 8
	CategoryNotSure      Category = 9
	CategoryBaking       Category = 10
	CategoryFrozen       Category = 11
	CategoryOrganicStore Category = 12
	CategoryMeatFridge   Category = 14
	CategoryAlcohol      Category = 15
	CategoryOther        Category = 16
)

var categoryNames = map[Category]string{
	CategoryVegetables:   "VEGETABLES",
	CategoryBakery:       "BAKERY",
	CategoryFridge:       "FRIDGE",
	CategoryDryFood:      "DRY_FOOD",
	CategoryAsian:        "ASIAN",
	CategoryCans:         "CANS",
	CategorySpices:       "SPICES",
	CategoryTreats:       "TREATS",
	CategoryNotSure:      "NOT_SURE",
	CategoryBaking:       "BAKING",
	CategoryFrozen:       "FROZEN",
	CategoryOrganicStore: "ORGANIC_STORE",
	CategoryMeatFridge:   "MEAT_FRIDGE",
	CategoryAlcohol:      "ALCOHOL",
	CategoryOther:        "OTHER",
}

// categoryOrder lists categories in aisle order for UI population.
var categoryOrder = []Category{
	CategoryVegetables, CategoryBakery, CategoryFridge, CategoryDryFood,
	CategoryAsian, CategoryCans, CategorySpices, CategoryTreats,
	CategoryNotSure, CategoryBaking, CategoryFrozen, CategoryOrganicStore,
	CategoryMeatFridge, CategoryAlcohol, CategoryOther,
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// ParseCategory converts free text ("meat fridge", "Dry Food") to a
// Category. Unknown or empty input falls back to CategoryNotSure.
func ParseCategory(s string) Category {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if c, ok := categoriesByName[normalized]; ok {
		return c
	}
	return CategoryNotSure
}

// Categories returns all categories in aisle order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Name returns the canonical storage name ("MEAT_FRIDGE").
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryNotSure]
}

// DisplayName returns the human-readable form ("Meat Fridge").
func (c Category) DisplayName() string {
	words := strings.Split(strings.ToLower(c.Name()), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
