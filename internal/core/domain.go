package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Meal is a named collection of ingredient requirements.
	Meal struct {
		ID          int64
		Name        string
		Description string
		RecipeLink  string
		Notes       string
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	// Ingredient is a named consumable item with a shopping category.
	// Ingredients are shared across meals and survive meal deletion.
	Ingredient struct {
		ID       int64
		Name     string
		Category Category
	}

	// IngredientLine is one "this meal requires quantity Q of ingredient I"
	// entry as submitted by the UI form or the CSV importer. Category is a
	// hint applied only when the ingredient does not exist yet.
	IngredientLine struct {
		Ingredient string
		Quantity   Quantity
		Unit       Unit
		Category   Category
	}

	// ShoppingItem is one aggregated shopping list line.
	ShoppingItem struct {
		IngredientID int64
		Ingredient   string
		Quantity     Quantity
		Unit         Unit
		Category     Category
	}
)

var (
	ErrEmptyName           = errors.New("empty name")
	ErrNameTooLong         = errors.New("name too long (max 200 characters)")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrUnknownUnit         = errors.New("unknown unit")
	ErrDuplicateName       = errors.New("name already exists")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in meal")
	ErrNotFound            = errors.New("not found")
	ErrNoMealsSelected     = errors.New("no meals selected")
)

func (m Meal) Validate() error {
	if len(strings.TrimSpace(m.Name)) == 0 {
		return ErrEmptyName
	}
	if len(m.Name) > 200 {
		return ErrNameTooLong
	}
	return nil
}

func (l IngredientLine) Validate() error {
	if len(strings.TrimSpace(l.Ingredient)) == 0 {
		return ErrEmptyName
	}
	if len(l.Ingredient) > 200 {
		return ErrNameTooLong
	}
	if err := l.Quantity.Validate(); err != nil {
		return err
	}
	if !l.Unit.Valid() {
		return ErrUnknownUnit
	}
	return nil
}

// ValidateLines checks every line and rejects two lines that reference the
// same ingredient (case-insensitive).
func ValidateLines(lines []IngredientLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(l.Ingredient))
		if _, dup := seen[key]; dup {
			return ErrDuplicateIngredient
		}
		seen[key] = struct{}{}
	}
	return nil
}
