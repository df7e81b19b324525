package services

import (
	"context"

	"mealplan/internal/core"
)

// MealStore is the persistence contract the planner operates against.
// *storage.SQLiteRepository is the production implementation.
type MealStore interface {
	AddMeal(ctx context.Context, meal core.Meal, lines []core.IngredientLine) (int64, error)
	UpdateMeal(ctx context.Context, mealID int64, meal core.Meal, lines []core.IngredientLine) error
	DeleteMeal(ctx context.Context, mealID int64) error
	GetMeal(ctx context.Context, mealID int64) (core.Meal, error)
	ListMeals(ctx context.Context) ([]core.Meal, error)
	MealIngredients(ctx context.Context, mealID int64) ([]core.IngredientLine, error)
	ListIngredients(ctx context.Context) ([]core.Ingredient, error)
	CleanupUnusedIngredients(ctx context.Context) (int64, error)
	ShoppingList(ctx context.Context, mealIDs []int64) ([]core.ShoppingItem, error)
}
