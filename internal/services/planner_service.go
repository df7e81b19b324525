package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mealplan/internal/core"
	applog "mealplan/internal/log"
)

// PlannerService validates and normalizes input before it reaches the
// store. All persistence errors pass through unwrapped sentinels so callers
// can match them with errors.Is.
type PlannerService struct {
	store MealStore
}

func NewPlannerService(store MealStore) *PlannerService {
	return &PlannerService{store: store}
}

// normalizeMeal trims the free-text attributes in place.
func normalizeMeal(meal core.Meal) core.Meal {
	meal.Name = strings.TrimSpace(meal.Name)
	meal.Description = strings.TrimSpace(meal.Description)
	meal.RecipeLink = strings.TrimSpace(meal.RecipeLink)
	meal.Notes = strings.TrimSpace(meal.Notes)
	return meal
}

func normalizeLines(lines []core.IngredientLine) []core.IngredientLine {
	out := make([]core.IngredientLine, len(lines))
	for i, l := range lines {
		l.Ingredient = strings.TrimSpace(l.Ingredient)
		out[i] = l
	}
	return out
}

// AddMeal validates the meal and its lines, then creates them atomically.
func (s *PlannerService) AddMeal(ctx context.Context, meal core.Meal, lines []core.IngredientLine) (int64, error) {
	meal = normalizeMeal(meal)
	lines = normalizeLines(lines)

	if err := meal.Validate(); err != nil {
		return 0, err
	}
	if err := core.ValidateLines(lines); err != nil {
		return 0, err
	}

	id, err := s.store.AddMeal(ctx, meal, lines)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Meal created",
		applog.FieldMealID, id,
		applog.FieldMealName, meal.Name,
		"ingredients", len(lines),
		applog.FieldComponent, applog.ComponentPlanner,
		applog.FieldOperation, applog.OpCreate)

	return id, nil
}

// UpdateMeal validates and replaces the meal and its whole ingredient set.
func (s *PlannerService) UpdateMeal(ctx context.Context, mealID int64, meal core.Meal, lines []core.IngredientLine) error {
	meal = normalizeMeal(meal)
	lines = normalizeLines(lines)

	if err := meal.Validate(); err != nil {
		return err
	}
	if err := core.ValidateLines(lines); err != nil {
		return err
	}

	if err := s.store.UpdateMeal(ctx, mealID, meal, lines); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Meal updated",
		applog.FieldMealID, mealID,
		applog.FieldMealName, meal.Name,
		"ingredients", len(lines),
		applog.FieldComponent, applog.ComponentPlanner,
		applog.FieldOperation, applog.OpUpdate)

	return nil
}

func (s *PlannerService) DeleteMeal(ctx context.Context, mealID int64) error {
	if err := s.store.DeleteMeal(ctx, mealID); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Meal deleted",
		applog.FieldMealID, mealID,
		applog.FieldComponent, applog.ComponentPlanner,
		applog.FieldOperation, applog.OpDelete)
	return nil
}

func (s *PlannerService) GetMeal(ctx context.Context, mealID int64) (core.Meal, error) {
	return s.store.GetMeal(ctx, mealID)
}

func (s *PlannerService) ListMeals(ctx context.Context) ([]core.Meal, error) {
	return s.store.ListMeals(ctx)
}

func (s *PlannerService) MealIngredients(ctx context.Context, mealID int64) ([]core.IngredientLine, error) {
	return s.store.MealIngredients(ctx, mealID)
}

func (s *PlannerService) ListIngredients(ctx context.Context) ([]core.Ingredient, error) {
	return s.store.ListIngredients(ctx)
}

func (s *PlannerService) CleanupUnusedIngredients(ctx context.Context) (int64, error) {
	return s.store.CleanupUnusedIngredients(ctx)
}

// ShoppingList aggregates the distinct set of the given meal ids.
func (s *PlannerService) ShoppingList(ctx context.Context, mealIDs []int64) ([]core.ShoppingItem, error) {
	items, err := s.store.ShoppingList(ctx, mealIDs)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Shopping list generated",
		"meals", len(mealIDs),
		"lines", len(items),
		applog.FieldComponent, applog.ComponentPlanner,
		applog.FieldOperation, applog.OpAggregate)
	return items, nil
}

// Close releases the underlying store if it owns resources.
func (s *PlannerService) Close() error {
	if closer, ok := s.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
	}
	return nil
}
