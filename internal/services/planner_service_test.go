package services

import (
	"context"
	"errors"
	"testing"

	"mealplan/internal/core"
)

// fakeStore records calls so tests can assert validation happens before
// anything reaches persistence.
type fakeStore struct {
	MealStore
	addCalls    int
	updateCalls int
	lastLines   []core.IngredientLine
}

func (f *fakeStore) AddMeal(ctx context.Context, meal core.Meal, lines []core.IngredientLine) (int64, error) {
	f.addCalls++
	f.lastLines = lines
	return 1, nil
}

func (f *fakeStore) UpdateMeal(ctx context.Context, mealID int64, meal core.Meal, lines []core.IngredientLine) error {
	f.updateCalls++
	f.lastLines = lines
	return nil
}

func TestAddMealRejectsInvalidInputBeforeStore(t *testing.T) {
	cases := []struct {
		name  string
		meal  core.Meal
		lines []core.IngredientLine
		want  error
	}{
		{"empty meal name", core.Meal{Name: "  "}, nil, core.ErrEmptyName},
		{"zero quantity", core.Meal{Name: "Pasta"}, []core.IngredientLine{
			{Ingredient: "spaghetti", Quantity: core.Quantity{Milli: 0}, Unit: core.UnitGram},
		}, core.ErrInvalidQuantity},
		{"unknown unit", core.Meal{Name: "Pasta"}, []core.IngredientLine{
			{Ingredient: "spaghetti", Quantity: core.Quantity{Milli: 1000}, Unit: core.Unit("stone")},
		}, core.ErrUnknownUnit},
		{"duplicate ingredient", core.Meal{Name: "Pasta"}, []core.IngredientLine{
			{Ingredient: "garlic", Quantity: core.Quantity{Milli: 1000}, Unit: core.UnitClove},
			{Ingredient: "Garlic", Quantity: core.Quantity{Milli: 2000}, Unit: core.UnitClove},
		}, core.ErrDuplicateIngredient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewPlannerService(store)
			_, err := svc.AddMeal(context.Background(), tc.meal, tc.lines)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if store.addCalls != 0 {
				t.Fatalf("store reached despite validation error")
			}
		})
	}
}

func TestAddMealTrimsInput(t *testing.T) {
	store := &fakeStore{}
	svc := NewPlannerService(store)

	_, err := svc.AddMeal(context.Background(), core.Meal{Name: "  Tacos  "}, []core.IngredientLine{
		{Ingredient: "  beef ", Quantity: core.Quantity{Milli: 500000}, Unit: core.UnitGram},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.addCalls != 1 {
		t.Fatalf("expected one store call, got %d", store.addCalls)
	}
	if store.lastLines[0].Ingredient != "beef" {
		t.Fatalf("ingredient not trimmed: %q", store.lastLines[0].Ingredient)
	}
}

func TestUpdateMealRejectsInvalidInputBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewPlannerService(store)

	err := svc.UpdateMeal(context.Background(), 7, core.Meal{Name: "Pasta"}, []core.IngredientLine{
		{Ingredient: "spaghetti", Quantity: core.Quantity{Milli: -200}, Unit: core.UnitGram},
	})
	if !errors.Is(err, core.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if store.updateCalls != 0 {
		t.Fatalf("store reached despite validation error")
	}
}

func TestCloseWithoutCloser(t *testing.T) {
	svc := NewPlannerService(&fakeStore{})
	if err := svc.Close(); err != nil {
		t.Fatalf("Close should ignore stores without Close: %v", err)
	}
}
