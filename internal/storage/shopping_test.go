package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplan/internal/core"
)

func TestShoppingListEmptyInput(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.ShoppingList(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrNoMealsSelected)
}

func TestShoppingListUnknownMealIgnored(t *testing.T) {
	repo := newTestRepo(t)
	items, err := repo.ShoppingList(context.Background(), []int64{12345})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShoppingListCombinesSharedIngredient(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.AddMeal(ctx, core.Meal{Name: "Curry"}, []core.IngredientLine{
		{Ingredient: "garlic", Quantity: qty(t, "2"), Unit: core.UnitClove},
	})
	require.NoError(t, err)
	b, err := repo.AddMeal(ctx, core.Meal{Name: "Stir Fry"}, []core.IngredientLine{
		{Ingredient: "garlic", Quantity: qty(t, "3"), Unit: core.UnitClove},
	})
	require.NoError(t, err)

	// {A, A, B} has set semantics: one combined garlic line, 2 + 3 = 5.
	items, err := repo.ShoppingList(ctx, []int64{a, a, b})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "garlic", items[0].Ingredient)
	assert.Equal(t, core.UnitClove, items[0].Unit)
	assert.Equal(t, int64(5000), items[0].Quantity.Milli)
}

func TestShoppingListExactDecimalSums(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.AddMeal(ctx, core.Meal{Name: "Bread"}, []core.IngredientLine{
		{Ingredient: "yeast", Quantity: qty(t, "0.1"), Unit: core.UnitTeaspoon},
	})
	require.NoError(t, err)
	b, err := repo.AddMeal(ctx, core.Meal{Name: "Buns"}, []core.IngredientLine{
		{Ingredient: "yeast", Quantity: qty(t, "0.2"), Unit: core.UnitTeaspoon},
	})
	require.NoError(t, err)

	items, err := repo.ShoppingList(ctx, []int64{a, b})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "0.3", items[0].Quantity.String())
}

func TestShoppingListSeparatesUnits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.AddMeal(ctx, core.Meal{Name: "Stew"}, []core.IngredientLine{
		{Ingredient: "tomato", Quantity: qty(t, "400"), Unit: core.UnitGram},
	})
	require.NoError(t, err)
	b, err := repo.AddMeal(ctx, core.Meal{Name: "Salad"}, []core.IngredientLine{
		{Ingredient: "tomato", Quantity: qty(t, "2"), Unit: core.UnitPieces},
	})
	require.NoError(t, err)

	// Same ingredient in two units stays two lines.
	items, err := repo.ShoppingList(ctx, []int64{a, b})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, items[0].Ingredient, items[1].Ingredient)
	assert.NotEqual(t, items[0].Unit, items[1].Unit)
}

func TestShoppingListOrderedByCategoryThenName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddMeal(ctx, core.Meal{Name: "Feast"}, []core.IngredientLine{
		{Ingredient: "paprika", Quantity: qty(t, "1"), Unit: core.UnitTeaspoon, Category: core.CategorySpices},
		{Ingredient: "Beef", Quantity: qty(t, "500"), Unit: core.UnitGram, Category: core.CategoryMeatFridge},
		{Ingredient: "carrot", Quantity: qty(t, "3"), Unit: core.UnitPieces, Category: core.CategoryVegetables},
		{Ingredient: "apple", Quantity: qty(t, "2"), Unit: core.UnitPieces, Category: core.CategoryVegetables},
	})
	require.NoError(t, err)

	items, err := repo.ShoppingList(ctx, []int64{id})
	require.NoError(t, err)
	require.Len(t, items, 4)

	// Vegetables (apple, carrot) before Spices before Meat Fridge; names
	// case-insensitive within a category.
	assert.Equal(t, "apple", items[0].Ingredient)
	assert.Equal(t, "carrot", items[1].Ingredient)
	assert.Equal(t, "paprika", items[2].Ingredient)
	assert.Equal(t, "Beef", items[3].Ingredient)
}

func TestShoppingListSkipsIngredientlessMeal(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.AddMeal(ctx, core.Meal{Name: "Fasting"}, nil)
	require.NoError(t, err)
	full, err := repo.AddMeal(ctx, core.Meal{Name: "Pasta"}, []core.IngredientLine{
		{Ingredient: "spaghetti", Quantity: qty(t, "200"), Unit: core.UnitGram},
	})
	require.NoError(t, err)

	items, err := repo.ShoppingList(ctx, []int64{empty, full})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "spaghetti", items[0].Ingredient)
}
