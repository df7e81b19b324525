package services

import (
	"strings"
	"testing"

	"mealplan/internal/core"
)

var exportItems = []core.ShoppingItem{
	{IngredientID: 1, Ingredient: "carrot", Quantity: core.Quantity{Milli: 3000}, Unit: core.UnitPieces, Category: core.CategoryVegetables},
	{IngredientID: 2, Ingredient: "yeast", Quantity: core.Quantity{Milli: 300}, Unit: core.UnitTeaspoon, Category: core.CategoryBaking},
	{IngredientID: 3, Ingredient: "beef", Quantity: core.Quantity{Milli: 500000}, Unit: core.UnitGram, Category: core.CategoryMeatFridge},
}

func TestWriteShoppingCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteShoppingCSV(&b, exportItems); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Ingredient,Quantity,Unit\n" +
		"carrot,3,pieces\n" +
		"yeast,0.3,tsp\n" +
		"beef,500,g\n"
	if b.String() != want {
		t.Fatalf("csv mismatch:\ngot:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteShoppingCSVEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteShoppingCSV(&b, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "Ingredient,Quantity,Unit\n" {
		t.Fatalf("expected header only, got %q", b.String())
	}
}

func TestFormatShoppingText(t *testing.T) {
	got := FormatShoppingText(exportItems)
	want := "carrot - 3 pieces (Vegetables)\n" +
		"yeast - 0.3 tsp (Baking)\n" +
		"beef - 500 g (Meat Fridge)"
	if got != want {
		t.Fatalf("text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatShoppingTextEmpty(t *testing.T) {
	if got := FormatShoppingText(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
