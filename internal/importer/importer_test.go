package importer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplan/internal/core"
	"mealplan/internal/services"
	"mealplan/internal/storage"
)

func newTestImporter(t *testing.T) (*Importer, *services.PlannerService) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	planner := services.NewPlannerService(repo)
	return New(planner), planner
}

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want core.Unit
		ok   bool
	}{
		{"g", core.UnitGram, true},
		{"Grams", core.UnitGram, true},
		{"litre(s)", core.UnitLitre, true},
		{"cloves of garlic", core.UnitClove, true},
		{"sticks", core.UnitStalk, true},
		{"sprigs", core.UnitBunch, true},
		{"punnet", core.UnitPacket, true},
		{"rashers", core.UnitPiece, true},
		{"", core.UnitPiece, true},
		{"stone", "", false},
		{"handful", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeUnit(tc.in)
		if tc.ok {
			require.NoError(t, err, "NormalizeUnit(%q)", tc.in)
			assert.Equal(t, tc.want, got, "NormalizeUnit(%q)", tc.in)
		} else {
			assert.ErrorIs(t, err, core.ErrUnknownUnit, "NormalizeUnit(%q)", tc.in)
		}
	}
}

func TestImportCSVGroupsRowsByMeal(t *testing.T) {
	imp, planner := newTestImporter(t)
	ctx := context.Background()

	csvData := strings.Join([]string{
		"Meal,Ingredient,Quantity,Unit,Category",
		"Tacos,beef,500,grams,meat fridge",
		"Tacos,tortilla,8,pieces,bakery",
		"Curry,rice,1.5,cups,dry food",
		"Curry,garlic,2,cloves of garlic,vegetables",
	}, "\n")

	result, err := imp.ImportCSV(ctx, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, result.MealsImported)
	assert.Zero(t, result.RowsSkipped)

	meals, err := planner.ListMeals(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Curry", meals[0].Name)
	assert.Equal(t, "Tacos", meals[1].Name)

	lines, err := planner.MealIngredients(ctx, meals[1].ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "beef", lines[0].Ingredient)
	assert.Equal(t, core.UnitGram, lines[0].Unit)
	assert.Equal(t, int64(500000), lines[0].Quantity.Milli)
	assert.Equal(t, core.CategoryMeatFridge, lines[0].Category)
}

func TestImportCSVSkipsExistingMeals(t *testing.T) {
	imp, planner := newTestImporter(t)
	ctx := context.Background()

	_, err := planner.AddMeal(ctx, core.Meal{Name: "Tacos"}, nil)
	require.NoError(t, err)

	csvData := "Meal,Ingredient,Quantity,Unit\nTACOS,beef,500,g\nSoup,carrot,3,pieces\n"
	result, err := imp.ImportCSV(ctx, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.MealsImported)
	assert.Equal(t, 1, result.MealsSkipped)
}

func TestImportCSVSkipsBadRows(t *testing.T) {
	imp, planner := newTestImporter(t)
	ctx := context.Background()

	csvData := strings.Join([]string{
		"Meal,Ingredient,Quantity,Unit",
		",beef,500,g",              // no meal name
		"Stew,,500,g",              // no ingredient name
		"Stew,beef,500,stone",      // unknown unit
		"Stew,onion,,pieces",       // missing quantity defaults to 1
		"Stew,beef,300,g",          // good
		"Stew,Beef,100,g",          // duplicate ingredient within meal
	}, "\n")

	result, err := imp.ImportCSV(ctx, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.MealsImported)
	assert.Equal(t, 4, result.RowsSkipped)
	assert.Equal(t, []string{"stone"}, result.UnknownUnits)

	meals, err := planner.ListMeals(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 1)

	lines, err := planner.MealIngredients(ctx, meals[0].ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "beef", lines[0].Ingredient)
	assert.Equal(t, int64(300000), lines[0].Quantity.Milli)
	assert.Equal(t, "onion", lines[1].Ingredient)
	assert.Equal(t, int64(1000), lines[1].Quantity.Milli)
}

func TestImportCSVMissingColumns(t *testing.T) {
	imp, _ := newTestImporter(t)
	_, err := imp.ImportCSV(context.Background(), strings.NewReader("Meal,Ingredient\nTacos,beef\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}
