// Package importer loads meals and their ingredient lines from delimited
// text files. Rows sharing a meal name group into one meal; unit and
// category spellings are normalized to the closed catalogs.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"mealplan/internal/core"
	"mealplan/internal/services"
)

// Result summarizes one import run.
type Result struct {
	MealsImported int
	MealsSkipped  int // meals whose name already existed
	RowsSkipped   int
	UnknownUnits  []string
}

type Importer struct {
	planner *services.PlannerService
}

func New(planner *services.PlannerService) *Importer {
	return &Importer{planner: planner}
}

// unitSynonyms maps spreadsheet unit spellings to catalog codes. Canonical
// codes are included so already-normalized files pass through unchanged.
var unitSynonyms = map[string]core.Unit{
	"g": core.UnitGram, "gram": core.UnitGram, "grams": core.UnitGram,
	"kg": core.UnitKilogram, "kilogram": core.UnitKilogram, "kilograms": core.UnitKilogram,

	"ml": core.UnitMillilitre, "millilitre": core.UnitMillilitre, "millilitres": core.UnitMillilitre,
	"l": core.UnitLitre, "litre": core.UnitLitre, "litres": core.UnitLitre, "litre(s)": core.UnitLitre,

	"tsp": core.UnitTeaspoon, "teaspoon": core.UnitTeaspoon, "teaspoons": core.UnitTeaspoon,
	"tbsp": core.UnitTablespoon, "tablespoon": core.UnitTablespoon, "tablespoons": core.UnitTablespoon,
	"cup": core.UnitCup, "cups": core.UnitCup,

	"piece": core.UnitPiece, "pieces": core.UnitPieces,
	"item": core.UnitPiece, "items": core.UnitPiece, "item(s)": core.UnitPiece,
	"clove": core.UnitClove, "cloves": core.UnitCloves, "cloves of garlic": core.UnitClove,

	"cm": core.UnitCentimetre, "centimetre": core.UnitCentimetre, "centimetres": core.UnitCentimetre,

	"pinch": core.UnitPinch, "pinches": core.UnitPinch,
	"dash": core.UnitDash, "dashes": core.UnitDash,

	"can": core.UnitCan, "cans": core.UnitCan,
	"jar": core.UnitJar, "jars": core.UnitJar,
	"bottle": core.UnitBottle, "bottles": core.UnitBottle,
	"packet": core.UnitPacket, "packets": core.UnitPacket, "punnet": core.UnitPacket,
	"bag": core.UnitBag, "bags": core.UnitBag,

	"head": core.UnitHead, "heads": core.UnitHead,
	"bunch": core.UnitBunch, "bunches": core.UnitBunch, "sprigs": core.UnitBunch,
	"stalk": core.UnitStalk, "stalks": core.UnitStalk, "sticks": core.UnitStalk,
	"leaf": core.UnitLeaf, "leaves": core.UnitLeaves,

	// Spreadsheet oddities from historic exports.
	"sheets": core.UnitPiece, "rashers": core.UnitPiece, "bulb": core.UnitPiece,
}

// NormalizeUnit resolves a free-text unit spelling to a catalog code. An
// empty spelling means a count of items.
func NormalizeUnit(s string) (core.Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return core.UnitPiece, nil
	}
	if u, ok := unitSynonyms[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownUnit, s)
}

// headerIndex maps the lowercased header names to their column positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ImportCSV reads rows with columns Meal, Ingredient, Quantity, Unit and
// optional Category, groups them by meal name, and creates the meals.
// Meals whose name already exists are skipped; the import is additive.
func (imp *Importer) ImportCSV(ctx context.Context, r io.Reader) (Result, error) {
	var result Result

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}
	idx := headerIndex(header)
	for _, required := range []string{"meal", "ingredient", "quantity", "unit"} {
		if _, ok := idx[required]; !ok {
			return result, fmt.Errorf("missing required column %q", required)
		}
	}

	// Group lines by meal, preserving first-seen order.
	var order []string
	lines := make(map[string][]core.IngredientLine)
	seen := make(map[string]map[string]struct{})
	unknownUnits := make(map[string]struct{})

	rowNum := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return result, fmt.Errorf("read csv row %d: %w", rowNum, err)
		}

		mealName := field(record, idx, "meal")
		ingredientName := field(record, idx, "ingredient")
		if mealName == "" || ingredientName == "" {
			slog.WarnContext(ctx, "Skipping row with missing meal or ingredient name", "row", rowNum)
			result.RowsSkipped++
			continue
		}

		quantity, err := core.ParseQuantity(field(record, idx, "quantity"))
		if err != nil {
			slog.WarnContext(ctx, "Missing or invalid quantity, defaulting to 1",
				"row", rowNum, "ingredient", ingredientName)
			quantity = core.QuantityFromMilli(1000)
		}

		unit, err := NormalizeUnit(field(record, idx, "unit"))
		if err != nil {
			slog.WarnContext(ctx, "Skipping row with unknown unit",
				"row", rowNum, "unit", field(record, idx, "unit"))
			unknownUnits[field(record, idx, "unit")] = struct{}{}
			result.RowsSkipped++
			continue
		}

		category := core.ParseCategory(field(record, idx, "category"))

		mealKey := strings.ToLower(mealName)
		if _, ok := lines[mealKey]; !ok {
			order = append(order, mealName)
			seen[mealKey] = make(map[string]struct{})
		}
		ingredientKey := strings.ToLower(ingredientName)
		if _, dup := seen[mealKey][ingredientKey]; dup {
			slog.WarnContext(ctx, "Skipping duplicate ingredient row",
				"row", rowNum, "meal", mealName, "ingredient", ingredientName)
			result.RowsSkipped++
			continue
		}
		seen[mealKey][ingredientKey] = struct{}{}

		lines[mealKey] = append(lines[mealKey], core.IngredientLine{
			Ingredient: ingredientName,
			Quantity:   quantity,
			Unit:       unit,
			Category:   category,
		})
	}

	for _, mealName := range order {
		mealLines := lines[strings.ToLower(mealName)]
		_, err := imp.planner.AddMeal(ctx, core.Meal{Name: mealName}, mealLines)
		if errors.Is(err, core.ErrDuplicateName) {
			slog.InfoContext(ctx, "Meal already exists, skipping", "name", mealName)
			result.MealsSkipped++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("import meal %q: %w", mealName, err)
		}
		result.MealsImported++
	}

	for u := range unknownUnits {
		result.UnknownUnits = append(result.UnknownUnits, u)
	}

	slog.InfoContext(ctx, "Import completed",
		"meals_imported", result.MealsImported,
		"meals_skipped", result.MealsSkipped,
		"rows_skipped", result.RowsSkipped,
		"unknown_units", len(result.UnknownUnits))

	return result, nil
}
