// Shopping list aggregation over meal_ingredients rows.
//
// Rows are grouped by (ingredient id, unit) so the same ingredient
// requested in two different units yields two lines, and quantities are
// summed as integer thousandths. Final ordering is category aisle order,
// then case-insensitive ingredient name, then ingredient id.
package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mealplan/internal/core"
)

// ShoppingList aggregates the ingredient requirements of the distinct set
// of the given meal ids. Unknown ids are silently ignored; an empty input
// fails with core.ErrNoMealsSelected.
func (r *SQLiteRepository) ShoppingList(ctx context.Context, mealIDs []int64) ([]core.ShoppingItem, error) {
	if len(mealIDs) == 0 {
		return nil, core.ErrNoMealsSelected
	}

	// Set semantics: requesting a meal twice counts once.
	seen := make(map[int64]struct{}, len(mealIDs))
	distinct := make([]int64, 0, len(mealIDs))
	for _, id := range mealIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(distinct)), ",")
	args := make([]any, len(distinct))
	for i, id := range distinct {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT i.id, i.name, i.category, mi.unit, SUM(mi.quantity_milli)
		FROM meal_ingredients mi
		JOIN ingredients i ON i.id = mi.ingredient_id
		WHERE mi.meal_id IN (%s)
		GROUP BY i.id, mi.unit`, placeholders),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate shopping list: %w", err)
	}
	defer rows.Close()

	var items []core.ShoppingItem
	for rows.Next() {
		var (
			item     core.ShoppingItem
			category string
			unit     string
			milli    int64
		)
		if err := rows.Scan(&item.IngredientID, &item.Ingredient, &category, &unit, &milli); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		item.Category = core.ParseCategory(category)
		item.Unit = core.Unit(unit)
		item.Quantity = core.QuantityFromMilli(milli)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping items: %w", err)
	}

	sort.Slice(items, func(a, b int) bool {
		if items[a].Category != items[b].Category {
			return items[a].Category < items[b].Category
		}
		na, nb := strings.ToLower(items[a].Ingredient), strings.ToLower(items[b].Ingredient)
		if na != nb {
			return na < nb
		}
		return items[a].IngredientID < items[b].IngredientID
	})

	return items, nil
}
