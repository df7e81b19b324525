// Shopping list export formats: CSV for spreadsheets, plain text for
// phones and printouts.
package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"mealplan/internal/core"
)

// WriteShoppingCSV writes the aggregated list as delimited text with a
// header row and columns Ingredient, Quantity, Unit.
func WriteShoppingCSV(w io.Writer, items []core.ShoppingItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Ingredient", "Quantity", "Unit"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		record := []string{item.Ingredient, item.Quantity.String(), string(item.Unit)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FormatShoppingText renders one "name - qty unit (Category)" line per
// aggregated item, in the list's category-then-name order.
func FormatShoppingText(items []core.ShoppingItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s - %s %s (%s)",
			item.Ingredient, item.Quantity.String(), item.Unit, item.Category.DisplayName())
	}
	return b.String()
}
