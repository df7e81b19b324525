package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mealplan/internal/core"
	applog "mealplan/internal/log"
)

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// errorMessage translates domain errors into user-facing text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyName):
		return "Name cannot be empty"
	case errors.Is(err, core.ErrNameTooLong):
		return "Name is too long (max 200 characters)"
	case errors.Is(err, core.ErrInvalidQuantity):
		return "Quantity must be a positive number"
	case errors.Is(err, core.ErrUnknownUnit):
		return "Unknown unit"
	case errors.Is(err, core.ErrDuplicateName):
		return "A meal with that name already exists"
	case errors.Is(err, core.ErrDuplicateIngredient):
		return "The same ingredient appears twice"
	case errors.Is(err, core.ErrNotFound):
		return "Meal not found"
	case errors.Is(err, core.ErrNoMealsSelected):
		return "Select at least one meal"
	default:
		return "Something went wrong"
	}
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrNameTooLong),
		errors.Is(err, core.ErrInvalidQuantity),
		errors.Is(err, core.ErrUnknownUnit),
		errors.Is(err, core.ErrDuplicateIngredient),
		errors.Is(err, core.ErrNoMealsSelected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// render executes a template and logs failures.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template render failed",
			"template", name,
			applog.FieldError, err,
			applog.FieldComponent, applog.ComponentTemplate,
			applog.FieldOperation, applog.OpRender)
	}
}

// parseIngredientLines builds ingredient lines from the parallel form
// fields ingredient_name, quantity, unit and category. Rows with an empty
// ingredient name are skipped so blank form rows are harmless.
func parseIngredientLines(form url.Values) ([]core.IngredientLine, error) {
	names := form["ingredient_name"]
	quantities := form["quantity"]
	units := form["unit"]
	categories := form["category"]

	var lines []core.IngredientLine
	for i, raw := range names {
		name := sanitizeInput(raw)
		if name == "" {
			continue
		}

		var quantityStr string
		if i < len(quantities) {
			quantityStr = quantities[i]
		}
		quantity, err := core.ParseQuantity(quantityStr)
		if err != nil {
			return nil, err
		}

		var unitStr string
		if i < len(units) {
			unitStr = strings.TrimSpace(units[i])
		}
		unit, ok := core.LookupUnit(unitStr)
		if !ok {
			return nil, core.ErrUnknownUnit
		}

		var categoryStr string
		if i < len(categories) {
			categoryStr = categories[i]
		}

		lines = append(lines, core.IngredientLine{
			Ingredient: name,
			Quantity:   quantity,
			Unit:       unit,
			Category:   core.ParseCategory(categoryStr),
		})
	}
	return lines, nil
}

// parseMealSelection parses the meal_id checkbox values.
func parseMealSelection(form url.Values) []int64 {
	var ids []int64
	for _, v := range form["meal_id"] {
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
