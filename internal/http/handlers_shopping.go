package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mealplan/internal/core"
	"mealplan/internal/services"
)

type shoppingPageData struct {
	Meals       []core.Meal
	Items       []core.ShoppingItem
	SelectedIDs map[int64]bool
	Error       string
}

func (s *Server) shoppingPageData(r *http.Request) (shoppingPageData, error) {
	meals, err := s.planner.ListMeals(r.Context())
	if err != nil {
		return shoppingPageData{}, err
	}
	return shoppingPageData{Meals: meals, SelectedIDs: map[int64]bool{}}, nil
}

func (s *Server) handleShoppingPage(w http.ResponseWriter, r *http.Request) {
	data, err := s.shoppingPageData(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load shopping page", "error", err)
		http.Error(w, "Error loading shopping page", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "shopping.html", data)
}

func (s *Server) handleShoppingResults(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	data, err := s.shoppingPageData(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load shopping page", "error", err)
		http.Error(w, "Error loading shopping page", http.StatusInternalServerError)
		return
	}

	mealIDs := parseMealSelection(r.Form)
	for _, id := range mealIDs {
		data.SelectedIDs[id] = true
	}

	items, err := s.planner.ShoppingList(r.Context(), mealIDs)
	if err != nil {
		data.Error = errorMessage(err)
		w.WriteHeader(errorStatus(err))
		s.render(w, r, "shopping.html", data)
		return
	}

	data.Items = items
	s.render(w, r, "shopping.html", data)
}

// shoppingItems resolves the selected meals from the form into an
// aggregated shopping list for the export handlers.
func (s *Server) shoppingItems(w http.ResponseWriter, r *http.Request) ([]core.ShoppingItem, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}

	items, err := s.planner.ShoppingList(r.Context(), parseMealSelection(r.Form))
	if err != nil {
		if !errors.Is(err, core.ErrNoMealsSelected) {
			slog.ErrorContext(r.Context(), "Failed to build shopping list", "error", err)
		}
		http.Error(w, errorMessage(err), errorStatus(err))
		return nil, false
	}
	return items, true
}

func exportFilename(ext string) string {
	return fmt.Sprintf("shopping_list_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func (s *Server) handleShoppingExportCSV(w http.ResponseWriter, r *http.Request) {
	items, ok := s.shoppingItems(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))
	if err := services.WriteShoppingCSV(w, items); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write shopping list export", "error", err)
	}
}

func (s *Server) handleShoppingExportText(w http.ResponseWriter, r *http.Request) {
	items, ok := s.shoppingItems(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("txt")))
	if _, err := w.Write([]byte(services.FormatShoppingText(items))); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write shopping list export", "error", err)
	}
}
