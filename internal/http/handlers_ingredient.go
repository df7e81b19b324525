package http

import (
	"log/slog"
	"net/http"

	"mealplan/internal/core"
)

type ingredientsPageData struct {
	Ingredients []core.Ingredient
}

func (s *Server) handleIngredientsPage(w http.ResponseWriter, r *http.Request) {
	ingredients, err := s.planner.ListIngredients(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load ingredients", "error", err)
		http.Error(w, "Error loading ingredients", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "ingredients.html", ingredientsPageData{Ingredients: ingredients})
}

func (s *Server) handleIngredientsCleanup(w http.ResponseWriter, r *http.Request) {
	removed, err := s.planner.CleanupUnusedIngredients(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ingredient cleanup failed", "error", err)
		http.Error(w, "Error cleaning up ingredients", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Removed unused ingredients", "count", removed)
	http.Redirect(w, r, "/ingredients", http.StatusSeeOther)
}
