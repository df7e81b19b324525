package http

import (
	"log/slog"
	"net/http"

	"mealplan/internal/core"
)

type mealView struct {
	Meal  core.Meal
	Lines []core.IngredientLine
}

type mealsPageData struct {
	Meals      []mealView
	Units      []core.UnitOption
	Categories []core.Category
	BlankRows  []int
	Error      string
}

type mealEditData struct {
	Meal       core.Meal
	Lines      []core.IngredientLine
	Units      []core.UnitOption
	Categories []core.Category
	BlankRows  []int
	Error      string
}

func blankRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func (s *Server) mealsPageData(r *http.Request, errMsg string) (mealsPageData, error) {
	data := mealsPageData{
		Units:      core.UnitOptions(),
		Categories: core.Categories(),
		BlankRows:  blankRows(8),
		Error:      errMsg,
	}

	meals, err := s.planner.ListMeals(r.Context())
	if err != nil {
		return data, err
	}
	for _, meal := range meals {
		lines, err := s.planner.MealIngredients(r.Context(), meal.ID)
		if err != nil {
			return data, err
		}
		data.Meals = append(data.Meals, mealView{Meal: meal, Lines: lines})
	}
	return data, nil
}

func (s *Server) handleMealsPage(w http.ResponseWriter, r *http.Request) {
	data, err := s.mealsPageData(r, "")
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load meals page", "error", err)
		http.Error(w, "Error loading meals", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "meals.html", data)
}

// renderMealsError re-renders the meals page with a user-facing message.
func (s *Server) renderMealsError(w http.ResponseWriter, r *http.Request, opErr error) {
	data, err := s.mealsPageData(r, errorMessage(opErr))
	if err != nil {
		http.Error(w, "Error loading meals", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(errorStatus(opErr))
	s.render(w, r, "meals.html", data)
}

func (s *Server) handleCreateMeal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	meal := core.Meal{
		Name:        sanitizeInput(r.Form.Get("name")),
		Description: sanitizeInput(r.Form.Get("description")),
		RecipeLink:  sanitizeInput(r.Form.Get("recipe_link")),
		Notes:       sanitizeInput(r.Form.Get("notes")),
	}

	lines, err := parseIngredientLines(r.Form)
	if err != nil {
		s.renderMealsError(w, r, err)
		return
	}

	if _, err := s.planner.AddMeal(r.Context(), meal, lines); err != nil {
		s.renderMealsError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) mealEditData(r *http.Request, mealID int64, errMsg string) (mealEditData, error) {
	meal, err := s.planner.GetMeal(r.Context(), mealID)
	if err != nil {
		return mealEditData{}, err
	}
	lines, err := s.planner.MealIngredients(r.Context(), mealID)
	if err != nil {
		return mealEditData{}, err
	}
	return mealEditData{
		Meal:       meal,
		Lines:      lines,
		Units:      core.UnitOptions(),
		Categories: core.Categories(),
		BlankRows:  blankRows(3),
		Error:      errMsg,
	}, nil
}

func (s *Server) handleEditMealPage(w http.ResponseWriter, r *http.Request) {
	mealID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, err := s.mealEditData(r, mealID, "")
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "Failed to load meal", "error", err, "meal_id", mealID)
		}
		http.Error(w, errorMessage(err), status)
		return
	}
	s.render(w, r, "meal_edit.html", data)
}

func (s *Server) handleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	mealID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	meal := core.Meal{
		Name:        sanitizeInput(r.Form.Get("name")),
		Description: sanitizeInput(r.Form.Get("description")),
		RecipeLink:  sanitizeInput(r.Form.Get("recipe_link")),
		Notes:       sanitizeInput(r.Form.Get("notes")),
	}

	lines, parseErr := parseIngredientLines(r.Form)
	if parseErr == nil {
		parseErr = s.planner.UpdateMeal(r.Context(), mealID, meal, lines)
	}
	if parseErr != nil {
		data, loadErr := s.mealEditData(r, mealID, errorMessage(parseErr))
		if loadErr != nil {
			http.Error(w, errorMessage(loadErr), errorStatus(loadErr))
			return
		}
		w.WriteHeader(errorStatus(parseErr))
		s.render(w, r, "meal_edit.html", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	mealID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.planner.DeleteMeal(r.Context(), mealID); err != nil {
		http.Error(w, errorMessage(err), errorStatus(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
