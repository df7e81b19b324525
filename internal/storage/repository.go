package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mealplan/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddMeal creates a meal together with its ingredient lines in one
// transaction. Ingredients are matched case-insensitively and created on
// first use. Returns core.ErrDuplicateName when a meal with the same
// case-insensitive name exists.
func (r *SQLiteRepository) AddMeal(ctx context.Context, meal core.Meal, lines []core.IngredientLine) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dupID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM meals WHERE name = ?", meal.Name,
	).Scan(&dupID)
	if err == nil {
		return 0, core.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check meal name uniqueness: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO meals (name, description, recipe_link, notes) VALUES (?, ?, ?, ?)",
		meal.Name, meal.Description, meal.RecipeLink, meal.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("create meal: %w", err)
	}
	mealID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("meal id: %w", err)
	}

	if err := r.insertLines(ctx, tx, mealID, lines); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit meal: %w", err)
	}

	slog.InfoContext(ctx, "Meal saved to SQLite",
		"id", mealID,
		"name", meal.Name,
		"ingredients", len(lines))

	return mealID, nil
}

// UpdateMeal replaces the meal's attributes and its whole set of ingredient
// lines (delete-then-recreate, scoped to this meal) in one transaction.
func (r *SQLiteRepository) UpdateMeal(ctx context.Context, mealID int64, meal core.Meal, lines []core.IngredientLine) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM meals WHERE id = ?", mealID).Scan(&exists)
	if err == sql.ErrNoRows {
		return core.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check meal existence: %w", err)
	}

	// The uniqueness check excludes the meal being updated itself.
	var dupID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM meals WHERE name = ? AND id != ?", meal.Name, mealID,
	).Scan(&dupID)
	if err == nil {
		return core.ErrDuplicateName
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check meal name uniqueness: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE meals SET name = ?, description = ?, recipe_link = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		meal.Name, meal.Description, meal.RecipeLink, meal.Notes, mealID,
	)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM meal_ingredients WHERE meal_id = ?", mealID); err != nil {
		return fmt.Errorf("delete meal ingredients: %w", err)
	}

	if err := r.insertLines(ctx, tx, mealID, lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit meal update: %w", err)
	}

	slog.InfoContext(ctx, "Meal updated",
		"id", mealID,
		"name", meal.Name,
		"ingredients", len(lines))

	return nil
}

// insertLines resolves each line's ingredient (reuse by case-insensitive
// name, create when missing) and inserts the meal_ingredients rows.
func (r *SQLiteRepository) insertLines(ctx context.Context, tx *sql.Tx, mealID int64, lines []core.IngredientLine) error {
	for _, line := range lines {
		name := strings.TrimSpace(line.Ingredient)

		var ingredientID int64
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM ingredients WHERE name = ?", name,
		).Scan(&ingredientID)
		if err == sql.ErrNoRows {
			category := line.Category
			if category == 0 {
				category = core.CategoryNotSure
			}
			res, insErr := tx.ExecContext(ctx,
				"INSERT INTO ingredients (name, category) VALUES (?, ?)",
				name, category.Name(),
			)
			if insErr != nil {
				return fmt.Errorf("create ingredient %q: %w", name, insErr)
			}
			ingredientID, insErr = res.LastInsertId()
			if insErr != nil {
				return fmt.Errorf("ingredient id: %w", insErr)
			}
		} else if err != nil {
			return fmt.Errorf("find ingredient %q: %w", name, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO meal_ingredients (meal_id, ingredient_id, quantity_milli, unit) VALUES (?, ?, ?, ?)",
			mealID, ingredientID, line.Quantity.Milli, string(line.Unit),
		)
		if err != nil {
			return fmt.Errorf("link ingredient %q: %w", name, err)
		}
	}
	return nil
}

// DeleteMeal removes the meal and cascades its meal_ingredients rows.
// Shared ingredient rows stay. A second delete of the same id reports
// core.ErrNotFound.
func (r *SQLiteRepository) DeleteMeal(ctx context.Context, mealID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM meal_ingredients WHERE meal_id = ?", mealID); err != nil {
		return fmt.Errorf("delete meal ingredients: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM meals WHERE id = ?", mealID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete meal rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit meal delete: %w", err)
	}

	slog.InfoContext(ctx, "Meal deleted", "id", mealID)
	return nil
}

// GetMeal returns a single meal by id.
func (r *SQLiteRepository) GetMeal(ctx context.Context, mealID int64) (core.Meal, error) {
	var m core.Meal
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, recipe_link, notes, created_at, updated_at FROM meals WHERE id = ?",
		mealID,
	).Scan(&m.ID, &m.Name, &m.Description, &m.RecipeLink, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return core.Meal{}, core.ErrNotFound
	}
	if err != nil {
		return core.Meal{}, fmt.Errorf("get meal by id: %w", err)
	}
	return m, nil
}

// ListMeals returns all meals ordered by name, case-insensitive ascending.
func (r *SQLiteRepository) ListMeals(ctx context.Context) ([]core.Meal, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, recipe_link, notes, created_at, updated_at FROM meals ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var meals []core.Meal
	for rows.Next() {
		var m core.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.RecipeLink, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}

// MealIngredients returns the meal's lines ordered by ingredient name. An
// ingredient-less meal yields an empty slice, not an error.
func (r *SQLiteRepository) MealIngredients(ctx context.Context, mealID int64) ([]core.IngredientLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.name, mi.quantity_milli, mi.unit, i.category
		FROM meal_ingredients mi
		JOIN ingredients i ON i.id = mi.ingredient_id
		WHERE mi.meal_id = ?
		ORDER BY i.name, i.id`,
		mealID,
	)
	if err != nil {
		return nil, fmt.Errorf("get meal ingredients: %w", err)
	}
	defer rows.Close()

	var lines []core.IngredientLine
	for rows.Next() {
		var (
			line     core.IngredientLine
			milli    int64
			unit     string
			category string
		)
		if err := rows.Scan(&line.Ingredient, &milli, &unit, &category); err != nil {
			return nil, fmt.Errorf("scan meal ingredient: %w", err)
		}
		line.Quantity = core.QuantityFromMilli(milli)
		line.Unit = core.Unit(unit)
		line.Category = core.ParseCategory(category)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal ingredients: %w", err)
	}
	return lines, nil
}

// ListIngredients returns all ingredients ordered by name.
func (r *SQLiteRepository) ListIngredients(ctx context.Context) ([]core.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, category FROM ingredients ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []core.Ingredient
	for rows.Next() {
		var (
			ing      core.Ingredient
			category string
		)
		if err := rows.Scan(&ing.ID, &ing.Name, &category); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ing.Category = core.ParseCategory(category)
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// CleanupUnusedIngredients deletes ingredients referenced by no meal and
// returns how many were removed.
func (r *SQLiteRepository) CleanupUnusedIngredients(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM ingredients
		WHERE id NOT IN (SELECT DISTINCT ingredient_id FROM meal_ingredients)`,
	)
	if err != nil {
		return 0, fmt.Errorf("cleanup unused ingredients: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup rows affected: %w", err)
	}
	if removed > 0 {
		slog.InfoContext(ctx, "Unused ingredients removed", "count", removed)
	}
	return removed, nil
}
