package http

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"mealplan/internal/middleware/trace"
	"mealplan/internal/services"
	appweb "mealplan/web"
)

type Server struct {
	http.Server
	templates *template.Template
	planner   *services.PlannerService
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, planner *services.PlannerService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		planner: planner,
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
	}

	mux.HandleFunc("GET /{$}", s.handleMealsPage)
	mux.HandleFunc("POST /meals", s.handleCreateMeal)
	mux.HandleFunc("GET /meals/{id}/edit", s.handleEditMealPage)
	mux.HandleFunc("POST /meals/{id}", s.handleUpdateMeal)
	mux.HandleFunc("POST /meals/{id}/delete", s.handleDeleteMeal)

	mux.HandleFunc("GET /shopping", s.handleShoppingPage)
	mux.HandleFunc("POST /shopping", s.handleShoppingResults)
	mux.HandleFunc("POST /shopping/export.csv", s.handleShoppingExportCSV)
	mux.HandleFunc("POST /shopping/export.txt", s.handleShoppingExportText)

	mux.HandleFunc("GET /ingredients", s.handleIngredientsPage)
	mux.HandleFunc("POST /ingredients/cleanup", s.handleIngredientsCleanup)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.Handler = trace.NewMiddleware().Middleware(mux)

	return s
}
