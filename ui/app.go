package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medirisk/app"
	"medirisk/internal"
)

//go:embed templates/* templates/fragments/* static/* docs/*
var embeddedFiles embed.FS

// App is the browser-facing risk assessment application.
type App struct {
	router      *chi.Mux
	assessments *app.AssessmentService
	templates   *template.Template
	logger      *internal.Logger
	loadError   string // non-empty when the model registry failed to load
}

// Config holds UI application configuration.
type Config struct {
	// LoadError carries a startup model-load failure for display. The app
	// still serves, degraded, so the operator sees the failure in context.
	LoadError string
}

// NewApp creates the UI application around an assessment service.
func NewApp(assessments *app.AssessmentService, logger *internal.Logger, config Config) (*App, error) {
	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if logger == nil {
		logger = internal.DefaultLogger
	}

	a := &App{
		router:      chi.NewRouter(),
		assessments: assessments,
		templates:   templates,
		logger:      logger,
		loadError:   config.LoadError,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/assess", a.handleAssess)
	a.router.Get("/history", a.handleHistory)
	a.router.Get("/history/export", a.handleHistoryExport)
	a.router.Get("/about", a.handleAbout)

	// HTMX fragment endpoints
	a.router.Get("/api/fragments/history", a.handleFragmentHistory)
}

// Router exposes the handler for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server.
func (a *App) Start(addr string) error {
	a.logger.Info("MediRisk UI listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// HTMX helpers
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
