package main

import (
	"net/http"

	"github.com/smartprint/go-invoice/internal/catalog"
	"github.com/smartprint/go-invoice/internal/currency"
	"github.com/smartprint/go-invoice/internal/handlers"
	"github.com/smartprint/go-invoice/internal/httpx"
	"github.com/smartprint/go-invoice/internal/state"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// NewApp creates the application with all routes configured.
func NewApp(store *state.Store, cat catalog.Catalog, format *currency.Formatter) *App {
	app := &App{mux: http.NewServeMux()}

	handlers.NewInvoiceHandler(store, cat, format).Register(app.mux)
	app.mux.HandleFunc("GET /healthz", app.health)

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
