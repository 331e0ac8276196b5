// filepath: internal/httpserver/router.go
package httpserver

import (
	"flowershop/internal/api/handlers"
	"flowershop/internal/logging"
	"flowershop/internal/web"
	"io/fs"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// ImagePrefix is the URL path under which stored images are served.
const ImagePrefix = "/images/"

// SetupRouter configures the main router. Every endpoint is public; CORS is open
// to any origin so the browser frontend can be hosted elsewhere.
func SetupRouter(h *handlers.Handlers, images fs.FS) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Public Endpoints
	r.HandleFunc("/", h.GetInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addFlowerRoutes(r, h)
	addReferenceRoutes(r, h)
	addExportRoutes(r, h)

	// Stored images
	web.AddRoutes(r, images, ImagePrefix)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Accept", "X-Requested-With"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Disposition", handlers.TruncatedHeader}),
	)
	recovery := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(logging.Log),
		gorillaHandlers.PrintRecoveryStack(true),
	)
	return recovery(cors(r))
}

// addFlowerRoutes configures the catalog CRUD routes.
func addFlowerRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/flowers", h.GetFlowers).Methods("GET")
	r.HandleFunc("/flowers", h.CreateFlower).Methods("POST")
	r.HandleFunc("/flowers/{id}", h.UpdateFlower).Methods("PUT")
	r.HandleFunc("/flowers/{id}", h.DeleteFlower).Methods("DELETE")
}

// addReferenceRoutes configures the dropdown lists and the stats summary.
func addReferenceRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/flower-types", h.GetFlowerTypes).Methods("GET")
	r.HandleFunc("/unit-types", h.GetUnitTypes).Methods("GET")
	r.HandleFunc("/stats", h.GetStats).Methods("GET")
}

// addExportRoutes configures the document downloads.
func addExportRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/export/excel", h.ExportExcel).Methods("GET")
	r.HandleFunc("/export/pdf", h.ExportPDF).Methods("GET")
}
