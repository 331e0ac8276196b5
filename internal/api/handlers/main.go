// filepath: internal/api/handlers/main.go
package handlers

import (
	"flowershop/internal/config"
	"flowershop/internal/services"
)

// Handlers holds the shared dependencies of the API handlers.
type Handlers struct {
	Info       services.InfoService
	Flowers    services.FlowerService
	References services.ReferenceService
	Exports    services.ExportService
	Auditor    services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	flowers services.FlowerService,
	references services.ReferenceService,
	exports services.ExportService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:       info,
		Flowers:    flowers,
		References: references,
		Exports:    exports,
		Auditor:    auditor,
		Cfg:        cfg,
	}
}
