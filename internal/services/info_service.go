// filepath: internal/services/info_service.go
package services

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"time"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version   string
	StartTime time.Time
	Catalog   CatalogStore
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, catalog CatalogStore) *infoService {
	return &infoService{
		Version:   version,
		StartTime: startTime,
		Catalog:   catalog,
	}
}

// GetInfo retrieves the application information. StoreConnected reflects a live ping.
func (s *infoService) GetInfo(ctx context.Context) models.Info {
	connected := true
	if err := s.Catalog.Ping(ctx); err != nil {
		logging.Log.Debugf("InfoService: catalog ping failed: %v", err)
		connected = false
	}
	return models.Info{
		Message:        "Flower Shop API",
		Version:        s.Version,
		StoreConnected: connected,
		UptimeSince:    s.StartTime,
	}
}
