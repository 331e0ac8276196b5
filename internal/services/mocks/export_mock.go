// filepath: internal/services/mocks/export_mock.go
package mocks

import (
	"context"
	"flowershop/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockExportService is a mock implementation of services.ExportService
type MockExportService struct {
	mock.Mock
}

var _ services.ExportService = (*MockExportService)(nil)

func (m *MockExportService) Export(ctx context.Context, format services.ExportFormat, flowerType string) (*services.ExportResult, error) {
	args := m.Called(ctx, format, flowerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ExportResult), args.Error(1)
}
