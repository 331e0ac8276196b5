// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"bytes"
	"flowershop/internal/config"
	"flowershop/internal/models"
	"flowershop/internal/services/mocks"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

type testAPI struct {
	server     *httptest.Server
	flowers    *mocks.MockFlowerService
	references *mocks.MockReferenceService
	exports    *mocks.MockExportService
	auditor    *mocks.MockAuditor
}

// setupHandlerTestAPI wires every handler against mocks on a plain mux router.
func setupHandlerTestAPI(t *testing.T, cfg *config.Config) (*testAPI, func()) {
	t.Helper()

	api := &testAPI{
		flowers:    new(mocks.MockFlowerService),
		references: new(mocks.MockReferenceService),
		exports:    new(mocks.MockExportService),
		auditor:    new(mocks.MockAuditor),
	}

	infoSvc := new(mocks.MockInfoService)
	infoSvc.On("GetInfo", mock.Anything).Return(models.Info{
		Message:        "Flower Shop API",
		Version:        "test",
		StoreConnected: true,
		UptimeSince:    time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	})

	if cfg == nil {
		cfg = &config.Config{MaxUploadSizeBytes: 8 << 20}
	}

	h := NewHandlers(infoSvc, api.flowers, api.references, api.exports, api.auditor, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/", h.GetInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/flowers", h.GetFlowers).Methods("GET")
	r.HandleFunc("/flowers", h.CreateFlower).Methods("POST")
	r.HandleFunc("/flowers/{id}", h.UpdateFlower).Methods("PUT")
	r.HandleFunc("/flowers/{id}", h.DeleteFlower).Methods("DELETE")
	r.HandleFunc("/flower-types", h.GetFlowerTypes).Methods("GET")
	r.HandleFunc("/unit-types", h.GetUnitTypes).Methods("GET")
	r.HandleFunc("/stats", h.GetStats).Methods("GET")
	r.HandleFunc("/export/excel", h.ExportExcel).Methods("GET")
	r.HandleFunc("/export/pdf", h.ExportPDF).Methods("GET")

	api.server = httptest.NewServer(r)

	cleanup := func() {
		api.server.Close()
	}
	return api, cleanup
}

// multipartBody encodes fields and an optional image part.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile(formImageField, "rose.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(image)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
