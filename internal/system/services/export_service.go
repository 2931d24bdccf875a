package services

import (
	"net/http"

	"github.com/commhealth/screening-record-service/internal/export/handler"
)

// ExportService registers the spreadsheet export endpoint.
type ExportService struct {
	exportHandler *handler.ExportHandler
}

func NewExportService(mux *http.ServeMux, exportHandler *handler.ExportHandler) *ExportService {

	instance := &ExportService{
		exportHandler: exportHandler,
	}
	instance.RegisterRoutes(mux)

	return instance
}

func (s *ExportService) RegisterRoutes(mux *http.ServeMux) {

	mux.HandleFunc("GET /export", s.exportHandler.ExportRecords)
}
