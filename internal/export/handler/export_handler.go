package handler

import (
	"fmt"
	"net/http"

	"github.com/commhealth/screening-record-service/internal/export/service"
	"github.com/commhealth/screening-record-service/internal/system/constants"
	errors2 "github.com/commhealth/screening-record-service/internal/system/errors"
	"github.com/commhealth/screening-record-service/internal/system/log"
	"github.com/google/uuid"
)

// ExportHandler exposes the spreadsheet export endpoint.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new instance of ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportRecords handles GET /export. An optional date query parameter limits
// the export to records updated on that date; without it all records are
// exported. The response is an xlsx attachment, 404 plain text when nothing
// matches, 500 plain text on failure.
func (eh *ExportHandler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger()
	date := r.URL.Query().Get("date")
	exportID := uuid.New().String()

	data, count, err := eh.exportService.ExportRecords(r.Context(), date)
	if err != nil {
		serverError := errors2.NewServerErrorWithTraceID(errors2.FETCH_EXPORT_RECORDS, err, exportID)
		logger.Error("Export failed",
			log.String("export_id", exportID),
			log.String("date", date),
			log.Error(serverError))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if count == 0 {
		http.Error(w, "no data", http.StatusNotFound)
		return
	}

	label := date
	if label == "" {
		label = "all"
	}
	filename := fmt.Sprintf("%s%s.xlsx", constants.ExportFilenamePrefix, label)

	w.Header().Set("Content-Type", constants.XlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Response is already committed; nothing left to send the client.
		logger.Error("Failed to stream export",
			log.String("export_id", exportID),
			log.Error(err))
		return
	}

	logger.Info("Export completed",
		log.String("export_id", exportID),
		log.String("date", label),
		log.Int("records", count))
}
