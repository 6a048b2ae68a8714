package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Raymond9734/parking-customers-backend/internal/service"
)

// maxImportSize bounds uploaded workbooks
const maxImportSize = 10 << 20

// ExportHandler handles export and import HTTP requests
type ExportHandler struct {
	exportService service.ExportService
	importService service.ImportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportService, importService service.ImportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		importService: importService,
		logger:        logger,
	}
}

// ExportJobResponse acknowledges a queued export
type ExportJobResponse struct {
	JobID  string `json:"jobId"`
	Format string `json:"format"`
	Rows   int    `json:"rows"`
}

// DownloadExport handles GET /customers/export
func (h *ExportHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := service.ExportRequest{
		Format:   query.Get("format"),
		Language: query.Get("lang"),
		Columns:  splitColumns(query.Get("columns")),
		Search:   query.Get("q"),
		SortBy:   query.Get("sort"),
		Order:    query.Get("order"),
	}

	file, err := h.exportService.Render(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondFile(w, file.Name, file.ContentType, file.Data)
}

// QueueExport handles POST /customers/export/jobs
func (h *ExportHandler) QueueExport(w http.ResponseWriter, r *http.Request) {
	var req service.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	job, err := h.exportService.Enqueue(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusAccepted, ExportJobResponse{
		JobID:  job.ID,
		Format: job.Format,
		Rows:   len(job.Rows),
	})
}

// ImportCustomers handles POST /customers/import with a multipart "file" field
func (h *ExportHandler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Expected a multipart form with a file field")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Missing file field")
		return
	}
	defer file.Close()

	result, err := h.importService.Import(r.Context(), file)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

func splitColumns(value string) []string {
	var columns []string
	for _, part := range strings.Split(value, ",") {
		if col := strings.TrimSpace(part); col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}
