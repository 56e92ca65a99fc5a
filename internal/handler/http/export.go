package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
	"github.com/grupo-santin/obras-backend-go/internal/service/export"
)

type ExportHandler interface {
	ExportEmployees(w http.ResponseWriter, r *http.Request)
	ExportTimeEntries(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(svc export.ExportService) ExportHandler {
	return &exportHandlerImpl{exportService: svc}
}

// ExportEmployees implements ExportHandler
func (h *exportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.exportService.EmployeeWorkbook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, buf, filename)
}

// ExportTimeEntries implements ExportHandler
func (h *exportHandlerImpl) ExportTimeEntries(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.exportService.TimeEntryWorkbook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, buf, filename)
}

func writeWorkbook(w http.ResponseWriter, buf *bytes.Buffer, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	_, _ = buf.WriteTo(w)
}
