package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
	rosterService "github.com/grupo-santin/obras-backend-go/internal/service/roster"
)

type RosterHandler interface {
	UploadRoster(w http.ResponseWriter, r *http.Request)
	IngestRoster(w http.ResponseWriter, r *http.Request)
	ListRoster(w http.ResponseWriter, r *http.Request)
	DeleteRosterDate(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	ingestionService rosterService.IngestionService
}

func NewRosterHandler(svc rosterService.IngestionService) RosterHandler {
	return &rosterHandlerImpl{ingestionService: svc}
}

// UploadRoster implements RosterHandler - multipart .xlsx upload
func (h *rosterHandlerImpl) UploadRoster(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	batch, err := rosterService.ParseWorkbook(file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ingestionService.Ingest(r.Context(), batch)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster ingested successfully", result)
}

// IngestRoster implements RosterHandler - raw tabular JSON batch
func (h *rosterHandlerImpl) IngestRoster(w http.ResponseWriter, r *http.Request) {
	var batch roster.UploadBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ingestionService.Ingest(r.Context(), batch)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster ingested successfully", result)
}

// ListRoster implements RosterHandler
func (h *rosterHandlerImpl) ListRoster(w http.ResponseWriter, r *http.Request) {
	result, err := h.ingestionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteRosterDate implements RosterHandler
func (h *rosterHandlerImpl) DeleteRosterDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		response.BadRequest(w, "Date is required", nil)
		return
	}

	if err := h.ingestionService.DeleteDate(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster date deleted successfully", nil)
}
