package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
	timeentryService "github.com/grupo-santin/obras-backend-go/internal/service/timeentry"
)

type TimeEntryHandler interface {
	CreateTimeEntry(w http.ResponseWriter, r *http.Request)
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
	DeleteTimeEntry(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeEntryService timeentryService.TimeEntryService
}

func NewTimeEntryHandler(svc timeentryService.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{timeEntryService: svc}
}

// CreateTimeEntry implements TimeEntryHandler
func (h *timeEntryHandlerImpl) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeEntryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry recorded successfully", result)
}

// ListTimeEntries implements TimeEntryHandler - optional ?date=YYYY-MM-DD filter
func (h *timeEntryHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.timeEntryService.History(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteTimeEntry implements TimeEntryHandler
func (h *timeEntryHandlerImpl) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Time entry ID must be numeric", nil)
		return
	}

	if err := h.timeEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}
