package http

import (
	"net/http"

	"github.com/grupo-santin/obras-backend-go/internal/domain/dashboard"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AttendanceDashboard(w http.ResponseWriter, r *http.Request)
	PresenceSeries(w http.ResponseWriter, r *http.Request)
	SituationBreakdown(w http.ResponseWriter, r *http.Request)
	ProductivityMonths(w http.ResponseWriter, r *http.Request)
	ProductivityDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	attendanceService   dashboard.AttendanceService
	productivityService dashboard.ProductivityService
}

func NewDashboardHandler(
	attendanceService dashboard.AttendanceService,
	productivityService dashboard.ProductivityService,
) DashboardHandler {
	return &dashboardHandlerImpl{
		attendanceService:   attendanceService,
		productivityService: productivityService,
	}
}

// AttendanceDashboard implements DashboardHandler - ?start/?end bound the series
func (h *dashboardHandlerImpl) AttendanceDashboard(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result, err := h.attendanceService.GetDashboard(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PresenceSeries implements DashboardHandler
func (h *dashboardHandlerImpl) PresenceSeries(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result, err := h.attendanceService.PresenceSeries(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SituationBreakdown implements DashboardHandler
func (h *dashboardHandlerImpl) SituationBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.SituationBreakdown(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ProductivityMonths implements DashboardHandler
func (h *dashboardHandlerImpl) ProductivityMonths(w http.ResponseWriter, r *http.Request) {
	result, err := h.productivityService.Months(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ProductivityDashboard implements DashboardHandler - ?month=MM/YYYY&group=KEY
func (h *dashboardHandlerImpl) ProductivityDashboard(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	group := r.URL.Query().Get("group")

	result, err := h.productivityService.GetDashboard(r.Context(), month, group)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
