package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/response"
	"github.com/grupo-santin/obras-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListJobFunctions(w http.ResponseWriter, r *http.Request)
	AddJobFunction(w http.ResponseWriter, r *http.Request)
	DeleteJobFunction(w http.ResponseWriter, r *http.Request)
	ListEquipment(w http.ResponseWriter, r *http.Request)
	AddEquipment(w http.ResponseWriter, r *http.Request)
	DeleteEquipment(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(svc master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: svc}
}

type referenceValueRequest struct {
	Name string `json:"name"`
}

// ==================== JOB FUNCTION OPERATIONS ====================

func (h *masterHandlerImpl) ListJobFunctions(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListJobFunctions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) AddJobFunction(w http.ResponseWriter, r *http.Request) {
	var req referenceValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.masterService.AddJobFunction(r.Context(), req.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job function added successfully", nil)
}

func (h *masterHandlerImpl) DeleteJobFunction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.masterService.DeleteJobFunction(r.Context(), name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job function deleted successfully", nil)
}

// ==================== EQUIPMENT OPERATIONS ====================

func (h *masterHandlerImpl) ListEquipment(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListEquipment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var req referenceValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.masterService.AddEquipment(r.Context(), req.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Equipment added successfully", nil)
}

func (h *masterHandlerImpl) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	if err := h.masterService.DeleteEquipment(r.Context(), tag); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment deleted successfully", nil)
}
