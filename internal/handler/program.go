package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/service"
)

type programEnvelope struct {
	Message string                `json:"message"`
	Program model.ProgramResponse `json:"program"`
}

type programsEnvelope struct {
	Message  string                  `json:"message"`
	Programs []model.ProgramResponse `json:"programs"`
	Count    int                     `json:"count"`
}

// ProgramHandler handles HTTP requests for programs.
type ProgramHandler struct {
	service *service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(svc *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: svc}
}

// HandleList handles GET /programs requests. Supported query parameters are
// type, status and tags (comma separated or repeated).
func (h *ProgramHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.ProgramQuery{
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	for _, raw := range q["tags"] {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		query.Tags = append(query.Tags, strings.Split(raw, ",")...)
	}

	programs, err := h.service.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, programsEnvelope{
		Message:  "programs retrieved successfully",
		Programs: programs,
		Count:    len(programs),
	})
}

// HandleGet handles GET /programs/{id} requests.
func (h *ProgramHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"), service.ErrProgramNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	program, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, programEnvelope{Message: "program retrieved successfully", Program: program})
}

// HandleCreate handles POST /programs requests.
func (h *ProgramHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	companyID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.CreateProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	program, err := h.service.Create(r.Context(), companyID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, programEnvelope{Message: "program created successfully", Program: program})
}

// HandleUpdate handles PUT /programs/{id} requests.
func (h *ProgramHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	companyID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(chi.URLParam(r, "id"), service.ErrProgramNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.UpdateProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	program, err := h.service.Update(r.Context(), companyID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, programEnvelope{Message: "program updated successfully", Program: program})
}

// HandleDelete handles DELETE /programs/{id} requests.
func (h *ProgramHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	companyID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(chi.URLParam(r, "id"), service.ErrProgramNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), companyID, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "program deleted successfully"})
}
