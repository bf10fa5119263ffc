package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/service"
)

type savedProgramEnvelope struct {
	Message      string                     `json:"message"`
	SavedProgram model.SavedProgramResponse `json:"savedProgram"`
}

type savedProgramsEnvelope struct {
	Message       string                       `json:"message"`
	SavedPrograms []model.SavedProgramResponse `json:"savedPrograms"`
	Count         int                          `json:"count"`
}

// SavedProgramHandler handles HTTP requests for saved programs.
type SavedProgramHandler struct {
	service *service.SavedProgramService
}

// NewSavedProgramHandler creates a new SavedProgramHandler.
func NewSavedProgramHandler(svc *service.SavedProgramService) *SavedProgramHandler {
	return &SavedProgramHandler{service: svc}
}

// HandleSave handles POST /saved-programs requests.
func (h *SavedProgramHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.ProgramRefRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, savedProgramEnvelope{Message: "program saved successfully", SavedProgram: saved})
}

// HandleUnsave handles DELETE /saved-programs/{id} requests.
func (h *SavedProgramHandler) HandleUnsave(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(chi.URLParam(r, "id"), service.ErrSavedProgramNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Unsave(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "program removed from saved successfully"})
}

// HandleListMine handles GET /saved-programs/my requests.
func (h *SavedProgramHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, savedProgramsEnvelope{
		Message:       "saved programs retrieved successfully",
		SavedPrograms: saved,
		Count:         len(saved),
	})
}
