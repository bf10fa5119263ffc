package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/service"
)

type enrollmentEnvelope struct {
	Message    string                   `json:"message"`
	Enrollment model.EnrollmentResponse `json:"enrollment"`
}

type enrollmentsEnvelope struct {
	Message     string                     `json:"message"`
	Enrollments []model.EnrollmentResponse `json:"enrollments"`
	Count       int                        `json:"count"`
}

// EnrollmentHandler handles HTTP requests for enrollments.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

// HandleEnroll handles POST /enrollments requests.
func (h *EnrollmentHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
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

	enrollment, err := h.service.Enroll(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, enrollmentEnvelope{Message: "enrollment created successfully", Enrollment: enrollment})
}

// HandleCancel handles DELETE /enrollments/{id} requests.
func (h *EnrollmentHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(chi.URLParam(r, "id"), service.ErrEnrollmentNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Cancel(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "enrollment cancelled successfully"})
}

// HandleListMine handles GET /enrollments/my requests.
func (h *EnrollmentHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	enrollments, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, enrollmentsEnvelope{
		Message:     "enrollments retrieved successfully",
		Enrollments: enrollments,
		Count:       len(enrollments),
	})
}
