package handler

import (
	"net/http"
	"time"

	"github.com/recruitme/recruitme-go/internal/model"
)

// SystemHandler serves health and discovery endpoints.
type SystemHandler struct {
	now func() time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{now: time.Now}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HandleHealth handles GET /health requests.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "RecruitME API is running",
		Timestamp: h.now().UTC(),
	})
}

type indexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleIndex handles GET / requests with a short map of the API.
func (h *SystemHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message: "Welcome to the RecruitME API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"health":        "/health",
			"auth":          "/auth",
			"companies":     "/companies",
			"programs":      "/programs",
			"enrollments":   "/enrollments",
			"savedPrograms": "/saved-programs",
			"metrics":       "/metrics",
		},
	})
}

type notFoundBody struct {
	Error  string `json:"error"`
	Path   string `json:"path"`
	Method string `json:"method"`
	Code   string `json:"code"`
}

// HandleNotFound answers requests for unknown routes.
func (h *SystemHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundBody{
		Error:  "route not found",
		Path:   r.URL.Path,
		Method: r.Method,
		Code:   model.CodeNotFound,
	})
}

// HandleMethodNotAllowed answers requests using an unsupported method on a known route.
func (h *SystemHandler) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{
		Error: "method not allowed",
		Code:  model.CodeMethodNotAllowed,
	})
}
