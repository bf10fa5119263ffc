package handler

import (
	"net/http"

	"github.com/recruitme/recruitme-go/internal/metrics"
	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/service"
)

// AuthRecorder counts authentication attempts.
type AuthRecorder interface {
	RecordAuth(action, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAuth(string, string) {}

type userEnvelope struct {
	Message string             `json:"message"`
	User    model.UserResponse `json:"user"`
}

// AuthHandler handles HTTP requests for student authentication and profiles.
type AuthHandler struct {
	service *service.AuthService
	events  AuthRecorder
}

// NewAuthHandler creates a new AuthHandler. A nil recorder disables auth metrics.
func NewAuthHandler(svc *service.AuthService, events AuthRecorder) *AuthHandler {
	if events == nil {
		events = nopRecorder{}
	}
	return &AuthHandler{service: svc, events: events}
}

// HandleSignup handles POST /auth/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	recordOutcome(h.events, "signup", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	recordOutcome(h.events, "login", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProfile handles GET /auth/profile requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{Message: "profile retrieved successfully", User: user})
}

// HandleUpdateProfile handles PUT /auth/profile requests.
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{Message: "profile updated successfully", User: user})
}

func recordOutcome(events AuthRecorder, action string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	events.RecordAuth(action, outcome)
}
