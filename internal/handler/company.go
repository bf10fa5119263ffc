package handler

import (
	"net/http"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/service"
)

type companyEnvelope struct {
	Message string                `json:"message"`
	Company model.CompanyResponse `json:"company"`
}

// CompanyHandler handles HTTP requests for company accounts.
type CompanyHandler struct {
	companies *service.CompanyService
	programs  *service.ProgramService
	events    AuthRecorder
}

// NewCompanyHandler creates a new CompanyHandler. A nil recorder disables auth metrics.
func NewCompanyHandler(companies *service.CompanyService, programs *service.ProgramService, events AuthRecorder) *CompanyHandler {
	if events == nil {
		events = nopRecorder{}
	}
	return &CompanyHandler{companies: companies, programs: programs, events: events}
}

// HandleRegister handles POST /companies/register requests.
func (h *CompanyHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterCompanyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.companies.RegisterCompany(r.Context(), req)
	recordOutcome(h.events, "company_signup", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /companies/login requests.
func (h *CompanyHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.companies.LoginCompany(r.Context(), req)
	recordOutcome(h.events, "company_login", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /companies/me requests.
func (h *CompanyHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	companyID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.companies.CompanyProfile(r.Context(), companyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, companyEnvelope{Message: "company profile retrieved successfully", Company: company})
}

// HandleMyPrograms handles GET /companies/me/programs requests.
func (h *CompanyHandler) HandleMyPrograms(w http.ResponseWriter, r *http.Request) {
	companyID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	programs, err := h.programs.ListByCompany(r.Context(), companyID)
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
