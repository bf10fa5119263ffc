package model

import "time"

// EnrollmentStatus enumerates the states of an enrollment. Only
// EnrollmentEnrolled is reachable through the API.
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentAbandoned EnrollmentStatus = "abandoned"
	EnrollmentRejected  EnrollmentStatus = "rejected"
)

// ProgramSummary is the slice of a program embedded in enrollment and bookmark reads.
type ProgramSummary struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Type     ProgramType    `json:"type"`
	Status   ProgramStatus  `json:"status,omitempty"`
	Deadline time.Time      `json:"deadline"`
	Company  CompanySummary `json:"company"`
}

// Enrollment links a user to a program.
type Enrollment struct {
	ID         string
	UserID     string
	ProgramID  string
	Status     EnrollmentStatus
	EnrolledAt time.Time
	Program    ProgramSummary
}

// SavedProgram is a user's bookmark on a program.
type SavedProgram struct {
	ID        string
	UserID    string
	ProgramID string
	SavedAt   time.Time
	Program   ProgramSummary
}

// ProgramRefRequest names the program to enroll in or save.
type ProgramRefRequest struct {
	ProgramID string `json:"programId" validate:"required"`
}

// EnrollmentResponse is the API projection of an enrollment.
type EnrollmentResponse struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	ProgramID  string           `json:"programId"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Program    ProgramSummary   `json:"program"`
}

// SavedProgramResponse is the API projection of a saved program.
type SavedProgramResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	ProgramID string         `json:"programId"`
	SavedAt   time.Time      `json:"savedAt"`
	Program   ProgramSummary `json:"program"`
}

// Response converts e to its API projection.
func (e Enrollment) Response() EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		ProgramID:  e.ProgramID,
		Status:     e.Status,
		EnrolledAt: e.EnrolledAt,
		Program:    e.Program,
	}
}

// Response converts s to its API projection.
func (s SavedProgram) Response() SavedProgramResponse {
	return SavedProgramResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		ProgramID: s.ProgramID,
		SavedAt:   s.SavedAt,
		Program:   s.Program,
	}
}

// EnrollmentsResponse converts a slice of enrollments, never returning nil.
func EnrollmentsResponse(enrollments []Enrollment) []EnrollmentResponse {
	result := make([]EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		result[i] = e.Response()
	}
	return result
}

// SavedProgramsResponse converts a slice of saved programs, never returning nil.
func SavedProgramsResponse(saved []SavedProgram) []SavedProgramResponse {
	result := make([]SavedProgramResponse, len(saved))
	for i, s := range saved {
		result[i] = s.Response()
	}
	return result
}
