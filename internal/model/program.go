package model

import "time"

// ProgramType enumerates the kinds of training program.
type ProgramType string

const (
	ProgramBootcamp   ProgramType = "bootcamp"
	ProgramInternship ProgramType = "internship"
	ProgramWorkshop   ProgramType = "workshop"
	ProgramCourse     ProgramType = "course"
)

// ProgramStatus enumerates the lifecycle states of a program listing.
type ProgramStatus string

const (
	StatusOpen       ProgramStatus = "open"
	StatusClosed     ProgramStatus = "closed"
	StatusComingSoon ProgramStatus = "coming-soon"
)

// CompanySummary is the slice of a company embedded in program reads.
// Description and Website are only populated on single-program reads.
type CompanySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Program represents a training program owned by a company.
type Program struct {
	ID                string
	CompanyID         string
	Title             string
	Description       string
	Type              ProgramType
	Status            ProgramStatus
	Tags              []string
	Deadline          time.Time
	EnrollmentEndDate time.Time
	MaxParticipants   *int
	ImageURL          string
	Requirements      string
	Benefits          string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Read-only projections filled by the store.
	Company      CompanySummary
	Participants int
}

// ProgramFilter narrows a program listing. Empty fields do not filter.
// A program matches Tags when it carries any of them.
type ProgramFilter struct {
	CompanyID string
	Type      ProgramType
	Status    ProgramStatus
	Tags      []string
}

// ProgramQuery is the unvalidated form of a listing filter as read from a
// query string.
type ProgramQuery struct {
	Type   string   `json:"type" validate:"omitempty,oneof=bootcamp internship workshop course"`
	Status string   `json:"status" validate:"omitempty,oneof=open closed coming-soon"`
	Tags   []string `json:"tags" validate:"dive,notblank,max=64"`
}

// CreateProgramRequest represents a program creation request.
// Dates are accepted as RFC 3339 timestamps or YYYY-MM-DD.
type CreateProgramRequest struct {
	Title             string   `json:"title" validate:"min=3"`
	Description       string   `json:"description" validate:"min=10"`
	Type              string   `json:"type" validate:"oneof=bootcamp internship workshop course"`
	Deadline          string   `json:"deadline" validate:"date"`
	EnrollmentEndDate string   `json:"enrollmentEndDate" validate:"date"`
	MaxParticipants   *int     `json:"maxParticipants" validate:"omitnil,gt=0"`
	Tags              []string `json:"tags" validate:"required,dive,notblank,max=64"`
	Status            *string  `json:"status" validate:"omitnil,oneof=open closed coming-soon"`
	ImageURL          *string  `json:"imageUrl" validate:"omitempty,httpurl"`
	Requirements      *string  `json:"requirements"`
	Benefits          *string  `json:"benefits"`
}

// UpdateProgramRequest carries a partial program update. Nil fields are left untouched.
type UpdateProgramRequest struct {
	Title             *string  `json:"title" validate:"omitnil,min=3"`
	Description       *string  `json:"description" validate:"omitnil,min=10"`
	Type              *string  `json:"type" validate:"omitnil,oneof=bootcamp internship workshop course"`
	Deadline          *string  `json:"deadline" validate:"omitnil,date"`
	EnrollmentEndDate *string  `json:"enrollmentEndDate" validate:"omitnil,date"`
	MaxParticipants   *int     `json:"maxParticipants" validate:"omitnil,gt=0"`
	Tags              []string `json:"tags" validate:"omitnil,dive,notblank,max=64"`
	Status            *string  `json:"status" validate:"omitnil,oneof=open closed coming-soon"`
	ImageURL          *string  `json:"imageUrl" validate:"omitempty,httpurl"`
	Requirements      *string  `json:"requirements"`
	Benefits          *string  `json:"benefits"`
}

// ProgramResponse is the API projection of a program.
type ProgramResponse struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"companyId"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Type              ProgramType    `json:"type"`
	Status            ProgramStatus  `json:"status"`
	Tags              []string       `json:"tags"`
	Deadline          time.Time      `json:"deadline"`
	EnrollmentEndDate time.Time      `json:"enrollmentEndDate"`
	MaxParticipants   *int           `json:"maxParticipants"`
	ImageURL          string         `json:"imageUrl"`
	Requirements      string         `json:"requirements"`
	Benefits          string         `json:"benefits"`
	Participants      int            `json:"participants"`
	Company           CompanySummary `json:"company"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Response converts p to its API projection.
func (p Program) Response() ProgramResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProgramResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		Title:             p.Title,
		Description:       p.Description,
		Type:              p.Type,
		Status:            p.Status,
		Tags:              tags,
		Deadline:          p.Deadline,
		EnrollmentEndDate: p.EnrollmentEndDate,
		MaxParticipants:   p.MaxParticipants,
		ImageURL:          p.ImageURL,
		Requirements:      p.Requirements,
		Benefits:          p.Benefits,
		Participants:      p.Participants,
		Company:           p.Company,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ProgramsResponse converts a slice of programs, never returning nil.
func ProgramsResponse(programs []Program) []ProgramResponse {
	result := make([]ProgramResponse, len(programs))
	for i, p := range programs {
		result[i] = p.Response()
	}
	return result
}
