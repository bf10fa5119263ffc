package client

import "time"

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest leaves nil fields untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type RegisterCompanyRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Website         string `json:"website,omitempty"`
	CNPJ            string `json:"cnpj"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Bio             string    `json:"bio"`
	Avatar          string    `json:"avatar"`
	Role            string    `json:"role"`
	ProfileComplete int       `json:"profileComplete"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	CNPJ        string    `json:"cnpj"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type CompanyAuthResponse struct {
	Message string  `json:"message"`
	Company Company `json:"company"`
	Token   string  `json:"token"`
}

// CompanySummary is the company detail embedded in program payloads.
type CompanySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

type Program struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"companyId"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Type              string         `json:"type"`
	Status            string         `json:"status"`
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

// ProgramFilter narrows ListPrograms. Empty fields do not filter.
type ProgramFilter struct {
	Type   string
	Status string
	Tags   []string
}

// CreateProgramRequest carries dates as RFC 3339 or YYYY-MM-DD strings.
type CreateProgramRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	Deadline          string   `json:"deadline"`
	EnrollmentEndDate string   `json:"enrollmentEndDate"`
	MaxParticipants   *int     `json:"maxParticipants,omitempty"`
	Tags              []string `json:"tags"`
	Status            *string  `json:"status,omitempty"`
	ImageURL          *string  `json:"imageUrl,omitempty"`
	Requirements      *string  `json:"requirements,omitempty"`
	Benefits          *string  `json:"benefits,omitempty"`
}

// UpdateProgramRequest leaves nil fields untouched. A non-nil Tags replaces all tags.
type UpdateProgramRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Type              *string  `json:"type,omitempty"`
	Deadline          *string  `json:"deadline,omitempty"`
	EnrollmentEndDate *string  `json:"enrollmentEndDate,omitempty"`
	MaxParticipants   *int     `json:"maxParticipants,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Status            *string  `json:"status,omitempty"`
	ImageURL          *string  `json:"imageUrl,omitempty"`
	Requirements      *string  `json:"requirements,omitempty"`
	Benefits          *string  `json:"benefits,omitempty"`
}

// ProgramSummary is the program detail embedded in enrollments and bookmarks.
type ProgramSummary struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Type     string         `json:"type"`
	Status   string         `json:"status,omitempty"`
	Deadline time.Time      `json:"deadline"`
	Company  CompanySummary `json:"company"`
}

type Enrollment struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	ProgramID  string         `json:"programId"`
	Status     string         `json:"status"`
	EnrolledAt time.Time      `json:"enrolledAt"`
	Program    ProgramSummary `json:"program"`
}

type SavedProgram struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	ProgramID string         `json:"programId"`
	SavedAt   time.Time      `json:"savedAt"`
	Program   ProgramSummary `json:"program"`
}

type programRef struct {
	ProgramID string `json:"programId"`
}

type userEnvelope struct {
	User User `json:"user"`
}

type companyEnvelope struct {
	Company Company `json:"company"`
}

type programEnvelope struct {
	Program Program `json:"program"`
}

type programsEnvelope struct {
	Programs []Program `json:"programs"`
	Count    int       `json:"count"`
}

type enrollmentEnvelope struct {
	Enrollment Enrollment `json:"enrollment"`
}

type enrollmentsEnvelope struct {
	Enrollments []Enrollment `json:"enrollments"`
	Count       int          `json:"count"`
}

type savedProgramEnvelope struct {
	SavedProgram SavedProgram `json:"savedProgram"`
}

type savedProgramsEnvelope struct {
	SavedPrograms []SavedProgram `json:"savedPrograms"`
	Count         int            `json:"count"`
}
