package model

import "time"

// Role tags an identity.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

// User represents a student account in the database.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	Phone           string
	Bio             string
	Avatar          string
	ProfileComplete int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Company represents a company account in the database.
type Company struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Website      string
	CNPJ         string
	Logo         string
	Description  string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a student registration request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,bcrypt"`
}

// LoginRequest represents a login request for either identity kind.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries the profile fields to change. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitnil,min=2"`
	Phone  *string `json:"phone"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar" validate:"omitempty,httpurl"`
}

// RegisterCompanyRequest represents a company registration request.
type RegisterCompanyRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Website         *string `json:"website" validate:"omitempty,httpurl"`
	CNPJ            string  `json:"cnpj" validate:"required,min=11"`
	Password        string  `json:"password" validate:"min=6,bcrypt"`
	ConfirmPassword string  `json:"confirmPassword" validate:"eqfield=Password"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Bio             string    `json:"bio"`
	Avatar          string    `json:"avatar"`
	Role            Role      `json:"role"`
	ProfileComplete int       `json:"profileComplete"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CompanyResponse represents company data safe for API responses.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	CNPJ        string    `json:"cnpj"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse is returned by student signup and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// CompanyAuthResponse is returned by company registration and login.
type CompanyAuthResponse struct {
	Message string          `json:"message"`
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
}

// Response projects u without its password hash.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Bio:             u.Bio,
		Avatar:          u.Avatar,
		Role:            u.Role,
		ProfileComplete: u.ProfileComplete,
		CreatedAt:       u.CreatedAt,
	}
}

// Response projects c without its password hash.
func (c Company) Response() CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Website:     c.Website,
		CNPJ:        c.CNPJ,
		Logo:        c.Logo,
		Description: c.Description,
		Phone:       c.Phone,
		Role:        RoleCompany,
		CreatedAt:   c.CreatedAt,
	}
}
