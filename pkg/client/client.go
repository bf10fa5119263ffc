// Package client is a typed HTTP client for the RecruitME API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// APIError is a non-2xx response decoded from the API's error body.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []FieldError
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("recruitme: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("recruitme: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Client calls the RecruitME API. A Client is safe for concurrent use;
// WithToken derives an authenticated copy sharing the same transport.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token returns the bearer token c sends, if any.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error   string       `json:"error"`
		Code    string       `json:"code"`
		Details []FieldError `json:"details"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = body.Error
	apiErr.Code = body.Code
	apiErr.Details = body.Details
	return apiErr
}

// Health reports whether the API is up.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a student account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates a student.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the authenticated student's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateProfile changes the non-nil fields of the authenticated student's profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPut, "/auth/profile", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// RegisterCompany registers a company account.
func (c *Client) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (*CompanyAuthResponse, error) {
	var out CompanyAuthResponse
	if err := c.do(ctx, http.MethodPost, "/companies/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginCompany authenticates a company.
func (c *Client) LoginCompany(ctx context.Context, email, password string) (*CompanyAuthResponse, error) {
	var out CompanyAuthResponse
	if err := c.do(ctx, http.MethodPost, "/companies/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompanyProfile returns the authenticated company.
func (c *Client) CompanyProfile(ctx context.Context) (*Company, error) {
	var out companyEnvelope
	if err := c.do(ctx, http.MethodGet, "/companies/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.Company, nil
}

// CompanyPrograms lists the programs owned by the authenticated company.
func (c *Client) CompanyPrograms(ctx context.Context) ([]Program, error) {
	var out programsEnvelope
	if err := c.do(ctx, http.MethodGet, "/companies/me/programs", nil, &out); err != nil {
		return nil, err
	}
	return out.Programs, nil
}

// ListPrograms lists public programs matching f.
func (c *Client) ListPrograms(ctx context.Context, f ProgramFilter) ([]Program, error) {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if len(f.Tags) > 0 {
		q.Set("tags", strings.Join(f.Tags, ","))
	}

	path := "/programs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out programsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Programs, nil
}

// GetProgram returns a single program.
func (c *Client) GetProgram(ctx context.Context, id string) (*Program, error) {
	var out programEnvelope
	if err := c.do(ctx, http.MethodGet, "/programs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Program, nil
}

// CreateProgram publishes a program for the authenticated company.
func (c *Client) CreateProgram(ctx context.Context, req CreateProgramRequest) (*Program, error) {
	var out programEnvelope
	if err := c.do(ctx, http.MethodPost, "/programs", req, &out); err != nil {
		return nil, err
	}
	return &out.Program, nil
}

// UpdateProgram applies a partial update to a program.
func (c *Client) UpdateProgram(ctx context.Context, id string, req UpdateProgramRequest) (*Program, error) {
	var out programEnvelope
	if err := c.do(ctx, http.MethodPut, "/programs/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out.Program, nil
}

// DeleteProgram removes a program.
func (c *Client) DeleteProgram(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/programs/"+url.PathEscape(id), nil, nil)
}

// Enroll enrolls the authenticated student in a program.
func (c *Client) Enroll(ctx context.Context, programID string) (*Enrollment, error) {
	var out enrollmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/enrollments", programRef{ProgramID: programID}, &out); err != nil {
		return nil, err
	}
	return &out.Enrollment, nil
}

// MyEnrollments lists the authenticated student's enrollments.
func (c *Client) MyEnrollments(ctx context.Context) ([]Enrollment, error) {
	var out enrollmentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/enrollments/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Enrollments, nil
}

// CancelEnrollment removes one of the authenticated student's enrollments.
func (c *Client) CancelEnrollment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/enrollments/"+url.PathEscape(id), nil, nil)
}

// SaveProgram bookmarks a program for the authenticated student.
func (c *Client) SaveProgram(ctx context.Context, programID string) (*SavedProgram, error) {
	var out savedProgramEnvelope
	if err := c.do(ctx, http.MethodPost, "/saved-programs", programRef{ProgramID: programID}, &out); err != nil {
		return nil, err
	}
	return &out.SavedProgram, nil
}

// MySavedPrograms lists the authenticated student's bookmarks.
func (c *Client) MySavedPrograms(ctx context.Context) ([]SavedProgram, error) {
	var out savedProgramsEnvelope
	if err := c.do(ctx, http.MethodGet, "/saved-programs/my", nil, &out); err != nil {
		return nil, err
	}
	return out.SavedPrograms, nil
}

// UnsaveProgram removes a bookmark.
func (c *Client) UnsaveProgram(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/saved-programs/"+url.PathEscape(id), nil, nil)
}
