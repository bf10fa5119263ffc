package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/recruitme/recruitme-go/internal/crypto"
	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

// stepClock returns a time one minute later on every call.
type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

type testEnv struct {
	codec       *crypto.TokenCodec
	auth        *AuthService
	companies   *CompanyService
	programs    *ProgramService
	enrollments *EnrollmentService
	saved       *SavedProgramService

	programStore *repository.ProgramRepository
	companyStore *repository.CompanyRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := repository.NewDB(context.Background(), repository.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.Migrate(db, repository.DriverSQLite, dsn))

	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	programs := repository.NewProgramRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	saved := repository.NewSavedProgramRepository(db)

	clock := &stepClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	codec := crypto.NewTokenCodec(crypto.TokenConfig{Secret: "test-secret", Expiry: time.Hour})

	env := &testEnv{
		codec:       codec,
		auth:        NewAuthService(users, codec),
		companies:   NewCompanyService(companies, codec),
		programs:    NewProgramService(programs, companies),
		enrollments: NewEnrollmentService(enrollments, users, programs),
		saved:       NewSavedProgramService(saved, users, programs),

		programStore: programs,
		companyStore: companies,
	}
	for _, b := range []*base{&env.auth.base, &env.companies.base, &env.programs.base, &env.enrollments.base, &env.saved.base} {
		b.now = clock.Now
	}
	return env
}

func (e *testEnv) student(t *testing.T, email string) model.AuthResponse {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), model.SignupRequest{
		Name: "Ana", Email: email, Password: "secret1",
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) company(t *testing.T, email string) model.CompanyAuthResponse {
	t.Helper()
	resp, err := e.companies.RegisterCompany(context.Background(), model.RegisterCompanyRequest{
		Name:            "Acme",
		Email:           email,
		CNPJ:            "12345678000199",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	return resp
}

func validProgramRequest() model.CreateProgramRequest {
	return model.CreateProgramRequest{
		Title:             "Go Bootcamp",
		Description:       "Twelve weeks of backend Go",
		Type:              "bootcamp",
		Deadline:          "2026-06-30",
		EnrollmentEndDate: "2026-06-15T23:59:00Z",
		Tags:              []string{"go", "backend"},
	}
}

func (e *testEnv) program(t *testing.T, companyID string) model.ProgramResponse {
	t.Helper()
	resp, err := e.programs.Create(context.Background(), companyID, validProgramRequest())
	require.NoError(t, err)
	return resp
}

// requireKind asserts err is a *model.Error of the given kind and code.
func requireKind(t *testing.T, err error, kind model.Kind, code string) *model.Error {
	t.Helper()
	require.Error(t, err)
	e, ok := model.AsError(err)
	require.True(t, ok, "expected *model.Error, got %T: %v", err, err)
	require.Equal(t, kind, e.Kind)
	require.Equal(t, code, e.Code)
	return e
}

func fieldNames(e *model.Error) []string {
	names := make([]string, len(e.Details))
	for i, d := range e.Details {
		names[i] = d.Field
	}
	return names
}

func strptr(s string) *string { return &s }

func intptr(n int) *int { return &n }
