package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

func TestCreateProgram(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "hr@acme.example")

	req := validProgramRequest()
	req.Tags = []string{" go ", "backend", "go"}
	req.MaxParticipants = intptr(25)
	req.ImageURL = strptr("https://cdn.example/go.png")

	program, err := env.programs.Create(context.Background(), acme.Company.ID, req)
	require.NoError(t, err)
	assert.Equal(t, acme.Company.ID, program.CompanyID)
	assert.Equal(t, model.StatusOpen, program.Status)
	assert.Equal(t, []string{"backend", "go"}, program.Tags)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), program.Deadline)
	assert.Equal(t, time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC), program.EnrollmentEndDate)
	require.NotNil(t, program.MaxParticipants)
	assert.Equal(t, 25, *program.MaxParticipants)
	assert.Equal(t, "Acme", program.Company.Name)
	assert.Zero(t, program.Participants)
}

func TestCreateProgramRequiresCompany(t *testing.T) {
	env := newTestEnv(t)
	ana := env.student(t, "ana@x.com")

	_, err := env.programs.Create(context.Background(), ana.User.ID, validProgramRequest())
	requireKind(t, err, model.KindForbidden, model.CodeForbidden)
}

func TestCreateProgramValidation(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "hr@acme.example")

	tests := []struct {
		name   string
		mutate func(*model.CreateProgramRequest)
		fields []string
	}{
		{name: "bad deadline", mutate: func(r *model.CreateProgramRequest) { r.Deadline = "next tuesday" }, fields: []string{"deadline"}},
		{name: "short title", mutate: func(r *model.CreateProgramRequest) { r.Title = "Go" }, fields: []string{"title"}},
		{name: "short description", mutate: func(r *model.CreateProgramRequest) { r.Description = "short" }, fields: []string{"description"}},
		{name: "unknown type", mutate: func(r *model.CreateProgramRequest) { r.Type = "hackathon" }, fields: []string{"type"}},
		{name: "missing tags", mutate: func(r *model.CreateProgramRequest) { r.Tags = nil }, fields: []string{"tags"}},
		{name: "blank tag", mutate: func(r *model.CreateProgramRequest) { r.Tags = []string{"go", "  "} }, fields: []string{"tags"}},
		{name: "zero participants", mutate: func(r *model.CreateProgramRequest) { r.MaxParticipants = intptr(0) }, fields: []string{"maxParticipants"}},
		{name: "unknown status", mutate: func(r *model.CreateProgramRequest) { r.Status = strptr("archived") }, fields: []string{"status"}},
		{name: "missing dates", mutate: func(r *model.CreateProgramRequest) { r.Deadline, r.EnrollmentEndDate = "", "" }, fields: []string{"deadline", "enrollmentEndDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProgramRequest()
			tt.mutate(&req)
			_, err := env.programs.Create(context.Background(), acme.Company.ID, req)
			e := requireKind(t, err, model.KindValidation, model.CodeValidation)
			assert.Equal(t, tt.fields, fieldNames(e))
		})
	}
}

func TestCreateProgramEmptyTags(t *testing.T) {
	env := newTestEnv(t)
	acme := env.company(t, "hr@acme.example")

	req := validProgramRequest()
	req.Tags = []string{}
	program, err := env.programs.Create(context.Background(), acme.Company.ID, req)
	require.NoError(t, err)
	assert.Empty(t, program.Tags)
	assert.NotNil(t, program.Tags)
}

func TestListPrograms(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")

	first := env.program(t, acme.Company.ID)
	req := validProgramRequest()
	req.Type = "workshop"
	req.Tags = []string{"design"}
	second, err := env.programs.Create(ctx, acme.Company.ID, req)
	require.NoError(t, err)

	all, err := env.programs.List(ctx, model.ProgramQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.Equal(t, first.ID, all[1].ID)

	workshops, err := env.programs.List(ctx, model.ProgramQuery{Type: "workshop"})
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Equal(t, second.ID, workshops[0].ID)

	tagged, err := env.programs.List(ctx, model.ProgramQuery{Tags: []string{"go", "rust"}})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, first.ID, tagged[0].ID)

	_, err = env.programs.List(ctx, model.ProgramQuery{Type: "hackathon", Status: "archived"})
	e := requireKind(t, err, model.KindValidation, model.CodeValidation)
	assert.Equal(t, []string{"type", "status"}, fieldNames(e))
}

func TestGetProgramNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.programs.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	requireKind(t, err, model.KindNotFound, model.CodeProgramNotFound)
}

func TestUpdateProgram(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")
	program := env.program(t, acme.Company.ID)

	updated, err := env.programs.Update(ctx, acme.Company.ID, program.ID, model.UpdateProgramRequest{
		Title:  strptr("Advanced Go Bootcamp"),
		Status: strptr("closed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go Bootcamp", updated.Title)
	assert.Equal(t, model.StatusClosed, updated.Status)
	assert.Equal(t, program.Description, updated.Description, "unset fields are untouched")
	assert.Equal(t, program.Tags, updated.Tags, "nil tags leave the tag set alone")
	assert.True(t, updated.UpdatedAt.After(program.UpdatedAt))

	updated, err = env.programs.Update(ctx, acme.Company.ID, program.ID, model.UpdateProgramRequest{
		Tags: []string{"cloud"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud"}, updated.Tags)

	_, err = env.programs.Update(ctx, acme.Company.ID, program.ID, model.UpdateProgramRequest{
		Deadline: strptr("31/12/2026"),
	})
	e := requireKind(t, err, model.KindValidation, model.CodeValidation)
	assert.Equal(t, []string{"deadline"}, fieldNames(e))
}

func TestUpdateProgramOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")
	globex := env.company(t, "hr@globex.example")
	program := env.program(t, acme.Company.ID)

	_, err := env.programs.Update(ctx, globex.Company.ID, program.ID, model.UpdateProgramRequest{Title: strptr("Hijacked")})
	requireKind(t, err, model.KindForbidden, model.CodeForbidden)

	err = env.programs.Delete(ctx, globex.Company.ID, program.ID)
	requireKind(t, err, model.KindForbidden, model.CodeForbidden)

	got, err := env.programs.Get(ctx, program.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Bootcamp", got.Title)

	_, err = env.programs.Update(ctx, acme.Company.ID, "00000000-0000-0000-0000-000000000000", model.UpdateProgramRequest{})
	requireKind(t, err, model.KindNotFound, model.CodeProgramNotFound)
}

func TestDeleteProgram(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")
	program := env.program(t, acme.Company.ID)

	require.NoError(t, env.programs.Delete(ctx, acme.Company.ID, program.ID))

	err := env.programs.Delete(ctx, acme.Company.ID, program.ID)
	requireKind(t, err, model.KindNotFound, model.CodeProgramNotFound)
}

func TestListByCompany(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")
	globex := env.company(t, "hr@globex.example")
	mine := env.program(t, acme.Company.ID)
	env.program(t, globex.Company.ID)

	programs, err := env.programs.ListByCompany(ctx, acme.Company.ID)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, mine.ID, programs[0].ID)

	ana := env.student(t, "ana@x.com")
	_, err = env.programs.ListByCompany(ctx, ana.User.ID)
	requireKind(t, err, model.KindForbidden, model.CodeForbidden)
}

func TestCreateProgramFoldsTagCase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")

	req := validProgramRequest()
	req.Tags = []string{"Go", "go", " Backend", "GO"}
	program, err := env.programs.Create(ctx, acme.Company.ID, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "go"}, program.Tags)

	updated, err := env.programs.Update(ctx, acme.Company.ID, program.ID, model.UpdateProgramRequest{
		Tags: []string{"Cloud", "cloud"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud"}, updated.Tags)

	found, err := env.programs.List(ctx, model.ProgramQuery{Tags: []string{"CLOUD"}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, program.ID, found[0].ID)
}

// collidingTagStore reports tag collisions the way a case-insensitive
// collation does.
type collidingTagStore struct {
	ProgramStore
}

func (collidingTagStore) Create(context.Context, *model.Program) error {
	return fmt.Errorf("insert tag: %w", repository.ErrDuplicate)
}

func (collidingTagStore) Update(context.Context, *model.Program) error {
	return fmt.Errorf("insert tag: %w", repository.ErrDuplicate)
}

func TestProgramTagCollisionIsValidationError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	acme := env.company(t, "hr@acme.example")
	existing := env.program(t, acme.Company.ID)

	svc := NewProgramService(collidingTagStore{ProgramStore: env.programStore}, env.companyStore)

	_, err := svc.Create(ctx, acme.Company.ID, validProgramRequest())
	e := requireKind(t, err, model.KindValidation, model.CodeValidation)
	assert.Equal(t, []string{"tags"}, fieldNames(e))

	_, err = svc.Update(ctx, acme.Company.ID, existing.ID, model.UpdateProgramRequest{Tags: []string{"go"}})
	e = requireKind(t, err, model.KindValidation, model.CodeValidation)
	assert.Equal(t, []string{"tags"}, fieldNames(e))
}
