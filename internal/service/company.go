package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recruitme/recruitme-go/internal/crypto"
	"github.com/recruitme/recruitme-go/internal/model"
	"github.com/recruitme/recruitme-go/internal/repository"
)

var ErrCompanyNotFound = model.NewError(model.KindNotFound, model.CodeCompanyNotFound,
	"company not found")

// CompanyService handles company registration, authentication and profile reads.
type CompanyService struct {
	base
	companies CompanyStore
	tokens    TokenIssuer
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companies CompanyStore, tokens TokenIssuer) *CompanyService {
	return &CompanyService{
		base:      newBase(),
		companies: companies,
		tokens:    tokens,
	}
}

// RegisterCompany creates a company account and returns an auth token.
func (s *CompanyService) RegisterCompany(ctx context.Context, req model.RegisterCompanyRequest) (model.CompanyAuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.CNPJ = strings.TrimSpace(req.CNPJ)
	trimPtr(req.Website)
	if err := validateRequest(req); err != nil {
		return model.CompanyAuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.CompanyAuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	company := &model.Company{
		ID:           s.newID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Website:      deref(req.Website),
		CNPJ:         req.CNPJ,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.CompanyAuthResponse{}, ErrEmailTaken
		}
		return model.CompanyAuthResponse{}, fmt.Errorf("create company: %w", err)
	}

	return s.authResponse("company registered successfully", company)
}

// LoginCompany authenticates a company and returns an auth token.
func (s *CompanyService) LoginCompany(ctx context.Context, req model.LoginRequest) (model.CompanyAuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateRequest(req); err != nil {
		return model.CompanyAuthResponse{}, err
	}

	company, err := s.companies.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.CompanyAuthResponse{}, ErrUnknownCredentials
		}
		return model.CompanyAuthResponse{}, fmt.Errorf("get company: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, company.PasswordHash)
	if err != nil {
		return model.CompanyAuthResponse{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return model.CompanyAuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse("login successful", company)
}

// CompanyProfile returns the profile of companyID.
func (s *CompanyService) CompanyProfile(ctx context.Context, companyID string) (model.CompanyResponse, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.CompanyResponse{}, ErrCompanyNotFound
		}
		return model.CompanyResponse{}, fmt.Errorf("get company: %w", err)
	}
	return company.Response(), nil
}

func (s *CompanyService) authResponse(message string, company *model.Company) (model.CompanyAuthResponse, error) {
	token, err := s.tokens.Issue(company.ID)
	if err != nil {
		return model.CompanyAuthResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return model.CompanyAuthResponse{
		Message: message,
		Company: company.Response(),
		Token:   token,
	}, nil
}
