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

var (
	ErrEmailTaken = model.NewError(model.KindDuplicateEmail, model.CodeEmailExists,
		"email already registered")
	ErrInvalidCredentials = model.NewError(model.KindInvalidCredential, model.CodeInvalidCredentials,
		"wrong email or password")
	ErrUnknownCredentials = model.NewError(model.KindNotFoundCredential, model.CodeInvalidCredentials,
		"wrong email or password")
	ErrUserNotFound = model.NewError(model.KindNotFound, model.CodeUserNotFound,
		"user not found")
)

// AuthService handles student authentication and profile business logic.
type AuthService struct {
	base
	users  UserStore
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		base:   newBase(),
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new student account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := validateRequest(req); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &model.User{
		ID:           s.newID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.ProfileComplete = profileCompleteness(user)

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	return s.authResponse("user registered successfully", user)
}

// Login authenticates a student and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateRequest(req); err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.AuthResponse{}, ErrUnknownCredentials
		}
		return model.AuthResponse{}, fmt.Errorf("get user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse("login successful", user)
}

// Profile returns the profile of userID.
func (s *AuthService) Profile(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return user.Response(), nil
}

// UpdateProfile merges the provided fields into the profile of userID.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.UserResponse, error) {
	trimPtr(req.Name)
	trimPtr(req.Phone)
	trimPtr(req.Avatar)
	if err := validateRequest(req); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	user.ProfileComplete = profileCompleteness(user)
	user.UpdatedAt = s.now()

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return model.UserResponse{}, fmt.Errorf("update profile: %w", err)
	}
	return user.Response(), nil
}

func (s *AuthService) getUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *AuthService) authResponse(message string, user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return model.AuthResponse{
		Message: message,
		User:    user.Response(),
		Token:   token,
	}, nil
}

// profileCompleteness is the percentage of filled profile fields.
func profileCompleteness(u *model.User) int {
	fields := []string{u.Name, u.Email, u.Phone, u.Bio, u.Avatar}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
