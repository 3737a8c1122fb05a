// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/constants"
	"github.com/taibuivan/noctoon/internal/platform/sec"
	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/uuid"
)

// # Contracts & Types

// TokenProvider mints signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements account use cases.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs an account [Service]. Logins return no token until
// [Service.WithTokens] installs a provider.
func NewService(userRepo UserRepository, logger *slog.Logger) *Service {
	return &Service{userRepository: userRepo, logger: logger}
}

// WithTokens enables access token issuance at login.
func (service *Service) WithTokens(provider TokenProvider) *Service {
	service.tokenProvider = provider
	return service
}

// # Registration Flow

// RegisterInput is the body accepted by the registration endpoint.
type RegisterInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

/*
Register validates, hashes and persists a new member account.

Returns:
  - *User: Created account
  - error: VALIDATION_ERROR on bad input, CONFLICT (400) when the username is taken
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.Username = strings.TrimSpace(input.Username)

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		MaxLen(FieldPassword, input.Password, MaxPasswordLength)
	if input.Email != nil && *input.Email != "" {
		validator.Email(FieldEmail, *input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.create(context, &User{
		ID:       uuid.New(),
		Username: input.Username,
		Email:    input.Email,
	}, input.Password)
}

// ProvisionInput describes an account created by operators rather than readers.
type ProvisionInput struct {
	ID       string
	Username string
	Password string
	Email    *string
	IsAdmin  bool
}

// Provision creates the account unless the username already exists, in which
// case the stored account is returned unchanged.
func (service *Service) Provision(context context.Context, input ProvisionInput) (*User, error) {
	existing, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.New()
	}
	return service.create(context, &User{
		ID:       id,
		Username: input.Username,
		Email:    input.Email,
		IsAdmin:  input.IsAdmin,
	}, input.Password)
}

func (service *Service) create(context context.Context, user *User, password string) (*User, error) {
	if _, err := service.userRepository.FindByUsername(context, user.Username); err == nil {
		return nil, apperr.Duplicate("Username already exists")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth: hash password: %w", err))
	}
	user.PasswordHash = hash

	if err := service.userRepository.Create(context, user); err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == apperr.CodeConflict {
			return nil, apperr.Duplicate("Username already exists")
		}
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.Bool("is_admin", user.IsAdmin),
	)
	return user, nil
}

// # Authentication Flow

// LoginInput carries credentials for a login attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the body returned by a successful login.
// Token is empty when access tokens are disabled.
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

/*
Login checks credentials and optionally mints an access token.

Returns:
  - *LoginResult: The account and its token
  - error: VALIDATION_ERROR on missing fields, UNAUTHORIZED on bad credentials
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperr.ValidationError("Username and password required")
	}

	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.WarnContext(context, "login_rejected", slog.String("username", input.Username))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	result := &LoginResult{User: user}
	if service.tokenProvider != nil {
		token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role()), constants.AccessTokenTTL)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("auth: sign token: %w", err))
		}
		result.Token = token
	}

	service.logger.InfoContext(context, "user_logged_in", slog.String("user_id", user.ID))
	return result, nil
}

// CurrentUser returns the account behind an authenticated request.
func (service *Service) CurrentUser(context context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return service.userRepository.FindByID(context, userID)
}
