package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduportal/internal/domain"
	"eduportal/internal/repository"
	"eduportal/internal/session"
	"eduportal/pkg/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Name            string          `json:"name" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=6"`
	ConfirmPassword string          `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            domain.UserRole `json:"role" validate:"oneof=student teacher"`
}

var registerRules = []rule{
	{tag: "required", message: "Please fill in all required fields"},
	{field: "ConfirmPassword", tag: "eqfield", message: "Passwords do not match"},
	{field: "Password", tag: "min", message: "Password must be at least 6 characters long"},
	{field: "Email", tag: "email", message: "Please enter a valid email address"},
	{field: "Role", tag: "oneof", message: "Role must be either student or teacher"},
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginRules = []rule{
	{tag: "required", message: "Please enter both email and password"},
}

// Session is what a client gets back after logging in.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService struct {
	userRepo *repository.UserRepository
	sessions SessionStore
	opts     options
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore, opts ...Option) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		opts:     newOptions(opts),
	}
}

// Register creates an account and logs it in. The role defaults to student.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Role == "" {
		in.Role = domain.UserRoleStudent
	}
	if err := s.opts.validate.Struct(in); err != nil {
		return nil, firstViolation(err, registerRules)
	}

	user, err := s.userRepo.Create(ctx, domain.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	logging.FromContext(ctx).Info(ctx, "user registered",
		zap.String("registered_id", user.ID),
		zap.String("role", user.Role.String()),
	)
	return s.startSession(ctx, user)
}

// Login starts a session for the account registered under the email. Passwords
// are not stored, so only the email identifies the account.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := s.opts.validate.Struct(in); err != nil {
		return nil, firstViolation(err, loginRules)
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Restore resolves a session token to its user.
func (s *AuthService) Restore(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*Session, error) {
	token := uuid.NewString()
	if err := s.sessions.Set(ctx, token, *user); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}
