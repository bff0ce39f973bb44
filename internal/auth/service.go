package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"

	"jobmeet/internal/user"
)

const PasswordMinEntropyBits = 30

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooWeak  = errors.New("password is not strong enough")
	ErrInvalidResetLink = errors.New("invalid reset link")
	ErrEmailSendFailed  = errors.New("failed to send email")
)

// ResetMailer delivers the password-reset email. The send is fallible
// and its failure is reported to the caller, never swallowed.
type ResetMailer interface {
	SendPasswordResetEmail(ctx context.Context, to, fullName, resetURL string) error
}

// Service orchestrates the session lifecycle: it authenticates or
// provisions an account, mints a token pair, and drives the reset flow.
// It holds no mutable state; every call is an independent transform.
type Service struct {
	users       user.Repository
	verifier    *CredentialVerifier
	google      GoogleVerifier
	codec       *TokenCodec
	reset       *ResetTokenService
	mailer      ResetMailer
	frontendURL string
}

func NewService(
	users user.Repository,
	verifier *CredentialVerifier,
	google GoogleVerifier,
	codec *TokenCodec,
	reset *ResetTokenService,
	mailer ResetMailer,
	frontendURL string,
) *Service {
	return &Service{
		users:       users,
		verifier:    verifier,
		google:      google,
		codec:       codec,
		reset:       reset,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

type SignupParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     user.Role
}

func (s *Service) Signup(ctx context.Context, p SignupParams) (*user.User, *TokenPair, error) {
	if !validEmail(p.Email) {
		return nil, nil, ErrInvalidEmail
	}
	if err := passwordvalidator.Validate(p.Password, PasswordMinEntropyBits); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPasswordTooWeak, err)
	}

	role := p.Role
	if role == "" {
		role = user.RoleCandidate
	}
	if !role.Valid() {
		return nil, nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Email:        user.NormalizeEmail(p.Email),
		PasswordHash: string(hash),
		FullName:     p.FullName,
		Phone:        p.Phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, nil, err
	}

	pair, err := s.codec.IssuePair(u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token pair: %w", err)
	}
	return u, pair, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*user.User, *TokenPair, error) {
	u, err := s.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.codec.IssuePair(u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token pair: %w", err)
	}
	return u, pair, nil
}

// GoogleLogin verifies the Google-issued token and maps the attested
// email onto a local account, creating one on first login. Name, avatar
// and role are taken from the assertion only at creation; a returning
// user's edited profile is never overwritten.
func (s *Service) GoogleLogin(ctx context.Context, token string, role user.Role) (*user.User, *TokenPair, bool, error) {
	identity, err := s.google.Verify(ctx, token)
	if err != nil {
		return nil, nil, false, err
	}

	created := false
	u, err := s.users.GetByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		if role == "" {
			role = user.RoleCandidate
		}
		if !role.Valid() {
			return nil, nil, false, ErrInvalidRole
		}
		u = &user.User{
			ID:       uuid.NewString(),
			Email:    user.NormalizeEmail(identity.Email),
			FullName: identity.Name,
			Avatar:   identity.Picture,
			Role:     role,
			IsActive: true,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, nil, false, err
		}
		created = true
	case err != nil:
		return nil, nil, false, err
	}

	pair, err := s.codec.IssuePair(u.ID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to issue token pair: %w", err)
	}
	return u, pair, created, nil
}

// RequestPasswordReset issues a reset token and emails the reset link.
// An unknown email is not an error: the handler answers with the same
// generic message either way.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := s.reset.Issue(u)
	uid := base64.RawURLEncoding.EncodeToString([]byte(u.ID))
	resetURL := fmt.Sprintf("%s/reset-password/%s/%s", s.frontendURL, uid, token)

	if err := s.mailer.SendPasswordResetEmail(ctx, u.Email, u.FullName, resetURL); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

// ConfirmPasswordReset re-derives the expected token from the account's
// current password hash and, on match, replaces the hash. The new hash
// retires every token issued before the change.
func (s *Service) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	idBytes, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return ErrInvalidResetLink
	}

	u, err := s.users.GetByID(ctx, string(idBytes))
	if errors.Is(err, user.ErrNotFound) {
		return ErrInvalidResetLink
	}
	if err != nil {
		return err
	}

	if err := s.reset.Confirm(u, token); err != nil {
		return err
	}

	if err := passwordvalidator.Validate(newPassword, PasswordMinEntropyBits); err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordTooWeak, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, u.ID, string(hash))
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
