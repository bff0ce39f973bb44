package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"jobmeet/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrInvalidGoogleToken = errors.New("invalid google token")
)

// Compared against when the email lookup misses, so an unknown email
// costs a bcrypt verification just like a wrong password does.
var enumerationGuardHash, _ = bcrypt.GenerateFromPassword([]byte("jobmeet-guard"), bcrypt.DefaultCost)

// CredentialVerifier authenticates the password path. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
type CredentialVerifier struct {
	users user.Repository
}

func NewCredentialVerifier(users user.Repository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

func (v *CredentialVerifier) VerifyPassword(ctx context.Context, email, password string) (*user.User, error) {
	u, err := v.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(enumerationGuardHash, []byte(password))
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	return u, nil
}

// GoogleIdentity is what Google attests about the caller after its
// signature, issuer and audience checks pass. It is never persisted,
// only used to find or create an account.
type GoogleIdentity struct {
	Email   string
	Name    string
	Picture string
}

type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (g *googleVerifier) Verify(ctx context.Context, token string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, g.clientID)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidGoogleToken
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &GoogleIdentity{
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
