package auth

import (
	"context"
	"errors"
	"sync"

	"jobmeet/internal/user"
)

// fakeUserRepo is an in-memory user.Repository for tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.NormalizeEmail(u.Email) {
			return user.ErrDuplicateEmail
		}
	}
	u.Email = user.NormalizeEmail(u.Email)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.NormalizeEmail(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// setFullName edits a stored profile directly, simulating a profile
// update outside the auth flows.
func (r *fakeUserRepo) setFullName(id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.FullName = name
	}
}

type fakeMailer struct {
	mu       sync.Mutex
	fail     bool
	sentTo   []string
	sentURLs []string
}

func (m *fakeMailer) SendPasswordResetEmail(_ context.Context, to, _, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.sentTo = append(m.sentTo, to)
	m.sentURLs = append(m.sentURLs, resetURL)
	return nil
}

type fakeGoogleVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (g *fakeGoogleVerifier) Verify(context.Context, string) (*GoogleIdentity, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.identity, nil
}

type testEnv struct {
	service *Service
	codec   *TokenCodec
	reset   *ResetTokenService
	repo    *fakeUserRepo
	mailer  *fakeMailer
	google  *fakeGoogleVerifier
}

func newTestEnv() *testEnv {
	secret := []byte("test-secret")
	repo := newFakeUserRepo()
	codec := NewTokenCodec(secret, testAccessTTL, testRefreshTTL)
	reset := NewResetTokenService(secret, testResetTTL)
	mailer := &fakeMailer{}
	google := &fakeGoogleVerifier{}
	verifier := NewCredentialVerifier(repo)
	service := NewService(repo, verifier, google, codec, reset, mailer, testFrontendURL)
	return &testEnv{
		service: service,
		codec:   codec,
		reset:   reset,
		repo:    repo,
		mailer:  mailer,
		google:  google,
	}
}
