package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobmeet/internal/user"
)

// ErrInvalidResetToken covers every reset-token failure: malformed,
// expired, forged, or derived from a password hash that has since
// changed. A token that died because the password was legitimately
// changed must be indistinguishable from a tampered one.
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// ResetTokenService mints and checks single-use password-reset tokens.
// A token is an HMAC over {user id, current password hash, issue time},
// so nothing is stored: changing the password changes the hash and
// silently invalidates every token issued before the change.
type ResetTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokenService(secret []byte, ttl time.Duration) *ResetTokenService {
	return &ResetTokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *ResetTokenService) Issue(u *user.User) string {
	return s.make(u, s.now().Unix())
}

// Confirm recomputes the expected token from the account's *current*
// stored hash and compares. The caller passes the account resolved from
// the uid hint in the reset URL.
func (s *ResetTokenService) Confirm(u *user.User, token string) error {
	tsPart, _, ok := strings.Cut(token, "-")
	if !ok {
		return ErrInvalidResetToken
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return ErrInvalidResetToken
	}

	issued := time.Unix(ts, 0)
	now := s.now()
	if issued.After(now) || now.Sub(issued) > s.ttl {
		return ErrInvalidResetToken
	}

	expected := s.make(u, ts)
	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return ErrInvalidResetToken
	}
	return nil
}

func (s *ResetTokenService) make(u *user.User, ts int64) string {
	return strconv.FormatInt(ts, 36) + "-" + s.sign(u, ts)
}

func (s *ResetTokenService) sign(u *user.User, ts int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%s|%d", u.ID, u.PasswordHash, ts)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
