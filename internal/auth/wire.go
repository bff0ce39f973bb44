package auth

import (
	"github.com/google/wire"

	"jobmeet/config"
	"jobmeet/internal/user"
)

// ProvideTokenCodec is a Wire provider function that creates a TokenCodec
func ProvideTokenCodec(cfg *config.Config) *TokenCodec {
	return NewTokenCodec(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
}

// ProvideResetTokenService is a Wire provider function that creates a ResetTokenService
func ProvideResetTokenService(cfg *config.Config) *ResetTokenService {
	return NewResetTokenService(cfg.JWTSecret, cfg.ResetTokenTTL)
}

// ProvideGoogleVerifier is a Wire provider function that creates a GoogleVerifier
func ProvideGoogleVerifier(cfg *config.Config) GoogleVerifier {
	return NewGoogleVerifier(cfg.GoogleClientID)
}

// ProvideService is a Wire provider function that creates a Service
func ProvideService(
	users user.Repository,
	verifier *CredentialVerifier,
	google GoogleVerifier,
	codec *TokenCodec,
	reset *ResetTokenService,
	mailer ResetMailer,
	cfg *config.Config,
) *Service {
	return NewService(users, verifier, google, codec, reset, mailer, cfg.FrontendURL)
}

// ProvideJSONHandler is a Wire provider function that creates a JSONHandler
func ProvideJSONHandler(service *Service, codec *TokenCodec, users user.Repository, cfg *config.Config) *JSONHandler {
	return NewJSONHandler(
		service,
		codec,
		users,
		int(cfg.AccessTokenTTL.Seconds()),
		int(cfg.RefreshTokenTTL.Seconds()),
		!cfg.Debug,
	)
}

var Set = wire.NewSet(
	ProvideTokenCodec,
	ProvideResetTokenService,
	ProvideGoogleVerifier,
	NewCredentialVerifier,
	ProvideService,
	ProvideJSONHandler,
)
