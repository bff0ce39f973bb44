package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"jobmeet/internal/user"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

type contextKey string

const userContextKey contextKey = "user"

// JSONHandler is the transport boundary: it decodes requests, calls the
// service, and packages token pairs as HTTP-only cookies. Every token
// or credential failure degrades to a generic client error here; raw
// crypto and lookup errors never reach the response.
type JSONHandler struct {
	service       *Service
	codec         *TokenCodec
	users         user.Repository
	secureCookies bool
	accessMaxAge  int
	refreshMaxAge int
}

func NewJSONHandler(service *Service, codec *TokenCodec, users user.Repository, accessMaxAge, refreshMaxAge int, secureCookies bool) *JSONHandler {
	return &JSONHandler{
		service:       service,
		codec:         codec,
		users:         users,
		secureCookies: secureCookies,
		accessMaxAge:  accessMaxAge,
		refreshMaxAge: refreshMaxAge,
	}
}

func (h *JSONHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.FullName == "" || req.Password == "" {
		h.sendError(w, "email, full_name and password are required", http.StatusBadRequest)
		return
	}
	if req.Password != req.Password2 {
		h.sendError(w, "Password fields didn't match.", http.StatusBadRequest)
		return
	}

	u, pair, err := h.service.Signup(r.Context(), SignupParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail),
			errors.Is(err, ErrInvalidRole),
			errors.Is(err, ErrPasswordTooWeak),
			errors.Is(err, user.ErrDuplicateEmail):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("signup failed: %v", err)
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookies(w, pair)
	h.sendJSON(w, map[string]any{
		"message": "User created successfully",
		"user":    u,
	}, http.StatusCreated)
}

func (h *JSONHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, pair, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountDisabled):
			h.sendError(w, "User account is disabled.", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidCredentials):
			h.sendError(w, "Invalid email or password.", http.StatusBadRequest)
		default:
			log.Printf("login failed: %v", err)
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookies(w, pair)
	h.sendJSON(w, map[string]any{
		"message": "Login successful",
		"user":    u,
	}, http.StatusOK)
}

// Logout clears both cookies. The tokens themselves stay valid until
// natural expiry: there is no server-side revocation in this design.
func (h *JSONHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookies(w)
	h.sendJSON(w, map[string]any{"message": "Logout successful"}, http.StatusOK)
}

func (h *JSONHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		h.sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	h.sendJSON(w, u, http.StatusOK)
}

func (h *JSONHandler) PasswordReset(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		h.sendError(w, "email is required", http.StatusBadRequest)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrEmailSendFailed) {
			log.Printf("password reset email failed: %v", err)
			h.sendError(w, "Failed to send email. Please try again later.", http.StatusInternalServerError)
			return
		}
		log.Printf("password reset request failed: %v", err)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, map[string]any{
		"message": "If an account exists with this email, a reset link will be sent",
	}, http.StatusOK)
}

func (h *JSONHandler) PasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UID == "" || req.Token == "" || req.NewPassword == "" {
		h.sendError(w, "uid, token and new_password are required", http.StatusBadRequest)
		return
	}
	if req.NewPassword != req.NewPassword2 {
		h.sendError(w, "Password fields didn't match.", http.StatusBadRequest)
		return
	}

	err := h.service.ConfirmPasswordReset(r.Context(), req.UID, req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidResetLink):
			h.sendError(w, "Invalid reset link", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidResetToken):
			h.sendError(w, "Invalid or expired reset link", http.StatusBadRequest)
		case errors.Is(err, ErrPasswordTooWeak):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("password reset confirm failed: %v", err)
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.sendJSON(w, map[string]any{
		"message": "Password reset successful. You can now log in with your new password.",
	}, http.StatusOK)
}

func (h *JSONHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.AccessToken == "" {
		h.sendError(w, "access_token is required", http.StatusBadRequest)
		return
	}

	u, pair, isNewUser, err := h.service.GoogleLogin(r.Context(), req.AccessToken, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGoogleToken):
			h.sendError(w, "Invalid Google token", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidRole):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("google login failed: %v", err)
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookies(w, pair)
	h.sendJSON(w, map[string]any{
		"message":     "Google login successful",
		"user":        u,
		"is_new_user": isNewUser,
	}, http.StatusOK)
}

// AuthMiddleware resolves the account from the access_token cookie and
// puts it on the request context. Any validation failure, whatever its
// cause, is answered with the same generic 401.
func (h *JSONHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(accessCookieName)
		if err != nil {
			h.sendError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		userID, err := h.codec.Validate(cookie.Value, TokenTypeAccess)
		if err != nil {
			h.sendError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		u, err := h.users.GetByID(r.Context(), userID)
		if err != nil || !u.IsActive {
			h.sendError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}

func (h *JSONHandler) setSessionCookies(w http.ResponseWriter, pair *TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   h.accessMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   h.refreshMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *JSONHandler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessCookieName, refreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *JSONHandler) sendJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (h *JSONHandler) sendError(w http.ResponseWriter, message string, status int) {
	h.sendJSON(w, map[string]string{"error": message}, status)
}

// SetupRoutes registers the auth endpoints on the router.
func SetupRoutes(r *mux.Router, h *JSONHandler) {
	r.HandleFunc("/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.AuthMiddleware(h.Logout)).Methods(http.MethodPost)
	r.HandleFunc("/user", h.AuthMiddleware(h.CurrentUser)).Methods(http.MethodGet)
	r.HandleFunc("/password-reset", h.PasswordReset).Methods(http.MethodPost)
	r.HandleFunc("/password-reset/confirm", h.PasswordResetConfirm).Methods(http.MethodPost)
	r.HandleFunc("/google", h.GoogleLogin).Methods(http.MethodPost)
}
