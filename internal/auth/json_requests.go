package auth

import "jobmeet/internal/user"

type SignupRequest struct {
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"password"`
	Password2 string    `json:"password2"`
	Role      user.Role `json:"role"`
	Phone     string    `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirmRequest struct {
	UID          string `json:"uid"`
	Token        string `json:"token"`
	NewPassword  string `json:"new_password"`
	NewPassword2 string `json:"new_password2"`
}

type GoogleLoginRequest struct {
	AccessToken string    `json:"access_token"`
	Role        user.Role `json:"role"`
}
