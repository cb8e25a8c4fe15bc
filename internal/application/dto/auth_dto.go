package dto

import "time"

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest entrada para crear cuenta. Tras crearla se inicia sesión
// inmediatamente con las mismas credenciales (sin verificación de email).
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
}

// ForgotPasswordRequest entrada para solicitar el código de recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeRequest entrada del paso verify del reset de contraseña.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// UpdatePasswordRequest entrada del paso update del reset de contraseña.
// Ambos campos deben coincidir exactamente antes del submit.
type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// AccountResponse salida de una cuenta (sin hash de contraseña).
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse salida de login/signup: token + cuenta.
type SessionResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// RecoveryResponse salida de verify-code: token de recuperación de corta vida.
type RecoveryResponse struct {
	RecoveryToken string `json:"recovery_token"`
}
