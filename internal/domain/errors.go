package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrNotConfirmed         = errors.New("acción no confirmada")
	ErrConfirmationMismatch = errors.New("frase de confirmación incorrecta")
	ErrCodeInvalid          = errors.New("código inválido o expirado")
	ErrPasswordMismatch     = errors.New("las contraseñas no coinciden")
)
