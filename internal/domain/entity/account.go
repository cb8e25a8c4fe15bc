package entity

import "time"

// Account credencial de acceso al sitio (login, signup, reset de contraseña).
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Admin fila de la tabla admins; su sola existencia autoriza el panel.
type Admin struct {
	UserID    string
	Email     string
	CreatedAt time.Time
}
