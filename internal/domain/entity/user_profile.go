package entity

import "time"

// ValueNotAvailable sentinel para campos ausentes en listados y exportes.
const ValueNotAvailable = "N/A"

// UserProfile perfil de usuario registrado en la cumbre, visto desde el panel admin.
// Los flags de rol son independientes: un perfil puede tener cero, uno o varios.
// El panel solo lo lee; la creación y mutación ocurre en el flujo público de registro.
type UserProfile struct {
	ID          string
	FullName    *string
	Email       *string // puede venir nulo en profiles y resolverse desde las tablas de rol
	IsInvestor  bool
	IsSpeaker   bool
	IsStartup   bool
	IsExhibitor bool
	UpdatedAt   time.Time
}

// Key identidad inmutable dentro del listado.
func (u UserProfile) Key() string { return u.ID }

// SearchFields campos designados para el buscador del panel (full_name, email, id).
func (u UserProfile) SearchFields() []string {
	return []string{strOrEmpty(u.FullName), strOrEmpty(u.Email), u.ID}
}

// Roles devuelve las etiquetas de rol activas, en orden estable.
func (u UserProfile) Roles() []string {
	var roles []string
	if u.IsInvestor {
		roles = append(roles, "Investor")
	}
	if u.IsSpeaker {
		roles = append(roles, "Speaker")
	}
	if u.IsStartup {
		roles = append(roles, "Startup")
	}
	if u.IsExhibitor {
		roles = append(roles, "Exhibitor")
	}
	return roles
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
