package dto

import (
	"time"

	"github.com/investarise/summit-api/internal/application/listing"
	"github.com/investarise/summit-api/internal/domain/entity"
)

// UserRowResponse fila del listado de usuarios del panel.
// Campos ausentes salen con el sentinel "N/A", igual que en el exporte.
type UserRowResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	IsInvestor  bool      `json:"is_investor"`
	IsSpeaker   bool      `json:"is_speaker"`
	IsStartup   bool      `json:"is_startup"`
	IsExhibitor bool      `json:"is_exhibitor"`
	Roles       []string  `json:"roles"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse listado filtrado + conteos (total vs filtrado).
type UserListResponse struct {
	Counts listing.Counts    `json:"counts"`
	Rows   []UserRowResponse `json:"rows"`
}

// ToUserRow convierte la entidad a la fila del listado.
func ToUserRow(u entity.UserProfile) UserRowResponse {
	return UserRowResponse{
		ID:          u.ID,
		FullName:    orNA(u.FullName),
		Email:       orNA(u.Email),
		IsInvestor:  u.IsInvestor,
		IsSpeaker:   u.IsSpeaker,
		IsStartup:   u.IsStartup,
		IsExhibitor: u.IsExhibitor,
		Roles:       u.Roles(),
		UpdatedAt:   u.UpdatedAt,
	}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return entity.ValueNotAvailable
	}
	return *s
}
