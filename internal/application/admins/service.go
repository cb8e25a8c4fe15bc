// Package admins resuelve la autorización del panel: un usuario es admin
// si (y solo si) su user_id existe en la tabla admins.
package admins

import (
	"context"

	"github.com/investarise/summit-api/internal/domain/repository"
)

// Service verificación de membresía en la tabla admins.
type Service struct {
	repo repository.AdminRepository
}

// NewService construye el servicio de autorización del panel.
func NewService(repo repository.AdminRepository) *Service {
	return &Service{repo: repo}
}

// IsAdmin indica si el usuario está en la tabla admins.
// No distingue "no logueado" de "logueado sin permiso": eso lo decide el
// middleware según haya o no sesión.
func (s *Service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	admin, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return admin != nil, nil
}
