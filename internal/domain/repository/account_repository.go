package repository

import (
	"context"
	"time"

	"github.com/investarise/summit-api/internal/domain/entity"
)

// AccountRepository puerto de persistencia para credenciales de acceso.
// Los métodos de lectura devuelven (nil, nil) cuando no existe la fila.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}

// AdminRepository consulta de la tabla admins (autorización del panel).
type AdminRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Admin, error)
	Create(ctx context.Context, admin *entity.Admin) error
}
