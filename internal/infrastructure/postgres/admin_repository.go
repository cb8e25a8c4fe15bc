package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo consulta de la tabla admins. La sola existencia de la fila
// autoriza el acceso al panel.
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository construye el adaptador de la tabla admins.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// GetByUserID obtiene la fila de admin por user_id; (nil, nil) si no es admin.
func (r *AdminRepo) GetByUserID(ctx context.Context, userID string) (*entity.Admin, error) {
	query := `SELECT user_id, email, created_at FROM admins WHERE user_id = $1`
	var a entity.Admin
	err := r.pool.QueryRow(ctx, query, userID).Scan(&a.UserID, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// Create inserta un admin (lo usa cmd/seed). Idempotente ante duplicados.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (user_id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, admin.UserID, admin.Email, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
