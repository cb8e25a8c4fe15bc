package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/investarise/summit-api/internal/domain"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

// VisitorRepo implementación del puerto VisitorRepository sobre PostgreSQL.
type VisitorRepo struct {
	pool *pgxpool.Pool
}

// NewVisitorRepository construye el adaptador de persistencia para visitantes.
func NewVisitorRepository(pool *pgxpool.Pool) *VisitorRepo {
	return &VisitorRepo{pool: pool}
}

const visitorColumns = `user_id, email, full_name, phone, ticket_type, payment_status,
		stripe_session_id, ticket_price, paid_at, created_at, updated_at, is_approved`

// List visitantes ordenados por fecha de registro, más recientes primero.
func (r *VisitorRepo) List(ctx context.Context) ([]entity.VisitorProfile, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var list []entity.VisitorProfile
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *v)
	}
	return list, rows.Err()
}

// GetByID obtiene un visitante por user_id; (nil, nil) si no existe.
func (r *VisitorRepo) GetByID(ctx context.Context, userID string) (*entity.VisitorProfile, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE user_id = $1`
	v, err := scanVisitor(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// Update persiste el borrador completo, clave user_id, y devuelve la fila
// tal como quedó (RETURNING). (nil, ErrNotFound) si el user_id no existe.
func (r *VisitorRepo) Update(ctx context.Context, visitor *entity.VisitorProfile) (*entity.VisitorProfile, error) {
	query := `
		UPDATE visitors
		SET email = $2, full_name = $3, phone = $4, is_approved = $5, updated_at = $6
		WHERE user_id = $1
		RETURNING ` + visitorColumns
	v, err := scanVisitor(r.pool.QueryRow(ctx, query,
		visitor.UserID, visitor.Email, visitor.FullName, visitor.Phone,
		visitor.IsApproved, visitor.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// ApprovePayment único UPDATE parcial de la aprobación manual:
// payment_status="paid", stripe_session_id="direct_admin", paid_at y
// updated_at al instante dado. Devuelve la fila confirmada.
func (r *VisitorRepo) ApprovePayment(ctx context.Context, userID string, paidAt time.Time) (*entity.VisitorProfile, error) {
	query := `
		UPDATE visitors
		SET payment_status = $2, stripe_session_id = $3, paid_at = $4, updated_at = $4
		WHERE user_id = $1
		RETURNING ` + visitorColumns
	v, err := scanVisitor(r.pool.QueryRow(ctx, query,
		userID, entity.PaymentStatusPaid, entity.StripeSessionManual, paidAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// Delete elimina un visitante por user_id. Permanente e irreversible.
func (r *VisitorRepo) Delete(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM visitors WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVisitor(row pgx.Row) (*entity.VisitorProfile, error) {
	var v entity.VisitorProfile
	err := row.Scan(
		&v.UserID, &v.Email, &v.FullName, &v.Phone, &v.TicketType, &v.PaymentStatus,
		&v.StripeSessionID, &v.TicketPrice, &v.PaidAt, &v.CreatedAt, &v.UpdatedAt, &v.IsApproved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan visitor: %w", err)
	}
	return &v, nil
}
