package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
)

var _ repository.UserProfileRepository = (*UserProfileRepo)(nil)

// UserProfileRepo lectura del directorio de usuarios sobre PostgreSQL.
//
// ListMerged llama a la función users_with_contact_email(), que devuelve los
// perfiles ya combinados con el email resuelto desde las tablas de rol. El
// resto de métodos alimenta el merge manual cuando esa función no existe o
// falla (el caso de uso decide el fallback, no este adaptador).
type UserProfileRepo struct {
	pool *pgxpool.Pool
}

// NewUserProfileRepository construye el adaptador del directorio.
func NewUserProfileRepository(pool *pgxpool.Pool) *UserProfileRepo {
	return &UserProfileRepo{pool: pool}
}

const profileColumns = `id, full_name, email, is_investor, is_speaker, is_startup, is_exhibitor, updated_at`

// ListMerged vía preferida: la función agregada del lado de la base de datos.
func (r *UserProfileRepo) ListMerged(ctx context.Context) ([]entity.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM users_with_contact_email()`
	return r.queryProfiles(ctx, query)
}

// List perfiles crudos, con email posiblemente nulo.
func (r *UserProfileRepo) List(ctx context.Context) ([]entity.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY updated_at DESC`
	return r.queryProfiles(ctx, query)
}

func (r *UserProfileRepo) queryProfiles(ctx context.Context, query string) ([]entity.UserProfile, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var list []entity.UserProfile
	for rows.Next() {
		var u entity.UserProfile
		if err := rows.Scan(
			&u.ID, &u.FullName, &u.Email,
			&u.IsInvestor, &u.IsSpeaker, &u.IsStartup, &u.IsExhibitor,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// InvestorEmails user_id -> email de la tabla investors.
func (r *UserProfileRepo) InvestorEmails(ctx context.Context) (map[string]string, error) {
	return r.roleEmails(ctx, "investors")
}

// FounderEmails user_id -> email de la tabla founders.
func (r *UserProfileRepo) FounderEmails(ctx context.Context) (map[string]string, error) {
	return r.roleEmails(ctx, "founders")
}

// SpeakerEmails user_id -> email de la tabla speakers.
func (r *UserProfileRepo) SpeakerEmails(ctx context.Context) (map[string]string, error) {
	return r.roleEmails(ctx, "speakers")
}

// ExhibitorEmails user_id -> email de la tabla exhibitors.
func (r *UserProfileRepo) ExhibitorEmails(ctx context.Context) (map[string]string, error) {
	return r.roleEmails(ctx, "exhibitors")
}

// roleEmails consulta user_id/email de una tabla de rol. El nombre de tabla
// viene de la lista fija de arriba, nunca de entrada del usuario.
func (r *UserProfileRepo) roleEmails(ctx context.Context, table string) (map[string]string, error) {
	query := fmt.Sprintf(`SELECT user_id, email FROM %s WHERE email IS NOT NULL`, table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s emails: %w", table, err)
	}
	defer rows.Close()

	emails := make(map[string]string)
	for rows.Next() {
		var userID, email string
		if err := rows.Scan(&userID, &email); err != nil {
			return nil, fmt.Errorf("scan %s email: %w", table, err)
		}
		emails[userID] = email
	}
	return emails, rows.Err()
}
