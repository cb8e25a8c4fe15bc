package repository

import (
	"context"

	"github.com/investarise/summit-api/internal/domain/entity"
)

// UserProfileRepository puerto de lectura del directorio de usuarios.
//
// ListMerged es la vía preferida: una función SQL que devuelve los perfiles
// ya combinados con el email de contacto. Las demás consultas existen para
// el merge manual cuando la vía preferida falla: List trae los perfiles
// crudos y los *Emails devuelven user_id -> email por tabla de rol.
type UserProfileRepository interface {
	ListMerged(ctx context.Context) ([]entity.UserProfile, error)
	List(ctx context.Context) ([]entity.UserProfile, error)
	InvestorEmails(ctx context.Context) (map[string]string, error)
	FounderEmails(ctx context.Context) (map[string]string, error)
	SpeakerEmails(ctx context.Context) (map[string]string, error)
	ExhibitorEmails(ctx context.Context) (map[string]string, error)
}
