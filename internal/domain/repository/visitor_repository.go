package repository

import (
	"context"
	"time"

	"github.com/investarise/summit-api/internal/domain/entity"
)

// VisitorRepository puerto de persistencia para visitantes.
//
// Update y ApprovePayment devuelven la fila tal como quedó en la base de
// datos (RETURNING); el caso de uso solo parchea el estado en memoria con
// esa fila confirmada, nunca con una construida localmente.
type VisitorRepository interface {
	List(ctx context.Context) ([]entity.VisitorProfile, error)
	GetByID(ctx context.Context, userID string) (*entity.VisitorProfile, error)
	Update(ctx context.Context, visitor *entity.VisitorProfile) (*entity.VisitorProfile, error)
	ApprovePayment(ctx context.Context, userID string, paidAt time.Time) (*entity.VisitorProfile, error)
	Delete(ctx context.Context, userID string) error
}
