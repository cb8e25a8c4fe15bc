package visitors

import (
	"context"
	"fmt"
	"time"

	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/internal/application/listing"
	"github.com/investarise/summit-api/internal/domain"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
	"github.com/investarise/summit-api/pkg/logger"
)

// ConfirmDeletePhrase frase exacta que habilita el borrado de un visitante.
// La comparación es sensible a mayúsculas: "Confirm Delete" no habilita.
const ConfirmDeletePhrase = "confirm delete"

// UseCase operaciones del panel sobre visitantes: listado filtrado, edición
// por borrador, aprobación manual de pago y borrado con frase de confirmación.
//
// Toda mutación sigue el mismo contrato en dos fases: (1) se persiste en la
// base de datos; (2) solo con la fila confirmada se parchea el estado en
// memoria. Un fallo remoto deja el listado exactamente como estaba.
type UseCase struct {
	repo  repository.VisitorRepository
	pdf   TicketPDFGenerator
	state *listing.State[entity.VisitorProfile]
	log   *logger.Logger
	now   func() time.Time
}

// NewUseCase construye el caso de uso de visitantes.
func NewUseCase(repo repository.VisitorRepository, pdf TicketPDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{
		repo:  repo,
		pdf:   pdf,
		state: listing.NewState[entity.VisitorProfile](),
		log:   log,
		now:   time.Now,
	}
}

// List recarga el listado y devuelve la subsecuencia que matchea query
// junto con los conteos total/filtrado.
func (uc *UseCase) List(ctx context.Context, query string) ([]entity.VisitorProfile, listing.Counts, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, listing.Counts{}, fmt.Errorf("listar visitantes: %w", err)
	}
	uc.state.SetRecords(rows)
	filtered, counts := uc.state.Filtered(query)
	return filtered, counts, nil
}

// Filtered filtra sobre el estado ya cargado, sin tocar la base de datos.
func (uc *UseCase) Filtered(query string) ([]entity.VisitorProfile, listing.Counts) {
	return uc.state.Filtered(query)
}

// Update aplica el borrador completo del modal de edición, clave user_id.
// Refresca updated_at, persiste y parchea el estado con la fila devuelta.
// Si la persistencia falla, el estado en memoria queda intacto.
func (uc *UseCase) Update(ctx context.Context, userID string, in dto.UpdateVisitorRequest) (*entity.VisitorProfile, error) {
	current, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	draft := *current
	draft.Email = in.Email
	draft.FullName = optional(in.FullName)
	draft.Phone = optional(in.Phone)
	draft.IsApproved = in.IsApproved
	draft.UpdatedAt = uc.now()

	updated, err := uc.repo.Update(ctx, &draft)
	if err != nil {
		return nil, err
	}
	uc.state.PatchRecord(*updated)
	return updated, nil
}

// ApprovePayment marca el pago de un visitante como pagado manualmente.
// Sin confirmación explícita devuelve ErrNotConfirmed y no toca nada.
// Con confirmación: payment_status="paid", stripe_session_id="direct_admin",
// paid_at=ahora, updated_at=ahora, en un único UPDATE parcial. El estado se
// parchea con la fila que devolvió la base de datos.
func (uc *UseCase) ApprovePayment(ctx context.Context, userID string, confirmed bool) (*entity.VisitorProfile, error) {
	if !confirmed {
		return nil, domain.ErrNotConfirmed
	}
	updated, err := uc.repo.ApprovePayment(ctx, userID, uc.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.state.PatchRecord(*updated)
	uc.log.Info().Str("user_id", userID).Msg("pago aprobado manualmente")
	return updated, nil
}

// Delete elimina un visitante de forma permanente e irreversible.
// Exige la frase de confirmación exacta; cualquier otra entrada, incluidas
// variantes de mayúsculas, bloquea la operación sin tocar la base de datos.
func (uc *UseCase) Delete(ctx context.Context, userID, confirmation string) error {
	if confirmation != ConfirmDeletePhrase {
		return domain.ErrConfirmationMismatch
	}
	if err := uc.repo.Delete(ctx, userID); err != nil {
		return err
	}
	uc.state.RemoveRecord(userID)
	uc.log.Info().Str("user_id", userID).Msg("visitante eliminado")
	return nil
}

// TicketPDF genera el PDF de la entrada del visitante.
func (uc *UseCase) TicketPDF(ctx context.Context, userID string) ([]byte, error) {
	visitor, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateTicketPDF(ctx, visitor)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
