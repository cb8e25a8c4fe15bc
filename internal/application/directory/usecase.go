// Package directory implementa el listado de usuarios del panel: la vía
// preferida es la función SQL agregada que ya devuelve el email resuelto;
// si falla por cualquier motivo se cae en silencio al merge manual sobre
// las tablas de rol, dejando solo un log con la causa.
package directory

import (
	"context"
	"fmt"

	"github.com/investarise/summit-api/internal/application/listing"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
	"github.com/investarise/summit-api/pkg/logger"
)

// emailLookup fuente de emails por tabla de rol; el orden de la lista fija
// la preferencia de resolución (primer no-nulo gana).
type emailLookup struct {
	role string
	load func(ctx context.Context) (map[string]string, error)
}

// UseCase listado de usuarios con resolución de email multi-fuente.
type UseCase struct {
	repo  repository.UserProfileRepository
	state *listing.State[entity.UserProfile]
	log   *logger.Logger
}

// NewUseCase construye el caso de uso del directorio.
func NewUseCase(repo repository.UserProfileRepository, log *logger.Logger) *UseCase {
	return &UseCase{
		repo:  repo,
		state: listing.NewState[entity.UserProfile](),
		log:   log,
	}
}

// List recarga el directorio y devuelve la subsecuencia que matchea query
// junto con los conteos total/filtrado.
func (uc *UseCase) List(ctx context.Context, query string) ([]entity.UserProfile, listing.Counts, error) {
	if err := uc.Refresh(ctx); err != nil {
		return nil, listing.Counts{}, err
	}
	rows, counts := uc.state.Filtered(query)
	return rows, counts, nil
}

// Refresh carga el listado: primero la función agregada; cualquier error de
// esa vía dispara el fallback al merge manual sin llegar al usuario (solo se
// registra la causa). Un error de las fuentes del fallback sí se propaga.
func (uc *UseCase) Refresh(ctx context.Context) error {
	merged, err := uc.repo.ListMerged(ctx)
	if err == nil {
		uc.state.SetRecords(merged)
		return nil
	}
	uc.log.Warn().Err(err).Msg("vía agregada no disponible, usando merge manual")

	profiles, err := uc.mergeManually(ctx)
	if err != nil {
		return err
	}
	uc.state.SetRecords(profiles)
	return nil
}

// mergeManually trae los perfiles crudos y resuelve el email ausente
// probando las tablas de rol en orden fijo: investor → founder → speaker
// → exhibitor. Si ninguna lo tiene, queda el sentinel "N/A".
func (uc *UseCase) mergeManually(ctx context.Context) ([]entity.UserProfile, error) {
	profiles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar perfiles: %w", err)
	}

	lookups := []emailLookup{
		{role: "investor", load: uc.repo.InvestorEmails},
		{role: "founder", load: uc.repo.FounderEmails},
		{role: "speaker", load: uc.repo.SpeakerEmails},
		{role: "exhibitor", load: uc.repo.ExhibitorEmails},
	}
	sources := make([]map[string]string, len(lookups))
	for i, l := range lookups {
		emails, err := l.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("emails de %s: %w", l.role, err)
		}
		sources[i] = emails
	}

	for i := range profiles {
		if profiles[i].Email != nil && *profiles[i].Email != "" {
			continue
		}
		email := entity.ValueNotAvailable
		for _, src := range sources {
			if found, ok := src[profiles[i].ID]; ok && found != "" {
				email = found
				break
			}
		}
		profiles[i].Email = &email
	}
	return profiles, nil
}
