package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investarise/summit-api/internal/application/directory"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	merged     []entity.UserProfile
	mergedErr  error
	profiles   []entity.UserProfile
	listErr    error
	investors  map[string]string
	founders   map[string]string
	speakers   map[string]string
	exhibitors map[string]string
	rolesErr   error

	mergedCalls int
	listCalls   int
}

func (r *fakeUserRepo) ListMerged(_ context.Context) ([]entity.UserProfile, error) {
	r.mergedCalls++
	if r.mergedErr != nil {
		return nil, r.mergedErr
	}
	return r.merged, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.UserProfile, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]entity.UserProfile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

func (r *fakeUserRepo) InvestorEmails(_ context.Context) (map[string]string, error) {
	return r.investors, r.rolesErr
}

func (r *fakeUserRepo) FounderEmails(_ context.Context) (map[string]string, error) {
	return r.founders, r.rolesErr
}

func (r *fakeUserRepo) SpeakerEmails(_ context.Context) (map[string]string, error) {
	return r.speakers, r.rolesErr
}

func (r *fakeUserRepo) ExhibitorEmails(_ context.Context) (map[string]string, error) {
	return r.exhibitors, r.rolesErr
}

func ptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Vía agregada
// ──────────────────────────────────────────────────────────────────────────────

// Cuando la función agregada responde, el merge manual no debe ejecutarse.
func TestList_PrefiereViaAgregada(t *testing.T) {
	repo := &fakeUserRepo{
		merged: []entity.UserProfile{
			{ID: "u1", FullName: ptr("Ann Lee"), Email: ptr("ann@x.com")},
		},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, counts, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ann@x.com", *rows[0].Email)
	assert.Equal(t, 1, counts.Total)
	assert.Zero(t, repo.listCalls, "con la vía agregada sana no se hace merge manual")
}

func TestList_FiltraSobreResultado(t *testing.T) {
	repo := &fakeUserRepo{
		merged: []entity.UserProfile{
			{ID: "u1", FullName: ptr("Ann Lee"), Email: ptr("ann@x.com")},
			{ID: "u2", FullName: ptr("Bo Kim"), Email: ptr("bo@x.com")},
		},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, counts, err := uc.List(context.Background(), "ann")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0].ID)
	assert.Equal(t, 2, counts.Total)
	assert.Equal(t, 1, counts.Filtered)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback al merge manual
// ──────────────────────────────────────────────────────────────────────────────

// Cualquier error de la vía agregada cae al merge manual sin propagarse.
func TestList_FallbackSilencioso(t *testing.T) {
	repo := &fakeUserRepo{
		mergedErr: errors.New("function users_with_contact_email() does not exist"),
		profiles: []entity.UserProfile{
			{ID: "u1", FullName: ptr("Ann Lee")},
		},
		investors: map[string]string{"u1": "ann@inversora.com"},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, _, err := uc.List(context.Background(), "")
	require.NoError(t, err, "el fallo de la vía agregada nunca llega al llamador")
	require.Len(t, rows, 1)
	assert.Equal(t, "ann@inversora.com", *rows[0].Email)
	assert.Equal(t, 1, repo.listCalls)
}

// Orden de preferencia: investor gana a founder, founder a speaker, etc.
func TestMergeManual_OrdenDePreferencia(t *testing.T) {
	repo := &fakeUserRepo{
		mergedErr: errors.New("rpc caída"),
		profiles: []entity.UserProfile{
			{ID: "u1"},
			{ID: "u2"},
			{ID: "u3"},
		},
		investors:  map[string]string{"u1": "inv@x.com"},
		founders:   map[string]string{"u1": "fou@x.com", "u2": "fou2@x.com"},
		speakers:   map[string]string{"u1": "spk@x.com", "u2": "spk2@x.com", "u3": "spk3@x.com"},
		exhibitors: map[string]string{"u3": "exh3@x.com"},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, _, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := make(map[string]entity.UserProfile, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	assert.Equal(t, "inv@x.com", *byID["u1"].Email, "investor tiene prioridad sobre el resto")
	assert.Equal(t, "fou2@x.com", *byID["u2"].Email, "founder tiene prioridad sobre speaker")
	assert.Equal(t, "spk3@x.com", *byID["u3"].Email, "speaker tiene prioridad sobre exhibitor")
}

// Sin email en ninguna fuente queda el sentinel "N/A".
func TestMergeManual_SentinelSinEmail(t *testing.T) {
	repo := &fakeUserRepo{
		mergedErr: errors.New("rpc caída"),
		profiles:  []entity.UserProfile{{ID: "u1", FullName: ptr("Sin Correo")}},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, _, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Email)
	assert.Equal(t, entity.ValueNotAvailable, *rows[0].Email)
}

// Un email ya presente en el perfil no se sobreescribe.
func TestMergeManual_EmailExistenteSeConserva(t *testing.T) {
	repo := &fakeUserRepo{
		mergedErr: errors.New("rpc caída"),
		profiles:  []entity.UserProfile{{ID: "u1", Email: ptr("directo@x.com")}},
		investors: map[string]string{"u1": "inv@x.com"},
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	rows, _, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "directo@x.com", *rows[0].Email)
}

// Un error de las fuentes del fallback sí se propaga al llamador.
func TestMergeManual_ErrorDeFuentesSePropaga(t *testing.T) {
	repo := &fakeUserRepo{
		mergedErr: errors.New("rpc caída"),
		profiles:  []entity.UserProfile{{ID: "u1"}},
		rolesErr:  errors.New("tabla inaccesible"),
	}
	uc := directory.NewUseCase(repo, logger.Nop())

	_, _, err := uc.List(context.Background(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "tabla inaccesible")
}
