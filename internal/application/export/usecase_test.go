package export_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investarise/summit-api/internal/application/export"
	"github.com/investarise/summit-api/internal/domain/entity"
)

// fakeWriter captura los argumentos de la última escritura.
type fakeWriter struct {
	sheet  string
	header []string
	rows   [][]string
	err    error
}

func (w *fakeWriter) Write(sheet string, header []string, rows [][]string) ([]byte, error) {
	w.sheet = sheet
	w.header = header
	w.rows = rows
	if w.err != nil {
		return nil, w.err
	}
	return []byte("xlsx"), nil
}

func ptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersWorkbook(t *testing.T) {
	writer := &fakeWriter{}
	uc := export.NewUseCase(writer)

	updated := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	users := []entity.UserProfile{
		{ID: "u1", FullName: ptr("Ann Lee"), Email: ptr("ann@x.com"), IsInvestor: true, IsSpeaker: true, UpdatedAt: updated},
		{ID: "u2", FullName: nil, Email: nil, UpdatedAt: updated},
	}

	file, err := uc.UsersWorkbook(users)
	require.NoError(t, err)

	assert.Equal(t, "Users", writer.sheet)
	assert.Equal(t, []string{"ID", "Full Name", "Email", "Roles", "Updated At"}, writer.header)
	require.Len(t, writer.rows, 2, "una fila de datos por registro, la cabecera va aparte")

	// El orden de entrada se preserva.
	assert.Equal(t, "u1", writer.rows[0][0])
	assert.Equal(t, "Investor, Speaker", writer.rows[0][3], "los roles se aplanan separados por comas")
	assert.Equal(t, "2026-03-05 14:30:00", writer.rows[0][4])

	// Campos ausentes salen como "N/A".
	assert.Equal(t, entity.ValueNotAvailable, writer.rows[1][1])
	assert.Equal(t, entity.ValueNotAvailable, writer.rows[1][2])
	assert.Equal(t, entity.ValueNotAvailable, writer.rows[1][3], "sin roles también es N/A")

	assert.Equal(t, []byte("xlsx"), file.Content)
}

// Exportar el resultado filtrado, no el dataset: el caso de uso serializa
// exactamente lo que recibe, incluida una lista vacía.
func TestUsersWorkbook_ListaVacia(t *testing.T) {
	writer := &fakeWriter{}
	uc := export.NewUseCase(writer)

	_, err := uc.UsersWorkbook(nil)
	require.NoError(t, err)
	assert.Empty(t, writer.rows, "sin registros solo queda la cabecera")
}

// ──────────────────────────────────────────────────────────────────────────────
// Visitantes
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsWorkbook(t *testing.T) {
	writer := &fakeWriter{}
	uc := export.NewUseCase(writer)

	paid := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	visitors := []entity.VisitorProfile{
		{
			UserID:        "v1",
			Email:         "ana@x.com",
			FullName:      ptr("Ana Ruiz"),
			Phone:         ptr("+57 300 111 2233"),
			TicketType:    entity.TicketPremium,
			PaymentStatus: entity.PaymentStatusPaid,
			TicketPrice:   decimal.RequireFromString("149.5"),
			PaidAt:        &paid,
			CreatedAt:     paid,
			IsApproved:    true,
		},
		{UserID: "v2", Email: "luis@x.com", TicketPrice: decimal.Zero, CreatedAt: paid},
	}

	file, err := uc.VisitorsWorkbook(visitors)
	require.NoError(t, err)

	assert.Equal(t, "Visitors", writer.sheet)
	require.Len(t, writer.rows, 2)

	assert.Equal(t, "149.50", writer.rows[0][5], "el precio sale con dos decimales fijos")
	assert.Equal(t, "2026-02-01 10:00:00", writer.rows[0][6])
	assert.Equal(t, "Yes", writer.rows[0][8])

	assert.Equal(t, entity.ValueNotAvailable, writer.rows[1][0], "nombre ausente sale como N/A")
	assert.Equal(t, entity.ValueNotAvailable, writer.rows[1][6], "sin paid_at sale N/A")
	assert.Equal(t, "No", writer.rows[1][8])

	assert.NotEmpty(t, file.Content)
}

// ──────────────────────────────────────────────────────────────────────────────
// Nombre de archivo y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestFileName_PrefijoEntidadFecha(t *testing.T) {
	uc := export.NewUseCase(&fakeWriter{})

	file, err := uc.VisitorsWorkbook(nil)
	require.NoError(t, err)

	want := fmt.Sprintf("investarise-visitors-%s.xlsx", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, file.Name)
}

func TestWorkbook_ErrorDelWriterSePropaga(t *testing.T) {
	uc := export.NewUseCase(&fakeWriter{err: errors.New("celda inválida")})

	_, err := uc.UsersWorkbook(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "celda inválida")
}
