package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/internal/application/export"
	"github.com/investarise/summit-api/internal/application/visitors"
	"github.com/investarise/summit-api/internal/domain"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/infrastructure/excel"
	apphttp "github.com/investarise/summit-api/internal/interfaces/http"
	"github.com/investarise/summit-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memVisitorRepo struct {
	visitors map[string]entity.VisitorProfile
}

func (r *memVisitorRepo) List(_ context.Context) ([]entity.VisitorProfile, error) {
	out := make([]entity.VisitorProfile, 0, len(r.visitors))
	for _, v := range r.visitors {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVisitorRepo) GetByID(_ context.Context, userID string) (*entity.VisitorProfile, error) {
	v, ok := r.visitors[userID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVisitorRepo) Update(_ context.Context, visitor *entity.VisitorProfile) (*entity.VisitorProfile, error) {
	if _, ok := r.visitors[visitor.UserID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.visitors[visitor.UserID] = *visitor
	stored := r.visitors[visitor.UserID]
	return &stored, nil
}

func (r *memVisitorRepo) ApprovePayment(_ context.Context, userID string, paidAt time.Time) (*entity.VisitorProfile, error) {
	v, ok := r.visitors[userID]
	if !ok {
		return nil, nil
	}
	session := entity.StripeSessionManual
	v.PaymentStatus = entity.PaymentStatusPaid
	v.StripeSessionID = &session
	v.PaidAt = &paidAt
	v.UpdatedAt = paidAt
	r.visitors[userID] = v
	return &v, nil
}

func (r *memVisitorRepo) Delete(_ context.Context, userID string) error {
	if _, ok := r.visitors[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.visitors, userID)
	return nil
}

type noopPDF struct{}

func (noopPDF) GenerateTicketPDF(_ context.Context, _ *entity.VisitorProfile) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func strptr(s string) *string { return &s }

// buildVisitorsApp app con las rutas de visitantes montadas sin middlewares
// de auth: aquí se prueba el contrato HTTP de los handlers, la cadena de
// autorización tiene su propio test.
func buildVisitorsApp(repo *memVisitorRepo) *fiber.App {
	uc := visitors.NewUseCase(repo, noopPDF{}, logger.Nop())
	exporter := export.NewUseCase(excel.NewExcelizeWriter())
	handler := apphttp.NewVisitorsHandler(uc, exporter)

	app := fiber.New()
	app.Get("/visitors", handler.List)
	app.Get("/visitors/export", handler.Export)
	app.Put("/visitors/:id", handler.Update)
	app.Delete("/visitors/:id", handler.Delete)
	app.Post("/visitors/:id/approve", handler.ApprovePayment)
	app.Get("/visitors/:id/ticket", handler.Ticket)
	return app
}

func seedRepo() *memVisitorRepo {
	return &memVisitorRepo{visitors: map[string]entity.VisitorProfile{
		"v1": {
			UserID:        "v1",
			Email:         "ana@x.com",
			FullName:      strptr("Ana Ruiz"),
			Phone:         strptr("+57 300 111 2233"),
			TicketType:    entity.TicketStandard,
			PaymentStatus: entity.PaymentStatusPending,
			TicketPrice:   decimal.NewFromInt(99),
			CreatedAt:     time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		},
	}}
}

func jsonRequest(t *testing.T, method, target string, body any) *nethttp.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsList_ConFiltro(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/visitors?search=ana", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var out dto.VisitorListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Counts.Total)
	assert.Equal(t, 1, out.Counts.Filtered)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "ana@x.com", out.Rows[0].Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con frase de confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsDelete_FraseEquivocada(t *testing.T) {
	repo := seedRepo()
	app := buildVisitorsApp(repo)

	req := jsonRequest(t, nethttp.MethodDelete, "/visitors/v1", dto.DeleteVisitorRequest{Confirmation: "Confirm Delete"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_MISMATCH", decodeError(t, resp).Code)
	assert.Contains(t, repo.visitors, "v1", "la frase equivocada no debe borrar nada")
}

func TestVisitorsDelete_FraseExacta(t *testing.T) {
	repo := seedRepo()
	app := buildVisitorsApp(repo)

	req := jsonRequest(t, nethttp.MethodDelete, "/visitors/v1", dto.DeleteVisitorRequest{Confirmation: "confirm delete"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotContains(t, repo.visitors, "v1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsApprove_SinConfirmacion(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	req := jsonRequest(t, nethttp.MethodPost, "/visitors/v1/approve", dto.ApprovePaymentRequest{Confirm: false})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "NOT_CONFIRMED", decodeError(t, resp).Code)
}

func TestVisitorsApprove_Confirmado(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	req := jsonRequest(t, nethttp.MethodPost, "/visitors/v1/approve", dto.ApprovePaymentRequest{Confirm: true})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var out dto.VisitorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.Equal(t, entity.StripeSessionManual, out.StripeSessionID)
	assert.NotNil(t, out.PaidAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsUpdate_NoEncontrado(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	req := jsonRequest(t, nethttp.MethodPut, "/visitors/fantasma", dto.UpdateVisitorRequest{Email: "x@x.com"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestVisitorsUpdate_SinEmail(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	req := jsonRequest(t, nethttp.MethodPut, "/visitors/v1", dto.UpdateVisitorRequest{Email: ""})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exporte y ticket
// ──────────────────────────────────────────────────────────────────────────────

func TestVisitorsExport_CabecerasDeDescarga(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/visitors/export", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get(fiber.HeaderContentDisposition)
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="investarise-visitors-`), "disposition: %s", disposition)
	assert.True(t, strings.HasSuffix(disposition, `.xlsx"`))
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
}

func TestVisitorsTicket(t *testing.T) {
	app := buildVisitorsApp(seedRepo())

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/visitors/v1/ticket", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
}
