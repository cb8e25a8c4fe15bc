// Package pdf genera la entrada imprimible de un visitante de la cumbre.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Investarise Investment Summit │ Tipo de entrada    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ASISTENTE: Nombre + Email + Teléfono                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Tipo | Precio | Estado de pago | Fecha de pago    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR con el user_id para el control de acceso en puerta      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/investarise/summit-api/internal/application/visitors"
	"github.com/investarise/summit-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 42, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorPending = &props.Color{Red: 180, Green: 120, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ visitors.TicketPDFGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa visitors.TicketPDFGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GenerateTicketPDF genera el PDF de la entrada y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicketPDF(_ context.Context, visitor *entity.VisitorProfile) ([]byte, error) {
	cfg := marotoconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Investarise Summit Ticket", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(visitor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(attendeeRow(visitor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRow(visitor))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(visitor))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar entrada: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del evento (izq) y tipo de entrada (der).
func headerRow(visitor *entity.VisitorProfile) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVESTARISE", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Investment Summit — Entrada oficial", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TICKET", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(ticketLabel(visitor.TicketType), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Registro: "+visitor.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// attendeeRow: datos del asistente.
func attendeeRow(visitor *entity.VisitorProfile) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ASISTENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmptyPtr(visitor.FullName, visitor.Email), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				visitor.Email,
				nonEmptyPtr(visitor.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detailRow: tipo, precio y estado de pago.
func detailRow(visitor *entity.VisitorProfile) core.Row {
	statusColor := colorPending
	statusText := "PAGO PENDIENTE"
	if visitor.PaymentStatus == entity.PaymentStatusPaid {
		statusColor = colorPaid
		statusText = "PAGADO"
		if visitor.PaidAt != nil {
			statusText += " — " + visitor.PaidAt.Format("02/01/2006 15:04")
		}
	}
	return row.New(14).Add(
		col.New(4).Add(
			text.New("Tipo de entrada", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(ticketLabel(visitor.TicketType), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Precio", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("$"+visitor.TicketPrice.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Estado de pago", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(statusText, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: statusColor}),
		),
	)
}

// qrRow: código QR con el user_id para el escáner de la puerta.
func qrRow(visitor *entity.VisitorProfile) core.Row {
	return row.New(50).Add(
		col.New(4).Add(code.NewQr(visitor.UserID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Presenta este código QR en el acceso\npara validar tu entrada.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("INVESTARISE\nINVESTMENT SUMMIT", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func ticketLabel(ticketType string) string {
	switch ticketType {
	case entity.TicketPremium:
		return "PREMIUM"
	case entity.TicketStandard:
		return "STANDARD"
	default:
		return ticketType
	}
}

func nonEmptyPtr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
