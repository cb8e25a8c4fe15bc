package visitors

import (
	"context"

	"github.com/investarise/summit-api/internal/domain/entity"
)

// TicketPDFGenerator genera el PDF de la entrada de un visitante.
// Lo implementa la infraestructura (Maroto); la interfaz mantiene al caso
// de uso independiente de la librería de PDF.
type TicketPDFGenerator interface {
	GenerateTicketPDF(ctx context.Context, visitor *entity.VisitorProfile) ([]byte, error)
}
