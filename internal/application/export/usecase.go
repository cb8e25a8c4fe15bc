// Package export serializa el listado filtrado del panel (no el dataset
// completo) a un workbook descargable: una fila de cabecera con etiquetas
// legibles + una fila por registro en el mismo orden mostrado. Operación
// síncrona y local, sin llamadas de red ni persistencia del archivo.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/investarise/summit-api/internal/domain/entity"
)

// filePrefix prefijo descriptivo fijo de los nombres de archivo.
const filePrefix = "investarise"

// Formato de fechas dentro de las celdas.
const cellTimeLayout = "2006-01-02 15:04:05"

// File workbook generado listo para descargar.
type File struct {
	Name    string
	Content []byte
}

// UseCase exporta listados a workbook vía el puerto WorkbookWriter.
type UseCase struct {
	writer WorkbookWriter
	now    func() time.Time
}

// NewUseCase construye el caso de uso de exporte.
func NewUseCase(writer WorkbookWriter) *UseCase {
	return &UseCase{writer: writer, now: time.Now}
}

// UsersWorkbook exporta el listado de usuarios tal como llega (ya filtrado).
// Los flags de rol se aplanan en una sola columna separada por comas;
// los campos ausentes salen como "N/A".
func (uc *UseCase) UsersWorkbook(users []entity.UserProfile) (*File, error) {
	header := []string{"ID", "Full Name", "Email", "Roles", "Updated At"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		roles := strings.Join(u.Roles(), ", ")
		if roles == "" {
			roles = entity.ValueNotAvailable
		}
		rows = append(rows, []string{
			u.ID,
			naIfNil(u.FullName),
			naIfNil(u.Email),
			roles,
			u.UpdatedAt.Format(cellTimeLayout),
		})
	}
	content, err := uc.writer.Write("Users", header, rows)
	if err != nil {
		return nil, fmt.Errorf("generar workbook de usuarios: %w", err)
	}
	return &File{Name: uc.fileName("users"), Content: content}, nil
}

// VisitorsWorkbook exporta el listado de visitantes tal como llega (ya filtrado).
func (uc *UseCase) VisitorsWorkbook(visitors []entity.VisitorProfile) (*File, error) {
	header := []string{
		"Full Name", "Email", "Phone", "Ticket Type", "Payment Status",
		"Ticket Price", "Paid At", "Registered At", "Approved",
	}
	rows := make([][]string, 0, len(visitors))
	for _, v := range visitors {
		rows = append(rows, []string{
			naIfNil(v.FullName),
			naIfEmpty(v.Email),
			naIfNil(v.Phone),
			naIfEmpty(v.TicketType),
			naIfEmpty(v.PaymentStatus),
			v.TicketPrice.StringFixed(2),
			formatTime(v.PaidAt),
			v.CreatedAt.Format(cellTimeLayout),
			yesNo(v.IsApproved),
		})
	}
	content, err := uc.writer.Write("Visitors", header, rows)
	if err != nil {
		return nil, fmt.Errorf("generar workbook de visitantes: %w", err)
	}
	return &File{Name: uc.fileName("visitors"), Content: content}, nil
}

// fileName arma "<prefijo>-<entidad>-YYYY-MM-DD.xlsx" con la fecha actual.
func (uc *UseCase) fileName(entityName string) string {
	return fmt.Sprintf("%s-%s-%s.xlsx", filePrefix, entityName, uc.now().Format("2006-01-02"))
}

func naIfNil(s *string) string {
	if s == nil || *s == "" {
		return entity.ValueNotAvailable
	}
	return *s
}

func naIfEmpty(s string) string {
	if s == "" {
		return entity.ValueNotAvailable
	}
	return s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return entity.ValueNotAvailable
	}
	return t.Format(cellTimeLayout)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
