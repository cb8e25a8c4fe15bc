package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/internal/application/export"
	"github.com/investarise/summit-api/internal/application/visitors"
	"github.com/investarise/summit-api/internal/domain"
)

// VisitorsHandler operaciones del panel sobre visitantes.
type VisitorsHandler struct {
	uc       *visitors.UseCase
	exporter *export.UseCase
}

// NewVisitorsHandler construye el handler de visitantes.
func NewVisitorsHandler(uc *visitors.UseCase, exporter *export.UseCase) *VisitorsHandler {
	return &VisitorsHandler{uc: uc, exporter: exporter}
}

// List godoc
// @Summary      Listado de visitantes con filtro de búsqueda
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "substring sobre full_name, email, phone"
// @Success      200  {object}  dto.VisitorListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/visitors [get]
func (h *VisitorsHandler) List(c *fiber.Ctx) error {
	rows, counts, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	}
	out := make([]dto.VisitorResponse, 0, len(rows))
	for _, v := range rows {
		out = append(out, dto.ToVisitorResponse(v))
	}
	return c.JSON(dto.VisitorListResponse{Counts: counts, Rows: out})
}

// Update godoc
// @Summary      Aplicar el borrador de edición de un visitante
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "user_id"
// @Param        body  body  dto.UpdateVisitorRequest  true  "borrador completo"
// @Success      200   {object}  dto.VisitorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/visitors/{id} [put]
func (h *VisitorsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	updated, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visitante no encontrado"})
		}
		// El error crudo vuelve al modal; el estado mostrado no cambió.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPDATE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.ToVisitorResponse(*updated))
}

// Delete godoc
// @Summary      Eliminar un visitante (exige la frase de confirmación exacta)
// @Tags         admin
// @Accept       json
// @Param        id    path  string                    true  "user_id"
// @Param        body  body  dto.DeleteVisitorRequest  true  "confirmation: frase exacta"
// @Success      204   {object}  nil
// @Failure      422   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/visitors/{id} [delete]
func (h *VisitorsHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteVisitorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Delete(c.Context(), c.Params("id"), in.Confirmation)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationMismatch) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIRMATION_MISMATCH", Message: "la frase de confirmación no coincide"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visitante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DELETE_FAILED", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApprovePayment godoc
// @Summary      Aprobar manualmente el pago de un visitante
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "user_id"
// @Param        body  body  dto.ApprovePaymentRequest  true  "confirm: true"
// @Success      200   {object}  dto.VisitorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/visitors/{id}/approve [post]
func (h *VisitorsHandler) ApprovePayment(c *fiber.Ctx) error {
	var in dto.ApprovePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.ApprovePayment(c.Context(), c.Params("id"), in.Confirm)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfirmed) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_CONFIRMED", Message: "la aprobación requiere confirmación explícita"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visitante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "APPROVE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.ToVisitorResponse(*updated))
}

// Export godoc
// @Summary      Exportar el listado filtrado de visitantes a xlsx
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "mismo filtro que el listado"
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/admin/visitors/export [get]
func (h *VisitorsHandler) Export(c *fiber.Ctx) error {
	// Se exporta la lista filtrada actual, no el dataset completo.
	rows, _, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	}
	file, err := h.exporter.VisitorsWorkbook(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Content)
}

// Ticket godoc
// @Summary      Descargar la entrada del visitante en PDF
// @Tags         admin
// @Produce      application/pdf
// @Param        id  path  string  true  "user_id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/visitors/{id}/ticket [get]
func (h *VisitorsHandler) Ticket(c *fiber.Ctx) error {
	content, err := h.uc.TicketPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "visitante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="investarise-ticket-`+c.Params("id")+`.pdf"`)
	return c.Send(content)
}
