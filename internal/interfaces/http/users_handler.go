package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/investarise/summit-api/internal/application/directory"
	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/internal/application/export"
)

// UsersHandler listado y exporte del directorio de usuarios del panel.
type UsersHandler struct {
	uc       *directory.UseCase
	exporter *export.UseCase
}

// NewUsersHandler construye el handler del directorio.
func NewUsersHandler(uc *directory.UseCase, exporter *export.UseCase) *UsersHandler {
	return &UsersHandler{uc: uc, exporter: exporter}
}

// List godoc
// @Summary      Listado de usuarios con filtro de búsqueda
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "substring sobre full_name, email, id"
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, counts, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	}
	rows := make([]dto.UserRowResponse, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.ToUserRow(u))
	}
	return c.JSON(dto.UserListResponse{Counts: counts, Rows: rows})
}

// Export godoc
// @Summary      Exportar el listado filtrado de usuarios a xlsx
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "mismo filtro que el listado"
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/admin/users/export [get]
func (h *UsersHandler) Export(c *fiber.Ctx) error {
	// Se exporta la lista filtrada actual, no el dataset completo.
	users, _, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: err.Error()})
	}
	file, err := h.exporter.UsersWorkbook(users)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Content)
}
