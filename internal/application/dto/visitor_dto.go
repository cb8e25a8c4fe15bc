package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/investarise/summit-api/internal/application/listing"
	"github.com/investarise/summit-api/internal/domain/entity"
)

// VisitorResponse fila del listado de visitantes del panel.
type VisitorResponse struct {
	UserID          string          `json:"user_id"`
	Email           string          `json:"email"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone"`
	TicketType      string          `json:"ticket_type"`
	PaymentStatus   string          `json:"payment_status"`
	StripeSessionID string          `json:"stripe_session_id,omitempty"`
	TicketPrice     decimal.Decimal `json:"ticket_price"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	IsApproved      bool            `json:"is_approved"`
}

// VisitorListResponse listado filtrado + conteos (total vs filtrado).
type VisitorListResponse struct {
	Counts listing.Counts    `json:"counts"`
	Rows   []VisitorResponse `json:"rows"`
}

// UpdateVisitorRequest borrador completo del modal de edición. Se envía
// entero; el caso de uso refresca updated_at antes de persistir.
type UpdateVisitorRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name" validate:"omitempty,max=200"`
	Phone      string `json:"phone" validate:"omitempty,max=40"`
	IsApproved bool   `json:"is_approved"`
}

// DeleteVisitorRequest el borrado exige la frase exacta "confirm delete"
// (igualdad sensible a mayúsculas) antes de habilitarse.
type DeleteVisitorRequest struct {
	Confirmation string `json:"confirmation" validate:"required"`
}

// ApprovePaymentRequest aprobación manual de pago; requiere confirmación explícita.
type ApprovePaymentRequest struct {
	Confirm bool `json:"confirm"`
}

// ToVisitorResponse convierte la entidad a la fila del listado.
func ToVisitorResponse(v entity.VisitorProfile) VisitorResponse {
	out := VisitorResponse{
		UserID:        v.UserID,
		Email:         v.Email,
		FullName:      orNA(v.FullName),
		Phone:         orNA(v.Phone),
		TicketType:    v.TicketType,
		PaymentStatus: v.PaymentStatus,
		TicketPrice:   v.TicketPrice,
		PaidAt:        v.PaidAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		IsApproved:    v.IsApproved,
	}
	if v.StripeSessionID != nil {
		out.StripeSessionID = *v.StripeSessionID
	}
	return out
}
