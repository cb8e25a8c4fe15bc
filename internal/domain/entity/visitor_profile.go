package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago conocidos para un visitante.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// StripeSessionManual valor fijo de stripe_session_id cuando un admin
// aprueba el pago manualmente (no existe transacción Stripe real).
const StripeSessionManual = "direct_admin"

// Tipos de entrada vendidos en la cumbre.
const (
	TicketStandard = "standard"
	TicketPremium  = "premium"
)

// VisitorProfile registro de un visitante con entrada a la cumbre.
// Lo crea el flujo público de registro; el panel admin lo lee, edita,
// aprueba su pago o lo elimina. Toda mutación va primero a la base de
// datos y solo se refleja en memoria con la fila confirmada.
type VisitorProfile struct {
	UserID          string // clave primaria, inmutable
	Email           string
	FullName        *string
	Phone           *string
	TicketType      string
	PaymentStatus   string
	StripeSessionID *string
	TicketPrice     decimal.Decimal
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	IsApproved      bool
}

// Key identidad inmutable dentro del listado.
func (v VisitorProfile) Key() string { return v.UserID }

// SearchFields campos designados para el buscador del panel (full_name, email, phone).
func (v VisitorProfile) SearchFields() []string {
	return []string{strOrEmpty(v.FullName), v.Email, strOrEmpty(v.Phone)}
}
