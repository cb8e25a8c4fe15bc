// Package mail envía los correos de recuperación de contraseña por SMTP.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/investarise/summit-api/internal/application/auth"
	"github.com/investarise/summit-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación de auth.Mailer sobre gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendResetCode envía el código de verificación y el enlace a la página de reset.
func (m *SMTPMailer) SendResetCode(to, code, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Investarise — código de recuperación de contraseña")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Tu código de verificación es: %s\n\n"+
			"Ingresa el código en la página de recuperación: %s\n\n"+
			"El código expira en pocos minutos. Si no solicitaste este cambio, ignora este correo.",
		code, resetURL,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
