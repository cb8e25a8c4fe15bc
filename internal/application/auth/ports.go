package auth

import (
	"context"
	"time"
)

// CodeStore guarda los códigos de un solo uso del reset de contraseña,
// con expiración. Lo implementa la infraestructura (Redis).
type CodeStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error) // "" si no existe o expiró
	Delete(ctx context.Context, email string) error
}

// Mailer envía el email de recuperación con el código y el enlace a la
// página de reset. Lo implementa la infraestructura (SMTP).
type Mailer interface {
	SendResetCode(to, code, resetURL string) error
}
