package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/internal/domain"
	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/domain/repository"
	"github.com/investarise/summit-api/pkg/jwt"
	"github.com/investarise/summit-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión y recuperación.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	RecoveryExpMinutes int
	Issuer             string
}

// ResetConfig parámetros del flujo de recuperación de contraseña.
type ResetConfig struct {
	RedirectURL string
	CodeTTL     time.Duration
}

// UseCase casos de uso de identidad: login, signup y la máquina de dos
// pasos del reset de contraseña (verify-code → update-password).
type UseCase struct {
	accounts repository.AccountRepository
	codes    CodeStore
	mailer   Mailer
	jwtCfg   JWTConfig
	resetCfg ResetConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de identidad.
func NewUseCase(
	accounts repository.AccountRepository,
	codes CodeStore,
	mailer Mailer,
	jwtCfg JWTConfig,
	resetCfg ResetConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		accounts: accounts,
		codes:    codes,
		mailer:   mailer,
		jwtCfg:   jwtCfg,
		resetCfg: resetCfg,
		log:      log,
	}
}

// Login verifica email/password, genera el token de sesión y retorna token + cuenta.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	account, err := uc.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.session(account)
}

// Signup crea la cuenta y, sin paso de verificación de email, inicia sesión
// inmediatamente con las mismas credenciales. Email duplicado es error y no
// deja sesión creada.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SessionResponse, error) {
	existing, err := uc.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return uc.Login(ctx, dto.LoginRequest{Email: in.Email, Password: in.Password})
}

// ForgotPassword genera un código de 6 dígitos, lo guarda con TTL y lo envía
// por correo con el enlace a la página de reset. Para un email sin cuenta
// responde éxito sin enviar nada (no revela qué direcciones existen).
func (uc *UseCase) ForgotPassword(ctx context.Context, email string) error {
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		uc.log.Info().Str("email", email).Msg("reset solicitado para email sin cuenta")
		return nil
	}
	code, err := sixDigitCode()
	if err != nil {
		return fmt.Errorf("generar código: %w", err)
	}
	if err := uc.codes.Save(ctx, email, code, uc.resetCfg.CodeTTL); err != nil {
		return fmt.Errorf("guardar código: %w", err)
	}
	if err := uc.mailer.SendResetCode(email, code, uc.resetCfg.RedirectURL); err != nil {
		return fmt.Errorf("enviar email de recuperación: %w", err)
	}
	return nil
}

// VerifyCode compara el código recibido con el guardado; si coincide lo
// consume y emite un token de recuperación de corta vida. Ese token solo
// habilita UpdatePassword, nunca rutas de administración.
func (uc *UseCase) VerifyCode(ctx context.Context, email, code string) (*dto.RecoveryResponse, error) {
	stored, err := uc.codes.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != code {
		return nil, domain.ErrCodeInvalid
	}
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrCodeInvalid
	}
	if err := uc.codes.Delete(ctx, email); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Email,
		jwt.KindRecovery, uc.jwtCfg.Issuer, uc.jwtCfg.RecoveryExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RecoveryResponse{RecoveryToken: token}, nil
}

// UpdatePassword fija la nueva contraseña de la cuenta. El llamador ya debe
// haber autenticado con token de recuperación o sesión activa; la igualdad
// de los dos campos de contraseña se valida en el handler.
func (uc *UseCase) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	account, err := uc.accounts.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.accounts.UpdatePassword(ctx, account.ID, string(hash), time.Now())
}

// Me devuelve la cuenta de la sesión activa.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	return toAccountResponse(account), nil
}

func (uc *UseCase) session(account *entity.Account) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Email,
		jwt.KindAccess, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, Account: *toAccountResponse(account)}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		CreatedAt: a.CreatedAt,
	}
}

// sixDigitCode genera un código decimal de 6 dígitos con crypto/rand.
func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
