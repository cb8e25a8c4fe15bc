// seed da de alta administradores del panel: crea la cuenta si no existe
// (con una contraseña inicial) y la inserta en la tabla admins.
//
// Uso: go run ./cmd/seed -email admin@investarise.com -password <inicial> [-name "Admin"]
// Lee la conexión de las mismas variables de entorno que la API (DATABASE_URL, etc.).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/investarise/summit-api/internal/domain/entity"
	"github.com/investarise/summit-api/internal/infrastructure/postgres"
	"github.com/investarise/summit-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "contraseña inicial (solo si la cuenta no existe)")
	name := flag.String("name", "Admin", "nombre para mostrar")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "falta -email")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	accounts := postgres.NewAccountRepository(pool)
	adminsRepo := postgres.NewAdminRepository(pool)

	account, err := accounts.GetByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar cuenta: %v\n", err)
		os.Exit(1)
	}

	if account == nil {
		if *password == "" {
			fmt.Fprintln(os.Stderr, "la cuenta no existe: falta -password para crearla")
			os.Exit(1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		account = &entity.Account{
			ID:           uuid.New().String(),
			Email:        *email,
			PasswordHash: string(hash),
			FullName:     *name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := accounts.Create(ctx, account); err != nil {
			fmt.Fprintf(os.Stderr, "crear cuenta: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("cuenta creada: %s\n", account.ID)
	}

	admin := &entity.Admin{
		UserID:    account.ID,
		Email:     account.Email,
		CreatedAt: time.Now(),
	}
	if err := adminsRepo.Create(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "insertar admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin habilitado: %s (%s)\n", account.Email, account.ID)
}
