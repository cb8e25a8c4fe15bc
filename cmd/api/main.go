package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/investarise/summit-api/internal/application/admins"
	"github.com/investarise/summit-api/internal/application/auth"
	"github.com/investarise/summit-api/internal/application/directory"
	"github.com/investarise/summit-api/internal/application/export"
	"github.com/investarise/summit-api/internal/application/visitors"
	"github.com/investarise/summit-api/internal/infrastructure/excel"
	"github.com/investarise/summit-api/internal/infrastructure/mail"
	infrapdf "github.com/investarise/summit-api/internal/infrastructure/pdf"
	"github.com/investarise/summit-api/internal/infrastructure/postgres"
	"github.com/investarise/summit-api/internal/infrastructure/redisstore"
	httpRouter "github.com/investarise/summit-api/internal/interfaces/http"
	"github.com/investarise/summit-api/pkg/config"
	"github.com/investarise/summit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	profileRepo := postgres.NewUserProfileRepository(pool)
	visitorRepo := postgres.NewVisitorRepository(pool)

	codeStore := redisstore.NewCodeStore(redisClient)
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	ticketPDF := infrapdf.NewMarotoTicketGenerator()
	workbookWriter := excel.NewExcelizeWriter()

	authUC := auth.NewUseCase(accountRepo, codeStore, mailer,
		auth.JWTConfig{
			Secret:             cfg.JWT.Secret,
			ExpMinutes:         cfg.JWT.ExpMinutes,
			RecoveryExpMinutes: cfg.JWT.RecoveryExpMinutes,
			Issuer:             cfg.JWT.Issuer,
		},
		auth.ResetConfig{
			RedirectURL: cfg.Reset.RedirectURL,
			CodeTTL:     time.Duration(cfg.Reset.CodeTTLMinutes) * time.Minute,
		},
		log,
	)
	directoryUC := directory.NewUseCase(profileRepo, log)
	visitorsUC := visitors.NewUseCase(visitorRepo, ticketPDF, log)
	exportUC := export.NewUseCase(workbookWriter)
	adminSvc := admins.NewService(adminRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Investarise API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DirectoryUC: directoryUC,
		VisitorsUC:  visitorsUC,
		ExportUC:    exportUC,
		AdminSvc:    adminSvc,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
