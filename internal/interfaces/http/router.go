package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/investarise/summit-api/internal/application/admins"
	"github.com/investarise/summit-api/internal/application/auth"
	"github.com/investarise/summit-api/internal/application/directory"
	"github.com/investarise/summit-api/internal/application/export"
	"github.com/investarise/summit-api/internal/application/visitors"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	DirectoryUC *directory.UseCase
	VisitorsUC  *visitors.UseCase
	ExportUC    *export.UseCase
	AdminSvc    *admins.Service
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/verify-code", authHandler.VerifyCode)

	// update-password acepta token de recuperación o sesión activa;
	// el resto de rutas autenticadas exige token de sesión.
	authGroup.Post("/update-password", AuthMiddleware(deps.JWTSecret), authHandler.UpdatePassword)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), RequireAccess(), authHandler.Me)

	// Panel admin (sesión + fila en tabla admins)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireAccess(),
		RequireAdmin(deps.AdminSvc),
	)

	users := admin.Group("/users")
	usersHandler := NewUsersHandler(deps.DirectoryUC, deps.ExportUC)
	users.Get("/", usersHandler.List)
	users.Get("/export", usersHandler.Export)

	visitorsGroup := admin.Group("/visitors")
	visitorsHandler := NewVisitorsHandler(deps.VisitorsUC, deps.ExportUC)
	visitorsGroup.Get("/", visitorsHandler.List)
	visitorsGroup.Get("/export", visitorsHandler.Export)
	visitorsGroup.Put("/:id", visitorsHandler.Update)
	visitorsGroup.Delete("/:id", visitorsHandler.Delete)
	visitorsGroup.Post("/:id/approve", visitorsHandler.ApprovePayment)
	visitorsGroup.Get("/:id/ticket", visitorsHandler.Ticket)
}
