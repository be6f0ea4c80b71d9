package routes

import (
	"pickmymenu-api/internal/adapters/http/handlers"
	"pickmymenu-api/internal/adapters/persistence/repositories"
	"pickmymenu-api/internal/config"
	"pickmymenu-api/internal/core/services"
	"pickmymenu-api/internal/pkg/ftpclient"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	memberRepo := repositories.NewMemberRepository(db)
	resultMenuRepo := repositories.NewResultMenuRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// File store client
	ftpClient := ftpclient.NewClient(cfg.FTP.Host, cfg.FTP.Port, cfg.FTP.User, cfg.FTP.Password)

	// Services
	memberService := services.NewMemberService(memberRepo, cfg)
	reviewService := services.NewReviewService(reviewRepo, resultMenuRepo, memberRepo, ftpClient, cfg)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	memberHandler := handlers.NewMemberHandler(memberService, cfg)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	member := api.Group("/member")
	member.Post("/join", memberHandler.Register)
	member.Post("/login", memberHandler.Login)
	member.Get("/mypage", memberHandler.GetProfile)
	member.Post("/verify-password", memberHandler.VerifyPassword)
	member.Put("/update", memberHandler.UpdateProfile)
	member.Get("/check-phone", memberHandler.CheckPhone)
	member.Get("/check-email", memberHandler.CheckEmail)

	review := api.Group("/review")
	review.Post("/", reviewHandler.Create)
	review.Get("/", reviewHandler.List)
	review.Get("/my", reviewHandler.ListMine)
	review.Get("/pending-count", reviewHandler.CountPending)
}
