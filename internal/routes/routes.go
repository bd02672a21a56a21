package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/resumeforge/resumeforge-backend/internal/config"
	"github.com/resumeforge/resumeforge-backend/internal/handlers"
	"github.com/resumeforge/resumeforge-backend/internal/middleware"
	"github.com/resumeforge/resumeforge-backend/internal/ratelimit"
)

// Limiters bundles the admission gates for the three traffic profiles.
type Limiters struct {
	Standard ratelimit.Limiter
	Strict   ratelimit.Limiter
	Loose    ratelimit.Limiter
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	limiters Limiters,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	resumeHandler *handlers.ResumeHandler,
	templateHandler *handlers.TemplateHandler,
) {
	api := app.Group("/api")
	api.Use(middleware.RateLimit(limiters.Standard))

	api.Get("/health", healthHandler.Check)

	// Template catalog is public; reads are cheap, so they get the loose
	// profile on top of the standard one.
	templates := api.Group("/templates", middleware.RateLimit(limiters.Loose))
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.Get)

	// Sign-up and sign-in are the sensitive operations: stricter budget.
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(limiters.Strict), authHandler.Register)
	auth.Post("/login", middleware.RateLimit(limiters.Strict), authHandler.Login)
	auth.Get("/google", middleware.RateLimit(limiters.Strict), authHandler.GoogleAuth)
	auth.Get("/google/callback", middleware.RateLimit(limiters.Strict), authHandler.GoogleCallback)
	auth.Post("/refresh", middleware.RateLimit(limiters.Strict), authHandler.Refresh)

	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Resume CRUD (JWT required).
	resumes := api.Group("/resumes", middleware.JWTProtected(cfg))
	resumes.Post("/", resumeHandler.Create)
	resumes.Get("/", resumeHandler.List)
	resumes.Get("/:id", resumeHandler.Get)
	resumes.Put("/:id", resumeHandler.Update)
	resumes.Delete("/:id", resumeHandler.Delete)

	// Template management (JWT + admin).
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/templates", templateHandler.Create)
	admin.Put("/templates/:id", templateHandler.Update)
	admin.Delete("/templates/:id", templateHandler.Delete)
}
