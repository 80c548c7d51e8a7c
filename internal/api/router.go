package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/matchpoint/dating-api/docs"
	"github.com/matchpoint/dating-api/internal/api/handler"
	"github.com/matchpoint/dating-api/internal/api/middleware"
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Auth    ports.AuthService
	Users   ports.UserService
	Matches ports.MatchService
	Ratings ports.RatingService

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("matchpoint"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users, deps.Auth)
	profileHandler := handler.NewProfileHandler(deps.Users)
	matchHandler := handler.NewMatchHandler(deps.Matches)
	ratingHandler := handler.NewRatingHandler(deps.Ratings)

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Root banner ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Matchpoint backend is running")
	})

	// --- Public API ---
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/authenticate", authHandler.Authenticate)
	e.GET("/api/users/:id", userHandler.Get)
	e.POST("/api/users/:id/profile", profileHandler.Save)
	e.GET("/api/users/:id/profile", profileHandler.Get)
	e.GET("/api/matches/:id", matchHandler.Get)
	e.POST("/api/rate", ratingHandler.Submit)

	// --- Authenticated API ---
	knownRoles := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)
	e.GET("/api/users", userHandler.List, authMiddleware, knownRoles)
	e.PUT("/api/users/:id", userHandler.Update, authMiddleware, knownRoles)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
