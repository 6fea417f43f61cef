package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/station-microservice/internal/config"
	"github.com/station-microservice/internal/delivery/http/handler"
	"github.com/station-microservice/internal/delivery/http/middleware"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase/dto"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthChecker - хранилище, состояние которого видно в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers - обработчики API
type Handlers struct {
	Station   *handler.StationHandler
	Line      *handler.LineHandler
	TrainType *handler.TrainTypeHandler
	Path      *handler.PathHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers

	// health - проверки по имени сервиса; nil-проверка означает, что сервис выключен
	health map[string]HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	health map[string]HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Station API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		health:   health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.healthCheck)

	api := s.app.Group("/api/v1")
	api.Use(middleware.NewRateLimiter(s.config.RateLimit.RPS, s.config.RateLimit.Burst).Handler())

	// Stations: статические пути регистрируются раньше /:id
	api.Get("/stations", s.handlers.Station.GetStations)
	api.Get("/stations/nearby", s.handlers.Station.GetNearbyStations)
	api.Get("/stations/search", s.handlers.Station.SearchStations)
	api.Get("/stations/random", s.handlers.Station.GetRandomStation)
	api.Get("/stations/:id", s.handlers.Station.GetStation)
	api.Get("/stations/:id/train-types", s.handlers.TrainType.GetTrainTypesByStation)

	// Station groups
	api.Get("/station-groups/:id/station", s.handlers.Station.GetStationByGroup)
	api.Get("/station-groups/:id/stations", s.handlers.Station.GetStationsByGroup)
	api.Get("/station-groups/:id/lines", s.handlers.Line.GetLinesByGroup)

	// Lines
	api.Get("/lines/:id", s.handlers.Line.GetLine)
	api.Get("/lines/:id/stations", s.handlers.Station.GetStationsByLine)
	api.Get("/companies/:id/lines", s.handlers.Line.GetLinesByCompany)

	// Train types
	api.Get("/train-types/:line_group_id", s.handlers.TrainType.GetTrainType)

	// Path
	api.Get("/path", s.handlers.Path.FindPath)
}

// healthCheck godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(s.health)),
	}
	status := fiber.StatusOK

	for name, checker := range s.health {
		if checker == nil {
			resp.Services[name] = "disabled"
			continue
		}
		if err := checker.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unhealthy"
			resp.Status = "unhealthy"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Services[name] = "healthy"
	}

	return c.Status(status).JSON(resp)
}

// App - доступ к fiber.App для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в handler'ах (404 маршрута, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound:
				return utils.SendError(c, errors.ErrNotFound)
			case fe.Code < fiber.StatusInternalServerError:
				return utils.SendError(c, errors.New(errors.ErrInvalidRequest.Code, fe.Message, fe.Code))
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
