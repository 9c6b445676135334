package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carhub/config"
	"carhub/internal/handler"
	"carhub/internal/middleware"
	"carhub/internal/services"
	"carhub/internal/transport/httpdto"
	"carhub/pkg/database"
	"carhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	pool       *pgxpool.Pool
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth *handler.AuthHandler
	Car  *handler.CarHandler
}

func New(cfg *config.Config, l *logger.Logger, pool *pgxpool.Pool) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		pool:   pool,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSOrigin))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.Recovery(s.logger))

	s.engine.Static("/public", "./public")
	s.engine.Static("/uploads", "./uploads")

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(s.pool); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.ErrorResponse{Success: false, Message: "unhealthy", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "healthy"})
	})

	auth := s.engine.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	cars := s.engine.Group("/api/cars", middleware.AuthMiddleware(authService))
	{
		cars.POST("", handlers.Car.AddCar)
		cars.GET("", handlers.Car.GetUserCars)
		cars.GET("/search", handlers.Car.SearchCars)
		cars.GET("/:carId", handlers.Car.GetCarDetails)
		cars.PUT("/:carId", handlers.Car.UpdateCar)
		cars.DELETE("/:carId", handlers.Car.DeleteCar)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Success: false, Message: "Route not found"})
	})
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Server is running at port: %s", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
