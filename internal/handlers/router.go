package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/services"
	"github.com/daveylupes/womantech/internal/utils"
)

const serviceName = "womantech-api"

type HandlerManager struct {
	userHandler    *UserHandler
	sessionHandler *SessionHandler
	paymentHandler *PaymentHandler
	repo           repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	repo repositories.Repository,
) *HandlerManager {
	return &HandlerManager{
		userHandler:    NewUserHandler(serviceManager.User(), logger),
		sessionHandler: NewSessionHandler(serviceManager.Session(), logger),
		paymentHandler: NewPaymentHandler(serviceManager.Payment(), logger),
		repo:           repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", hm.Root)
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", hm.userHandler.Register)
			users.GET("/me", hm.userHandler.GetCurrent)
			users.GET("/search", hm.userHandler.Search)
			users.GET("/:wallet_address", hm.userHandler.GetByWallet)
			users.PUT("/:wallet_address", hm.userHandler.UpdateProfile)
			users.DELETE("/:wallet_address", hm.userHandler.Deactivate)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("/", hm.sessionHandler.List)
		}

		payments := api.Group("/payments")
		{
			payments.GET("/", hm.paymentHandler.List)
		}
	}
}

// Root returns service metadata
func (hm *HandlerManager) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": "1.0",
		"status":  "running",
	})
}

// HealthCheck reports service and dependency health
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if hm.repo != nil {
		if err := hm.repo.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
