package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/org-lifecycle-api/internal/dto"
	"github.com/org-lifecycle-api/internal/middleware"
	"go.uber.org/zap"
)

// Router настраивает маршруты API
type Router struct {
	engine        *gin.Engine
	logger        *zap.Logger
	deptHandler   *DepartmentHandler
	empHandler    *EmployeeHandler
	healthHandler *HealthHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	healthHandler *HealthHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		engine:        gin.New(),
		logger:        logger,
		deptHandler:   deptHandler,
		empHandler:    empHandler,
		healthHandler: healthHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.engine.HandleMethodNotAllowed = true

	r.engine.Use(
		middleware.Recoverer(r.logger),
		middleware.RequestID(),
		middleware.Logger(r.logger),
	)

	r.engine.GET("/health", r.healthHandler.Get)

	r.deptHandler.Register(r.engine.Group("/departments"))
	r.empHandler.Register(r.engine.Group("/employees"))

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	})
	r.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
	})

	return r.engine
}
