package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/org-lifecycle-api/internal/domain"
	"github.com/org-lifecycle-api/internal/dto"
	"github.com/org-lifecycle-api/internal/service"
	"go.uber.org/zap"
)

// EntityHandler обслуживает HTTP-операции жизненного цикла одной сущности.
// R - тип тела запроса на создание и замену.
type EntityHandler[T any, R service.Input[T]] struct {
	entity    string
	service   service.EntityService[T]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEntityHandler создаёт хендлер; entity используется в ответах-подтверждениях
func NewEntityHandler[T any, R service.Input[T]](
	entity string,
	svc service.EntityService[T],
	validate *validator.Validate,
	logger *zap.Logger,
) *EntityHandler[T, R] {
	return &EntityHandler[T, R]{
		entity:    entity,
		service:   svc,
		validator: validate,
		logger:    logger,
	}
}

// DepartmentHandler обслуживает /departments
type DepartmentHandler = EntityHandler[domain.Department, dto.DepartmentRequest]

// NewDepartmentHandler создаёт хендлер подразделений
func NewDepartmentHandler(svc service.DepartmentService, validate *validator.Validate, logger *zap.Logger) *DepartmentHandler {
	return NewEntityHandler[domain.Department, dto.DepartmentRequest]("Department", svc, validate, logger)
}

// EmployeeHandler обслуживает /employees
type EmployeeHandler = EntityHandler[domain.Employee, dto.EmployeeRequest]

// NewEmployeeHandler создаёт хендлер сотрудников
func NewEmployeeHandler(svc service.EmployeeService, validate *validator.Validate, logger *zap.Logger) *EmployeeHandler {
	return NewEntityHandler[domain.Employee, dto.EmployeeRequest]("Employee", svc, validate, logger)
}

// Register регистрирует маршруты сущности в группе
func (h *EntityHandler[T, R]) Register(g *gin.RouterGroup) {
	g.GET("/", h.List)
	g.GET("/soft-deleted", h.ListDeleted)
	g.GET("/:id", h.GetByID)
	g.POST("/", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id/soft", h.SoftDelete)
	g.DELETE("/:id/hard", h.HardDelete)
	g.POST("/:id/restore", h.Restore)
}

func (h *EntityHandler[T, R]) List(c *gin.Context) {
	records, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *EntityHandler[T, R]) ListDeleted(c *gin.Context) {
	records, err := h.service.ListDeleted(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *EntityHandler[T, R]) GetByID(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}

	rec, err := h.service.GetActive(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *EntityHandler[T, R]) Create(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	rec, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *EntityHandler[T, R]) Update(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	rec, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *EntityHandler[T, R]) SoftDelete(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.entity + " soft deleted"})
}

func (h *EntityHandler[T, R]) HardDelete(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}

	if err := h.service.HardDelete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.entity + " permanently deleted"})
}

func (h *EntityHandler[T, R]) Restore(c *gin.Context) {
	id, ok := h.extractID(c)
	if !ok {
		return
	}

	if err := h.service.Restore(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.entity + " restored"})
}

// extractID разбирает :id; нечисловой идентификатор - ошибка схемы, как и невалидное тело
func (h *EntityHandler[T, R]) extractID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid "+strings.ToLower(h.entity)+" id", err.Error())
		return 0, false
	}
	return id, true
}

// bindRequest декодирует и валидирует тело до вызова сервиса
func (h *EntityHandler[T, R]) bindRequest(c *gin.Context) (R, bool) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid request body", err.Error())
		return req, false
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation error", err.Error())
		return req, false
	}

	return req, true
}

func (h *EntityHandler[T, R]) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrCannotBeDeleted):
		respondError(c, http.StatusBadRequest, err.Error(), "")
	default:
		h.logger.Error("internal error",
			zap.String("entity", h.entity),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "internal server error", "")
	}
}

func respondError(c *gin.Context, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	c.AbortWithStatusJSON(status, resp)
}
