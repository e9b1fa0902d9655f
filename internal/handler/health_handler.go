package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/org-lifecycle-api/internal/health"
)

// HealthHandler отдаёт статусы зависимостей, снятые при старте
type HealthHandler struct {
	snapshot health.Snapshot
}

// NewHealthHandler создаёт хендлер с зафиксированным снимком
func NewHealthHandler(snapshot health.Snapshot) *HealthHandler {
	return &HealthHandler{snapshot: snapshot}
}

// Get всегда отвечает 200: недоступность зависимостей отражается только в статусах
func (h *HealthHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot)
}
