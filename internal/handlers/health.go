package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hospsys/patient-registry/internal/redisclient"
)

// HealthResponse reports the service and its dependencies
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	mongo *mongo.Database
	redis *redisclient.Client
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(mongoDB *mongo.Database, redis *redisclient.Client) *HealthHandler {
	return &HealthHandler{mongo: mongoDB, redis: redis}
}

// Health godoc
// @Summary Verificar saúde do serviço
// @Description Verifica a disponibilidade do serviço e de suas dependências
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	resp := HealthResponse{
		Status:   "healthy",
		Services: map[string]string{},
	}

	if h.mongo != nil {
		if err := h.mongo.Client().Ping(ctx, readpref.Primary()); err != nil {
			resp.Services["mongodb"] = "unhealthy"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			resp.Services["mongodb"] = "healthy"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			resp.Services["redis"] = "unhealthy"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			resp.Services["redis"] = "healthy"
		}
	}

	c.JSON(status, resp)
}
