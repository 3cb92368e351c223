// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storageHealthChecker func() bool
	storageDriver        string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Driver    string `json:"driver"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storageDriver string, storageHealthChecker func() bool) *HealthController {
	return &HealthController{
		storageHealthChecker: storageHealthChecker,
		storageDriver:        storageDriver,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage.
func (h *HealthController) Check(c *gin.Context) {
	storageStatus := "disconnected"
	if h.storageHealthChecker != nil && h.storageHealthChecker() {
		storageStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Storage:   storageStatus,
		Driver:    h.storageDriver,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
