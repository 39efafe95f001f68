package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status       string            `json:"status"`
	Time         string            `json:"time"`
	Version      string            `json:"version,omitempty"`
	Phrases      int               `json:"phrases"`
	Difficulties map[string]int    `json:"difficulties"`
	Checks       map[string]string `json:"checks"`
}

type HealthController struct {
	catalog CatalogInfo
	version string
}

func NewHealthController(catalog CatalogInfo, version string) *HealthController {
	return &HealthController{
		catalog: catalog,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	difficulties := make(map[string]int)
	status := "healthy"
	phrases := 0

	// The catalog is loaded before the router exists; nil only happens in tests
	if h.catalog == nil {
		checks["catalog"] = "not loaded"
		status = "unhealthy"
	} else {
		phrases = h.catalog.Len()
		for _, d := range h.catalog.Difficulties() {
			difficulties[d.Difficulty] = d.Count
		}
		if phrases == 0 {
			checks["catalog"] = "empty"
		} else {
			checks["catalog"] = "ok"
		}
	}

	health := HealthResponse{
		Status:       status,
		Time:         time.Now().Format(time.RFC3339),
		Version:      h.version,
		Phrases:      phrases,
		Difficulties: difficulties,
		Checks:       checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
