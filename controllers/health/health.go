package healthcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "Demo REST API"
	version     = "1.0.0"
)

// HealthCheck reports whether the API is up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   serviceName,
		"version":   version,
		"timestamp": time.Now(),
	})
}

// Info describes the API and its main endpoints.
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        serviceName,
		"description": "Demo REST API for API gateway integration",
		"version":     version,
		"endpoints": []string{
			"GET /api/v1/products",
			"GET /api/v1/products/:id",
			"POST /api/v1/products",
			"PUT /api/v1/products/:id",
			"DELETE /api/v1/products/:id",
			"GET /api/v1/users",
			"GET /api/v1/users/:id",
			"POST /api/v1/users",
			"PUT /api/v1/users/:id",
			"DELETE /api/v1/users/:id",
			"GET /api/v1/orders",
			"GET /api/v1/orders/:id",
			"POST /api/v1/orders",
			"PUT /api/v1/orders/:id",
			"DELETE /api/v1/orders/:id",
		},
	})
}
