package middleware

import "github.com/gin-gonic/gin"

// TracingHeaders echoes the gateway tracing headers back on every response.
// X-Request-ID is echoed as received (or "N/A" when absent) and X-API-Version
// defaults to "1.0".
func TracingHeaders(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = "N/A"
	}
	c.Header("X-Request-ID", requestID)

	apiVersion := c.GetHeader("X-API-Version")
	if apiVersion == "" {
		apiVersion = "1.0"
	}
	c.Header("X-API-Version", apiVersion)

	c.Next()
}
