package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// IndexPage is the HTML served at the site root
const IndexPage = "<h1>Code challenge</h1>"

// AppController serves the non-resource endpoints
type AppController struct {
	serviceName string
	ping        func() error
}

// NewAppController creates an AppController. ping reports database reachability.
func NewAppController(serviceName string, ping func() error) *AppController {
	return &AppController{serviceName: serviceName, ping: ping}
}

// Index serves the placeholder HTML page
func (a *AppController) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(IndexPage))
}

// Health godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (a *AppController) Health(ctx *gin.Context) {
	status, code := "healthy", http.StatusOK
	if a.ping != nil {
		if err := a.ping(); err != nil {
			requestLog(ctx).WithError(err).Warn("Database ping failed")
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	ctx.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   a.serviceName,
	})
}
