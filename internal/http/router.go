// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fernweh/internal/http/handlers"
	"fernweh/internal/http/middleware"
	"fernweh/internal/modules/plan"
)

func NewRouter(planSvc *plan.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(planSvc)
	r.POST("/api/plan", planHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
