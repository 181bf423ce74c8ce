package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIRoutes(r, services)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	api := r.Group("/api")

	registerRatesRoutes(api, services.Rates, services.Sync, services.History)
	registerCalculatorRoutes(api, services.Conversion)
	registerCountriesRoutes(api, services.Countries)
}
