package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
)

// countriesHandler serves the currency -> country mapping used for flags.
type countriesHandler struct {
	countryService portssvc.CountrySvcFacade
}

// newCountriesHandler creates a new countriesHandler.
func newCountriesHandler(cs portssvc.CountrySvcFacade) *countriesHandler {
	return &countriesHandler{countryService: cs}
}

// registerCountriesRoutes registers the currency-country mapping route.
func registerCountriesRoutes(rg *gin.RouterGroup, cs portssvc.CountrySvcFacade) {
	h := newCountriesHandler(cs)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("/countries", h.listCountries)
	}
}

// listCountries returns the full currency -> country-code mapping.
func (h *countriesHandler) listCountries(c *gin.Context) {
	countries, err := h.countryService.Countries(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}
