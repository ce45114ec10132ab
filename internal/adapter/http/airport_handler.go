package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-alert/flight-alert-service/internal/adapter/http/response"
	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// SearchAirports handles GET /api/v1/airports
//
// @Summary Search airports
// @Description Performs one search against the upstream airport API. An empty query returns the popular airports.
// @Tags airports
// @Produce json
// @Param q query string false "Search text, e.g. city, airport name, or IATA code"
// @Param limit query int false "Page size (1-100)" default(10)
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} AirportsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream unreachable or returned an unknown format"
// @Failure 504 {object} response.ErrorDetail "Upstream timed out"
// @Router /airports [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	var req AirportSearchRequest

	err := echo.QueryParamsBinder(c).
		String("q", &req.Query).
		Int("limit", &req.Limit).
		Int("page", &req.Page).
		BindError()
	if err != nil {
		return response.BadRequest(c, "limit and page must be integers")
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	if req.Query == "" {
		popular := domain.PopularAirports()
		return response.OK(c, AirportsResponse{
			Count:    len(popular),
			Popular:  true,
			Airports: ToAirportDTOs(popular),
		})
	}

	airports, err := h.searcher.Search(c.Request().Context(), req.ToParams())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, AirportsResponse{
		Query:    req.Query,
		Count:    len(airports),
		Airports: ToAirportDTOs(airports),
	})
}
