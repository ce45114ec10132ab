package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-alert/flight-alert-service/internal/adapter/http/response"
)

// ListAlerts handles GET /api/v1/alerts
//
// @Summary List price drop alerts
// @Description Returns alerts whose fare dropped by at least minDropPercent, newest first. Alerts with no observed fare yet (priced=false) are always listed.
// @Tags alerts
// @Produce json
// @Param minDropPercent query number false "Minimum drop in percent (0-100)" default(30)
// @Success 200 {object} AlertsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /alerts [get]
func (h *Handler) ListAlerts(c echo.Context) error {
	minDrop, err := parseMinDropPercent(c.QueryParam("minDropPercent"), h.minDropPercent)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	alerts, err := h.alerts.List(c.Request().Context(), minDrop)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToAlertsResponse(alerts, minDrop))
}

// GetAlert handles GET /api/v1/alerts/{id}
//
// @Summary Get a price alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertDTO
// @Failure 404 {object} response.ErrorDetail "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) GetAlert(c echo.Context) error {
	alert, err := h.alerts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToAlertDTO(alert))
}

// DeleteAlert handles DELETE /api/v1/alerts/{id}
//
// @Summary Delete a price alert
// @Tags alerts
// @Param id path string true "Alert ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Alert not found"
// @Router /alerts/{id} [delete]
func (h *Handler) DeleteAlert(c echo.Context) error {
	if err := h.alerts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}
