package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-alert/flight-alert-service/internal/adapter/http/response"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
)

// CreateSession handles POST /api/v1/sessions
//
// @Summary Start a search session
// @Description Creates an origin/destination search session with the origin field active.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(c echo.Context) error {
	id, ctrl := h.sessions.Create()
	return response.Created(c, ToSessionResponse(id, ctrl.State()))
}

// GetSession handles GET /api/v1/sessions/{id}
//
// @Summary Get session state
// @Description Returns the texts, active field, loading flag, error message, results, and selections of a session.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(c echo.Context) error {
	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		return response.OK(c, ToSessionResponse(id, ctrl.State()))
	})
}

// UpdateFieldText handles PUT /api/v1/sessions/{id}/fields/{field}
//
// @Summary Edit a field
// @Description Stores new text for the field. A search of the active field runs after the debounce window.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param field path string true "origin or destination"
// @Param request body UpdateTextRequest true "New text"
// @Success 202 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/fields/{field} [put]
func (h *Handler) UpdateFieldText(c echo.Context) error {
	field, err := parseFieldParam(c.Param("field"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req UpdateTextRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		if err := ctrl.OnTextChanged(field, req.Text); err != nil {
			return h.handleError(c, err)
		}
		return response.Accepted(c, ToSessionResponse(id, ctrl.State()))
	})
}

// ClearFieldText handles DELETE /api/v1/sessions/{id}/fields/{field}
//
// @Summary Clear a field
// @Description Empties the field text, clears its selection, and clears the results.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param field path string true "origin or destination"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/fields/{field} [delete]
func (h *Handler) ClearFieldText(c echo.Context) error {
	field, err := parseFieldParam(c.Param("field"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		if err := ctrl.ClearField(field); err != nil {
			return h.handleError(c, err)
		}
		return response.OK(c, ToSessionResponse(id, ctrl.State()))
	})
}

// SetActiveField handles PUT /api/v1/sessions/{id}/active
//
// @Summary Switch the active field
// @Description Makes the field active. Existing text is searched immediately; empty text clears the results.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetActiveFieldRequest true "Field to activate"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/active [put]
func (h *Handler) SetActiveField(c echo.Context) error {
	var req SetActiveFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	field, err := req.Validate()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		if err := ctrl.SetActiveField(field); err != nil {
			return h.handleError(c, err)
		}
		return response.OK(c, ToSessionResponse(id, ctrl.State()))
	})
}

// RefreshSession handles POST /api/v1/sessions/{id}/refresh
//
// @Summary Retry the search
// @Description Searches the active field's current text again, without waiting for the debounce window.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} SessionResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/refresh [post]
func (h *Handler) RefreshSession(c echo.Context) error {
	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		if err := ctrl.Refresh(); err != nil {
			return h.handleError(c, err)
		}
		return response.Accepted(c, ToSessionResponse(id, ctrl.State()))
	})
}

// SelectAirport handles POST /api/v1/sessions/{id}/selection
//
// @Summary Select an airport
// @Description Assigns an airport from the current results (or the popular list) to the active field.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectAirportRequest true "Airport to select"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session or airport not found"
// @Router /sessions/{id}/selection [post]
func (h *Handler) SelectAirport(c echo.Context) error {
	var req SelectAirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		airport, ok := resolveAirport(ctrl.State().Results, req.IATACode)
		if !ok {
			return response.NotFound(c, MsgAirportNotInResults)
		}
		if err := ctrl.SelectAirport(airport); err != nil {
			return h.handleError(c, err)
		}
		return response.OK(c, ToSessionResponse(id, ctrl.State()))
	})
}

// CreateSessionAlert handles POST /api/v1/sessions/{id}/alerts
//
// @Summary Create a price alert
// @Description Creates a price alert for the session's selected origin and destination.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} AlertDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Origin or destination not selected"
// @Router /sessions/{id}/alerts [post]
func (h *Handler) CreateSessionAlert(c echo.Context) error {
	return h.withSession(c, func(id string, ctrl *locationsearch.Controller) error {
		origin, destination, err := ctrl.Selection()
		if err != nil {
			return h.handleError(c, err)
		}

		alert, err := h.alerts.Create(c.Request().Context(), origin, destination)
		if err != nil {
			return h.handleError(c, err)
		}
		return response.Created(c, ToAlertDTO(alert))
	})
}

// DeleteSession handles DELETE /api/v1/sessions/{id}
//
// @Summary End a search session
// @Description Cancels pending work of the session and discards it.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(c echo.Context) error {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// withSession resolves the {id} path parameter and calls fn with its controller.
func (h *Handler) withSession(c echo.Context, fn func(id string, ctrl *locationsearch.Controller) error) error {
	id := c.Param("id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		return h.handleError(c, err)
	}
	return fn(id, ctrl)
}
