package http

import (
	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
)

// ToSessionStateDTO converts a session snapshot to its API representation.
func ToSessionStateDTO(s locationsearch.State) SessionStateDTO {
	return SessionStateDTO{
		OriginText:          s.OriginText,
		DestinationText:     s.DestinationText,
		ActiveField:         s.ActiveField.String(),
		IsLoading:           s.IsLoading,
		ErrorMessage:        s.ErrorMessage,
		Results:             ToAirportDTOs(s.Results),
		SelectedOrigin:      toAirportDTOPtr(s.SelectedOrigin),
		SelectedDestination: toAirportDTOPtr(s.SelectedDestination),
		CanCreateAlert:      s.CanCreateAlert,
	}
}

// ToSessionResponse builds the response for a session.
func ToSessionResponse(id string, s locationsearch.State) SessionResponse {
	return SessionResponse{
		ID:    id,
		State: ToSessionStateDTO(s),
	}
}

// ToAlertsResponse builds the response of the alert list.
func ToAlertsResponse(alerts []domain.PriceAlert, minDropPercent float64) AlertsResponse {
	dtos := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		dtos = append(dtos, ToAlertDTO(a))
	}
	return AlertsResponse{
		MinDropPercent: minDropPercent,
		Count:          len(dtos),
		Alerts:         dtos,
	}
}

// resolveAirport finds code in the session's current results, then in the
// popular airports shown before the user types.
func resolveAirport(results []domain.Airport, code string) (domain.Airport, bool) {
	if a, ok := domain.FindAirport(results, code); ok {
		return a, true
	}
	return domain.FindAirport(domain.PopularAirports(), code)
}
