package dashboard

import (
	"errors"
	"net/http"

	"leadgen/internal/filter"
	"leadgen/internal/query"
	"leadgen/internal/state"
	"leadgen/internal/webhook"
)

// HTTPStatus maps a command error to the status code the HTTP layer
// responds with.
func HTTPStatus(err error) int {
	var vErr *query.ValidationError
	var reqErr *webhook.RequestFailedError
	var connErr *webhook.ConnectionError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &vErr), errors.Is(err, filter.ErrInvalidTierFilter):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, webhook.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &reqErr):
		return http.StatusBadGateway
	case errors.As(err, &connErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
