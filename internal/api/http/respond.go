package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"
	"ecowaste-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error    string `json:"error"`
	Balance  *int32 `json:"balance,omitempty"`
	Required *int32 `json:"required,omitempty"`
}

// writeError maps domain failures onto HTTP statuses. Storage-level failures
// default to 500; thanks to the idempotency guards the caller may retry the
// whole request.
func writeError(w http.ResponseWriter, err error) {
	var insufficient *service.InsufficientPointsError
	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    insufficient.Error(),
			Balance:  &insufficient.Balance,
			Required: &insufficient.Required,
		})
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCollectionNotFound),
		errors.Is(err, repository.ErrReportNotFound),
		errors.Is(err, repository.ErrRewardNotFound),
		errors.Is(err, repository.ErrNotificationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrRedemptionConflict):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
