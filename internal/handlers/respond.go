package handlers

import (
	"encoding/json"
	"net/http"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: models.APIError{
				Code:      "VALIDATION_ERROR",
				Message:   "Validation failed",
				Fields:    e.Fields,
				RequestID: r.Header.Get("X-Request-ID"),
			},
		})
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.GenerationError:
		writeJSON(w, http.StatusBadGateway, errorResp("AI_ERROR", "Failed to get AI response", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
