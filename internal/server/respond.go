package server

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

func (s *Service) respondFieldErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	s.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:       "Please fix the highlighted fields.",
		FieldErrors: fieldErrors,
	})
}

func (s *Service) internalServerError(w http.ResponseWriter, message string) {
	s.respondError(w, http.StatusInternalServerError, message)
}
