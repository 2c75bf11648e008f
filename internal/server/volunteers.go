package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"mutirao/pkg/types"
)

func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.volunteers.Volunteers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list volunteers")
		s.internalServerError(w, "failed to load volunteers")
		return
	}

	s.respondJSON(w, http.StatusOK, volunteers)
}

func (s *Service) handleCreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var payload types.Volunteer
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := validateVolunteerInput(&payload); len(fieldErrors) > 0 {
		s.logger.WithField("field_errors", fieldErrors).Info("validation errors creating volunteer")
		s.respondFieldErrors(w, fieldErrors)
		return
	}

	volunteer := &types.Volunteer{
		Name:   strings.TrimSpace(payload.Name),
		Phone:  trimOptional(payload.Phone),
		Email:  trimOptional(payload.Email),
		Skills: trimOptional(payload.Skills),
		AreaID: normalizeAreaID(payload.AreaID),
	}

	if err := s.volunteers.CreateVolunteer(r.Context(), volunteer); err != nil {
		s.logger.WithError(err).Error("failed to create volunteer")
		s.internalServerError(w, "failed to create volunteer")
		return
	}

	s.respondJSON(w, http.StatusCreated, volunteer)
}

func validateVolunteerInput(payload *types.Volunteer) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(payload.Name) == "" {
		errs["name"] = "Name is required."
	}

	return errs
}

// normalizeAreaID collapses absent and blank references into nil so that an
// unlinked record always carries a null areaId.
func normalizeAreaID(areaID *string) *string {
	if areaID == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*areaID)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
