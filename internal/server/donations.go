package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"mutirao/pkg/types"
)

func (s *Service) handleListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := s.donations.Donations(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.internalServerError(w, "failed to load donations")
		return
	}

	s.respondJSON(w, http.StatusOK, donations)
}

func (s *Service) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var payload types.Donation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := validateDonationInput(&payload); len(fieldErrors) > 0 {
		s.logger.WithField("field_errors", fieldErrors).Info("validation errors creating donation")
		s.respondFieldErrors(w, fieldErrors)
		return
	}

	donation := &types.Donation{
		Description: strings.TrimSpace(payload.Description),
		Quantity:    payload.Quantity,
		AreaID:      normalizeAreaID(payload.AreaID),
	}

	if err := s.donations.CreateDonation(r.Context(), donation); err != nil {
		s.logger.WithError(err).Error("failed to create donation")
		s.internalServerError(w, "failed to create donation")
		return
	}

	s.respondJSON(w, http.StatusCreated, donation)
}

func validateDonationInput(payload *types.Donation) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(payload.Description) == "" {
		errs["description"] = "Description is required."
	}

	if payload.Quantity <= 0 {
		errs["quantity"] = "Quantity must be greater than zero."
	}

	return errs
}
