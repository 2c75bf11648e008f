package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mutirao/internal/cep"
	"mutirao/internal/utils"
	"mutirao/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := s.areas.Areas(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list areas")
		s.internalServerError(w, "failed to load areas")
		return
	}

	s.respondJSON(w, http.StatusOK, areas)
}

func (s *Service) handleCreateArea(w http.ResponseWriter, r *http.Request) {
	var payload types.Area
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := validateAreaInput(&payload); len(fieldErrors) > 0 {
		s.logger.WithField("field_errors", fieldErrors).Info("validation errors creating area")
		s.respondFieldErrors(w, fieldErrors)
		return
	}

	area := &types.Area{
		Name:           strings.TrimSpace(payload.Name),
		CEP:            strings.TrimSpace(payload.CEP),
		City:           trimOptional(payload.City),
		State:          trimOptional(payload.State),
		Address:        trimOptional(payload.Address),
		DisasterType:   trimOptional(payload.DisasterType),
		PriorityLevel:  payload.PriorityLevel,
		ImmediateNeeds: trimOptional(payload.ImmediateNeeds),
		Latitude:       payload.Latitude,
		Longitude:      payload.Longitude,
	}

	// Best-effort enrichment. A failed or empty lookup never blocks creation.
	if addr := s.lookup.Lookup(r.Context(), area.CEP); addr != nil {
		mergeLookup(area, addr)
	}

	if err := s.areas.CreateArea(r.Context(), area); err != nil {
		s.logger.WithError(err).Error("failed to create area")
		s.internalServerError(w, "failed to create area")
		return
	}

	s.respondJSON(w, http.StatusCreated, area)
}

func (s *Service) handleDeleteArea(w http.ResponseWriter, r *http.Request) {
	areaID := flow.Param(r.Context(), "id")

	if _, err := s.areas.Area(r.Context(), areaID); err != nil {
		if errors.Is(err, types.ErrAreaNotFound) {
			s.respondError(w, http.StatusNotFound, "area not found")
			return
		}
		s.logger.WithError(err).Error("failed to load area for deletion")
		s.internalServerError(w, "failed to delete area")
		return
	}

	// Unlink first so no volunteer or donation is left referencing the
	// deleted area.
	if err := s.volunteers.ClearArea(r.Context(), areaID); err != nil {
		s.logger.WithError(err).Error("failed to unlink volunteers from area")
		s.internalServerError(w, "failed to delete area")
		return
	}

	if err := s.donations.ClearArea(r.Context(), areaID); err != nil {
		s.logger.WithError(err).Error("failed to unlink donations from area")
		s.internalServerError(w, "failed to delete area")
		return
	}

	if err := s.areas.DeleteArea(r.Context(), areaID); err != nil {
		if errors.Is(err, types.ErrAreaNotFound) {
			s.respondError(w, http.StatusNotFound, "area not found")
			return
		}
		s.logger.WithError(err).Error("failed to delete area")
		s.internalServerError(w, "failed to delete area")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateAreaInput(payload *types.Area) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(payload.Name) == "" {
		errs["name"] = "Identification name is required."
	}

	if cep.Normalize(payload.CEP) == "" {
		errs["cep"] = "Postal code is required."
	}

	return errs
}

// mergeLookup fills address fields from directory data. User input wins when
// non-empty; only blanks are filled in.
func mergeLookup(area *types.Area, addr *cep.Address) {
	if utils.PtrString(area.City) == "" && addr.City != "" {
		area.City = utils.StringPtr(addr.City)
	}

	if utils.PtrString(area.State) == "" && addr.State != "" {
		area.State = utils.StringPtr(addr.State)
	}

	if utils.PtrString(area.Address) == "" {
		street := strings.TrimSpace(addr.Street)
		if street != "" && addr.Neighborhood != "" {
			street += ", " + addr.Neighborhood
		} else if street == "" {
			street = addr.Neighborhood
		}

		if street != "" {
			area.Address = utils.StringPtr(street)
		}
	}
}
