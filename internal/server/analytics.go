package server

import (
	"net/http"

	"mutirao/internal/analytics"
)

func (s *Service) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.volunteers.Volunteers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list volunteers for analytics")
		s.internalServerError(w, "failed to compute analytics")
		return
	}

	areas, err := s.areas.Areas(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list areas for analytics")
		s.internalServerError(w, "failed to compute analytics")
		return
	}

	donations, err := s.donations.Donations(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations for analytics")
		s.internalServerError(w, "failed to compute analytics")
		return
	}

	s.respondJSON(w, http.StatusOK, analytics.Report(volunteers, areas, donations))
}
