package server

import (
	"fmt"
	"net/http"

	"mutirao/internal/export"
	"mutirao/pkg/types"
)

type exportQuery struct {
	Kind string `form:"kind"`
}

func (s *Service) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	kind, snapshot, ok := s.exportInput(w, r)
	if !ok {
		return
	}

	data, err := export.CSV(kind, snapshot.volunteers, snapshot.areas, snapshot.donations)
	if err != nil {
		s.logger.WithError(err).Error("failed to serialize csv export")
		s.internalServerError(w, "failed to generate export")
		return
	}

	s.sendAttachment(w, data, "text/csv; charset=utf-8", export.Filename(kind, "csv", s.now()))
}

func (s *Service) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	kind, snapshot, ok := s.exportInput(w, r)
	if !ok {
		return
	}

	data, err := export.PDF(kind, snapshot.volunteers, snapshot.areas, snapshot.donations)
	if err != nil {
		s.logger.WithError(err).Error("failed to serialize pdf export")
		s.internalServerError(w, "failed to generate export")
		return
	}

	s.sendAttachment(w, data, "application/pdf", export.Filename(kind, "pdf", s.now()))
}

type collectionSnapshot struct {
	volunteers []*types.Volunteer
	areas      []*types.Area
	donations  []*types.Donation
}

// exportInput parses the kind selector and fetches the full snapshot the
// serializers operate on. Responds and returns ok=false on any failure.
func (s *Service) exportInput(w http.ResponseWriter, r *http.Request) (export.Kind, collectionSnapshot, bool) {
	var q exportQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return "", collectionSnapshot{}, false
	}

	kind, err := export.ParseKind(q.Kind)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "unknown export kind")
		return "", collectionSnapshot{}, false
	}

	var snapshot collectionSnapshot

	if snapshot.volunteers, err = s.volunteers.Volunteers(r.Context()); err != nil {
		s.logger.WithError(err).Error("failed to list volunteers for export")
		s.internalServerError(w, "failed to generate export")
		return "", collectionSnapshot{}, false
	}

	if snapshot.areas, err = s.areas.Areas(r.Context()); err != nil {
		s.logger.WithError(err).Error("failed to list areas for export")
		s.internalServerError(w, "failed to generate export")
		return "", collectionSnapshot{}, false
	}

	if snapshot.donations, err = s.donations.Donations(r.Context()); err != nil {
		s.logger.WithError(err).Error("failed to list donations for export")
		s.internalServerError(w, "failed to generate export")
		return "", collectionSnapshot{}, false
	}

	return kind, snapshot, true
}

func (s *Service) sendAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		s.logger.WithError(err).Error("failed to write export body")
	}
}
