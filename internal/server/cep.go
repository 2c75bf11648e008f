package server

import (
	"net/http"

	"github.com/alexedwards/flow"
)

// handleLookupCEP exposes the postal directory to the dashboard's area form.
// Lookup never errors, so the only outcomes are data or not-found.
func (s *Service) handleLookupCEP(w http.ResponseWriter, r *http.Request) {
	raw := flow.Param(r.Context(), "cep")

	addr := s.lookup.Lookup(r.Context(), raw)
	if addr == nil {
		s.respondError(w, http.StatusNotFound, "cep not found")
		return
	}

	s.respondJSON(w, http.StatusOK, addr)
}
