package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mutirao/internal/cep"
	"mutirao/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// Store interfaces are declared here, on the consumer side. The concrete
// implementations live in internal/store; tests substitute in-memory fakes.

type VolunteerStore interface {
	Volunteers(ctx context.Context) ([]*types.Volunteer, error)
	CreateVolunteer(ctx context.Context, volunteer *types.Volunteer) error
	ClearArea(ctx context.Context, areaID string) error
}

type AreaStore interface {
	Areas(ctx context.Context) ([]*types.Area, error)
	Area(ctx context.Context, areaID string) (*types.Area, error)
	CreateArea(ctx context.Context, area *types.Area) error
	DeleteArea(ctx context.Context, areaID string) error
}

type DonationStore interface {
	Donations(ctx context.Context) ([]*types.Donation, error)
	CreateDonation(ctx context.Context, donation *types.Donation) error
	ClearArea(ctx context.Context, areaID string) error
}

// PostalLookup is the best-effort address enrichment used on area creation.
// A nil result means "no data"; implementations never return errors.
type PostalLookup interface {
	Lookup(ctx context.Context, raw string) *cep.Address
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	volunteers VolunteerStore
	areas      AreaStore
	donations  DonationStore
	lookup     PostalLookup

	now func() time.Time

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	volunteers VolunteerStore,
	areas AreaStore,
	donations DonationStore,
	lookup PostalLookup,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		volunteers: volunteers,
		areas:      areas,
		donations:  donations,
		lookup:     lookup,

		now: time.Now,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed mux for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/voluntario", s.handleListVolunteers, http.MethodGet)
	r.HandleFunc("/api/voluntario", s.handleCreateVolunteer, http.MethodPost)

	r.HandleFunc("/api/regiao-afetada", s.handleListAreas, http.MethodGet)
	r.HandleFunc("/api/regiao-afetada", s.handleCreateArea, http.MethodPost)
	r.HandleFunc("/api/regiao-afetada/:id", s.handleDeleteArea, http.MethodDelete)

	r.HandleFunc("/api/doacao", s.handleListDonations, http.MethodGet)
	r.HandleFunc("/api/doacao", s.handleCreateDonation, http.MethodPost)

	r.HandleFunc("/api/analytics", s.handleAnalytics, http.MethodGet)

	r.HandleFunc("/api/export/csv", s.handleExportCSV, http.MethodGet)
	r.HandleFunc("/api/export/pdf", s.handleExportPDF, http.MethodGet)

	r.HandleFunc("/api/cep/:cep", s.handleLookupCEP, http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
