package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mutirao/internal/cep"
	"mutirao/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVolunteerStore struct {
	volunteers []*types.Volunteer
	err        error
}

func (f *fakeVolunteerStore) Volunteers(ctx context.Context) ([]*types.Volunteer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.volunteers, nil
}

func (f *fakeVolunteerStore) CreateVolunteer(ctx context.Context, volunteer *types.Volunteer) error {
	if f.err != nil {
		return f.err
	}
	volunteer.ID = fmt.Sprintf("v_%d", len(f.volunteers)+1)
	volunteer.CreatedAt = time.Now()
	volunteer.UpdatedAt = volunteer.CreatedAt
	f.volunteers = append([]*types.Volunteer{volunteer}, f.volunteers...)
	return nil
}

func (f *fakeVolunteerStore) ClearArea(ctx context.Context, areaID string) error {
	if f.err != nil {
		return f.err
	}
	for _, v := range f.volunteers {
		if v.AreaID != nil && *v.AreaID == areaID {
			v.AreaID = nil
		}
	}
	return nil
}

type fakeAreaStore struct {
	areas []*types.Area
	err   error
}

func (f *fakeAreaStore) Areas(ctx context.Context) ([]*types.Area, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.areas, nil
}

func (f *fakeAreaStore) Area(ctx context.Context, areaID string) (*types.Area, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.areas {
		if a.ID == areaID {
			return a, nil
		}
	}
	return nil, types.ErrAreaNotFound
}

func (f *fakeAreaStore) CreateArea(ctx context.Context, area *types.Area) error {
	if f.err != nil {
		return f.err
	}
	area.ID = fmt.Sprintf("a_%d", len(f.areas)+1)
	area.CreatedAt = time.Now()
	area.UpdatedAt = area.CreatedAt
	f.areas = append([]*types.Area{area}, f.areas...)
	return nil
}

func (f *fakeAreaStore) DeleteArea(ctx context.Context, areaID string) error {
	if f.err != nil {
		return f.err
	}
	for i, a := range f.areas {
		if a.ID == areaID {
			f.areas = append(f.areas[:i], f.areas[i+1:]...)
			return nil
		}
	}
	return types.ErrAreaNotFound
}

type fakeDonationStore struct {
	donations []*types.Donation
	err       error
}

func (f *fakeDonationStore) Donations(ctx context.Context) ([]*types.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.donations, nil
}

func (f *fakeDonationStore) CreateDonation(ctx context.Context, donation *types.Donation) error {
	if f.err != nil {
		return f.err
	}
	donation.ID = fmt.Sprintf("d_%d", len(f.donations)+1)
	donation.CreatedAt = time.Now()
	donation.UpdatedAt = donation.CreatedAt
	f.donations = append([]*types.Donation{donation}, f.donations...)
	return nil
}

func (f *fakeDonationStore) ClearArea(ctx context.Context, areaID string) error {
	if f.err != nil {
		return f.err
	}
	for _, d := range f.donations {
		if d.AreaID != nil && *d.AreaID == areaID {
			d.AreaID = nil
		}
	}
	return nil
}

type fakeLookup struct {
	addr  *cep.Address
	calls []string
}

func (f *fakeLookup) Lookup(ctx context.Context, raw string) *cep.Address {
	f.calls = append(f.calls, raw)
	return f.addr
}

type testStores struct {
	volunteers *fakeVolunteerStore
	areas      *fakeAreaStore
	donations  *fakeDonationStore
	lookup     *fakeLookup
}

func newTestService(t *testing.T, stores testStores) *Service {
	t.Helper()

	if stores.volunteers == nil {
		stores.volunteers = &fakeVolunteerStore{}
	}
	if stores.areas == nil {
		stores.areas = &fakeAreaStore{}
	}
	if stores.donations == nil {
		stores.donations = &fakeDonationStore{}
	}
	if stores.lookup == nil {
		stores.lookup = &fakeLookup{}
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	config := &types.Config{ServerPort: 0, ReadTimeoutSec: 1, WriteTimeoutSec: 1}

	svc := New(config, logger, stores.volunteers, stores.areas, stores.donations, stores.lookup)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	}

	return svc
}

func doRequest(svc *Service, method, target string, body *string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rr := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	svc := newTestService(t, testStores{})

	rr := doRequest(svc, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestTrailingSlashRedirect(t *testing.T) {
	svc := newTestService(t, testStores{})

	rr := doRequest(svc, http.MethodGet, "/api/voluntario/", nil)
	assert.Equal(t, http.StatusMovedPermanently, rr.Code)
	assert.Equal(t, "/api/voluntario", rr.Header().Get("Location"))
}
