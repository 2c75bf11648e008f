package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"mutirao/internal/utils"
	"mutirao/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsEndpoint(t *testing.T) {
	volunteers := &fakeVolunteerStore{volunteers: []*types.Volunteer{
		{ID: "v_1", Name: "Alice", AreaID: utils.StringPtr("a_1")},
		{ID: "v_2", Name: "Bea", AreaID: utils.StringPtr("a_2")},
		{ID: "v_3", Name: "Caio"},
	}}
	areas := &fakeAreaStore{areas: []*types.Area{
		{ID: "a_1", Name: "Centro", CEP: "01001-000"},
		{ID: "a_2", Name: "Vila Sul", CEP: "02002-000"},
	}}
	donations := &fakeDonationStore{donations: []*types.Donation{
		{ID: "d_1", Description: "Água", Quantity: 10, AreaID: utils.StringPtr("a_1")},
	}}
	svc := newTestService(t, testStores{volunteers: volunteers, areas: areas, donations: donations})

	rr := doRequest(svc, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report types.AnalyticsReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))

	assert.Equal(t, 67, report.PercentVolunteersWithArea)
	assert.Equal(t, 50, report.PercentAreasWithDonation)
	assert.Equal(t, 100, report.PercentDonationsLinked)

	require.Len(t, report.PerArea, 2)
	assert.Equal(t, "a_1", report.PerArea[0].AreaID)

	require.Len(t, report.Ranking, 2)
	assert.Equal(t, 2, report.Ranking[0].Total)
	assert.Equal(t, "a_1", report.Ranking[0].AreaID)

	require.Len(t, report.VolunteerDistribution, 2)
}

func TestAnalyticsStoreFailure(t *testing.T) {
	svc := newTestService(t, testStores{donations: &fakeDonationStore{err: assert.AnError}})

	rr := doRequest(svc, http.MethodGet, "/api/analytics", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
