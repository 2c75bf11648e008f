package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"mutirao/internal/cep"
	"mutirao/internal/utils"
	"mutirao/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArea(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t, testStores{})

		body := `{"name":"","cep":"--"}`
		rr := doRequest(svc, http.MethodPost, "/api/regiao-afetada", &body)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "name")
		assert.Contains(t, rr.Body.String(), "cep")
	})

	t.Run("lookup fills only blank fields", func(t *testing.T) {
		areas := &fakeAreaStore{}
		lookup := &fakeLookup{addr: &cep.Address{
			Street:       "Praça da Sé",
			Neighborhood: "Sé",
			City:         "São Paulo",
			State:        "SP",
		}}
		svc := newTestService(t, testStores{areas: areas, lookup: lookup})

		body := `{"name":"Centro","cep":"01001-000","city":"Sampa"}`
		rr := doRequest(svc, http.MethodPost, "/api/regiao-afetada", &body)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, areas.areas, 1)

		created := areas.areas[0]
		// User-entered city wins; state and address come from the directory.
		assert.Equal(t, "Sampa", utils.PtrString(created.City))
		assert.Equal(t, "SP", utils.PtrString(created.State))
		assert.Equal(t, "Praça da Sé, Sé", utils.PtrString(created.Address))
		assert.Equal(t, "01001-000", created.CEP)
		require.Len(t, lookup.calls, 1)
	})

	t.Run("failed lookup never blocks creation", func(t *testing.T) {
		areas := &fakeAreaStore{}
		svc := newTestService(t, testStores{areas: areas, lookup: &fakeLookup{addr: nil}})

		body := `{"name":"Vila Sul","cep":"02002-000"}`
		rr := doRequest(svc, http.MethodPost, "/api/regiao-afetada", &body)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, areas.areas, 1)
		assert.Nil(t, areas.areas[0].City)
		assert.Nil(t, areas.areas[0].State)
	})

	t.Run("extended fields round-trip", func(t *testing.T) {
		areas := &fakeAreaStore{}
		svc := newTestService(t, testStores{areas: areas})

		body := `{"name":"Centro","cep":"01001-000","disasterType":"enchente","priorityLevel":3,"immediateNeeds":"água potável","latitude":-23.55,"longitude":-46.63}`
		rr := doRequest(svc, http.MethodPost, "/api/regiao-afetada", &body)

		require.Equal(t, http.StatusCreated, rr.Code)

		var got types.Area
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "enchente", utils.PtrString(got.DisasterType))
		assert.Equal(t, 3, utils.PtrInt(got.PriorityLevel))
		require.NotNil(t, got.Latitude)
		assert.InDelta(t, -23.55, *got.Latitude, 0.001)
	})
}

func TestDeleteArea(t *testing.T) {
	t.Run("cascades by unlinking volunteers and donations", func(t *testing.T) {
		areas := &fakeAreaStore{areas: []*types.Area{
			{ID: "a_1", Name: "Centro", CEP: "01001-000"},
			{ID: "a_2", Name: "Vila Sul", CEP: "02002-000"},
		}}
		volunteers := &fakeVolunteerStore{volunteers: []*types.Volunteer{
			{ID: "v_1", Name: "Alice", AreaID: utils.StringPtr("a_1")},
			{ID: "v_2", Name: "Bea", AreaID: utils.StringPtr("a_2")},
		}}
		donations := &fakeDonationStore{donations: []*types.Donation{
			{ID: "d_1", Description: "Água", Quantity: 10, AreaID: utils.StringPtr("a_1")},
		}}
		svc := newTestService(t, testStores{areas: areas, volunteers: volunteers, donations: donations})

		rr := doRequest(svc, http.MethodDelete, "/api/regiao-afetada/a_1", nil)
		require.Equal(t, http.StatusNoContent, rr.Code)

		// No record may keep referencing the deleted area.
		assert.Nil(t, volunteers.volunteers[0].AreaID)
		assert.Nil(t, donations.donations[0].AreaID)

		// Links to other areas survive.
		require.NotNil(t, volunteers.volunteers[1].AreaID)
		assert.Equal(t, "a_2", *volunteers.volunteers[1].AreaID)

		require.Len(t, areas.areas, 1)
		assert.Equal(t, "a_2", areas.areas[0].ID)
	})

	t.Run("unknown area", func(t *testing.T) {
		svc := newTestService(t, testStores{})

		rr := doRequest(svc, http.MethodDelete, "/api/regiao-afetada/nope", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListAreasStoreFailure(t *testing.T) {
	areas := &fakeAreaStore{err: assert.AnError}
	svc := newTestService(t, testStores{areas: areas})

	rr := doRequest(svc, http.MethodGet, "/api/regiao-afetada", nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to load areas")
}
