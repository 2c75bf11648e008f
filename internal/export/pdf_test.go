package export

import (
	"testing"
	"time"

	"mutirao/internal/utils"
	"mutirao/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFTableAreas(t *testing.T) {
	areas := []*types.Area{
		{
			ID:    "a_1",
			Name:  "Centro",
			CEP:   "01001-000",
			City:  utils.StringPtr("São Paulo"),
			State: utils.StringPtr("SP"),
		},
		{ID: "a_2", Name: "Vila Sul", CEP: "02002-000"},
	}

	title, head, body, err := pdfTable(KindAreas, nil, areas, nil)
	require.NoError(t, err)

	assert.Equal(t, "Relatório de Áreas", title)
	assert.Equal(t, []string{"ID", "Nome", "CEP", "Cidade", "Estado"}, head)
	require.Len(t, body, 2)
	assert.Equal(t, []string{"a_1", "Centro", "01001-000", "São Paulo", "SP"}, body[0])
	assert.Equal(t, []string{"a_2", "Vila Sul", "02002-000", "", ""}, body[1])
}

func TestPDFTableVolunteersPlaceholder(t *testing.T) {
	volunteers := []*types.Volunteer{
		{ID: "v_1", Name: "Alice", AreaID: utils.StringPtr("a_1")},
		{ID: "v_2", Name: "Bea", AreaID: nil},
	}
	areas := []*types.Area{{ID: "a_1", Name: "Centro", CEP: "01001-000"}}

	title, head, body, err := pdfTable(KindVolunteers, volunteers, areas, nil)
	require.NoError(t, err)

	assert.Equal(t, "Relatório de Voluntários", title)
	assert.Equal(t, []string{"ID", "Nome", "Telefone", "Email", "Skills", "Área"}, head)
	require.Len(t, body, 2)
	assert.Equal(t, "Centro", body[0][5])
	// Unlinked renders the em-dash placeholder, not an empty string.
	assert.Equal(t, "—", body[1][5])
}

func TestPDFTableDonations(t *testing.T) {
	donations := []*types.Donation{
		{ID: "d_1", Description: "Água", Quantity: 10},
	}

	title, head, body, err := pdfTable(KindDonations, nil, nil, donations)
	require.NoError(t, err)

	assert.Equal(t, "Relatório de Doações", title)
	assert.Equal(t, []string{"ID", "Descrição", "Quantidade", "Área"}, head)
	require.Len(t, body, 1)
	assert.Equal(t, []string{"d_1", "Água", "10", "—"}, body[0])
}

func TestPDFOutput(t *testing.T) {
	areas := []*types.Area{{ID: "a_1", Name: "Centro", CEP: "01001-000"}}

	out, err := PDF(KindAreas, nil, areas, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFEmptyCollection(t *testing.T) {
	out, err := PDF(KindVolunteers, nil, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPDFUnknownKind(t *testing.T) {
	_, err := PDF(Kind("everything"), nil, nil, nil)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "volunteers_2026-08-31.csv", Filename(KindVolunteers, "csv", now))
	assert.Equal(t, "donations_2026-08-31.pdf", Filename(KindDonations, "pdf", now))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("areas")
	require.NoError(t, err)
	assert.Equal(t, KindAreas, kind)

	_, err = ParseKind("volunteer")
	assert.Error(t, err)
}
