package seed

import (
	"context"
	"fmt"

	"mutirao/internal/store"
	"mutirao/internal/utils"
	"mutirao/pkg/types"
)

// Seed loads a small development data set: two areas with linked volunteers
// and donations, plus one unlinked record of each kind so the dashboard KPIs
// have something to show.
func Seed(
	ctx context.Context,
	volunteers *store.VolunteerRepository,
	areas *store.AreaRepository,
	donations *store.DonationRepository,
) error {

	centro := &types.Area{
		Name:           "Centro Alagado",
		CEP:            "01001-000",
		City:           utils.StringPtr("São Paulo"),
		State:          utils.StringPtr("SP"),
		DisasterType:   utils.StringPtr("enchente"),
		PriorityLevel:  utils.IntPtr(3),
		ImmediateNeeds: utils.StringPtr("água potável, cestas básicas"),
		Latitude:       utils.Float64Ptr(-23.5505),
		Longitude:      utils.Float64Ptr(-46.6333),
	}
	if err := areas.CreateArea(ctx, centro); err != nil {
		return fmt.Errorf("seed area %q: %w", centro.Name, err)
	}

	encosta := &types.Area{
		Name:          "Encosta Norte",
		CEP:           "02002-000",
		City:          utils.StringPtr("São Paulo"),
		State:         utils.StringPtr("SP"),
		DisasterType:  utils.StringPtr("deslizamento"),
		PriorityLevel: utils.IntPtr(2),
	}
	if err := areas.CreateArea(ctx, encosta); err != nil {
		return fmt.Errorf("seed area %q: %w", encosta.Name, err)
	}

	seedVolunteers := []*types.Volunteer{
		{
			Name:   "Ana Souza",
			Phone:  utils.StringPtr("11 99999-0001"),
			Email:  utils.StringPtr("ana@example.com"),
			Skills: utils.StringPtr("primeiros socorros"),
			AreaID: utils.StringPtr(centro.ID),
		},
		{
			Name:   "Bruno Lima",
			Skills: utils.StringPtr("logística"),
			AreaID: utils.StringPtr(encosta.ID),
		},
		{
			Name: "Carla Mendes",
		},
	}
	for _, v := range seedVolunteers {
		if err := volunteers.CreateVolunteer(ctx, v); err != nil {
			return fmt.Errorf("seed volunteer %q: %w", v.Name, err)
		}
	}

	seedDonations := []*types.Donation{
		{Description: "Água mineral (fardo)", Quantity: 40, AreaID: utils.StringPtr(centro.ID)},
		{Description: "Cestas básicas", Quantity: 25, AreaID: utils.StringPtr(centro.ID)},
		{Description: "Cobertores", Quantity: 60},
	}
	for _, d := range seedDonations {
		if err := donations.CreateDonation(ctx, d); err != nil {
			return fmt.Errorf("seed donation %q: %w", d.Description, err)
		}
	}

	return nil
}
