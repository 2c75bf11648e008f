// Package analytics computes the derived dashboard views from snapshots of
// the three collections. Every function is pure: inputs are never mutated and
// empty input always yields an empty (or zero) result.
package analytics

import (
	"math"
	"sort"

	"mutirao/pkg/types"
)

// roundPercent is round-half-up: 66.66 -> 67. Zero total is defined as 0.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func linked(areaID *string) bool {
	return areaID != nil && *areaID != ""
}

// PercentVolunteersWithArea is the share of volunteers linked to an area.
func PercentVolunteersWithArea(volunteers []*types.Volunteer) int {
	count := 0
	for _, v := range volunteers {
		if linked(v.AreaID) {
			count++
		}
	}
	return roundPercent(count, len(volunteers))
}

// PercentDonationsLinked is the share of donations linked to an area.
func PercentDonationsLinked(donations []*types.Donation) int {
	count := 0
	for _, d := range donations {
		if linked(d.AreaID) {
			count++
		}
	}
	return roundPercent(count, len(donations))
}

// PercentAreasWithDonation is the share of areas that received at least one
// donation.
func PercentAreasWithDonation(areas []*types.Area, donations []*types.Donation) int {
	donated := make(map[string]struct{}, len(donations))
	for _, d := range donations {
		if linked(d.AreaID) {
			donated[*d.AreaID] = struct{}{}
		}
	}

	count := 0
	for _, a := range areas {
		if _, ok := donated[a.ID]; ok {
			count++
		}
	}
	return roundPercent(count, len(areas))
}

func countByArea(areas []*types.Area, volunteers []*types.Volunteer, donations []*types.Donation) []types.AreaCount {
	volunteerCounts := make(map[string]int, len(areas))
	for _, v := range volunteers {
		if linked(v.AreaID) {
			volunteerCounts[*v.AreaID]++
		}
	}

	donationCounts := make(map[string]int, len(areas))
	for _, d := range donations {
		if linked(d.AreaID) {
			donationCounts[*d.AreaID]++
		}
	}

	rows := make([]types.AreaCount, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, types.AreaCount{
			AreaID:         a.ID,
			Name:           a.Name,
			VolunteerCount: volunteerCounts[a.ID],
			DonationCount:  donationCounts[a.ID],
		})
	}
	return rows
}

// PerAreaBreakdown produces one row per area in collection order. Areas with
// zero linked records are retained.
func PerAreaBreakdown(areas []*types.Area, volunteers []*types.Volunteer, donations []*types.Donation) []types.AreaCount {
	return countByArea(areas, volunteers, donations)
}

// AreaRanking orders areas by combined volunteer+donation count, descending.
// Ties keep the relative collection order.
func AreaRanking(areas []*types.Area, volunteers []*types.Volunteer, donations []*types.Donation) []types.AreaRank {
	counts := countByArea(areas, volunteers, donations)

	ranking := make([]types.AreaRank, 0, len(counts))
	for _, c := range counts {
		ranking = append(ranking, types.AreaRank{
			AreaCount: c,
			Total:     c.VolunteerCount + c.DonationCount,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	return ranking
}

// VolunteerDistribution is the proportional view of volunteers per area.
// Areas with zero linked volunteers are omitted.
func VolunteerDistribution(areas []*types.Area, volunteers []*types.Volunteer) []types.DistributionSlice {
	counts := make(map[string]int, len(areas))
	for _, v := range volunteers {
		if linked(v.AreaID) {
			counts[*v.AreaID]++
		}
	}

	slices := make([]types.DistributionSlice, 0, len(areas))
	for _, a := range areas {
		if counts[a.ID] == 0 {
			continue
		}
		slices = append(slices, types.DistributionSlice{Name: a.Name, Value: counts[a.ID]})
	}
	return slices
}

// Report computes every derived view in one pass over the snapshots.
func Report(volunteers []*types.Volunteer, areas []*types.Area, donations []*types.Donation) *types.AnalyticsReport {
	return &types.AnalyticsReport{
		PercentVolunteersWithArea: PercentVolunteersWithArea(volunteers),
		PercentAreasWithDonation:  PercentAreasWithDonation(areas, donations),
		PercentDonationsLinked:    PercentDonationsLinked(donations),
		PerArea:                   PerAreaBreakdown(areas, volunteers, donations),
		Ranking:                   AreaRanking(areas, volunteers, donations),
		VolunteerDistribution:     VolunteerDistribution(areas, volunteers),
	}
}
