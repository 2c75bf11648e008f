package types

// AreaCount is one per-area row of the dashboard breakdown. Zero counts are
// retained here; the pie-style distribution filters them out.
type AreaCount struct {
	AreaID         string `json:"areaId"`
	Name           string `json:"name"`
	VolunteerCount int    `json:"volunteerCount"`
	DonationCount  int    `json:"donationCount"`
}

// AreaRank is a breakdown row plus the combined total used for ordering.
type AreaRank struct {
	AreaCount
	Total int `json:"total"`
}

// DistributionSlice is one proportional-chart entry.
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsReport bundles every derived view the dashboard renders.
type AnalyticsReport struct {
	PercentVolunteersWithArea int `json:"percentVolunteersWithArea"`
	PercentAreasWithDonation  int `json:"percentAreasWithDonation"`
	PercentDonationsLinked    int `json:"percentDonationsLinked"`

	PerArea               []AreaCount         `json:"perArea"`
	Ranking               []AreaRank          `json:"ranking"`
	VolunteerDistribution []DistributionSlice `json:"volunteerDistribution"`
}
