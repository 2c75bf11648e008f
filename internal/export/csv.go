package export

import (
	"strconv"
	"strings"

	"mutirao/internal/utils"
	"mutirao/pkg/types"
)

// CSV renders one collection as quoted tabular text. The format is fixed:
// every field double-quoted (quotes doubled), comma-separated, newline rows,
// header always first, no trailing newline. An unlinked or dangling area
// reference renders as an empty area column.
func CSV(kind Kind, volunteers []*types.Volunteer, areas []*types.Area, donations []*types.Donation) ([]byte, error) {
	var rows [][]string

	switch kind {
	case KindVolunteers:
		rows = append(rows, []string{"id", "name", "phone", "email", "skills", "area"})
		for _, v := range volunteers {
			rows = append(rows, []string{
				v.ID,
				v.Name,
				utils.PtrString(v.Phone),
				utils.PtrString(v.Email),
				utils.PtrString(v.Skills),
				areaName(areas, v.AreaID, ""),
			})
		}

	case KindAreas:
		rows = append(rows, []string{"id", "name", "cep", "city", "state"})
		for _, a := range areas {
			rows = append(rows, []string{
				a.ID,
				a.Name,
				a.CEP,
				utils.PtrString(a.City),
				utils.PtrString(a.State),
			})
		}

	case KindDonations:
		rows = append(rows, []string{"id", "description", "quantity", "area"})
		for _, d := range donations {
			rows = append(rows, []string{
				d.ID,
				d.Description,
				formatQuantity(d.Quantity),
				areaName(areas, d.AreaID, ""),
			})
		}

	default:
		_, err := ParseKind(string(kind))
		return nil, err
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return []byte(b.String()), nil
}

// areaName resolves a nullable area reference to the linked area's name.
// nil, empty, and dangling references all fall back.
func areaName(areas []*types.Area, areaID *string, fallback string) string {
	if areaID == nil || *areaID == "" {
		return fallback
	}
	for _, a := range areas {
		if a.ID == *areaID {
			return a.Name
		}
	}
	return fallback
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
