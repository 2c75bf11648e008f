// Package export flattens snapshots of the three collections into
// downloadable report artifacts. Both serializers are pure functions of the
// snapshot; the caller owns fetching and delivery.
package export

import (
	"fmt"
	"time"
)

// Kind selects which collection a report covers.
type Kind string

const (
	KindVolunteers Kind = "volunteers"
	KindAreas      Kind = "areas"
	KindDonations  Kind = "donations"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindVolunteers, KindAreas, KindDonations:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown export kind %q", s)
}

// Filename is the artifact name offered to the user: {kind}_{date}.{ext},
// date only.
func Filename(kind Kind, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", kind, now.Format("2006-01-02"), ext)
}
