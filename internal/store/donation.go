package store

import (
	"context"
	"fmt"
	"time"

	"mutirao/internal/utils"
	"mutirao/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationTableName = "mutirao.donations"

var donationColumns = utils.StructTagValues(types.Donation{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

func (r *DonationRepository) Donations(ctx context.Context) ([]*types.Donation, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list donations query: %w", err)
	}

	var donations = make([]*types.Donation, 0)
	err = pgxscan.Select(ctx, r.pool, &donations, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to list donations")
	}

	return donations, nil
}

func (r *DonationRepository) CreateDonation(ctx context.Context, donation *types.Donation) error {

	now := time.Now()
	donation.ID = utils.NanoID()
	donation.CreatedAt = now
	donation.UpdatedAt = now

	donationMap := utils.StructToMap(donation)

	query, args, err := psql().Insert(donationTableName).SetMap(donationMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create donation")

}

// ClearArea unlinks every donation pointing at the given area. Part of the
// area-delete cascade.
func (r *DonationRepository) ClearArea(ctx context.Context, areaID string) error {

	query, args, err := psql().Update(donationTableName).
		Set("area_id", nil).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"area_id": areaID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate clear donation area query for area %s: %w", areaID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to clear donation area links")

}
