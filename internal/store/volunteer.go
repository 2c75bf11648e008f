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

const volunteerTableName = "mutirao.volunteers"

var volunteerColumns = utils.StructTagValues(types.Volunteer{})

type VolunteerRepository struct {
	pool *pgxpool.Pool
}

func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{pool: pool}
}

// Volunteers lists every volunteer, newest first, matching the dashboard's
// prepend-on-create ordering.
func (r *VolunteerRepository) Volunteers(ctx context.Context) ([]*types.Volunteer, error) {

	query, args, err := psql().Select(volunteerColumns...).From(volunteerTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list volunteers query: %w", err)
	}

	var volunteers = make([]*types.Volunteer, 0)
	err = pgxscan.Select(ctx, r.pool, &volunteers, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to list volunteers")
	}

	return volunteers, nil
}

func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *types.Volunteer) error {

	now := time.Now()
	volunteer.ID = utils.NanoID()
	volunteer.CreatedAt = now
	volunteer.UpdatedAt = now

	volunteerMap := utils.StructToMap(volunteer)

	query, args, err := psql().Insert(volunteerTableName).SetMap(volunteerMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert volunteer query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create volunteer")

}

// ClearArea unlinks every volunteer pointing at the given area. Part of the
// area-delete cascade.
func (r *VolunteerRepository) ClearArea(ctx context.Context, areaID string) error {

	query, args, err := psql().Update(volunteerTableName).
		Set("area_id", nil).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"area_id": areaID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate clear volunteer area query for area %s: %w", areaID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to clear volunteer area links")

}
