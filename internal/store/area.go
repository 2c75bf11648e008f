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

const areaTableName = "mutirao.areas"

var areaColumns = utils.StructTagValues(types.Area{})

type AreaRepository struct {
	pool *pgxpool.Pool
}

func NewAreaRepository(pool *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{pool: pool}
}

func (r *AreaRepository) Areas(ctx context.Context) ([]*types.Area, error) {

	query, args, err := psql().Select(areaColumns...).From(areaTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list areas query: %w", err)
	}

	var areas = make([]*types.Area, 0)
	err = pgxscan.Select(ctx, r.pool, &areas, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to list areas")
	}

	return areas, nil
}

func (r *AreaRepository) Area(ctx context.Context, areaID string) (*types.Area, error) {

	query, args, err := psql().Select(areaColumns...).From(areaTableName).
		Where(sq.Eq{"id": areaID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate area query: %w", err)
	}

	var area = new(types.Area)
	err = pgxscan.Get(ctx, r.pool, area, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrAreaNotFound
	}

	return area, nil
}

func (r *AreaRepository) CreateArea(ctx context.Context, area *types.Area) error {

	now := time.Now()
	area.ID = utils.NanoID()
	area.CreatedAt = now
	area.UpdatedAt = now

	areaMap := utils.StructToMap(area)

	query, args, err := psql().Insert(areaTableName).SetMap(areaMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert area query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create area")

}

// DeleteArea removes the area row only. Unlinking volunteers and donations is
// the caller's responsibility and must happen first.
func (r *AreaRepository) DeleteArea(ctx context.Context, areaID string) error {

	query, args, err := psql().Delete(areaTableName).Where(sq.Eq{"id": areaID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete area query for area %s: %w", areaID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "failed to delete area")
	}

	if tag.RowsAffected() == 0 {
		return types.ErrAreaNotFound
	}

	return nil
}
