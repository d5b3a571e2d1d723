package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

// invalid_text_representation, raised for a malformed uuid.
const codeInvalidText = "22P02"

// Pool is the subset of pgxpool.Pool the repository uses.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunRepository implements port.RunRepository on PostgreSQL.
type RunRepository struct {
	pool Pool
}

// NewRunRepository returns a new repository instance.
func NewRunRepository(pool Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

const selectRun = `
        SELECT
            id::text,
            variant,
            product,
            tagline,
            strategy,
            trials_per_segment,
            total_trials,
            total_conversions,
            people_reached,
            purchases,
            revenue,
            cost,
            profit,
            created_at
        FROM campaign_runs`

const insertRun = `INSERT INTO campaign_runs
    (id, variant, product, tagline, strategy, trials_per_segment, total_trials, total_conversions,
     people_reached, purchases, revenue, cost, profit, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

const insertSegment = `INSERT INTO run_segments
    (run_id, position, demographic_id, demographic, estimated_size, trials, ignore_count,
     follow_link, follow_and_buy, follow_and_save, degraded, economics)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`

const selectSegments = `
        SELECT
            demographic,
            estimated_size,
            trials,
            ignore_count,
            follow_link,
            follow_and_buy,
            follow_and_save,
            degraded,
            economics
        FROM run_segments
        WHERE run_id = $1
        ORDER BY position`

// SaveRun inserts the run and its segments in one transaction.
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.CampaignRun) (err error) {
	product, err := json.Marshal(run.Product)
	if err != nil {
		return eris.Wrap(err, "marshal product")
	}
	strategy, err := json.Marshal(run.Strategy)
	if err != nil {
		return eris.Wrap(err, "marshal strategy")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "begin save run")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = eris.Wrap(err, "commit save run")
		}
	}()

	t := run.Totals
	_, err = tx.Exec(ctx, insertRun,
		run.ID, run.Variant, product, run.Tagline, strategy, run.TrialsPerSegment,
		t.Trials, t.Conversions, t.PeopleReached, t.Purchases, t.Revenue, t.Cost, t.Profit, run.CreatedAt)
	if err != nil {
		return eris.Wrapf(err, "insert run %s", run.ID)
	}

	for i, seg := range run.Segments {
		var demographic, econ []byte
		if demographic, err = json.Marshal(seg.Demographic); err != nil {
			return eris.Wrap(err, "marshal demographic")
		}
		if econ, err = json.Marshal(seg.Economics); err != nil {
			return eris.Wrap(err, "marshal economics")
		}
		tl := seg.Tally
		_, err = tx.Exec(ctx, insertSegment,
			run.ID, i, seg.Demographic.ID, demographic, seg.Demographic.EstimatedSize,
			tl.Trials, tl.Ignore, tl.FollowLink, tl.FollowAndBuy, tl.FollowAndSave, tl.Degraded, econ)
		if err != nil {
			return eris.Wrapf(err, "insert segment %s", seg.Demographic.ID)
		}
	}
	return nil
}

// GetRun returns a run with its segments in their original order.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	run, err := scanRun(r.pool.QueryRow(ctx, selectRun+` WHERE id = $1`, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, pgx.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == codeInvalidText) {
			return nil, eris.Wrapf(port.ErrRunNotFound, "run %s", id)
		}
		return nil, eris.Wrapf(err, "get run %s", id)
	}

	rows, err := r.pool.Query(ctx, selectSegments, id)
	if err != nil {
		return nil, eris.Wrapf(err, "query segments of run %s", id)
	}
	run.Segments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SegmentResult, error) {
		return scanSegment(row, run.Variant)
	})
	if err != nil {
		return nil, eris.Wrapf(err, "scan segments of run %s", id)
	}
	return &run, nil
}

// ListRuns returns run summaries newest first. A non-positive limit
// returns every matching run.
func (r *RunRepository) ListRuns(ctx context.Context, req port.ListRunsReq) ([]domain.CampaignRun, error) {
	query := selectRun + `
        WHERE ($1 = '' OR variant = $1)
        ORDER BY created_at DESC, id
        LIMIT NULLIF($2, 0)`
	limit := max(req.Limit, 0)
	rows, err := r.pool.Query(ctx, query, req.Variant, limit)
	if err != nil {
		return nil, eris.Wrap(err, "list runs")
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRun, error) {
		return scanRun(row)
	})
	if err != nil {
		return nil, eris.Wrap(err, "scan runs")
	}
	return runs, nil
}

func scanRun(row pgx.Row) (domain.CampaignRun, error) {
	var (
		run                  domain.CampaignRun
		productRaw, stratRaw []byte
	)
	err := row.Scan(
		&run.ID,
		&run.Variant,
		&productRaw,
		&run.Tagline,
		&stratRaw,
		&run.TrialsPerSegment,
		&run.Totals.Trials,
		&run.Totals.Conversions,
		&run.Totals.PeopleReached,
		&run.Totals.Purchases,
		&run.Totals.Revenue,
		&run.Totals.Cost,
		&run.Totals.Profit,
		&run.CreatedAt,
	)
	if err != nil {
		return run, err
	}
	if err = json.Unmarshal(productRaw, &run.Product); err != nil {
		return run, eris.Wrap(err, "decode product")
	}
	if err = json.Unmarshal(stratRaw, &run.Strategy); err != nil {
		return run, eris.Wrap(err, "decode strategy")
	}
	return run, nil
}

func scanSegment(row pgx.Row, variant string) (domain.SegmentResult, error) {
	var (
		seg              domain.SegmentResult
		size             int64
		demoRaw, econRaw []byte
	)
	tl := &seg.Tally
	err := row.Scan(
		&demoRaw,
		&size,
		&tl.Trials,
		&tl.Ignore,
		&tl.FollowLink,
		&tl.FollowAndBuy,
		&tl.FollowAndSave,
		&tl.Degraded,
		&econRaw,
	)
	if err != nil {
		return seg, err
	}
	if err = json.Unmarshal(demoRaw, &seg.Demographic); err != nil {
		return seg, eris.Wrap(err, "decode demographic")
	}
	if err = json.Unmarshal(econRaw, &seg.Economics); err != nil {
		return seg, eris.Wrap(err, "decode economics")
	}
	seg.Demographic.EstimatedSize = size
	tl.Key = domain.TallyKey{DemographicID: seg.Demographic.ID, Variant: variant}
	return seg, nil
}
