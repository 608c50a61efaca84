package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations; a collision on the idempotency index maps to
// port.ErrDuplicateClick.
const uniqueViolation = "23505"

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, seller_id, name, keywords, daily_budget, cpc_max, spent_today, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.SellerID,
		&c.Name,
		&c.Keywords,
		&c.DailyBudget,
		&c.CPCMax,
		&c.SpentToday,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetSponsorCandidates returns ACTIVE campaigns whose keyword list
// contains the query, each with its targets. The match is a substring
// test against the lowercased comma-joined keyword column.
func (r *CampaignRepository) GetSponsorCandidates(ctx context.Context, query string, limit int) ([]port.SponsorCandidate, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM campaigns
        WHERE status = 'ACTIVE' AND position($1 in keywords) > 0
        LIMIT $2`, campaignColumns), query, limit)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(campaigns))
	index := make(map[int64]int, len(campaigns))
	candidates := make([]port.SponsorCandidate, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
		index[c.ID] = i
		candidates[i] = port.SponsorCandidate{Campaign: c}
	}

	rows, err = r.pool.Query(ctx, `SELECT id, campaign_id, product_id, weight
        FROM ad_targets WHERE campaign_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdTarget, error) {
		var t domain.AdTarget
		err := row.Scan(&t.ID, &t.CampaignID, &t.ProductID, &t.Weight)
		return t, err
	})
	if err != nil {
		return nil, err
	}
	for _, t := range targets {
		i := index[t.CampaignID]
		candidates[i].Targets = append(candidates[i].Targets, t)
	}
	return candidates, nil
}

// GetCampaign returns a campaign by id, or (nil, nil) when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetTargets returns the campaign's targets ordered by insertion.
func (r *CampaignRepository) GetTargets(ctx context.Context, campaignID int64) ([]domain.AdTarget, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, product_id, weight
        FROM ad_targets WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdTarget, error) {
		var t domain.AdTarget
		err := row.Scan(&t.ID, &t.CampaignID, &t.ProductID, &t.Weight)
		return t, err
	})
}

// FindClickByKey returns an existing click for the campaign, product
// and idempotency key, or (nil, nil) when none exists.
func (r *CampaignRepository) FindClickByKey(ctx context.Context, campaignID, productID int64, key string) (*domain.AdClick, error) {
	var c domain.AdClick
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, product_id, cost, ip, user_agent, COALESCE(idempotency_key, ''), created_at
        FROM ad_clicks WHERE campaign_id = $1 AND product_id = $2 AND idempotency_key = $3`,
		campaignID, productID, key).
		Scan(&c.ID, &c.CampaignID, &c.ProductID, &c.Cost, &c.IP, &c.UserAgent, &c.IdempotencyKey, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ChargeClick performs the charge as one transaction. The spend
// increment is conditional on staying within the daily budget, so the
// invariant holds even when concurrent requests pass the caller's
// pre-check; zero affected rows surfaces as ErrBudgetExceeded.
func (r *CampaignRepository) ChargeClick(ctx context.Context, click *domain.AdClick, entry *domain.LedgerEntry) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var spent int64
	err = tx.QueryRow(ctx, `UPDATE campaigns
        SET spent_today = spent_today + $1, updated_at = now()
        WHERE id = $2 AND spent_today + $1 <= daily_budget
        RETURNING spent_today`, click.Cost, click.CampaignID).Scan(&spent)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if scanErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`,
			click.CampaignID).Scan(&exists); scanErr != nil {
			err = scanErr
			return 0, err
		}
		if exists {
			err = port.ErrBudgetExceeded
		} else {
			err = port.ErrCampaignNotFound
		}
		return 0, err
	}
	if err != nil {
		return 0, err
	}

	click.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO ad_clicks (id, campaign_id, product_id, cost, ip, user_agent, idempotency_key, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		click.ID, click.CampaignID, click.ProductID, click.Cost, click.IP, click.UserAgent,
		nullIfEmpty(click.IdempotencyKey), click.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			err = port.ErrDuplicateClick
		}
		return 0, err
	}

	entry.CreatedAt = click.CreatedAt
	_, err = tx.Exec(ctx, `INSERT INTO ledger_entries (id, seller_id, entry_type, amount, currency, campaign_id, product_id, idempotency_key, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		entry.ID, entry.SellerID, entry.EntryType, entry.Amount, entry.Currency,
		entry.CampaignID, entry.ProductID, nullIfEmpty(entry.IdempotencyKey), entry.CreatedAt)
	if err != nil {
		return 0, err
	}
	return spent, nil
}

// CreateCampaign inserts the campaign and its targets, assigning ids.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, targets []domain.AdTarget) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO campaigns (seller_id, name, keywords, daily_budget, cpc_max, spent_today, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,0,$6,now(),now())
        RETURNING id, created_at, updated_at`,
		c.SellerID, c.Name, c.Keywords, c.DailyBudget, c.CPCMax, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	err = insertTargets(ctx, tx, c.ID, targets)
	return err
}

// UpdateCampaign persists the campaign's mutable fields.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET name = $1, keywords = $2, daily_budget = $3, cpc_max = $4, status = $5, updated_at = now()
        WHERE id = $6`,
		c.Name, c.Keywords, c.DailyBudget, c.CPCMax, c.Status, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// ReplaceTargets swaps the campaign's target list wholesale.
func (r *CampaignRepository) ReplaceTargets(ctx context.Context, campaignID int64, targets []domain.AdTarget) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM ad_targets WHERE campaign_id = $1`, campaignID); err != nil {
		return err
	}
	err = insertTargets(ctx, tx, campaignID, targets)
	return err
}

// GetStats returns click counts and spend for campaigns in a period.
func (r *CampaignRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(cost),0)
        FROM ad_clicks WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Clicks, &resp.Spend); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetDailySpend zeroes spent_today on all campaigns.
func (r *CampaignRepository) ResetDailySpend(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET spent_today = 0, updated_at = now() WHERE spent_today <> 0`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func insertTargets(ctx context.Context, tx pgx.Tx, campaignID int64, targets []domain.AdTarget) error {
	for i := range targets {
		targets[i].CampaignID = campaignID
		err := tx.QueryRow(ctx, `INSERT INTO ad_targets (campaign_id, product_id, weight)
            VALUES ($1,$2,$3) RETURNING id`,
			campaignID, targets[i].ProductID, targets[i].Weight).Scan(&targets[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
