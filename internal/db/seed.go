package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns, targets and click history for local
// development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	keywords := []string{
		"figür,anime,koleksiyon",
		"poster,duvar,dekor",
		"tişört,giyim,baskı",
		"kupa,hediye,baskı",
		"sticker,çıkartma,laptop",
	}

	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		sellerID := int64(i)
		dailyBudget := int64(100000) // 1000.00 units
		cpcMax := int64(2000)        // 20.00 per click
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, seller_id, name, keywords, daily_budget, cpc_max, spent_today, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,0,'ACTIVE',now(),now()) ON CONFLICT DO NOTHING`,
			i, sellerID, name, keywords[i-1], dailyBudget, cpcMax)
		if err != nil {
			return err
		}
		// three weighted targets per campaign
		for j := 1; j <= 3; j++ {
			productID := int64((i-1)*10 + j)
			weight := int32(j)
			_, err = db.Exec(ctx, `INSERT INTO ad_targets (campaign_id, product_id, weight)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, i, productID, weight)
			if err != nil {
				return err
			}
		}
	}

	// advance the sequence past the explicit ids
	if _, err := db.Exec(ctx, `SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`); err != nil {
		return err
	}

	// click and ledger history
	for i := 0; i < 200; i++ {
		campaignID := int64(r.Intn(5) + 1)
		productID := (campaignID-1)*10 + int64(r.Intn(3)+1)
		cost := int64(r.Intn(1900) + 100)
		ip := fmt.Sprintf("203.0.113.%d", r.Intn(254)+1)
		createdAt := time.Now().Add(-time.Duration(r.Intn(24*3600)) * time.Second)
		_, err := db.Exec(ctx, `INSERT INTO ad_clicks
(id, campaign_id, product_id, cost, ip, user_agent, idempotency_key, created_at)
VALUES ($1,$2,$3,$4,$5,$6,NULL,$7) ON CONFLICT DO NOTHING`,
			uuid.NewString(), campaignID, productID, cost, ip, "seed", createdAt)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO ledger_entries
(id, seller_id, entry_type, amount, currency, campaign_id, product_id, idempotency_key, created_at)
VALUES ($1,$2,'AD_SPEND',$3,'TRY',$4,$5,NULL,$6) ON CONFLICT DO NOTHING`,
			uuid.NewString(), campaignID, cost, campaignID, productID, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
