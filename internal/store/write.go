package store

import (
	"context"
	"fmt"

	"github.com/dxlabs/dxindex/internal/entity"
)

// PutAsset upserts an asset row. Re-putting an existing id overwrites every
// field: asset creation events carry last-write-wins semantics.
func (s *Store) PutAsset(ctx context.Context, a *entity.Asset) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assets
		(id, creator, content_cid, title, thumbnail_cid, price_in_wei, created_at, total_subscriber)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			creator = excluded.creator,
			content_cid = excluded.content_cid,
			title = excluded.title,
			thumbnail_cid = excluded.thumbnail_cid,
			price_in_wei = excluded.price_in_wei,
			created_at = excluded.created_at,
			total_subscriber = excluded.total_subscriber
	`,
		string(a.ID),
		string(a.Creator),
		a.ContentCid,
		a.Title,
		a.ThumbnailCid,
		bigText(a.PriceInWei),
		a.CreatedAt,
		bigText(a.TotalSubscriber),
	)
	if err != nil {
		return fmt.Errorf("put asset: %w", err)
	}
	return nil
}

// PutCreator upserts a creator row.
func (s *Store) PutCreator(ctx context.Context, c *entity.Creator) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO creators
		(id, total_assets, total_earnings, total_asset_worth, total_subscribers)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_assets = excluded.total_assets,
			total_earnings = excluded.total_earnings,
			total_asset_worth = excluded.total_asset_worth,
			total_subscribers = excluded.total_subscribers
	`,
		string(c.ID),
		bigText(c.TotalAssets),
		bigText(c.TotalEarnings),
		bigText(c.TotalAssetWorth),
		bigText(c.TotalSubscribers),
	)
	if err != nil {
		return fmt.Errorf("put creator: %w", err)
	}
	return nil
}

// PutHolder upserts a holder row.
func (s *Store) PutHolder(ctx context.Context, h *entity.Holder) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO holders
		(id, total_purchases, total_spent, asset)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_purchases = excluded.total_purchases,
			total_spent = excluded.total_spent,
			asset = excluded.asset
	`,
		string(h.ID),
		bigText(h.TotalPurchases),
		bigText(h.TotalSpent),
		string(h.Asset),
	)
	if err != nil {
		return fmt.Errorf("put holder: %w", err)
	}
	return nil
}

// PutPurchase upserts a position row.
func (s *Store) PutPurchase(ctx context.Context, p *entity.Purchase) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO purchases
		(id, asset, holder, balance, amount_paid, purchased_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			asset = excluded.asset,
			holder = excluded.holder,
			balance = excluded.balance,
			amount_paid = excluded.amount_paid,
			purchased_at = excluded.purchased_at
	`,
		string(p.ID),
		string(p.Asset),
		string(p.Holder),
		bigText(p.Balance),
		bigText(p.AmountPaid),
		p.PurchasedAt,
	)
	if err != nil {
		return fmt.Errorf("put purchase: %w", err)
	}
	return nil
}

// PutGlobalStats upserts the singleton stats row.
func (s *Store) PutGlobalStats(ctx context.Context, g *entity.GlobalStats) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO global_stats
		(id, total_assets, total_creators, total_holders, total_users,
		 total_purchases, total_volume, total_revenue, total_asset_worth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_assets = excluded.total_assets,
			total_creators = excluded.total_creators,
			total_holders = excluded.total_holders,
			total_users = excluded.total_users,
			total_purchases = excluded.total_purchases,
			total_volume = excluded.total_volume,
			total_revenue = excluded.total_revenue,
			total_asset_worth = excluded.total_asset_worth
	`,
		string(g.ID),
		bigText(g.TotalAssets),
		bigText(g.TotalCreators),
		bigText(g.TotalHolders),
		bigText(g.TotalUsers),
		bigText(g.TotalPurchases),
		bigText(g.TotalVolume),
		bigText(g.TotalRevenue),
		bigText(g.TotalAssetWorth),
	)
	if err != nil {
		return fmt.Errorf("put global stats: %w", err)
	}
	return nil
}
