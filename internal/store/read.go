package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
)

// GetAsset returns the asset with the given id, or (nil, nil) if absent.
func (s *Store) GetAsset(ctx context.Context, id entity.ID) (*entity.Asset, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, creator, content_cid, title, thumbnail_cid, price_in_wei, created_at, total_subscriber
		FROM assets
		WHERE id = ?
	`, string(id))

	var a entity.Asset
	var assetID, creator, price, subscribers string
	err := row.Scan(&assetID, &creator, &a.ContentCid, &a.Title, &a.ThumbnailCid, &price, &a.CreatedAt, &subscribers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}

	a.ID = entity.ID(assetID)
	a.Creator = entity.ID(creator)
	if a.PriceInWei, err = bigFromText(price); err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	if a.TotalSubscriber, err = bigFromText(subscribers); err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// GetCreator returns the creator with the given id, or (nil, nil) if absent.
func (s *Store) GetCreator(ctx context.Context, id entity.ID) (*entity.Creator, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, total_assets, total_earnings, total_asset_worth, total_subscribers
		FROM creators
		WHERE id = ?
	`, string(id))

	var creatorID, assets, earnings, worth, subscribers string
	err := row.Scan(&creatorID, &assets, &earnings, &worth, &subscribers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}

	c := entity.Creator{ID: entity.ID(creatorID)}
	if c.TotalAssets, err = bigFromText(assets); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	if c.TotalEarnings, err = bigFromText(earnings); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	if c.TotalAssetWorth, err = bigFromText(worth); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	if c.TotalSubscribers, err = bigFromText(subscribers); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	return &c, nil
}

// GetHolder returns the holder with the given id, or (nil, nil) if absent.
func (s *Store) GetHolder(ctx context.Context, id entity.ID) (*entity.Holder, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, total_purchases, total_spent, asset
		FROM holders
		WHERE id = ?
	`, string(id))

	var holderID, purchases, spent, asset string
	err := row.Scan(&holderID, &purchases, &spent, &asset)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get holder: %w", err)
	}

	h := entity.Holder{ID: entity.ID(holderID), Asset: entity.ID(asset)}
	if h.TotalPurchases, err = bigFromText(purchases); err != nil {
		return nil, fmt.Errorf("get holder: %w", err)
	}
	if h.TotalSpent, err = bigFromText(spent); err != nil {
		return nil, fmt.Errorf("get holder: %w", err)
	}
	return &h, nil
}

// GetPurchase returns the position with the given composite id, or
// (nil, nil) if absent.
func (s *Store) GetPurchase(ctx context.Context, id entity.ID) (*entity.Purchase, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, asset, holder, balance, amount_paid, purchased_at
		FROM purchases
		WHERE id = ?
	`, string(id))

	var purchaseID, asset, holder, balance, paid string
	var p entity.Purchase
	err := row.Scan(&purchaseID, &asset, &holder, &balance, &paid, &p.PurchasedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	p.ID = entity.ID(purchaseID)
	p.Asset = entity.ID(asset)
	p.Holder = entity.ID(holder)
	if p.Balance, err = bigFromText(balance); err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if p.AmountPaid, err = bigFromText(paid); err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetPurchasesByAsset returns every position row for one asset, ordered by
// id for deterministic iteration. Used by operators and conservation checks;
// the engine's handlers never range over positions.
func (s *Store) GetPurchasesByAsset(ctx context.Context, asset entity.ID) ([]*entity.Purchase, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, asset, holder, balance, amount_paid, purchased_at
		FROM purchases
		WHERE asset = ?
		ORDER BY id ASC
	`, string(asset))
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []*entity.Purchase{}
	for rows.Next() {
		var purchaseID, assetID, holder, balance, paid string
		var p entity.Purchase
		if err := rows.Scan(&purchaseID, &assetID, &holder, &balance, &paid, &p.PurchasedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.ID = entity.ID(purchaseID)
		p.Asset = entity.ID(assetID)
		p.Holder = entity.ID(holder)
		if p.Balance, err = bigFromText(balance); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if p.AmountPaid, err = bigFromText(paid); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return purchases, nil
}

// GetGlobalStats returns the singleton stats row, or (nil, nil) if no event
// has ever been processed.
func (s *Store) GetGlobalStats(ctx context.Context) (*entity.GlobalStats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, total_assets, total_creators, total_holders, total_users,
		       total_purchases, total_volume, total_revenue, total_asset_worth
		FROM global_stats
		WHERE id = ?
	`, string(entity.GlobalStatsID))

	var id string
	cols := make([]string, 8)
	err := row.Scan(&id, &cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get global stats: %w", err)
	}

	g := entity.GlobalStats{ID: entity.ID(id)}
	fields := []**big.Int{
		&g.TotalAssets, &g.TotalCreators, &g.TotalHolders, &g.TotalUsers,
		&g.TotalPurchases, &g.TotalVolume, &g.TotalRevenue, &g.TotalAssetWorth,
	}
	for i, col := range cols {
		if *fields[i], err = bigFromText(col); err != nil {
			return nil, fmt.Errorf("get global stats: %w", err)
		}
	}
	return &g, nil
}
