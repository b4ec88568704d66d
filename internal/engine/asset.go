package engine

import (
	"context"
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
)

// handleAssetAdded processes an asset listing from the master variant:
// classify the author as a creator, upsert the asset's descriptive fields,
// credit the creator's asset count and fold the price into global worth.
//
// Re-adding an asset with the same address overwrites its fields. That is
// intentional idempotent-upsert behavior, not a collision.
func (e *Engine) handleAssetAdded(ctx context.Context, ev *feed.AssetAdded) error {
	if err := e.classifyUser(ctx, ev.Author, true); err != nil {
		return err
	}

	asset, err := e.resolveAsset(ctx, entity.AssetIDFromAddress(ev.AssetAddress))
	if err != nil {
		return err
	}
	asset.ContentCid = ev.ContentCid
	asset.Title = ev.Title
	asset.ThumbnailCid = ev.ThumbnailCid
	asset.PriceInWei = new(big.Int).Set(ev.PriceInWei)
	asset.CreatedAt = ev.BlockTimestamp

	creator, err := e.resolveCreator(ctx, entity.UserID(ev.Author))
	if err != nil {
		return err
	}
	creator.TotalAssets.Add(creator.TotalAssets, bigOne)
	if err := e.store.PutCreator(ctx, creator); err != nil {
		return err
	}

	asset.Creator = creator.ID
	if err := e.store.PutAsset(ctx, asset); err != nil {
		return err
	}

	return e.bumpGlobalStats(ctx, statsDelta{assets: bigOne, assetWorth: asset.PriceInWei})
}

// handlePostCreated processes a post listing from the marketplace variant.
// Identical to handleAssetAdded except the asset is keyed by token id and
// the creator additionally accrues the listing price as asset worth.
func (e *Engine) handlePostCreated(ctx context.Context, ev *feed.PostCreated) error {
	if err := e.classifyUser(ctx, ev.Author, true); err != nil {
		return err
	}

	asset, err := e.resolveAsset(ctx, entity.AssetIDFromToken(ev.TokenID))
	if err != nil {
		return err
	}
	asset.ContentCid = ev.ContentCid
	asset.Title = ev.Title
	asset.ThumbnailCid = ev.ThumbnailCid
	asset.PriceInWei = new(big.Int).Set(ev.PriceInWei)
	asset.CreatedAt = ev.BlockTimestamp

	creator, err := e.resolveCreator(ctx, entity.UserID(ev.Author))
	if err != nil {
		return err
	}
	creator.TotalAssets.Add(creator.TotalAssets, bigOne)
	creator.TotalAssetWorth.Add(creator.TotalAssetWorth, asset.PriceInWei)
	if err := e.store.PutCreator(ctx, creator); err != nil {
		return err
	}

	asset.Creator = creator.ID
	if err := e.store.PutAsset(ctx, asset); err != nil {
		return err
	}

	return e.bumpGlobalStats(ctx, statsDelta{assets: bigOne, assetWorth: asset.PriceInWei})
}
