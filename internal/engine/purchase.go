package engine

import (
	"context"
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
)

// handleAssetBought processes a purchase from the master variant. The spend
// is derived as amount times the asset's recorded price; if the asset was
// never listed, the resolve yields a zero-priced placeholder and the spend
// computes to zero. Accepted edge case - availability over strict
// referential integrity.
//
// The position balance is overwritten with the bought amount, not added to
// it. A repeat purchase of the same asset therefore resets the position
// rather than accumulating. Known latent defect in the source semantics,
// preserved verbatim; the transfer path is the additive one.
func (e *Engine) handleAssetBought(ctx context.Context, ev *feed.AssetBought) error {
	if err := e.classifyUser(ctx, ev.Buyer, false); err != nil {
		return err
	}

	assetID := entity.AssetIDFromAddress(ev.AssetAddress)
	asset, err := e.resolveAsset(ctx, assetID)
	if err != nil {
		return err
	}

	spend := new(big.Int).Mul(ev.Amount, asset.PriceInWei)

	holder, err := e.resolveHolder(ctx, entity.UserID(ev.Buyer))
	if err != nil {
		return err
	}
	holder.TotalPurchases.Add(holder.TotalPurchases, bigOne)
	holder.TotalSpent.Add(holder.TotalSpent, spend)
	if err := e.store.PutHolder(ctx, holder); err != nil {
		return err
	}

	purchase, err := e.resolvePurchase(ctx, entity.PurchaseID(ev.Buyer, assetID))
	if err != nil {
		return err
	}
	purchase.SetPosition(ev.Amount, spend, ev.BlockTimestamp)
	purchase.Holder = holder.ID
	purchase.Asset = assetID
	if err := e.store.PutPurchase(ctx, purchase); err != nil {
		return err
	}

	return e.bumpGlobalStats(ctx, statsDelta{
		purchases: bigOne,
		volume:    spend,
		revenue:   e.platformFee(spend),
	})
}

// handlePostSubscribed processes a subscription from the marketplace
// variant. The spend arrives pre-computed in the event. Earnings are
// credited to the asset's recorded creator, so subscribing to a never-listed
// token credits the zero creator.
//
// Subscriptions carry no quantity and maintain no position row; only the
// transfer handler moves marketplace balances.
func (e *Engine) handlePostSubscribed(ctx context.Context, ev *feed.PostSubscribed) error {
	if err := e.classifyUser(ctx, ev.Subscriber, false); err != nil {
		return err
	}

	asset, err := e.resolveAsset(ctx, entity.AssetIDFromToken(ev.TokenID))
	if err != nil {
		return err
	}
	asset.TotalSubscriber.Add(asset.TotalSubscriber, bigOne)
	if err := e.store.PutAsset(ctx, asset); err != nil {
		return err
	}

	creator, err := e.resolveCreator(ctx, asset.Creator)
	if err != nil {
		return err
	}
	creator.TotalSubscribers.Add(creator.TotalSubscribers, bigOne)
	creator.TotalEarnings.Add(creator.TotalEarnings, ev.TotalCost)
	if err := e.store.PutCreator(ctx, creator); err != nil {
		return err
	}

	holder, err := e.resolveHolder(ctx, entity.UserID(ev.Subscriber))
	if err != nil {
		return err
	}
	holder.TotalPurchases.Add(holder.TotalPurchases, bigOne)
	holder.TotalSpent.Add(holder.TotalSpent, ev.TotalCost)
	holder.Asset = asset.ID
	if err := e.store.PutHolder(ctx, holder); err != nil {
		return err
	}

	return e.bumpGlobalStats(ctx, statsDelta{
		purchases: bigOne,
		volume:    ev.TotalCost,
		revenue:   e.platformFee(ev.TotalCost),
	})
}
