package engine

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
)

// handleTransfer processes an ownership movement between two positions.
//
// Mint (absent from) and burn (absent to) events are ignored entirely: no
// entity is resolved or touched, the skip is counted for operators. A
// holder-to-holder move applies a delta to each side's position - unlike the
// purchase path, which overwrites. Transfers redistribute existing supply,
// so GlobalStats never changes here.
//
// The from balance is not checked for sufficiency before subtracting; a feed
// inconsistent with actual token supply drives it negative. The feed is
// trusted rather than second-guessed.
func (e *Engine) handleTransfer(ctx context.Context, ev *feed.Transfer) error {
	if ev.IsMint() {
		e.metrics.mintsSkipped.Add(1)
		slog.Debug("skipping mint transfer",
			"run", e.runToken,
			"asset", ev.AssetAddress.Hex(),
			"value", ev.Value.String(),
		)
		return nil
	}
	if ev.IsBurn() {
		e.metrics.burnsSkipped.Add(1)
		slog.Debug("skipping burn transfer",
			"run", e.runToken,
			"asset", ev.AssetAddress.Hex(),
			"value", ev.Value.String(),
		)
		return nil
	}

	asset, err := e.resolveAsset(ctx, entity.AssetIDFromAddress(ev.AssetAddress))
	if err != nil {
		return err
	}

	from, err := e.resolvePurchase(ctx, entity.PurchaseID(*ev.From, asset.ID))
	if err != nil {
		return err
	}
	from.ApplyDelta(new(big.Int).Neg(ev.Value))
	if err := e.store.PutPurchase(ctx, from); err != nil {
		return err
	}

	to, err := e.resolvePurchase(ctx, entity.PurchaseID(*ev.To, asset.ID))
	if err != nil {
		return err
	}
	to.ApplyDelta(ev.Value)
	to.Holder = entity.UserID(*ev.To)
	to.Asset = asset.ID
	return e.store.PutPurchase(ctx, to)
}
