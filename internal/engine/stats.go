package engine

import (
	"context"
	"math/big"
)

// statsDelta is one event's contribution to the GlobalStats singleton.
// A nil field means no change. All deltas are non-negative; every stats
// field is monotonically non-decreasing.
type statsDelta struct {
	assets     *big.Int
	purchases  *big.Int
	volume     *big.Int
	revenue    *big.Int
	assetWorth *big.Int
}

// bumpGlobalStats folds one event's delta into the singleton stats row.
// The row is resolved fresh from the store each time - within a handler this
// observes any earlier classify-time save of the same row.
func (e *Engine) bumpGlobalStats(ctx context.Context, d statsDelta) error {
	stats, err := e.resolveGlobalStats(ctx)
	if err != nil {
		return err
	}

	add(stats.TotalAssets, d.assets)
	add(stats.TotalPurchases, d.purchases)
	add(stats.TotalVolume, d.volume)
	add(stats.TotalRevenue, d.revenue)
	add(stats.TotalAssetWorth, d.assetWorth)

	return e.store.PutGlobalStats(ctx, stats)
}

func add(total, delta *big.Int) {
	if delta != nil {
		total.Add(total, delta)
	}
}
