package entity

import "math/big"

// Asset is one piece of listed content: an asset contract in the master
// variant, a post token in the marketplace variant.
type Asset struct {
	ID              ID
	Creator         ID
	ContentCid      string
	Title           string
	ThumbnailCid    string
	PriceInWei      *big.Int
	CreatedAt       int64
	TotalSubscriber *big.Int // marketplace variant
}

// NewAsset returns a zero-valued Asset for lazy creation on first reference.
func NewAsset(id ID) *Asset {
	return &Asset{
		ID:              id,
		Creator:         ZeroID,
		PriceInWei:      new(big.Int),
		TotalSubscriber: new(big.Int),
	}
}

// Creator aggregates per-author totals across all of their assets.
type Creator struct {
	ID               ID
	TotalAssets      *big.Int
	TotalEarnings    *big.Int
	TotalAssetWorth  *big.Int // marketplace variant
	TotalSubscribers *big.Int // marketplace variant
}

// NewCreator returns a zero-valued Creator.
func NewCreator(id ID) *Creator {
	return &Creator{
		ID:               id,
		TotalAssets:      new(big.Int),
		TotalEarnings:    new(big.Int),
		TotalAssetWorth:  new(big.Int),
		TotalSubscribers: new(big.Int),
	}
}

// Holder aggregates per-buyer totals across all of their purchases.
type Holder struct {
	ID             ID
	TotalPurchases *big.Int
	TotalSpent     *big.Int
	Asset          ID // last-touched asset, marketplace variant
}

// NewHolder returns a zero-valued Holder.
func NewHolder(id ID) *Holder {
	return &Holder{
		ID:             id,
		TotalPurchases: new(big.Int),
		TotalSpent:     new(big.Int),
		Asset:          ZeroID,
	}
}

// Purchase is a position: how many units of one asset one holder currently
// controls. There is exactly one row per (holder, asset) pair, created lazily
// on first contact and never deleted.
//
// Balance is the only counter in the system that may decrease. Transfers may
// drive it negative when the feed disagrees with actual supply; the engine
// does not clamp (see Transfer handler).
type Purchase struct {
	ID          ID
	Asset       ID
	Holder      ID
	Balance     *big.Int
	AmountPaid  *big.Int
	PurchasedAt int64
}

// NewPurchase returns a zero-valued Purchase.
func NewPurchase(id ID) *Purchase {
	return &Purchase{
		ID:         id,
		Asset:      ZeroID,
		Holder:     ZeroID,
		Balance:    new(big.Int),
		AmountPaid: new(big.Int),
	}
}

// ApplyDelta shifts the position balance by delta (positive or negative).
// This is the transfer path. It deliberately shares nothing with SetPosition:
// the two mutation semantics must never be merged.
func (p *Purchase) ApplyDelta(delta *big.Int) {
	p.Balance = new(big.Int).Add(p.Balance, delta)
}

// SetPosition overwrites the position with a fresh snapshot from a purchase
// or subscription event. The overwrite (not additive) balance is preserved
// source behavior: a repeat purchase of the same asset resets the balance.
func (p *Purchase) SetPosition(balance, amountPaid *big.Int, purchasedAt int64) {
	p.Balance = new(big.Int).Set(balance)
	p.AmountPaid = new(big.Int).Set(amountPaid)
	p.PurchasedAt = purchasedAt
}

// GlobalStats is the singleton rolling-totals record updated as a side effect
// of every handler. All fields are monotonically non-decreasing.
type GlobalStats struct {
	ID              ID
	TotalAssets     *big.Int
	TotalCreators   *big.Int
	TotalHolders    *big.Int
	TotalUsers      *big.Int
	TotalPurchases  *big.Int
	TotalVolume     *big.Int
	TotalRevenue    *big.Int
	TotalAssetWorth *big.Int
}

// NewGlobalStats returns the zero-valued singleton row.
func NewGlobalStats() *GlobalStats {
	return &GlobalStats{
		ID:              GlobalStatsID,
		TotalAssets:     new(big.Int),
		TotalCreators:   new(big.Int),
		TotalHolders:    new(big.Int),
		TotalUsers:      new(big.Int),
		TotalPurchases:  new(big.Int),
		TotalVolume:     new(big.Int),
		TotalRevenue:    new(big.Int),
		TotalAssetWorth: new(big.Int),
	}
}
