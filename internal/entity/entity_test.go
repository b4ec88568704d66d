package entity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntities_ZeroValued(t *testing.T) {
	a := NewAsset(ID("0x01"))
	assert.Equal(t, ZeroID, a.Creator)
	assert.Zero(t, a.PriceInWei.Sign())
	assert.Zero(t, a.TotalSubscriber.Sign())

	c := NewCreator(ID("0xaa"))
	assert.Zero(t, c.TotalAssets.Sign())
	assert.Zero(t, c.TotalEarnings.Sign())
	assert.Zero(t, c.TotalAssetWorth.Sign())
	assert.Zero(t, c.TotalSubscribers.Sign())

	h := NewHolder(ID("0xbb"))
	assert.Zero(t, h.TotalPurchases.Sign())
	assert.Zero(t, h.TotalSpent.Sign())
	assert.Equal(t, ZeroID, h.Asset)

	p := NewPurchase(ID("0xbb-0x01"))
	assert.Equal(t, ZeroID, p.Asset)
	assert.Equal(t, ZeroID, p.Holder)
	assert.Zero(t, p.Balance.Sign())

	g := NewGlobalStats()
	assert.Equal(t, GlobalStatsID, g.ID)
	assert.Zero(t, g.TotalUsers.Sign())
}

func TestPurchase_ApplyDelta_Additive(t *testing.T) {
	p := NewPurchase(ID("k"))
	p.ApplyDelta(big.NewInt(100))
	p.ApplyDelta(big.NewInt(-30))

	assert.Equal(t, "70", p.Balance.String())
}

func TestPurchase_ApplyDelta_MayGoNegative(t *testing.T) {
	p := NewPurchase(ID("k"))
	p.ApplyDelta(big.NewInt(-5))

	// Deltas are applied unchecked; the feed is trusted over re-derived
	// supply invariants.
	assert.Equal(t, "-5", p.Balance.String())
}

func TestPurchase_SetPosition_Overwrites(t *testing.T) {
	p := NewPurchase(ID("k"))
	p.SetPosition(big.NewInt(5), big.NewInt(5000), 1000)
	p.SetPosition(big.NewInt(3), big.NewInt(3000), 2000)

	// Snapshot semantics: the second purchase replaces the first, it does
	// not accumulate.
	assert.Equal(t, "3", p.Balance.String())
	assert.Equal(t, "3000", p.AmountPaid.String())
	assert.Equal(t, int64(2000), p.PurchasedAt)
}

func TestPurchase_SetPosition_CopiesInputs(t *testing.T) {
	p := NewPurchase(ID("k"))
	balance := big.NewInt(5)
	p.SetPosition(balance, big.NewInt(5000), 1000)

	balance.SetInt64(99)
	assert.Equal(t, "5", p.Balance.String(), "position must not alias caller's values")
}
