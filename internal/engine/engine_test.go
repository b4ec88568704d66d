package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
	"github.com/dxlabs/dxindex/internal/testutil"
)

func TestProcess_AssetAddedThenBought(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	author := testutil.Addr(0x0a)
	buyer := testutil.Addr(0x0b)
	assetAddr := testutil.Addr(0x01)

	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, author, "Track One", 1000)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, buyer, 5)))

	assetID := entity.AssetIDFromAddress(assetAddr)
	asset, err := e.store.GetAsset(ctx, assetID)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "Track One", asset.Title)
	assert.Equal(t, testutil.FixtureCid, asset.ContentCid)
	assert.Equal(t, "1000", asset.PriceInWei.String())
	assert.Equal(t, entity.UserID(author), asset.Creator)
	assert.Equal(t, testutil.FixtureTimestamp, asset.CreatedAt)

	creator, err := e.store.GetCreator(ctx, entity.UserID(author))
	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, "1", creator.TotalAssets.String())

	holder, err := e.store.GetHolder(ctx, entity.UserID(buyer))
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, "1", holder.TotalPurchases.String())
	assert.Equal(t, "5000", holder.TotalSpent.String(), "spend is amount times listed price")

	purchase, err := e.store.GetPurchase(ctx, entity.PurchaseID(buyer, assetID))
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, "5", purchase.Balance.String())
	assert.Equal(t, "5000", purchase.AmountPaid.String())
	assert.Equal(t, testutil.FixtureTimestamp, purchase.PurchasedAt)
	assert.Equal(t, holder.ID, purchase.Holder)
	assert.Equal(t, assetID, purchase.Asset)

	g := globalStats(t, e)
	assert.Equal(t, "1", g.TotalAssets.String())
	assert.Equal(t, "1", g.TotalCreators.String())
	assert.Equal(t, "1", g.TotalHolders.String())
	assert.Equal(t, "2", g.TotalUsers.String())
	assert.Equal(t, "1", g.TotalPurchases.String())
	assert.Equal(t, "5000", g.TotalVolume.String())
	assert.Equal(t, "250", g.TotalRevenue.String(), "5% of 5000")
	assert.Equal(t, "1000", g.TotalAssetWorth.String())

	assert.Equal(t, int64(2), e.Seq())
}

func TestProcess_AssetReAdded_OverwritesFields(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	author := testutil.Addr(0x0a)
	assetAddr := testutil.Addr(0x01)

	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, author, "First", 1000)))
	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, author, "Second", 2500)))

	asset, err := e.store.GetAsset(ctx, entity.AssetIDFromAddress(assetAddr))
	require.NoError(t, err)
	assert.Equal(t, "Second", asset.Title)
	assert.Equal(t, "2500", asset.PriceInWei.String())

	// The re-add still counts as a listing event everywhere else.
	creator, err := e.store.GetCreator(ctx, entity.UserID(author))
	require.NoError(t, err)
	assert.Equal(t, "2", creator.TotalAssets.String())

	g := globalStats(t, e)
	assert.Equal(t, "2", g.TotalAssets.String())
	assert.Equal(t, "3500", g.TotalAssetWorth.String())
	assert.Equal(t, "1", g.TotalUsers.String())
}

func TestProcess_BuyUnlistedAsset_ZeroSpend(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	buyer := testutil.Addr(0x0b)
	assetAddr := testutil.Addr(0x01)

	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, buyer, 5)))

	assetID := entity.AssetIDFromAddress(assetAddr)
	asset, err := e.store.GetAsset(ctx, assetID)
	require.NoError(t, err)
	require.NotNil(t, asset, "buying an unlisted asset materializes a placeholder")
	assert.Equal(t, "0", asset.PriceInWei.String())

	purchase, err := e.store.GetPurchase(ctx, entity.PurchaseID(buyer, assetID))
	require.NoError(t, err)
	assert.Equal(t, "5", purchase.Balance.String())
	assert.Equal(t, "0", purchase.AmountPaid.String(), "zero price yields zero spend")

	g := globalStats(t, e)
	assert.Equal(t, "1", g.TotalPurchases.String())
	assert.Equal(t, "0", g.TotalVolume.String())
	assert.Equal(t, "0", g.TotalRevenue.String())
}

func TestProcess_RepeatPurchase_ResetsPosition(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	author := testutil.Addr(0x0a)
	buyer := testutil.Addr(0x0b)
	assetAddr := testutil.Addr(0x01)

	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, author, "Track", 100)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, buyer, 5)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, buyer, 2)))

	purchase, err := e.store.GetPurchase(ctx, entity.PurchaseID(buyer, entity.AssetIDFromAddress(assetAddr)))
	require.NoError(t, err)
	assert.Equal(t, "2", purchase.Balance.String(), "position snapshots the latest amount")
	assert.Equal(t, "200", purchase.AmountPaid.String())

	// Holder and global totals still accumulate across both purchases.
	holder, err := e.store.GetHolder(ctx, entity.UserID(buyer))
	require.NoError(t, err)
	assert.Equal(t, "2", holder.TotalPurchases.String())
	assert.Equal(t, "700", holder.TotalSpent.String())

	g := globalStats(t, e)
	assert.Equal(t, "2", g.TotalPurchases.String())
	assert.Equal(t, "700", g.TotalVolume.String())
}

func TestProcess_RevenueTruncatesPerEvent(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	author := testutil.Addr(0x0a)
	assetAddr := testutil.Addr(0x01)

	// Price 30, fee 5%: each purchase contributes floor(30*5/100) = 1.
	// Batching the two spends would give floor(60*5/100) = 3.
	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, author, "Track", 30)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, testutil.Addr(0x0b), 1)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, testutil.Addr(0x0c), 1)))

	g := globalStats(t, e)
	assert.Equal(t, "60", g.TotalVolume.String())
	assert.Equal(t, "2", g.TotalRevenue.String())
}

func TestProcess_CustomFeePercent(t *testing.T) {
	e := newTestEngine(t, WithFeePercent(10))
	ctx := context.Background()

	assetAddr := testutil.Addr(0x01)
	require.NoError(t, e.Process(ctx, testutil.AssetAdded(assetAddr, testutil.Addr(0x0a), "Track", 1000)))
	require.NoError(t, e.Process(ctx, testutil.AssetBought(assetAddr, testutil.Addr(0x0b), 1)))

	g := globalStats(t, e)
	assert.Equal(t, "100", g.TotalRevenue.String())
}

func TestProcess_MissingPayload_Malformed(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	types := []feed.EventType{
		feed.EventTypeAssetAdded,
		feed.EventTypeAssetBought,
		feed.EventTypePostCreated,
		feed.EventTypePostSubscribed,
		feed.EventTypeTransfer,
	}
	for _, typ := range types {
		err := e.Process(ctx, feed.Event{Type: typ})
		require.Error(t, err, typ.String())
		assert.True(t, IsMalformed(err), typ.String())
		assert.False(t, IsStoreFailure(err), typ.String())
	}
}

func TestProcess_UnknownType_Malformed(t *testing.T) {
	e := newTestEngine(t)

	err := e.Process(context.Background(), feed.Event{Type: feed.EventType(99)})
	require.Error(t, err)
	assert.True(t, IsMalformed(err))

	var ee *EventError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrCodeMalformed, ee.Code)
	assert.Equal(t, int64(1), ee.Seq)
}

func TestProcess_SeqAdvancesOnFailure(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.Error(t, e.Process(ctx, feed.Event{Type: feed.EventTypeTransfer}))
	require.NoError(t, e.Process(ctx, testutil.AssetAdded(testutil.Addr(0x01), testutil.Addr(0x0a), "Track", 1)))

	assert.Equal(t, int64(2), e.Seq(), "rejected events still consume a seq")
}

func TestWithClock_ResumesSequence(t *testing.T) {
	e := newTestEngine(t, WithClock(NewClockAt(100)))

	require.NoError(t, e.Process(context.Background(), testutil.AssetAdded(testutil.Addr(0x01), testutil.Addr(0x0a), "Track", 1)))
	assert.Equal(t, int64(101), e.Seq())
}
