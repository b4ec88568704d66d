package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
	"github.com/dxlabs/dxindex/internal/testutil"
)

func runEngine(t *testing.T, ctx context.Context, e *Engine) chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()
	return done
}

func waitRun(t *testing.T, done chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop in time")
		return nil
	}
}

func TestRun_DrainsQueueOnStop(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	author := testutil.Addr(0x0a)
	assetAddr := testutil.Addr(0x01)

	require.True(t, e.Enqueue(testutil.AssetAdded(assetAddr, author, "Track", 1000)))
	require.True(t, e.Enqueue(testutil.AssetBought(assetAddr, testutil.Addr(0x0b), 5)))
	require.True(t, e.Enqueue(testutil.AssetBought(assetAddr, testutil.Addr(0x0c), 2)))

	done := runEngine(t, ctx, e)
	e.Stop()
	require.NoError(t, waitRun(t, done))

	assert.Equal(t, int64(3), e.Seq(), "everything enqueued before Stop is processed")

	g, err := e.store.GetGlobalStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "2", g.TotalPurchases.String())
	assert.Equal(t, "7000", g.TotalVolume.String())
}

func TestRun_PreservesEnqueueOrder(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	buyer := testutil.Addr(0x0b)
	assetAddr := testutil.Addr(0x01)
	require.True(t, e.Enqueue(testutil.AssetAdded(assetAddr, testutil.Addr(0x0a), "Track", 100)))
	// Snapshot semantics make the last purchase win, so order is observable.
	require.True(t, e.Enqueue(testutil.AssetBought(assetAddr, buyer, 9)))
	require.True(t, e.Enqueue(testutil.AssetBought(assetAddr, buyer, 3)))

	done := runEngine(t, ctx, e)
	e.Stop()
	require.NoError(t, waitRun(t, done))

	p, err := e.store.GetPurchase(ctx, entity.PurchaseID(buyer, entity.AssetIDFromAddress(assetAddr)))
	require.NoError(t, err)
	assert.Equal(t, "3", p.Balance.String())
}

func TestRun_ContinuesPastFailedEvent(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	assetAddr := testutil.Addr(0x01)
	require.True(t, e.Enqueue(feed.Event{Type: feed.EventTypeAssetBought})) // nil payload
	require.True(t, e.Enqueue(testutil.AssetAdded(assetAddr, testutil.Addr(0x0a), "Track", 100)))

	done := runEngine(t, ctx, e)
	e.Stop()
	require.NoError(t, waitRun(t, done))

	m := e.Metrics()
	assert.Equal(t, uint64(1), m.Failed)
	assert.Equal(t, int64(2), m.Processed)

	// The event behind the failure still landed.
	a, err := e.store.GetAsset(ctx, entity.AssetIDFromAddress(assetAddr))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Track", a.Title)
}

func waitProcessed(t *testing.T, e *Engine, want int64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if e.Metrics().Processed >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("engine processed %d events, want %d", e.Metrics().Processed, want)
}

func TestRun_StaysAliveAfterDrainingOpenQueue(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	assetAddr := testutil.Addr(0x01)
	require.True(t, e.Enqueue(testutil.AssetAdded(assetAddr, testutil.Addr(0x0a), "Track", 1000)))

	done := runEngine(t, ctx, e)
	waitProcessed(t, e, 1)

	// The queue is empty but still open. The loop must keep waiting, not
	// mistake its coalesced availability signal for a shutdown, so a late
	// event still lands.
	require.True(t, e.Enqueue(testutil.AssetBought(assetAddr, testutil.Addr(0x0b), 5)))
	waitProcessed(t, e, 2)

	g, err := e.store.GetGlobalStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "5000", g.TotalVolume.String())

	e.Stop()
	require.NoError(t, waitRun(t, done))
}

func TestRun_ContextCancellation(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := runEngine(t, ctx, e)
	cancel()
	assert.ErrorIs(t, waitRun(t, done), context.Canceled)
}

func TestEnqueue_AfterStop(t *testing.T) {
	e := newTestEngine(t)
	e.Stop()

	ok := e.Enqueue(testutil.AssetAdded(testutil.Addr(0x01), testutil.Addr(0x0a), "Track", 1))
	assert.False(t, ok)
}
