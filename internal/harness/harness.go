package harness

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dxlabs/dxindex/internal/engine"
	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
	"github.com/dxlabs/dxindex/internal/store"
)

// Result is the final state of one scenario run. Close releases the backing
// store once assertions are done.
type Result struct {
	Stats   *entity.GlobalStats
	Metrics engine.MetricsSnapshot

	store *store.Store
}

// Close releases the scenario's in-memory store.
func (r *Result) Close() error {
	return r.store.Close()
}

// Purchase loads one position row from the final state, or nil if the
// scenario never created it.
func (r *Result) Purchase(ctx context.Context, holder entity.Address, asset entity.ID) (*entity.Purchase, error) {
	return r.store.GetPurchase(ctx, entity.PurchaseID(holder, asset))
}

// Holder loads one holder row from the final state.
func (r *Result) Holder(ctx context.Context, addr entity.Address) (*entity.Holder, error) {
	return r.store.GetHolder(ctx, entity.UserID(addr))
}

// Creator loads one creator row from the final state.
func (r *Result) Creator(ctx context.Context, addr entity.Address) (*entity.Creator, error) {
	return r.store.GetCreator(ctx, entity.UserID(addr))
}

// Run executes a scenario against a fresh in-memory store: every event is
// serialized to its wire form, decoded through the feed boundary and
// processed in order. Any decode or processing error aborts the scenario -
// conformance scenarios describe valid feeds.
func Run(ctx context.Context, s *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithRunToken("scenario-" + s.Name)}
	if s.FeePercent != nil {
		opts = append(opts, engine.WithFeePercent(*s.FeePercent))
	}
	eng := engine.New(st, opts...)

	for i, raw := range s.Events {
		line, err := json.Marshal(raw)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("scenario %s: event %d: %w", s.Name, i, err)
		}
		ev, err := feed.Decode(line)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("scenario %s: event %d: %w", s.Name, i, err)
		}
		if err := eng.Process(ctx, ev); err != nil {
			st.Close()
			return nil, fmt.Errorf("scenario %s: event %d: %w", s.Name, i, err)
		}
	}

	stats, err := st.GetGlobalStats(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}
	if stats == nil {
		// A scenario of nothing but mints/burns never touches the store.
		stats = entity.NewGlobalStats()
	}

	return &Result{
		Stats:   stats,
		Metrics: eng.Metrics(),
		store:   st,
	}, nil
}
