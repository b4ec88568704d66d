package engine

import (
	"context"
	"math/big"

	"github.com/dxlabs/dxindex/internal/feed"
	"github.com/dxlabs/dxindex/internal/store"
)

// DefaultFeePercent is the platform fee applied to purchase volume when no
// explicit fee is configured.
const DefaultFeePercent = 5

var bigOne = big.NewInt(1)

// Engine applies decoded feed events to the entity store.
//
// All mutation happens either through Process (called by the owner, one
// event at a time) or inside the single-writer Run loop goroutine. The
// engine retains no mutable aggregate state of its own between events;
// everything lives in the store, including the GlobalStats singleton, which
// is fetched and saved explicitly like any other entity.
type Engine struct {
	store      *store.Store
	clock      *Clock
	queue      *eventQueue
	metrics    Metrics
	feePercent *big.Int
	runToken   string
}

// Option configures an Engine.
type Option func(*Engine)

// WithFeePercent sets the platform fee percentage used for revenue
// accounting. The fee is an integer percentage; revenue is computed with
// truncating integer division per event.
func WithFeePercent(percent int) Option {
	return func(e *Engine) {
		e.feePercent = big.NewInt(int64(percent))
	}
}

// WithRunToken sets a correlation token included in every log line the
// engine emits. Drivers generate one token per run.
func WithRunToken(token string) Option {
	return func(e *Engine) {
		e.runToken = token
	}
}

// WithClock sets a pre-positioned sequence clock, for drivers resuming a
// feed from a known offset.
func WithClock(clock *Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// New creates an Engine over the given store.
func New(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:      s,
		clock:      NewClock(),
		queue:      newEventQueue(),
		feePercent: big.NewInt(DefaultFeePercent),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Process applies one decoded event to the store, synchronously to
// completion. On error the event is considered unprocessed: the engine does
// not retry, roll back or skip - the caller owns that decision. The two
// intentional no-op cases (mint and burn transfers) return nil and are
// counted, not errored.
func (e *Engine) Process(ctx context.Context, ev feed.Event) error {
	seq := e.clock.Next()

	var err error
	switch ev.Type {
	case feed.EventTypeAssetAdded:
		if ev.AssetAdded == nil {
			return newMalformedError(ev.Type, seq, "event missing AssetAdded payload")
		}
		err = e.handleAssetAdded(ctx, ev.AssetAdded)

	case feed.EventTypeAssetBought:
		if ev.AssetBought == nil {
			return newMalformedError(ev.Type, seq, "event missing AssetBought payload")
		}
		err = e.handleAssetBought(ctx, ev.AssetBought)

	case feed.EventTypePostCreated:
		if ev.PostCreated == nil {
			return newMalformedError(ev.Type, seq, "event missing PostCreated payload")
		}
		err = e.handlePostCreated(ctx, ev.PostCreated)

	case feed.EventTypePostSubscribed:
		if ev.PostSubscribed == nil {
			return newMalformedError(ev.Type, seq, "event missing PostSubscribed payload")
		}
		err = e.handlePostSubscribed(ctx, ev.PostSubscribed)

	case feed.EventTypeTransfer:
		if ev.Transfer == nil {
			return newMalformedError(ev.Type, seq, "event missing Transfer payload")
		}
		err = e.handleTransfer(ctx, ev.Transfer)

	default:
		return newMalformedError(ev.Type, seq, "unknown event type")
	}

	if err != nil {
		return newStoreError(ev.Type, seq, err)
	}
	return nil
}

// Seq returns the sequence number of the last processed event.
func (e *Engine) Seq() int64 {
	return e.clock.Current()
}

// platformFee derives the platform's cut of one spend: spend * feePercent /
// 100, truncating. Truncation happens here, per event; accumulating volume
// and taking the fee once at the end gives a different (wrong) total.
func (e *Engine) platformFee(spend *big.Int) *big.Int {
	fee := new(big.Int).Mul(spend, e.feePercent)
	return fee.Quo(fee, big.NewInt(100))
}
