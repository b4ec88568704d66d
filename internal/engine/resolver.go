package engine

import (
	"context"

	"github.com/dxlabs/dxindex/internal/entity"
)

// Load-or-create resolution, one function per entity kind.
//
// A miss is the normal first-contact case, not an error: the resolver
// synthesizes a zero-valued entity, persists it immediately and returns it,
// so a later load within the same event observes it. Handlers never
// construct entities directly - every mutation starts from a resolve.

func (e *Engine) resolveAsset(ctx context.Context, id entity.ID) (*entity.Asset, error) {
	a, err := e.store.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if a != nil {
		return a, nil
	}
	a = entity.NewAsset(id)
	if err := e.store.PutAsset(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (e *Engine) resolveCreator(ctx context.Context, id entity.ID) (*entity.Creator, error) {
	c, err := e.store.GetCreator(ctx, id)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = entity.NewCreator(id)
	if err := e.store.PutCreator(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (e *Engine) resolveHolder(ctx context.Context, id entity.ID) (*entity.Holder, error) {
	h, err := e.store.GetHolder(ctx, id)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}
	h = entity.NewHolder(id)
	if err := e.store.PutHolder(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (e *Engine) resolvePurchase(ctx context.Context, id entity.ID) (*entity.Purchase, error) {
	p, err := e.store.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	p = entity.NewPurchase(id)
	if err := e.store.PutPurchase(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (e *Engine) resolveGlobalStats(ctx context.Context) (*entity.GlobalStats, error) {
	g, err := e.store.GetGlobalStats(ctx)
	if err != nil {
		return nil, err
	}
	if g != nil {
		return g, nil
	}
	g = entity.NewGlobalStats()
	if err := e.store.PutGlobalStats(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
