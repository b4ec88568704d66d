package engine

import (
	"context"

	"github.com/dxlabs/dxindex/internal/entity"
)

// classifyUser runs the user-classification rule for one address. Invoked at
// the start of every creation and purchase handler, before any other
// mutation.
//
// An address counts toward totalUsers exactly once, on its very first
// appearance in either role. Each role counter bumps the first time that
// role is observed for the address, so an address first seen as a creator
// and later transacting as a holder bumps totalHolders then - but not
// totalUsers again.
func (e *Engine) classifyUser(ctx context.Context, addr entity.Address, isCreatorRole bool) error {
	id := entity.UserID(addr)

	creator, err := e.store.GetCreator(ctx, id)
	if err != nil {
		return err
	}
	holder, err := e.store.GetHolder(ctx, id)
	if err != nil {
		return err
	}
	stats, err := e.resolveGlobalStats(ctx)
	if err != nil {
		return err
	}

	if creator == nil && holder == nil {
		stats.TotalUsers.Add(stats.TotalUsers, bigOne)
	}

	if isCreatorRole && creator == nil {
		if _, err := e.resolveCreator(ctx, id); err != nil {
			return err
		}
		stats.TotalCreators.Add(stats.TotalCreators, bigOne)
	}

	if !isCreatorRole && holder == nil {
		if _, err := e.resolveHolder(ctx, id); err != nil {
			return err
		}
		stats.TotalHolders.Add(stats.TotalHolders, bigOne)
	}

	return e.store.PutGlobalStats(ctx, stats)
}
