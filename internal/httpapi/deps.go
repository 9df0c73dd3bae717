package httpapi

import (
	"context"
	"sync/atomic"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/search"
)

// Searcher is what handlers need from the aggregator; injected so handler
// tests can stub it.
type Searcher interface {
	Search(ctx context.Context, p search.Params) (search.Result, error)
}

type Deps struct {
	Agg Searcher

	// CfgVal stores config.Config; handlers read the live value so a PUT
	// /config takes effect without a restart.
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
