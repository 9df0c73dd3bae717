package provider

import (
	"context"
	"errors"

	"jobscout-engine/internal/domain"
)

// ErrNotConfigured means a provider has no usable credentials. The
// aggregator treats it like any other fetch failure: log and move on.
var ErrNotConfigured = errors.New("provider not configured")

// Query is the uniform search request every provider understands. Filters
// the upstream API supports natively are pushed down; the rest are applied
// again by the search layer, so providers may over-return but never have to
// replicate filter semantics exactly.
type Query struct {
	Keywords   string
	Location   string
	RemoteOnly bool
	MinSalary  *int
	MaxDaysOld *int
	MaxResults int
}

// Fetcher is the provider collaborator contract: fetch and translate one
// source's listings into canonical job records, or fail. Provider-specific
// schema quirks never leak past this boundary.
type Fetcher interface {
	Name() string
	Source() domain.Source
	Fetch(ctx context.Context, q Query) ([]domain.Job, error)
}
