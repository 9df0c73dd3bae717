package search

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/match"
	"jobscout-engine/internal/provider"
)

// ErrAllProvidersFailed is returned when no provider produced results.
// Partial failure is not an error: one healthy source is enough.
var ErrAllProvidersFailed = errors.New("all providers failed")

const defaultFetchTimeout = 30 * time.Second

// Result is the final answer for one search.
type Result struct {
	TotalResults   int          `json:"total_results"`
	Jobs           []domain.Job `json:"jobs"`
	SourcesQueried []string     `json:"sources_queried"`
}

// Aggregator fans a search out to every provider concurrently, concatenates
// the per-source lists in fixed priority order, then runs the single-threaded
// filter/dedupe/truncate pass. Nothing is shared between in-flight fetches;
// each writes its own slot.
type Aggregator struct {
	fetchers []provider.Fetcher
	matcher  *match.Matcher
	timeout  time.Duration
	now      func() time.Time
}

func NewAggregator(fetchers []provider.Fetcher, m *match.Matcher, fetchTimeout time.Duration) *Aggregator {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Aggregator{
		fetchers: fetchers,
		matcher:  m,
		timeout:  fetchTimeout,
		now:      time.Now,
	}
}

func (a *Aggregator) Search(ctx context.Context, p Params) (Result, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	q := provider.Query{
		Keywords:   p.Keywords,
		Location:   p.Location,
		RemoteOnly: p.RemoteOnly,
		MinSalary:  p.MinSalary,
		MaxDaysOld: p.MaxDaysOld,
		MaxResults: p.MaxResults,
	}

	// One slot per fetcher so priority order survives regardless of which
	// provider answers first.
	lists := make([][]domain.Job, len(a.fetchers))
	errs := make([]error, len(a.fetchers))

	var g errgroup.Group
	for i, f := range a.fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			jobs, err := f.Fetch(fctx, q)
			if err != nil {
				// best-effort: don't cancel sibling fetches
				log.Printf("[%s] fetch error: %v", f.Name(), err)
				errs[i] = err
				return nil
			}
			lists[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	var sources []string
	var combined []domain.Job
	for i, f := range a.fetchers {
		if errs[i] != nil {
			failed++
			continue
		}
		if len(lists[i]) > 0 {
			sources = append(sources, f.Name())
		}
		combined = append(combined, lists[i]...)
	}
	if len(a.fetchers) > 0 && failed == len(a.fetchers) {
		return Result{}, ErrAllProvidersFailed
	}

	combined = dropMalformed(combined, a.matcher.Normalizer())

	// Filtering before dedupe doesn't change membership, it just shrinks
	// the pairwise comparison pool.
	now := a.now()
	filtered := FiltersFromParams(p).Apply(combined, now)
	unique := match.Dedupe(filtered, a.matcher)

	if len(unique) > p.MaxResults {
		unique = unique[:p.MaxResults]
	}

	return Result{
		TotalResults:   len(unique),
		Jobs:           unique,
		SourcesQueried: sources,
	}, nil
}

// dropMalformed excludes records whose title or company normalize to
// nothing; they can't be deduplicated or meaningfully shown.
func dropMalformed(jobs []domain.Job, n *match.Normalizer) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if n.CompanyKey(j.Company) == "" {
			log.Printf("[search] dropping record with empty company title=%q source=%s", j.Title, j.Source)
			continue
		}
		if strings.TrimSpace(j.Title) == "" {
			log.Printf("[search] dropping record with empty title company=%q source=%s", j.Company, j.Source)
			continue
		}
		out = append(out, j)
	}
	return out
}
