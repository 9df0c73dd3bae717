package search

import (
	"fmt"
	"strings"
)

const (
	DefaultLocation   = "london"
	DefaultMaxResults = 50
	MaxResultsCap     = 200
	MaxDaysOldCap     = 30
)

// Params are the caller-supplied search parameters. Zero values for the
// optional fields impose no restriction.
type Params struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	RemoteOnly bool   `json:"remote_only"`
	MinSalary  *int   `json:"min_salary,omitempty"`
	MaxDaysOld *int   `json:"max_days_old,omitempty"`
	MaxResults int    `json:"max_results"`
}

// InvalidParamsError is a caller-input error, raised before any provider
// fetch is attempted. It is not a system fault.
type InvalidParamsError struct {
	Problems []string
}

func (e *InvalidParamsError) Error() string {
	return "invalid search parameters: " + strings.Join(e.Problems, "; ")
}

// Normalize fills defaults in place: location "london", max_results 50.
func (p *Params) Normalize() {
	p.Keywords = strings.TrimSpace(p.Keywords)
	p.Location = strings.TrimSpace(p.Location)
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	if p.MaxResults == 0 {
		p.MaxResults = DefaultMaxResults
	}
}

// Validate checks bounds after Normalize. All problems are reported at
// once rather than first-error-wins.
func (p Params) Validate() error {
	var probs []string

	if p.Keywords == "" {
		probs = append(probs, "keywords is required")
	}
	if p.MaxResults < 1 || p.MaxResults > MaxResultsCap {
		probs = append(probs, fmt.Sprintf("max_results must be 1..%d", MaxResultsCap))
	}
	if p.MinSalary != nil && *p.MinSalary < 0 {
		probs = append(probs, "min_salary must be >= 0")
	}
	if p.MaxDaysOld != nil && (*p.MaxDaysOld < 1 || *p.MaxDaysOld > MaxDaysOldCap) {
		probs = append(probs, fmt.Sprintf("max_days_old must be 1..%d", MaxDaysOldCap))
	}

	if len(probs) > 0 {
		return &InvalidParamsError{Problems: probs}
	}
	return nil
}
