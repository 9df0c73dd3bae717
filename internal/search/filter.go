package search

import (
	"time"

	"jobscout-engine/internal/domain"
)

// Filters are the cross-source constraints applied to every record. They
// combine with logical AND; an unset constraint passes everything. When a
// filter is active and the record lacks the data to verify it (no salary,
// no posted date), the record is excluded rather than falsely passed.
type Filters struct {
	RemoteOnly bool
	MinSalary  *int
	MaxDaysOld *int
}

func FiltersFromParams(p Params) Filters {
	return Filters{
		RemoteOnly: p.RemoteOnly,
		MinSalary:  p.MinSalary,
		MaxDaysOld: p.MaxDaysOld,
	}
}

// Passes reports whether j satisfies every active constraint, with the
// posted-date window measured back from now.
func (f Filters) Passes(j domain.Job, now time.Time) bool {
	if f.RemoteOnly && !j.Remote {
		return false
	}

	if f.MinSalary != nil {
		sal := bestSalary(j)
		if sal == nil || *sal < *f.MinSalary {
			return false
		}
	}

	if f.MaxDaysOld != nil {
		if j.PostedAt == nil {
			return false
		}
		cutoff := now.AddDate(0, 0, -*f.MaxDaysOld)
		if j.PostedAt.Before(cutoff) {
			return false
		}
	}

	return true
}

// Apply filters jobs into a new slice, preserving order.
func (f Filters) Apply(jobs []domain.Job, now time.Time) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Passes(j, now) {
			out = append(out, j)
		}
	}
	return out
}

// bestSalary picks whichever figure the provider supplied, preferring the
// upper bound when both exist.
func bestSalary(j domain.Job) *int {
	if j.SalaryMax != nil {
		return j.SalaryMax
	}
	return j.SalaryMin
}
