package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobscout-engine/internal/domain"
)

func TestFiltersPasses(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	tests := []struct {
		name    string
		filters Filters
		job     domain.Job
		want    bool
	}{
		{
			name:    "no filters pass everything",
			filters: Filters{},
			job:     domain.Job{Title: "Dev", Company: "Acme"},
			want:    true,
		},
		{
			name:    "remote only excludes onsite",
			filters: Filters{RemoteOnly: true},
			job:     domain.Job{Remote: false},
			want:    false,
		},
		{
			name:    "remote only keeps remote",
			filters: Filters{RemoteOnly: true},
			job:     domain.Job{Remote: true},
			want:    true,
		},
		{
			name:    "min salary met by upper bound",
			filters: Filters{MinSalary: intp(35000)},
			job:     domain.Job{SalaryMin: intp(30000), SalaryMax: intp(40000)},
			want:    true,
		},
		{
			name:    "min salary uses upper bound when both present",
			filters: Filters{MinSalary: intp(35000)},
			job:     domain.Job{SalaryMin: intp(20000), SalaryMax: intp(34000)},
			want:    false,
		},
		{
			name:    "min salary falls back to lower bound",
			filters: Filters{MinSalary: intp(30000)},
			job:     domain.Job{SalaryMin: intp(30000)},
			want:    true,
		},
		{
			name:    "min salary excludes unknown salary",
			filters: Filters{MinSalary: intp(30000)},
			job:     domain.Job{},
			want:    false,
		},
		{
			name:    "max days old keeps recent",
			filters: Filters{MaxDaysOld: intp(10)},
			job:     domain.Job{PostedAt: daysAgo(3)},
			want:    true,
		},
		{
			name:    "max days old boundary is inclusive",
			filters: Filters{MaxDaysOld: intp(10)},
			job:     domain.Job{PostedAt: daysAgo(10)},
			want:    true,
		},
		{
			name:    "max days old excludes stale",
			filters: Filters{MaxDaysOld: intp(10)},
			job:     domain.Job{PostedAt: daysAgo(11)},
			want:    false,
		},
		{
			name:    "max days old excludes undated",
			filters: Filters{MaxDaysOld: intp(10)},
			job:     domain.Job{},
			want:    false,
		},
		{
			name:    "filters combine with AND",
			filters: Filters{RemoteOnly: true, MinSalary: intp(30000)},
			job:     domain.Job{Remote: true, SalaryMax: intp(25000)},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Passes(tt.job, now))
		})
	}
}

func TestFiltersApply(t *testing.T) {
	now := time.Now()
	jobs := []domain.Job{
		{Title: "A", Remote: true},
		{Title: "B", Remote: false},
		{Title: "C", Remote: true},
	}

	out := Filters{RemoteOnly: true}.Apply(jobs, now)
	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "C", out[1].Title)
}
