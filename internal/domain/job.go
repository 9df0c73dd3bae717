package domain

import "time"

// Source identifies which provider produced a job. The order of Sources()
// is the fixed priority order: when two records are judged duplicates, the
// one from the earlier source survives.
type Source string

const (
	SourceAdzuna Source = "adzuna"
	SourceReed   Source = "reed"
	SourceEmail  Source = "email"
)

var sourceOrder = []Source{SourceAdzuna, SourceReed, SourceEmail}

func Sources() []Source {
	out := make([]Source, len(sourceOrder))
	copy(out, sourceOrder)
	return out
}

// Priority returns the rank of s in the fixed source order; lower wins.
// Unknown sources sort last.
func (s Source) Priority() int {
	for i, v := range sourceOrder {
		if v == s {
			return i
		}
	}
	return len(sourceOrder)
}

// Job is the canonical, source-agnostic representation of one listing.
// Providers translate their own response schemas into this shape; nothing
// downstream mutates a Job, components only filter and select among them.
type Job struct {
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	SalaryMin        *int       `json:"salary_min,omitempty"`
	SalaryMax        *int       `json:"salary_max,omitempty"`
	Remote           bool       `json:"remote"`
	WorkMode         string     `json:"work_mode"` // Remote/Hybrid/Onsite/Unknown
	PostedAt         *time.Time `json:"posted_at,omitempty"`
	Source           Source     `json:"source"`
	URL              string     `json:"url"`
	Description      string     `json:"description"`
	CareersSearchURL string     `json:"careers_search_url,omitempty"`
}
