package match

import "jobscout-engine/internal/domain"

// Dedupe removes duplicate postings from jobs, keeping the first occurrence
// of each duplicate group. Callers concatenate provider results in fixed
// source-priority order before this pass, so the survivor is always the one
// from the highest-priority source. Pairwise comparison is O(n²), which is
// fine with result sets capped at a couple hundred records.
func Dedupe(jobs []domain.Job, m *Matcher) []domain.Job {
	kept := make([]domain.Job, 0, len(jobs))

	for _, j := range jobs {
		dup := false
		for _, k := range kept {
			if m.Same(j, k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, j)
		}
	}
	return kept
}
