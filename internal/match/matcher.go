package match

import (
	"strings"

	"jobscout-engine/internal/domain"
)

// DefaultThreshold is the title overlap ratio at or above which two
// postings from the same company are considered the same job.
const DefaultThreshold = 0.6

// Matcher decides whether two job records describe the same posting.
// Company equality is a hard gate; titles are compared by Jaccard overlap
// of their canonical token sets.
type Matcher struct {
	norm      *Normalizer
	threshold float64
}

func NewMatcher(norm *Normalizer, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{norm: norm, threshold: threshold}
}

func (m *Matcher) Normalizer() *Normalizer { return m.norm }

// Same reports whether a and b are duplicates.
func (m *Matcher) Same(a, b domain.Job) bool {
	if m.norm.CompanyKey(a.Company) != m.norm.CompanyKey(b.Company) {
		return false
	}
	return m.SimilarTitle(a.Title, b.Title)
}

// SimilarTitle compares two titles by Jaccard overlap (intersection over
// union) of their canonical token sets. When either set is empty the ratio
// is undefined, so it falls back to exact lower-cased title equality.
func (m *Matcher) SimilarTitle(a, b string) bool {
	ta := m.norm.TitleTokens(a)
	tb := m.norm.TitleTokens(b)

	if len(ta) == 0 || len(tb) == 0 {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	inter := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter

	return float64(inter)/float64(union) >= m.threshold
}
