package match

import (
	"strings"
	"unicode"
)

// Normalizer turns raw title/company strings into comparable canonical
// forms. The filler-word set is injected config, not hidden state, since it
// directly determines match outcomes.
type Normalizer struct {
	filler map[string]struct{}
}

func NewNormalizer(fillerWords []string) *Normalizer {
	f := make(map[string]struct{}, len(fillerWords))
	for _, w := range fillerWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		f[w] = struct{}{}
	}
	return &Normalizer{filler: f}
}

// TitleTokens returns the canonical token set for a job title: lower-cased,
// punctuation treated as word separators, filler words and duplicates
// dropped. The set is empty when every word is filler.
func (n *Normalizer) TitleTokens(title string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		if _, skip := n.filler[w]; skip {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// CompanyKey is the sole company comparison key: lower-cased, trimmed,
// inner whitespace collapsed. Equality on it is exact, never fuzzy.
func (n *Normalizer) CompanyKey(company string) string {
	return strings.ToLower(strings.Join(strings.Fields(company), " "))
}
