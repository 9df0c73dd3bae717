package util

import (
	"net/url"
	"strings"
)

// Work-mode labels shared by all providers.
const (
	WorkModeRemote  = "Remote"
	WorkModeHybrid  = "Hybrid"
	WorkModeOnsite  = "Onsite"
	WorkModeUnknown = "Unknown"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// InferWorkMode guesses a work mode from listing text. Providers rarely
// expose a structured flag, so this is a keyword heuristic over whatever
// text is available.
func InferWorkMode(texts ...string) string {
	blob := strings.ToLower(strings.Join(texts, " "))

	hasRemote := strings.Contains(blob, "remote") || strings.Contains(blob, "work from home")
	hasHybrid := strings.Contains(blob, "hybrid")

	switch {
	case hasHybrid:
		return WorkModeHybrid
	case hasRemote:
		return WorkModeRemote
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") ||
		strings.Contains(blob, "on site") || strings.Contains(blob, "in-office"):
		return WorkModeOnsite
	default:
		return WorkModeUnknown
	}
}

// IsRemoteMode reports whether a work mode should pass a remote-only
// filter. Hybrid counts: the caller asked for jobs they don't have to be
// in an office for every day.
func IsRemoteMode(mode string) bool {
	return mode == WorkModeRemote || mode == WorkModeHybrid
}

// TruncateDescription caps free-text descriptions; matching never reads
// them and full postings live behind the job URL anyway.
func TruncateDescription(s string, max int) string {
	s = CleanText(s)
	if max > 0 {
		if r := []rune(s); len(r) > max {
			return string(r[:max])
		}
	}
	return s
}

// CareersSearchURL builds a web-search link for a company's careers page,
// handed to the caller alongside the direct apply URL.
func CareersSearchURL(company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return ""
	}
	q := url.QueryEscape(company + " careers jobs")
	return "https://www.google.com/search?q=" + q
}
