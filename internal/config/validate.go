package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. Warnings don't block a save; errors do.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Match.FillerWords = trimList(out.Match.FillerWords)
	out.Email.SearchSubjectAny = trimList(out.Email.SearchSubjectAny)
	out.Providers.Adzuna.Country = strings.ToLower(strings.TrimSpace(out.Providers.Adzuna.Country))

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Search.DefaultMaxResults < 1 || out.Search.DefaultMaxResults > 200 {
		res.addErr("search.default_max_results must be 1..200")
	}
	if out.Search.FetchTimeoutSeconds <= 0 {
		res.addErr("search.fetch_timeout_seconds must be > 0")
	}
	if strings.TrimSpace(out.Search.DefaultLocation) == "" {
		res.addWarn("search.default_location is empty; searches without a location will use %q", "london")
	}

	if out.Match.Threshold <= 0 || out.Match.Threshold > 1 {
		res.addErr("match.threshold must be in (0, 1]")
	}
	if len(out.Match.FillerWords) == 0 {
		res.addWarn("match.filler_words is empty; seniority qualifiers will defeat title matching")
	}

	if out.Providers.Adzuna.Enabled && out.Providers.Adzuna.Country == "" {
		res.addErr("providers.adzuna.country is required when adzuna is enabled")
	}
	if !out.Providers.Adzuna.Enabled && !out.Providers.Reed.Enabled && !out.Email.Enabled {
		res.addWarn("no providers enabled; every search will fail")
	}

	if out.Email.Enabled {
		if strings.TrimSpace(out.Email.IMAPHost) == "" {
			res.addErr("email.imap_host is required when email.enabled=true")
		}
		if out.Email.IMAPPort == 0 {
			res.addErr("email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Username) == "" {
			res.addErr("email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Mailbox) == "" {
			res.addErr("email.mailbox is required when email.enabled=true")
		}
		if len(out.Email.SearchSubjectAny) == 0 {
			res.addWarn("email.search_subject_any is empty; the email provider may find nothing")
		}
	}

	if out.Limits.HostReqPerSec <= 0 {
		res.addErr("limits.host_req_per_sec must be > 0")
	}
	if out.Limits.HostBurst < 1 {
		res.addErr("limits.host_burst must be >= 1")
	}

	return out, res
}
