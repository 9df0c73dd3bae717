package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"jobscout-engine/internal/search"
)

type Searcher interface {
	Search(ctx context.Context, p search.Params) (search.Result, error)
}

type Handlers struct {
	Agg Searcher
}

// SearchPage is a minimal HTML form + results list. The JSON API is the
// real surface; this exists so the engine is usable from a bare browser.
func (h Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keywords := strings.TrimSpace(q.Get("keywords"))

	fmt.Fprintln(w, `<html><body><h1>JobScout</h1>`)
	fmt.Fprintf(w,
		`<form method="get" action="/">
		  <input name="keywords" placeholder="keywords" value="%s"/>
		  <input name="location" placeholder="location" value="%s"/>
		  <label><input type="checkbox" name="remote_only" value="true"%s/> remote only</label>
		  <button type="submit">Search</button>
		</form><hr/>`,
		escapeAttr(keywords), escapeAttr(q.Get("location")), checked(q.Get("remote_only")),
	)

	if keywords == "" {
		fmt.Fprintln(w, `</body></html>`)
		return
	}

	p := search.Params{
		Keywords:   keywords,
		Location:   q.Get("location"),
		RemoteOnly: q.Get("remote_only") == "true",
	}
	if v, err := strconv.Atoi(q.Get("min_salary")); err == nil {
		p.MinSalary = &v
	}
	if v, err := strconv.Atoi(q.Get("max_days_old")); err == nil {
		p.MaxDaysOld = &v
	}

	res, err := h.Agg.Search(r.Context(), p)
	if err != nil {
		fmt.Fprintf(w, `<p>search failed: %s</p></body></html>`, escape(err.Error()))
		return
	}

	fmt.Fprintf(w, `<p>%d results (sources: %s) · <a href="/jobs/export?%s">download CSV</a></p>`,
		res.TotalResults, escape(strings.Join(res.SourcesQueried, ", ")), escapeAttr(r.URL.RawQuery))

	for _, j := range res.Jobs {
		sal := ""
		if j.SalaryMax != nil {
			sal = fmt.Sprintf(" · up to %d", *j.SalaryMax)
		} else if j.SalaryMin != nil {
			sal = fmt.Sprintf(" · from %d", *j.SalaryMin)
		}
		posted := ""
		if j.PostedAt != nil {
			posted = " · posted " + j.PostedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w,
			`<div style="margin:12px 0;">
			  <div><b>%s</b> · %s</div>
			  <div>%s · %s · %s%s%s</div>
			  <div><a href="%s" target="_blank">Apply</a></div>
			</div><hr/>`,
			escape(j.Title), escape(j.Company),
			escape(j.Location), escape(j.WorkMode), escape(string(j.Source)), escape(sal), escape(posted),
			escapeAttr(j.URL),
		)
	}
	fmt.Fprintln(w, `</body></html>`)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func escapeAttr(s string) string { return escape(s) }

func checked(v string) string {
	if v == "true" {
		return " checked"
	}
	return ""
}
