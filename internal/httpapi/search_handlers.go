package httpapi

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/export"
	"jobscout-engine/internal/search"
)

type SearchHandler struct {
	Agg    Searcher
	CfgVal *atomic.Value // config.Config
}

// GET /jobs/search
func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	p, err := h.paramsFromRequest(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_params", err.Error())
		return
	}

	res, err := h.Agg.Search(r.Context(), p)
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// GET /jobs/export
func (h SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	p, err := h.paramsFromRequest(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_params", err.Error())
		return
	}

	res, err := h.Agg.Search(r.Context(), p)
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}

	filename := export.Filename(p.Keywords, p.Location, time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	if err := export.WriteCSV(w, res.Jobs); err != nil {
		// headers are gone at this point; just log via the access log status
		return
	}
}

func (h SearchHandler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var ipe *search.InvalidParamsError
	switch {
	case errors.As(err, &ipe):
		WriteError(w, r, http.StatusBadRequest, "invalid_params", ipe.Error())
	case errors.Is(err, search.ErrAllProvidersFailed):
		WriteError(w, r, http.StatusBadGateway, "providers_unavailable", "all providers failed")
	default:
		WriteError(w, r, http.StatusInternalServerError, "search_failed", err.Error())
	}
}

func (h SearchHandler) paramsFromRequest(r *http.Request) (search.Params, error) {
	cfg := h.CfgVal.Load().(config.Config)
	q := r.URL.Query()

	p := search.Params{
		Keywords: q.Get("keywords"),
		Location: q.Get("location"),
	}
	if p.Location == "" {
		p.Location = cfg.Search.DefaultLocation
	}

	var err error
	if p.RemoteOnly, err = queryBool(r, "remote_only"); err != nil {
		return p, err
	}
	if p.MinSalary, err = queryInt(r, "min_salary"); err != nil {
		return p, err
	}
	if p.MaxDaysOld, err = queryInt(r, "max_days_old"); err != nil {
		return p, err
	}

	maxResults, err := queryInt(r, "max_results")
	if err != nil {
		return p, err
	}
	switch {
	case maxResults != nil:
		p.MaxResults = *maxResults
	case cfg.Search.DefaultMaxResults > 0:
		p.MaxResults = cfg.Search.DefaultMaxResults
	}

	return p, nil
}
