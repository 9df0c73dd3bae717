package http

import (
	"net/http"

	"jobscout-engine/internal/http/handlers"
)

// Routes mounts the HTML search page at / and hands everything else to the
// JSON API mux.
func Routes(h handlers.Handlers, api http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			api.ServeHTTP(w, r)
			return
		}
		h.SearchPage(w, r)
	}))
	return mux
}
