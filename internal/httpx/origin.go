package httpx

import "net/http"

// OriginPolicy decides whether a declared request origin may be served.
type OriginPolicy struct {
	AllowNoOrigin  bool
	AllowedOrigins map[string]struct{}
}

func NewOriginPolicy(allowNoOrigin bool, origins []string) OriginPolicy {
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}
	return OriginPolicy{AllowNoOrigin: allowNoOrigin, AllowedOrigins: set}
}

// Allow is a pure predicate over the Origin header value. An empty
// origin covers non-browser clients; an empty allow-list permits any
// origin.
func (p OriginPolicy) Allow(origin string) bool {
	if origin == "" {
		return p.AllowNoOrigin
	}
	if len(p.AllowedOrigins) == 0 {
		return true
	}
	_, ok := p.AllowedOrigins[origin]
	return ok
}

// CheckOrigin evaluates the policy before any route logic runs; a denied
// origin short-circuits without touching the handlers or collaborators.
func CheckOrigin(p OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !p.Allow(origin) {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error": "origin not allowed",
				})
				return
			}
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
