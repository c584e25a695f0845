package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/shepherd-backend/internal/config"
)

// CORS answers preflight requests and marks allowed origins on every response.
// A matching origin is echoed back instead of "*" because the dashboard
// sends the session cookie with credentialed requests.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && policy.allows(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", policy.methods)
				h.Set("Access-Control-Allow-Headers", policy.headers)
				h.Set("Access-Control-Max-Age", policy.maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

type corsPolicy struct {
	any     bool
	origins map[string]struct{}
	methods string
	headers string
	maxAge  string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		origins: make(map[string]struct{}),
		methods: joinList(cfg.AllowedMethods),
		headers: joinList(cfg.AllowedHeaders),
		maxAge:  strconv.Itoa(cfg.MaxAge),
	}
	for _, o := range splitList(cfg.AllowedOrigins) {
		if o == "*" {
			p.any = true
			continue
		}
		p.origins[strings.TrimSuffix(o, "/")] = struct{}{}
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if p.any {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinList(s string) string {
	return strings.Join(splitList(s), ", ")
}
