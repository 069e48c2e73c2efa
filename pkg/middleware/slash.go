package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash canonicalizes paths with a trailing slash. Safe methods are
// redirected with 301; other methods are rewritten in place so request
// bodies are not dropped by clients that refuse to replay them.
// The root path "/" is preserved.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := strings.TrimRight(r.URL.Path, "/")
			if target == "" {
				target = "/"
			}

			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}

			r.URL.Path = target
			r.URL.RawPath = ""
			next.ServeHTTP(w, r)
		})
	}
}
