package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
)

const MCPKeyHeader = "X-MCP-Key"

// MCPKeyCheck guards the /mcp endpoint with an API key checked against a bcrypt hash.
// An empty hash disables the endpoint.
func MCPKeyCheck(keyHash string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/mcp") || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if keyHash == "" {
				http.Error(w, "mcp disabled", http.StatusServiceUnavailable)
				return
			}

			if !pkg.CheckSecretHash(r.Header.Get(MCPKeyHeader), keyHash) {
				log.Warnf("invalid mcp key from %s", pkg.ReadUserIP(r))
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
