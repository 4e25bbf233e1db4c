package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	goJWT "github.com/MrEthical07/goJWT"
)

type claimsContextKey struct{}

// ClaimsFromContext returns the claims stored by Guard.
func ClaimsFromContext(ctx context.Context) (map[string]any, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(map[string]any)
	return claims, ok
}

// Guard rejects requests without a bearer token that verifies under key.
// Rejections are a bare 401; the error kind is logged at debug level when
// logger is non-nil.
func Guard(codec *goJWT.Codec, key []byte, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if codec == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := codec.DecodeToMap(token, key, true)
			if err != nil {
				if logger != nil {
					logger.DebugContext(r.Context(), "middleware: bearer token rejected",
						slog.String("kind", goJWT.KindOf(err).String()),
						slog.String("path", r.URL.Path),
					)
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
