package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("middleware-secret")

func newGuardedHandler(t *testing.T) (*goJWT.Codec, http.Handler) {
	t.Helper()
	codec, err := goJWT.New().Build()
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(claims["sub"].(string)))
	})
	return codec, Guard(codec, testKey, nil)(next)
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGuardAcceptsValidToken(t *testing.T) {
	codec, h := newGuardedHandler(t)
	claims := codec.NewClaims(time.Minute)
	claims["sub"] = "alice"
	token, err := codec.Encode(claims, testKey, goJWT.HS256)
	require.NoError(t, err)

	rec := serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestGuardRejects(t *testing.T) {
	codec, h := newGuardedHandler(t)

	wrongKey, err := codec.Encode(map[string]any{"sub": "alice"}, []byte("other"), goJWT.HS256)
	require.NoError(t, err)
	expired, err := codec.Encode(map[string]any{"sub": "alice", "exp": time.Now().Add(-time.Hour).Unix()}, testKey, goJWT.HS256)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "not bearer", authorization: "Basic abc"},
		{name: "empty bearer", authorization: "Bearer "},
		{name: "malformed", authorization: "Bearer a.b"},
		{name: "wrong key", authorization: "Bearer " + wrongKey},
		{name: "expired", authorization: "Bearer " + expired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(h, tc.authorization)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGuardNilCodec(t *testing.T) {
	h := Guard(nil, testKey, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	}))
	rec := serve(h, "Bearer x.y.z")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
