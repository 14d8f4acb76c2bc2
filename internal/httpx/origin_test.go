package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyjain/ecom-backend/internal/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginPolicyAllow(t *testing.T) {
	allowed := []string{"https://shop.example.com"}

	tests := []struct {
		name          string
		allowNoOrigin bool
		origins       []string
		origin        string
		want          bool
	}{
		{"NoOriginPermitted", true, allowed, "", true},
		{"NoOriginRejected", false, allowed, "", false},
		{"EmptySetAllowsAny", true, nil, "https://anywhere.example.com", true},
		{"ListedOrigin", true, allowed, "https://shop.example.com", true},
		{"UnlistedOrigin", true, allowed, "https://evil.example.com", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := httpx.NewOriginPolicy(tc.allowNoOrigin, tc.origins)
			assert.Equal(t, tc.want, p.Allow(tc.origin))
		})
	}
}

func TestCheckOrigin(t *testing.T) {
	policy := httpx.NewOriginPolicy(true, []string{"https://shop.example.com"})

	newServer := func() (*httptest.Server, *int) {
		calls := 0
		r := httpx.NewRouter(policy)
		r.Get("/probe", func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		})
		return httptest.NewServer(r), &calls
	}

	t.Run("DeniedBeforeHandler", func(t *testing.T) {
		srv, calls := newServer()
		defer srv.Close()

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/probe", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://evil.example.com")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Equal(t, 0, *calls)
	})

	t.Run("AllowedOriginEchoed", func(t *testing.T) {
		srv, calls := newServer()
		defer srv.Close()

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/probe", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://shop.example.com")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "https://shop.example.com", res.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, 1, *calls)
	})

	t.Run("NoOriginAllowed", func(t *testing.T) {
		srv, calls := newServer()
		defer srv.Close()

		res, err := http.Get(srv.URL + "/probe")
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 1, *calls)
	})

	t.Run("PreflightShortCircuits", func(t *testing.T) {
		srv, calls := newServer()
		defer srv.Close()

		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/probe", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://shop.example.com")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Equal(t, 0, *calls)
	})
}
