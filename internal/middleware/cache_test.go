package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arefins/consultation-booking/internal/config"
)

func TestPayloadCodecRoundTrip(t *testing.T) {
	hdr := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Cache":      []string{"MISS"},
	}
	body := []byte(`{"items":[]}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte("tooshort"))
	assert.False(t, ok)
	_, _, _, ok = decodePayload(nil)
	assert.False(t, ok)
}

func TestCacheKeyStrategies(t *testing.T) {
	e := echo.New()
	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/consultation/slots")
		return c
	}

	base := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	t.Run("query participates by default", func(t *testing.T) {
		a := cacheKeyFrom(base, newCtx("/v1/consultation/slots"))
		b := cacheKeyFrom(base, newCtx("/v1/consultation/slots?all=1"))
		assert.NotEqual(t, a, b)
	})

	t.Run("route strategy ignores the query", func(t *testing.T) {
		cfg := base
		cfg.KeyStrategy = "route"
		a := cacheKeyFrom(cfg, newCtx("/v1/consultation/slots"))
		b := cacheKeyFrom(cfg, newCtx("/v1/consultation/slots?all=1"))
		assert.Equal(t, a, b)
	})

	t.Run("keys are namespaced by prefix", func(t *testing.T) {
		cfg := base
		cfg.Prefix = "other"
		a := cacheKeyFrom(base, newCtx("/v1/consultation/slots"))
		b := cacheKeyFrom(cfg, newCtx("/v1/consultation/slots"))
		assert.NotEqual(t, a, b)
	})
}
