package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burokrat-site/pkg/apperrors"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func callLimited(t *testing.T, mw echo.MiddlewareFunc, ip string) (int, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/contact/submit", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	err := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(e.NewContext(req, rec))
	return rec.Code, err
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	_, client := newRedis(t)
	mw := RateLimiterMiddleware(RateLimiterConfig{MaxRequests: 2, Window: time.Minute, Client: client})

	for i := 0; i < 2; i++ {
		code, err := callLimited(t, mw, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
	}

	_, err := callLimited(t, mw, "10.0.0.1")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRateLimitExceeded))

	code, err := callLimited(t, mw, "10.0.0.2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr, client := newRedis(t)
	mw := RateLimiterMiddleware(RateLimiterConfig{MaxRequests: 1, Window: time.Minute, Client: client})

	_, err := callLimited(t, mw, "10.0.0.1")
	require.NoError(t, err)
	_, err = callLimited(t, mw, "10.0.0.1")
	require.Error(t, err)

	mr.FastForward(61 * time.Second)

	code, err := callLimited(t, mw, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestRateLimiter_OnLimitHandler(t *testing.T) {
	_, client := newRedis(t)
	mw := RateLimiterMiddleware(RateLimiterConfig{
		MaxRequests: 1,
		Window:      time.Minute,
		Client:      client,
		OnLimit: func(c echo.Context) error {
			return c.String(http.StatusOK, "slow down")
		},
	})

	_, _ = callLimited(t, mw, "10.0.0.1")
	code, err := callLimited(t, mw, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestRateLimiter_DisabledWithoutClient(t *testing.T) {
	mw := RateLimiterMiddleware(RateLimiterConfig{MaxRequests: 1, Window: time.Minute})
	for i := 0; i < 5; i++ {
		code, err := callLimited(t, mw, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestRateLimiter_RedisDownFailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	mw := RateLimiterMiddleware(RateLimiterConfig{MaxRequests: 1, Window: time.Minute, Client: client})
	mr.Close()

	for i := 0; i < 3; i++ {
		code, err := callLimited(t, mw, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
	}
}
