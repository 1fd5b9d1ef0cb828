package utils

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceNM(t *testing.T) {
	// London - Paris, roughly 188 nm
	d := DistanceNM(51.47, -0.4543, 49.0097, 2.5479)
	assert.InDelta(t, 188, d, 5)
	assert.Zero(t, DistanceNM(10, 10, 10, 10))
}

func TestClientIP(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ClientIP(c))
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded for takes first value",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-IP": "198.51.100.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "real ip before cloudflare",
			headers: map[string]string{"X-Real-IP": "198.51.100.1", "CF-Connecting-IP": "192.0.2.5"},
			want:    "198.51.100.1",
		},
		{
			name:    "cluster client ip as last resort",
			headers: map[string]string{"X-Cluster-Client-IP": "192.0.2.9"},
			want:    "192.0.2.9",
		},
		{
			name: "no headers",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestIsPublicIP(t *testing.T) {
	assert.True(t, IsPublicIP("8.8.8.8"))
	assert.False(t, IsPublicIP("127.0.0.1"))
	assert.False(t, IsPublicIP("10.1.2.3"))
	assert.False(t, IsPublicIP("0.0.0.0"))
	assert.False(t, IsPublicIP("not-an-ip"))
}

func TestIsUnspecifiedIP(t *testing.T) {
	assert.True(t, IsUnspecifiedIP("0.0.0.0"))
	assert.True(t, IsUnspecifiedIP("::"))
	assert.False(t, IsUnspecifiedIP(""))
	assert.False(t, IsUnspecifiedIP("10.1.2.3"))
	assert.False(t, IsUnspecifiedIP("8.8.8.8"))
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		var retried []int
		err := Retry(ctx, 3, time.Millisecond, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, func(attempt int, _ error) { retried = append(retried, attempt) })

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{1, 2}, retried)
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func(context.Context) error {
			calls++
			return errors.New("still down")
		}, nil)

		assert.EqualError(t, err, "still down")
		assert.Equal(t, 2, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		calls := 0
		err := Retry(cctx, 5, time.Hour, func(context.Context) error {
			calls++
			cancel()
			return errors.New("down")
		}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestSetSharedCache(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		SetSharedCache(c, time.Hour, 2*time.Hour)
		return SendCreated(c, fiber.Map{"ok": true})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "public, s-maxage=3600, stale-while-revalidate=7200", resp.Header.Get(fiber.HeaderCacheControl))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"ok":true}}`, string(body))
}
