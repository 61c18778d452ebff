package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, got)
	assert.Equal(t, got, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRealIP_ForwardedFor(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", got)
}

func TestRealIP_InvalidHeaderFallsBack(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEmpty(t, got)
	assert.NotEqual(t, "not-an-ip", got)
}

// Without a redis client the limiter must be a transparent no-op.
func TestRateLimit_NoRedisPassthrough(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("real_ip", "192.168.1.10")
	assert.True(t, allow(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Set("real_ip", "203.0.113.7")
	assert.False(t, allow(c))
}
