package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWithContextRoundTrip(t *testing.T) {
	log := zap.NewNop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContextReturnsNopWhenAbsent(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)
}

func TestWithRequestID(t *testing.T) {
	base := zap.NewNop()
	ctx, enriched := WithRequestID(context.Background(), base, "req-42")

	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
}

func TestGetRequestIDReturnsEmptyWhenAbsent(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGinMiddlewarePropagatesRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-99")
		c.Next()
	})
	router.Use(GinMiddleware(zap.NewNop()))

	var (
		seenID     string
		seenLogger *zap.Logger
	)
	router.GET("/test", func(c *gin.Context) {
		seenID = GetRequestID(c.Request.Context())
		seenLogger = FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-99", seenID)
	assert.NotNil(t, seenLogger)
}
