package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/api/middleware"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestNewSourceThrottler(t *testing.T) {
	t.Parallel()

	t.Run("invalid max num requests should error", func(t *testing.T) {
		t.Parallel()

		st, err := middleware.NewSourceThrottler(0)
		assert.True(t, check.IfNil(st))
		assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		st, err := middleware.NewSourceThrottler(1)
		assert.False(t, check.IfNil(st))
		assert.Nil(t, err)
	})
}

func TestSourceThrottler_MiddlewareHandlerFunc(t *testing.T) {
	t.Parallel()

	maxNumRequests := uint32(3)
	st, _ := middleware.NewSourceThrottler(maxNumRequests)
	ws := startServerWithMiddleware(st, func(c *gin.Context) {
		shared.RespondWithSuccess(c, nil)
	})

	doRequest := func(remoteAddr string) int {
		req, _ := http.NewRequest("GET", "/pending", nil)
		req.RemoteAddr = remoteAddr
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		return resp.Code
	}

	for i := uint32(0); i < maxNumRequests; i++ {
		assert.Equal(t, http.StatusOK, doRequest("10.0.0.1:1000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest("10.0.0.1:1001"))
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.2:1000"))
	assert.Equal(t, http.StatusInternalServerError, doRequest("malformed"))

	st.Reset()
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.1:1000"))
}
