package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/api/middleware"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startServerWithMiddleware(processor shared.MiddlewareProcessor, handler gin.HandlerFunc) *gin.Engine {
	ws := gin.New()
	ws.Use(cors.Default())
	ws.Use(processor.MiddlewareHandlerFunc())
	ws.GET("/pending", handler)

	return ws
}

func TestNewGlobalThrottler_InvalidMaxConnectionsShouldErr(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(0)

	assert.True(t, check.IfNil(gt))
	assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)
}

func TestNewGlobalThrottler(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(1)

	assert.False(t, check.IfNil(gt))
	assert.Nil(t, err)
}

func TestGlobalThrottler_LimitUnderShouldProcessRequest(t *testing.T) {
	t.Parallel()

	gt, _ := middleware.NewGlobalThrottler(1000)
	ws := startServerWithMiddleware(gt, func(c *gin.Context) {
		shared.RespondWithSuccess(c, nil)
	})

	req, _ := http.NewRequest("GET", "/pending", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestGlobalThrottler_LimitOverShouldError(t *testing.T) {
	t.Parallel()

	numCalls := uint32(0)
	responseDelay := time.Second
	gt, _ := middleware.NewGlobalThrottler(1)
	ws := startServerWithMiddleware(gt, func(c *gin.Context) {
		time.Sleep(responseDelay)
		atomic.AddUint32(&numCalls, 1)
		shared.RespondWithSuccess(c, nil)
	})

	mutResponses := sync.Mutex{}
	responses := make(map[int]int)
	numRequests := 10
	numBatches := 2

	for j := 0; j < numBatches; j++ {
		wg := sync.WaitGroup{}
		wg.Add(numRequests)
		started := make(chan struct{})
		for i := 0; i < numRequests; i++ {
			go func() {
				defer wg.Done()
				<-started
				makeRequest(ws, &mutResponses, responses)
			}()
		}
		close(started)
		wg.Wait()
	}

	assert.Equal(t, uint32(numBatches), atomic.LoadUint32(&numCalls))
	mutResponses.Lock()
	assert.Equal(t, numBatches, responses[http.StatusOK])
	assert.Equal(t, numBatches*(numRequests-1), responses[http.StatusTooManyRequests])
	mutResponses.Unlock()
}

func makeRequest(ws *gin.Engine, mutResponses *sync.Mutex, responses map[int]int) {
	req, _ := http.NewRequest("GET", "/pending", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	mutResponses.Lock()
	responses[resp.Code]++
	mutResponses.Unlock()
}
