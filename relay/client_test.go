package relay_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-safe-go/core/httpclient"
	"github.com/multiversx/mx-chain-safe-go/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createClient(t *testing.T, handler http.HandlerFunc) relayClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	hc, err := httpclient.NewHttpClient(httpclient.ArgsHttpClient{
		BaseURL:        server.URL,
		RequestTimeout: time.Second,
		Marshaller:     &marshal.JsonMarshalizer{},
	})
	require.Nil(t, err)

	c, err := relay.NewClient(hc)
	require.Nil(t, err)

	return c
}

type relayClient interface {
	Relay(ctx context.Context, request *relay.RelayRequest) (*relay.RelayResponse, error)
	GetTaskStatus(ctx context.Context, taskID string) (*relay.TaskStatusResponse, error)
	GetRemainingRelays(ctx context.Context, chainID string, safe common.Address) (*relay.RemainingRelays, error)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	c, err := relay.NewClient(nil)
	assert.True(t, check.IfNil(c))
	assert.Equal(t, relay.ErrNilHttpClient, err)
}

func TestClient_Relay(t *testing.T) {
	t.Parallel()

	safe := common.HexToAddress("0x2222222222222222222222222222222222222222")
	c := createClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/relay", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		request := &relay.RelayRequest{}
		require.Nil(t, json.Unmarshal(body, request))
		assert.Equal(t, "11155111", request.ChainID)
		assert.Equal(t, safe, request.RelayDto.To)
		assert.Equal(t, "0x6a761202", request.RelayDto.Data)
		assert.Equal(t, "1.4.1", request.RelayDto.Version)

		_, _ = w.Write([]byte(`{"taskId":"task-1"}`))
	})

	_, err := c.Relay(context.Background(), nil)
	assert.Equal(t, relay.ErrNilRequest, err)

	response, err := c.Relay(context.Background(), &relay.RelayRequest{
		ChainID: "11155111",
		RelayDto: relay.RelayDto{
			To:      safe,
			Data:    "0x6a761202",
			Version: "1.4.1",
		},
	})
	require.Nil(t, err)
	assert.Equal(t, "task-1", response.TaskID)
}

func TestClient_GetTaskStatus(t *testing.T) {
	t.Parallel()

	c := createClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tasks/status/known":
			_, _ = w.Write([]byte(`{"task":{"taskId":"known","taskState":"ExecSuccess","transactionHash":"0xabc"}}`))
		case "/tasks/status/empty":
			_, _ = w.Write([]byte(`{}`))
		case "/tasks/status/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("empty task id should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.GetTaskStatus(context.Background(), "")
		assert.Equal(t, relay.ErrEmptyTaskID, err)
	})
	t.Run("404 means not available", func(t *testing.T) {
		t.Parallel()

		_, err := c.GetTaskStatus(context.Background(), "unknown")
		assert.True(t, relay.IsTaskNotAvailable(err))
	})
	t.Run("empty body means not available", func(t *testing.T) {
		t.Parallel()

		_, err := c.GetTaskStatus(context.Background(), "empty")
		assert.True(t, relay.IsTaskNotAvailable(err))
	})
	t.Run("server error should propagate", func(t *testing.T) {
		t.Parallel()

		_, err := c.GetTaskStatus(context.Background(), "broken")
		assert.True(t, errors.Is(err, httpclient.ErrHttpStatus))
		assert.False(t, relay.IsTaskNotAvailable(err))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		response, err := c.GetTaskStatus(context.Background(), "known")
		require.Nil(t, err)
		assert.Equal(t, relay.TaskExecSuccess, response.Task.TaskState)
		assert.True(t, response.Task.TaskState.IsTerminal())
	})
}

func TestClient_GetRemainingRelays(t *testing.T) {
	t.Parallel()

	safe := common.HexToAddress("0x2222222222222222222222222222222222222222")
	c := createClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chains/100/relays-remaining/"+safe.Hex(), r.URL.Path)
		_, _ = w.Write([]byte(`{"remaining":3,"limit":5}`))
	})

	remaining, err := c.GetRemainingRelays(context.Background(), "100", safe)
	require.Nil(t, err)
	assert.Equal(t, &relay.RemainingRelays{Remaining: 3, Limit: 5}, remaining)
}

func TestTaskState_IsTerminal(t *testing.T) {
	t.Parallel()

	for _, state := range []relay.TaskState{relay.TaskExecSuccess, relay.TaskExecReverted, relay.TaskBlacklisted, relay.TaskCancelled, relay.TaskNotFound} {
		assert.True(t, state.IsTerminal(), string(state))
	}
	for _, state := range []relay.TaskState{relay.TaskCheckPending, relay.TaskExecPending, relay.TaskWaitingForConfirmation} {
		assert.False(t, state.IsTerminal(), string(state))
	}
}
