package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("relay")

const (
	relayPath           = "/v1/relay"
	taskStatusPath      = "/tasks/status/%s"
	remainingRelaysPath = "/v1/chains/%s/relays-remaining/%s"
)

type client struct {
	httpClient HttpClient
}

// NewClient creates a sponsor relay client over the provided JSON transport
func NewClient(httpClient HttpClient) (*client, error) {
	if check.IfNil(httpClient) {
		return nil, ErrNilHttpClient
	}

	return &client{
		httpClient: httpClient,
	}, nil
}

// Relay submits a call to the relay. A response without task id is returned as is, the caller decides
// whether it is a rejection.
func (c *client) Relay(ctx context.Context, request *RelayRequest) (*RelayResponse, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	response := &RelayResponse{}
	_, err := c.httpClient.Post(ctx, relayPath, request, response)
	if err != nil {
		return nil, err
	}

	log.Debug("relay submitted", "chainID", request.ChainID, "to", request.RelayDto.To.Hex(), "taskID", response.TaskID)

	return response, nil
}

// GetTaskStatus fetches the status of a relay task. ErrTaskNotAvailable is returned while the relay
// does not know the task yet.
func (c *client) GetTaskStatus(ctx context.Context, taskID string) (*TaskStatusResponse, error) {
	if len(taskID) == 0 {
		return nil, ErrEmptyTaskID
	}

	response := &TaskStatusResponse{}
	status, err := c.httpClient.Get(ctx, fmt.Sprintf(taskStatusPath, url.PathEscape(taskID)), response)
	if status == http.StatusNotFound {
		return nil, ErrTaskNotAvailable
	}
	if err != nil {
		return nil, err
	}
	if len(response.Task.TaskState) == 0 {
		return nil, ErrTaskNotAvailable
	}

	return response, nil
}

// GetRemainingRelays fetches the sponsored relays quota left for a Safe
func (c *client) GetRemainingRelays(ctx context.Context, chainID string, safe common.Address) (*RemainingRelays, error) {
	response := &RemainingRelays{}
	_, err := c.httpClient.Get(ctx, fmt.Sprintf(remainingRelaysPath, url.PathEscape(chainID), safe.Hex()), response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *client) IsInterfaceNil() bool {
	return c == nil
}

// IsTaskNotAvailable returns true if the error means the relay does not know the task yet
func IsTaskNotAvailable(err error) bool {
	return errors.Is(err, ErrTaskNotAvailable)
}
