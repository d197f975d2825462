package processMocks

import (
	"context"

	"github.com/multiversx/mx-chain-safe-go/relay"
)

// RelayClientStub -
type RelayClientStub struct {
	RelayCalled         func(ctx context.Context, request *relay.RelayRequest) (*relay.RelayResponse, error)
	GetTaskStatusCalled func(ctx context.Context, taskID string) (*relay.TaskStatusResponse, error)
}

// Relay -
func (stub *RelayClientStub) Relay(ctx context.Context, request *relay.RelayRequest) (*relay.RelayResponse, error) {
	if stub.RelayCalled != nil {
		return stub.RelayCalled(ctx, request)
	}

	return &relay.RelayResponse{}, nil
}

// GetTaskStatus -
func (stub *RelayClientStub) GetTaskStatus(ctx context.Context, taskID string) (*relay.TaskStatusResponse, error) {
	if stub.GetTaskStatusCalled != nil {
		return stub.GetTaskStatusCalled(ctx, taskID)
	}

	return nil, relay.ErrTaskNotAvailable
}

// IsInterfaceNil -
func (stub *RelayClientStub) IsInterfaceNil() bool {
	return stub == nil
}
