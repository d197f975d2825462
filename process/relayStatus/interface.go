package relayStatus

import "context"

// StatusPoller starts polling a relay task
type StatusPoller interface {
	Start(ctx context.Context, chainID string, taskID string) *PollHandle
	IsInterfaceNil() bool
}
