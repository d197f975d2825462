package relayStatus

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/relay"
)

// Outcome is the single terminal result of a poll
type Outcome struct {
	TaskID string
	State  relay.TaskState
	TxHash common.Hash
	Err    error
}

// IsSuccess returns true if the relay executed the task successfully
func (o Outcome) IsSuccess() bool {
	return o.Err == nil && o.State == relay.TaskExecSuccess
}

// PollHandle is owned by whoever started the poll and must be cancelled on teardown
type PollHandle struct {
	taskID  string
	done    chan Outcome
	stopped chan struct{}
	cancel  context.CancelFunc
}

func newPollHandle(taskID string, cancel context.CancelFunc) *PollHandle {
	return &PollHandle{
		taskID:  taskID,
		done:    make(chan Outcome, 1),
		stopped: make(chan struct{}),
		cancel:  cancel,
	}
}

// TaskID returns the polled task
func (handle *PollHandle) TaskID() string {
	return handle.taskID
}

// Done delivers exactly one outcome, unless the poll was cancelled first
func (handle *PollHandle) Done() <-chan Outcome {
	return handle.done
}

// Stopped is closed once the polling goroutine exited and both timers are released
func (handle *PollHandle) Stopped() <-chan struct{} {
	return handle.stopped
}

// Cancel stops the poll. No outcome is delivered after Cancel returns unless one was already delivered.
func (handle *PollHandle) Cancel() {
	handle.cancel()
	<-handle.stopped
}
