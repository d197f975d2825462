package relayStatus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/relay"
)

var log = logger.GetOrCreate("process/relayStatus")

// ArgsRelayStatusPoller holds the arguments needed to create a new relay status poller
type ArgsRelayStatusPoller struct {
	RelayClient     process.RelayClient
	PollingInterval time.Duration
	Timeout         time.Duration
}

type relayStatusPoller struct {
	relayClient     process.RelayClient
	pollingInterval time.Duration
	timeout         time.Duration
}

// NewRelayStatusPoller creates the component polling relay tasks until they reach a terminal state
func NewRelayStatusPoller(args ArgsRelayStatusPoller) (*relayStatusPoller, error) {
	if check.IfNil(args.RelayClient) {
		return nil, process.ErrNilRelayClient
	}
	if args.PollingInterval <= 0 {
		return nil, ErrInvalidPollingInterval
	}
	if args.Timeout < args.PollingInterval {
		return nil, fmt.Errorf("%w: timeout %v is lower than the polling interval %v", ErrInvalidTimeout, args.Timeout, args.PollingInterval)
	}

	return &relayStatusPoller{
		relayClient:     args.RelayClient,
		pollingInterval: args.PollingInterval,
		timeout:         args.Timeout,
	}, nil
}

// Start polls the task on a fixed interval until a terminal state is seen or the timeout elapses
func (poller *relayStatusPoller) Start(ctx context.Context, chainID string, taskID string) *PollHandle {
	pollCtx, cancel := context.WithCancel(ctx)
	handle := newPollHandle(taskID, cancel)

	go poller.poll(pollCtx, chainID, handle)

	return handle
}

func (poller *relayStatusPoller) poll(ctx context.Context, chainID string, handle *PollHandle) {
	defer close(handle.stopped)

	ticker := time.NewTicker(poller.pollingInterval)
	defer ticker.Stop()
	timeoutTimer := time.NewTimer(poller.timeout)
	defer timeoutTimer.Stop()

	numPolls := 0
	for {
		select {
		case <-ctx.Done():
			log.Debug("relay task polling cancelled", "chainID", chainID, "taskID", handle.taskID)
			return
		case <-timeoutTimer.C:
			handle.done <- Outcome{
				TaskID: handle.taskID,
				Err:    fmt.Errorf("%w: task %s timed out after %v", process.ErrRelayFailed, handle.taskID, poller.timeout),
			}
			log.Debug("relay task timed out", "chainID", chainID, "taskID", handle.taskID, "num polls", numPolls)
			return
		case <-ticker.C:
			numPolls++
			outcome, isTerminal := poller.checkTask(ctx, handle.taskID)
			if !isTerminal {
				continue
			}

			handle.done <- outcome
			log.Debug("relay task reached a terminal state", "chainID", chainID, "taskID", handle.taskID,
				"state", outcome.State, "num polls", numPolls)
			return
		}
	}
}

func (poller *relayStatusPoller) checkTask(ctx context.Context, taskID string) (Outcome, bool) {
	response, err := poller.relayClient.GetTaskStatus(ctx, taskID)
	if errors.Is(err, relay.ErrTaskNotAvailable) {
		return Outcome{}, false
	}
	if err != nil {
		log.Debug("relay task status query failed", "taskID", taskID, "error", err)
		return Outcome{}, false
	}
	if response == nil || !response.Task.TaskState.IsTerminal() {
		return Outcome{}, false
	}

	outcome := Outcome{
		TaskID: taskID,
		State:  response.Task.TaskState,
	}
	if len(response.Task.TransactionHash) > 0 {
		outcome.TxHash = common.HexToHash(response.Task.TransactionHash)
	}
	if response.Task.TaskState != relay.TaskExecSuccess {
		outcome.Err = fmt.Errorf("%w: task %s ended in state %s: %s", process.ErrRelayFailed, taskID,
			response.Task.TaskState, response.Task.LastCheckMessage)
	}

	return outcome, true
}

// IsInterfaceNil returns true if there is no value under the interface
func (poller *relayStatusPoller) IsInterfaceNil() bool {
	return poller == nil
}
