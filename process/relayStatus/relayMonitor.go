package relayStatus

import (
	"context"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/process"

	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
)

// ArgsRelayMonitor holds the arguments needed to create a new relay monitor
type ArgsRelayMonitor struct {
	Poller           StatusPoller
	PendingTracker   process.PendingTracker
	AppStatusHandler safeCommon.AppStatusHandler
}

type watchedTask struct {
	chainID string
	handle  *PollHandle
}

type relayMonitor struct {
	poller           StatusPoller
	pendingTracker   process.PendingTracker
	appStatusHandler safeCommon.AppStatusHandler

	mut       sync.Mutex
	watched   map[string]*watchedTask
	ctx       context.Context
	cancel    context.CancelFunc
	watchesWg sync.WaitGroup
}

// NewRelayMonitor creates the component following relayed executions until the relay reports a terminal state
func NewRelayMonitor(args ArgsRelayMonitor) (*relayMonitor, error) {
	if check.IfNil(args.Poller) {
		return nil, ErrNilPoller
	}
	if check.IfNil(args.PendingTracker) {
		return nil, process.ErrNilPendingTracker
	}
	if check.IfNil(args.AppStatusHandler) {
		return nil, process.ErrNilAppStatusHandler
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &relayMonitor{
		poller:           args.Poller,
		pendingTracker:   args.PendingTracker,
		appStatusHandler: args.AppStatusHandler,
		watched:          make(map[string]*watchedTask),
		ctx:              ctx,
		cancel:           cancel,
	}, nil
}

// Watch starts polling the relay task of a tracked execution. A previous poll of the same execution is
// cancelled. A failed task marks the execution as ERROR, a successful one is left to reconciliation.
func (monitor *relayMonitor) Watch(chainID string, txID string, taskID string) {
	if monitor.ctx.Err() != nil {
		log.Debug("relay monitor closed, task not watched", "txID", txID, "taskID", taskID)
		return
	}

	handle := monitor.poller.Start(monitor.ctx, chainID, taskID)
	task := &watchedTask{
		chainID: chainID,
		handle:  handle,
	}

	monitor.mut.Lock()
	previous, found := monitor.watched[txID]
	monitor.watched[txID] = task
	numWatched := len(monitor.watched)
	monitor.mut.Unlock()

	if found {
		log.Debug("replacing relay task watch", "txID", txID, "old taskID", previous.handle.TaskID(), "new taskID", taskID)
		previous.handle.Cancel()
	}
	monitor.appStatusHandler.SetUInt64Value(safeCommon.MetricRelayTasksInFlight, uint64(numWatched))

	monitor.watchesWg.Add(1)
	go monitor.waitOutcome(txID, task)
}

func (monitor *relayMonitor) waitOutcome(txID string, task *watchedTask) {
	defer monitor.watchesWg.Done()
	defer monitor.release(txID, task)

	select {
	case outcome := <-task.handle.Done():
		monitor.processOutcome(txID, task.chainID, outcome)
	case <-task.handle.Stopped():
		// cancelled before an outcome, an outcome delivered right before stopping is still honored
		select {
		case outcome := <-task.handle.Done():
			monitor.processOutcome(txID, task.chainID, outcome)
		default:
		}
	}
}

func (monitor *relayMonitor) processOutcome(txID string, chainID string, outcome Outcome) {
	if outcome.IsSuccess() {
		log.Debug("relay task executed", "chainID", chainID, "txID", txID, "taskID", outcome.TaskID,
			"txHash", outcome.TxHash.Hex())
		return
	}

	log.Debug("relay task failed", "chainID", chainID, "txID", txID, "taskID", outcome.TaskID,
		"state", outcome.State, "error", outcome.Err)
	monitor.pendingTracker.MarkError(txID, outcome.Err)
}

func (monitor *relayMonitor) release(txID string, task *watchedTask) {
	monitor.mut.Lock()
	current, found := monitor.watched[txID]
	if found && current == task {
		delete(monitor.watched, txID)
	}
	numWatched := len(monitor.watched)
	monitor.mut.Unlock()

	monitor.appStatusHandler.SetUInt64Value(safeCommon.MetricRelayTasksInFlight, uint64(numWatched))
}

// NumWatched returns the number of relay tasks currently polled
func (monitor *relayMonitor) NumWatched() int {
	monitor.mut.Lock()
	defer monitor.mut.Unlock()

	return len(monitor.watched)
}

// Close cancels every poll and waits for the watchers to exit
func (monitor *relayMonitor) Close() error {
	monitor.cancel()

	monitor.mut.Lock()
	tasks := make([]*watchedTask, 0, len(monitor.watched))
	for _, task := range monitor.watched {
		tasks = append(tasks, task)
	}
	monitor.mut.Unlock()

	for _, task := range tasks {
		task.handle.Cancel()
	}
	monitor.watchesWg.Wait()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (monitor *relayMonitor) IsInterfaceNil() bool {
	return monitor == nil
}
