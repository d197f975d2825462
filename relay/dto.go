package relay

import "github.com/ethereum/go-ethereum/common"

// TaskState is the state of a relay task
type TaskState string

const (
	// TaskCheckPending marks a task not yet processed
	TaskCheckPending TaskState = "CheckPending"
	// TaskExecPending marks a task being executed
	TaskExecPending TaskState = "ExecPending"
	// TaskWaitingForConfirmation marks a task whose transaction was broadcast
	TaskWaitingForConfirmation TaskState = "WaitingForConfirmation"
	// TaskExecSuccess marks a task whose transaction was mined successfully
	TaskExecSuccess TaskState = "ExecSuccess"
	// TaskExecReverted marks a task whose transaction reverted
	TaskExecReverted TaskState = "ExecReverted"
	// TaskBlacklisted marks a task refused by the relay
	TaskBlacklisted TaskState = "Blacklisted"
	// TaskCancelled marks a task cancelled by the relay
	TaskCancelled TaskState = "Cancelled"
	// TaskNotFound marks a task unknown to the relay
	TaskNotFound TaskState = "NotFound"
)

// IsTerminal returns true if the relay will not change the task state anymore
func (state TaskState) IsTerminal() bool {
	switch state {
	case TaskExecSuccess, TaskExecReverted, TaskBlacklisted, TaskCancelled, TaskNotFound:
		return true
	default:
		return false
	}
}

// RelayDto is the call the relay has to submit
type RelayDto struct {
	To      common.Address `json:"to"`
	Data    string         `json:"data"`
	Version string         `json:"version"`
}

// RelayRequest is the relay submission request
type RelayRequest struct {
	ChainID  string   `json:"chainId"`
	RelayDto RelayDto `json:"relayDto"`
}

// RelayResponse is the relay submission response
type RelayResponse struct {
	TaskID string `json:"taskId"`
}

// TaskStatus is the relay view of a task
type TaskStatus struct {
	TaskID           string    `json:"taskId"`
	TaskState        TaskState `json:"taskState"`
	TransactionHash  string    `json:"transactionHash"`
	LastCheckMessage string    `json:"lastCheckMessage"`
}

// TaskStatusResponse is the relay task status response
type TaskStatusResponse struct {
	Task TaskStatus `json:"task"`
}

// RemainingRelays is the sponsored relays quota of a Safe
type RemainingRelays struct {
	Remaining uint32 `json:"remaining"`
	Limit     uint32 `json:"limit"`
}
