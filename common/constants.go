package common

// MetricPendingExecutions is the metric for the number of executions still in EXECUTING state
const MetricPendingExecutions = "safe_pending_executions"

// MetricExecutionsStarted is the metric for the number of dispatched executions
const MetricExecutionsStarted = "safe_executions_started"

// MetricExecutionsSucceeded is the metric for the number of executions confirmed on chain
const MetricExecutionsSucceeded = "safe_executions_succeeded"

// MetricExecutionsFailed is the metric for the number of executions that ended in error
const MetricExecutionsFailed = "safe_executions_failed"

// MetricRelayTasksInFlight is the metric for the number of relay tasks currently polled
const MetricRelayTasksInFlight = "safe_relay_tasks_in_flight"

// MetricReconciledTransactions is the metric for the number of pending records resolved from history
const MetricReconciledTransactions = "safe_reconciled_transactions"

// MetricReplacedTransactions is the metric for the number of pending records whose nonce was taken by another transaction
const MetricReplacedTransactions = "safe_replaced_transactions"

// MetricSafeActivations is the metric for the number of counterfactual Safe deployments submitted
const MetricSafeActivations = "safe_activations"

// MetricTrackedExecutions is the metric for the number of records held by the pending tracker, in any state
const MetricTrackedExecutions = "safe_tracked_executions"

// MetricPendingStreamSubscribers is the metric for the number of clients listening to the pending changes stream
const MetricPendingStreamSubscribers = "safe_pending_stream_subscribers"

// MetricAppVersion is the metric for the current application version
const MetricAppVersion = "safe_app_version"

// AllMetrics lists the numeric metrics exported through prometheus
var AllMetrics = []string{
	MetricPendingExecutions,
	MetricExecutionsStarted,
	MetricExecutionsSucceeded,
	MetricExecutionsFailed,
	MetricRelayTasksInFlight,
	MetricReconciledTransactions,
	MetricReplacedTransactions,
	MetricSafeActivations,
	MetricTrackedExecutions,
	MetricPendingStreamSubscribers,
}

// DefaultRestInterface is the default interface the REST API will start on if not specified
const DefaultRestInterface = "localhost:8080"

// DefaultRestPortOff is the default value that should be passed if it is desired
// to start the node without a REST endpoint available
const DefaultRestPortOff = "off"
