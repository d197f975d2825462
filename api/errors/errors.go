package errors

import (
	"errors"
)

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrFacadeWrongTypeAssertion signals that a type conversion to a facade type failed
var ErrFacadeWrongTypeAssertion = errors.New("facade - wrong type assertion")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrCannotCreateGinWebServer signals that the gin web server cannot be created
var ErrCannotCreateGinWebServer = errors.New("cannot create gin web server")

// ErrInvalidAddress signals that an invalid address was provided
var ErrInvalidAddress = errors.New("invalid address")

// ErrEmptyTxID signals that an empty transaction id was provided
var ErrEmptyTxID = errors.New("empty transaction id")

// ErrEmptyChainID signals that an empty chain id was provided
var ErrEmptyChainID = errors.New("empty chain id")

// ErrInvalidSafeTxHash signals that an invalid Safe transaction hash was provided
var ErrInvalidSafeTxHash = errors.New("invalid safe transaction hash")

// ErrGetPendingExecutions signals an error in fetching the pending executions
var ErrGetPendingExecutions = errors.New("get pending executions error")

// ErrDiscardPendingExecution signals an error in discarding a pending execution
var ErrDiscardPendingExecution = errors.New("discard pending execution error")

// ErrStreamPendingExecutions signals an error in streaming the pending execution changes
var ErrStreamPendingExecutions = errors.New("stream pending executions error")

// ErrExecuteTransaction signals an error in executing a Safe transaction
var ErrExecuteTransaction = errors.New("execute transaction error")

// ErrProposeTransaction signals an error in proposing a Safe transaction
var ErrProposeTransaction = errors.New("propose transaction error")

// ErrConfirmTransaction signals an error in confirming a Safe transaction
var ErrConfirmTransaction = errors.New("confirm transaction error")

// ErrGetRecommendedNonce signals an error in fetching the recommended nonce of a Safe
var ErrGetRecommendedNonce = errors.New("get recommended nonce error")

// ErrActivateSafe signals an error in activating an undeployed Safe
var ErrActivateSafe = errors.New("activate safe error")

// ErrReconcileHistory signals an error in reconciling the history of a Safe
var ErrReconcileHistory = errors.New("reconcile history error")

// ErrGetOwnedSafes signals an error in fetching the Safes owned by an address
var ErrGetOwnedSafes = errors.New("get owned safes error")

// ErrInvalidDeploymentProps signals that the deployment props of an undeployed Safe are missing or ambiguous
var ErrInvalidDeploymentProps = errors.New("exactly one of predicted or replayed props must be provided")
