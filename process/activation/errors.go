package activation

import "errors"

// ErrNilRequest signals that a nil activation request was provided
var ErrNilRequest = errors.New("nil activation request")

// ErrNilUndeployedSafe signals that the request carries no undeployed Safe
var ErrNilUndeployedSafe = errors.New("nil undeployed safe")

// ErrNilDeploymentProps signals that the undeployed Safe carries no deployment properties
var ErrNilDeploymentProps = errors.New("nil deployment props")

// ErrUnknownDeploymentProps signals that the deployment properties are of an unsupported kind
var ErrUnknownDeploymentProps = errors.New("unknown deployment props")

// ErrInvalidNumber signals that a deployment parameter is not a valid unsigned decimal
var ErrInvalidNumber = errors.New("invalid unsigned number")

// ErrNilSafeTransaction signals that a nil Safe transaction was provided
var ErrNilSafeTransaction = errors.New("nil safe transaction")

// ErrThresholdNotMet signals that the bundled transaction does not carry enough signatures
var ErrThresholdNotMet = errors.New("threshold not met")

// ErrNilDispatcher signals that a nil dispatcher was provided
var ErrNilDispatcher = errors.New("nil dispatcher")

// ErrNilCodec signals that a nil codec was provided
var ErrNilCodec = errors.New("nil codec")

// ErrNilTransactionEncoder signals that a nil transaction encoder was provided
var ErrNilTransactionEncoder = errors.New("nil transaction encoder")

// ErrNilTransactionWaiter signals that a nil transaction waiter was provided
var ErrNilTransactionWaiter = errors.New("nil transaction waiter")
