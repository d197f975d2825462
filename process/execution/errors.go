package execution

import "errors"

// ErrNilRequest signals that a nil request was provided
var ErrNilRequest = errors.New("nil request")

// ErrNilSafeInfo signals that the request carries no Safe info
var ErrNilSafeInfo = errors.New("nil safe info")

// ErrNilSafeTransaction signals that the request carries no Safe transaction
var ErrNilSafeTransaction = errors.New("nil safe transaction")

// ErrThresholdNotMet signals that the transaction does not hold enough confirmations to be executed
var ErrThresholdNotMet = errors.New("threshold not met")

// ErrNilExecutor signals that a nil executor was provided
var ErrNilExecutor = errors.New("nil executor")

// ErrNilEncoder signals that a nil encoder was provided
var ErrNilEncoder = errors.New("nil encoder")

// ErrNilSecretStore signals that a nil secret store was provided
var ErrNilSecretStore = errors.New("nil secret store")

// ErrNilSignerRegistry signals that a nil signer registry was provided
var ErrNilSignerRegistry = errors.New("nil signer registry")

// ErrNilHardwareService signals that a nil hardware service was provided
var ErrNilHardwareService = errors.New("nil hardware service")

// ErrNilTransactionWaiter signals that a nil transaction waiter was provided
var ErrNilTransactionWaiter = errors.New("nil transaction waiter")

// ErrNilRelayMonitor signals that a nil relay monitor was provided
var ErrNilRelayMonitor = errors.New("nil relay monitor")

// ErrInvalidGasLimitMultiplier signals that an invalid gas limit multiplier was provided
var ErrInvalidGasLimitMultiplier = errors.New("invalid gas limit multiplier")

// ErrInvalidChainID signals that the chain identifier is not a decimal number
var ErrInvalidChainID = errors.New("invalid chain id")

// ErrMissingArtifact signals that an executor reported success without artifact
var ErrMissingArtifact = errors.New("missing execution artifact")
