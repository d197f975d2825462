package execution

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/signatures"
	"github.com/multiversx/mx-chain-safe-go/relay"
)

// ArgsRelayExecutor holds the arguments needed to create a new relay executor
type ArgsRelayExecutor struct {
	DetailsProvider process.TransactionDetailsProvider
	RelayClient     process.RelayClient
	Encoder         TransactionEncoder
	ChainsConfig    process.ChainsConfigHandler
}

type relayExecutor struct {
	detailsProvider process.TransactionDetailsProvider
	relayClient     process.RelayClient
	encoder         TransactionEncoder
	chainsConfig    process.ChainsConfigHandler
}

// NewRelayExecutor creates the executor handing transactions to a sponsor relay
func NewRelayExecutor(args ArgsRelayExecutor) (*relayExecutor, error) {
	if check.IfNil(args.DetailsProvider) {
		return nil, process.ErrNilTransactionDetailsProvider
	}
	if check.IfNil(args.RelayClient) {
		return nil, process.ErrNilRelayClient
	}
	if check.IfNil(args.Encoder) {
		return nil, ErrNilEncoder
	}
	if check.IfNil(args.ChainsConfig) {
		return nil, process.ErrNilChainsConfig
	}

	return &relayExecutor{
		detailsProvider: args.DetailsProvider,
		relayClient:     args.RelayClient,
		encoder:         args.Encoder,
		chainsConfig:    args.ChainsConfig,
	}, nil
}

// ExecuteTransaction rebuilds the transaction and its signatures from the gateway record and relays the
// execTransaction call. The request transaction, if any, is not used.
func (re *relayExecutor) ExecuteTransaction(ctx context.Context, request *ExecutionRequest) (*Artifact, error) {
	if request == nil {
		return nil, ErrNilRequest
	}
	if request.Safe == nil {
		return nil, ErrNilSafeInfo
	}
	if len(request.TxID) == 0 {
		return nil, process.ErrEmptyTxID
	}

	details, err := re.detailsProvider.GetTransactionDetails(ctx, request.ChainID, request.TxID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSafeTransactionNotFound, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: empty details for %s", process.ErrSafeTransactionNotFound, request.TxID)
	}
	safeTx, err := details.ToSafeTransaction()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrSafeTransactionNotFound, err)
	}
	signatures.AddConfirmations(safeTx, details.Confirmations())
	err = checkRelayThreshold(details, safeTx, request.Safe)
	if err != nil {
		return nil, err
	}

	data, err := re.encoder.Encode(safeTx)
	if err != nil {
		return nil, err
	}

	taskID, err := re.relay(ctx, request.ChainID, request.Safe.Address, data, safeVersion(request.Safe))
	if err != nil {
		return nil, err
	}

	log.Debug("safe transaction relayed", "chainID", request.ChainID, "txID", request.TxID,
		"safe", request.Safe.Address.Hex(), "nonce", safeTx.Data.Nonce, "taskID", taskID)

	return &Artifact{
		TaskID:    taskID,
		SafeNonce: safeTx.Data.Nonce,
	}, nil
}

// checkRelayThreshold checks the rebuilt signatures against the highest of the gateway record and
// Safe state thresholds
func checkRelayThreshold(details *safetx.TransactionDetails, safeTx *safetx.SafeTransaction, safe *safetx.SafeInfo) error {
	required := safe.Threshold
	multisigInfo, ok := details.ExecutionInfo().(*safetx.MultisigExecutionInfo)
	if ok && multisigInfo.ConfirmationsRequired > required {
		required = multisigInfo.ConfirmationsRequired
	}

	info := &safetx.MultisigExecutionInfo{
		Nonce:                  safeTx.Data.Nonce,
		ConfirmationsRequired:  required,
		ConfirmationsSubmitted: signatures.CountSigned(safeTx.Signatures),
	}
	if !signatures.IsThresholdMet(info) {
		return fmt.Errorf("%w: %d of %d", ErrThresholdNotMet, info.ConfirmationsSubmitted, info.ConfirmationsRequired)
	}

	return nil
}

// ExecuteCall relays a raw call
func (re *relayExecutor) ExecuteCall(ctx context.Context, request *CallRequest) (*Artifact, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	taskID, err := re.relay(ctx, request.ChainID, request.To, request.Data, request.SafeVersion)
	if err != nil {
		return nil, err
	}

	log.Debug("call relayed", "chainID", request.ChainID, "trackingID", request.TrackingID,
		"to", request.To.Hex(), "taskID", taskID)

	return &Artifact{
		TaskID:    taskID,
		SafeNonce: request.SafeNonce,
	}, nil
}

func (re *relayExecutor) relay(ctx context.Context, chainID string, to common.Address, data []byte, version string) (string, error) {
	resolvedVersion, err := re.resolveVersion(chainID, version)
	if err != nil {
		return "", err
	}

	response, err := re.relayClient.Relay(ctx, &relay.RelayRequest{
		ChainID: chainID,
		RelayDto: relay.RelayDto{
			To:      to,
			Data:    hexutil.Encode(data),
			Version: resolvedVersion,
		},
	})
	if err != nil {
		return "", err
	}
	if response == nil || len(response.TaskID) == 0 {
		return "", fmt.Errorf("%w for chain %s, target %s", process.ErrRelayRejected, chainID, to.Hex())
	}

	return response.TaskID, nil
}

// resolveVersion falls back to the latest version known for the chain, counterfactual and legacy Safes
// may not report one
func (re *relayExecutor) resolveVersion(chainID string, version string) (string, error) {
	if len(version) > 0 {
		return version, nil
	}

	chainConfig, err := re.chainsConfig.ChainConfig(chainID)
	if err != nil {
		return "", err
	}

	return chainConfig.LatestSafeVersion, nil
}

// Kind returns KindRelay
func (re *relayExecutor) Kind() pending.ExecutionKind {
	return pending.KindRelay
}

// IsInterfaceNil returns true if there is no value under the interface
func (re *relayExecutor) IsInterfaceNil() bool {
	return re == nil
}
