package hardware

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/process"
)

var log = logger.GetOrCreate("hardware")

const (
	sendTransactionPath = "/v1/transactions"
	disconnectPath      = "/v1/disconnect"
)

type bridgeClient struct {
	httpClient HttpClient
}

// NewBridgeClient creates the client of the local bridge holding the hardware device transport
func NewBridgeClient(httpClient HttpClient) (*bridgeClient, error) {
	if check.IfNil(httpClient) {
		return nil, ErrNilHttpClient
	}

	return &bridgeClient{
		httpClient: httpClient,
	}, nil
}

// ExecuteTransaction has the device sign the transaction and the bridge broadcast it
func (bc *bridgeClient) ExecuteTransaction(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
	if request == nil {
		return common.Hash{}, ErrNilRequest
	}

	payload := &SendTransactionRequest{
		ChainID:        bigToString(request.ChainID),
		DerivationPath: request.DerivationPath,
		From:           request.From,
		To:             request.To,
		Value:          bigToString(request.Value),
		Data:           hexutil.Encode(request.Data),
	}

	response := &SendTransactionResponse{}
	_, err := bc.httpClient.Post(ctx, sendTransactionPath, payload, response)
	if err != nil {
		return common.Hash{}, err
	}
	if response.TxHash == (common.Hash{}) {
		return common.Hash{}, ErrMissingTransactionHash
	}

	log.Debug("hardware transaction broadcast", "from", request.From.Hex(), "to", request.To.Hex(),
		"txHash", response.TxHash.Hex())

	return response.TxHash, nil
}

// Disconnect releases the device transport
func (bc *bridgeClient) Disconnect() error {
	_, err := bc.httpClient.Post(context.Background(), disconnectPath, struct{}{}, nil)

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (bc *bridgeClient) IsInterfaceNil() bool {
	return bc == nil
}

func bigToString(value *big.Int) string {
	if value == nil {
		return "0"
	}

	return value.String()
}
