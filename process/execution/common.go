package execution

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

func parseChainID(chainID string) (*big.Int, error) {
	value, ok := big.NewInt(0).SetString(chainID, 10)
	if !ok || value.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidChainID, chainID)
	}

	return value, nil
}

func checkExecutionRequest(request *ExecutionRequest) error {
	if request == nil {
		return ErrNilRequest
	}
	if request.Safe == nil {
		return ErrNilSafeInfo
	}
	if request.Transaction == nil {
		return ErrNilSafeTransaction
	}

	return nil
}

// safeCall turns an execution request into the execTransaction call on the Safe itself
func safeCall(request *ExecutionRequest, data []byte) *CallRequest {
	return &CallRequest{
		ChainID:      request.ChainID,
		TrackingID:   request.TxID,
		Safe:         request.Safe.Address,
		SafeVersion:  safeVersion(request.Safe),
		SafeNonce:    request.Transaction.Data.Nonce,
		HasSafeNonce: true,
		Wallet:       request.Wallet,
		To:           request.Safe.Address,
		Value:        big.NewInt(0),
		Data:         data,
	}
}

func safeVersion(info *safetx.SafeInfo) string {
	if info == nil || info.Version == nil {
		return ""
	}

	return *info.Version
}

func valueOrZero(value *big.Int) *big.Int {
	if value == nil {
		return big.NewInt(0)
	}

	return value
}
