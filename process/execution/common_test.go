package execution_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
)

var (
	testSafe    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testWallet  = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	testTxHash  = common.HexToHash("0x1234")
	testVersion = "1.3.0"
	signerA     = common.HexToAddress("0x000000000000000000000000000000000000000a")
	signerB     = common.HexToAddress("0x000000000000000000000000000000000000000b")
)

func createSafeTransaction(nonce uint64) *safetx.SafeTransaction {
	tx := safetx.NewSafeTransaction(safetx.TransactionData{
		To:        common.HexToAddress("0x02"),
		Value:     "100",
		Data:      []byte{0xca, 0xfe},
		Operation: safetx.OperationCall,
		Nonce:     nonce,
	})
	tx.Signatures[signerA] = []byte{0xa1}
	tx.Signatures[signerB] = []byte{0xb1}

	return tx
}

func createExecutionRequest() *execution.ExecutionRequest {
	version := testVersion
	return &execution.ExecutionRequest{
		ChainID: "1",
		TxID:    "multisig_0xaa_0x01",
		Safe: &safetx.SafeInfo{
			ChainID:   "1",
			Address:   testSafe,
			Version:   &version,
			Threshold: 2,
		},
		Transaction: createSafeTransaction(5),
		Wallet:      testWallet,
	}
}

func createCallRequest() *execution.CallRequest {
	return &execution.CallRequest{
		ChainID:    "1",
		TrackingID: "activation",
		Safe:       testSafe,
		Wallet:     testWallet,
		To:         common.HexToAddress("0x03"),
		Value:      big.NewInt(0),
		Data:       []byte{0x01},
	}
}
