package safetx

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TxData is the calldata section of the transaction details
type TxData struct {
	To          common.Address `json:"to"`
	Value       string         `json:"value"`
	HexData     hexutil.Bytes  `json:"hexData"`
	Operation   Operation      `json:"operation"`
	DataDecoded *DataDecoded   `json:"dataDecoded"`
}

// DetailedExecutionInfo is the detailed authorization data of a transaction. Implemented only by
// *MultisigExecutionDetails and *ModuleExecutionDetails.
type DetailedExecutionInfo interface {
	Type() ExecutionInfoType
	detailedExecutionInfo()
}

// MultisigExecutionDetails holds everything needed to rebuild and execute a multisig transaction
type MultisigExecutionDetails struct {
	Nonce                 uint64           `json:"nonce"`
	SafeTxGas             string           `json:"safeTxGas"`
	BaseGas               string           `json:"baseGas"`
	GasPrice              string           `json:"gasPrice"`
	GasToken              common.Address   `json:"gasToken"`
	RefundReceiver        common.Address   `json:"refundReceiver"`
	SafeTxHash            common.Hash      `json:"safeTxHash"`
	Executor              *common.Address  `json:"executor"`
	Signers               []common.Address `json:"signers"`
	ConfirmationsRequired uint32           `json:"confirmationsRequired"`
	Confirmations         []*Confirmation  `json:"confirmations"`
	Trusted               bool             `json:"trusted"`
}

// ModuleExecutionDetails holds the module that executed a transaction
type ModuleExecutionDetails struct {
	Address common.Address `json:"address"`
}

// Type returns ExecutionInfoMultisig
func (details *MultisigExecutionDetails) Type() ExecutionInfoType { return ExecutionInfoMultisig }

// Type returns ExecutionInfoModule
func (details *ModuleExecutionDetails) Type() ExecutionInfoType { return ExecutionInfoModule }

func (details *MultisigExecutionDetails) detailedExecutionInfo() {}
func (details *ModuleExecutionDetails) detailedExecutionInfo()   {}

// TransactionDetails is the canonical transaction record served by the gateway
type TransactionDetails struct {
	TxID                  string                `json:"txId"`
	SafeAddress           common.Address        `json:"safeAddress"`
	TxStatus              TxStatus              `json:"txStatus"`
	TxHash                *common.Hash          `json:"txHash"`
	ExecutedAt            *int64                `json:"executedAt"`
	TxInfo                TxInfo                `json:"txInfo"`
	TxData                *TxData               `json:"txData"`
	DetailedExecutionInfo DetailedExecutionInfo `json:"detailedExecutionInfo"`
}

// ToSafeTransaction rebuilds the transaction data from the details. Signatures are left empty, the
// confirmations are available through Confirmations.
func (details *TransactionDetails) ToSafeTransaction() (*SafeTransaction, error) {
	if details.TxData == nil {
		return nil, ErrMissingTransactionData
	}
	multisigDetails, ok := details.DetailedExecutionInfo.(*MultisigExecutionDetails)
	if !ok || multisigDetails == nil {
		return nil, ErrNotMultisigTransaction
	}

	tx := NewSafeTransaction(TransactionData{
		To:             details.TxData.To,
		Value:          details.TxData.Value,
		Data:           append(hexutil.Bytes{}, details.TxData.HexData...),
		Operation:      details.TxData.Operation,
		SafeTxGas:      multisigDetails.SafeTxGas,
		BaseGas:        multisigDetails.BaseGas,
		GasPrice:       multisigDetails.GasPrice,
		GasToken:       multisigDetails.GasToken,
		RefundReceiver: multisigDetails.RefundReceiver,
		Nonce:          multisigDetails.Nonce,
	})

	err := tx.Data.Validate()
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// Confirmations returns the confirmations of a multisig transaction, nil otherwise
func (details *TransactionDetails) Confirmations() []*Confirmation {
	multisigDetails, ok := details.DetailedExecutionInfo.(*MultisigExecutionDetails)
	if !ok || multisigDetails == nil {
		return nil
	}

	return multisigDetails.Confirmations
}

// ExecutionInfo returns the summary execution info derived from the details
func (details *TransactionDetails) ExecutionInfo() ExecutionInfo {
	switch info := details.DetailedExecutionInfo.(type) {
	case *MultisigExecutionDetails:
		submitted := 0
		for _, confirmation := range info.Confirmations {
			if confirmation != nil {
				submitted++
			}
		}
		return &MultisigExecutionInfo{
			Nonce:                  info.Nonce,
			ConfirmationsRequired:  info.ConfirmationsRequired,
			ConfirmationsSubmitted: uint32(submitted),
			Signers:                info.Signers,
			Trusted:                info.Trusted,
		}
	case *ModuleExecutionDetails:
		return &ModuleExecutionInfo{ModuleAddress: info.Address}
	default:
		return nil
	}
}
