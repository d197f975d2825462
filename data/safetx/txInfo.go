package safetx

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TxInfoType is the discriminator of the TxInfo union
type TxInfoType string

const (
	// TxInfoTransfer is a native coin or token transfer
	TxInfoTransfer TxInfoType = "Transfer"
	// TxInfoCustom is an arbitrary contract interaction
	TxInfoCustom TxInfoType = "Custom"
	// TxInfoSettingsChange is a change of the Safe's own configuration
	TxInfoSettingsChange TxInfoType = "SettingsChange"
	// TxInfoSwapOrder is a swap order signed by the Safe
	TxInfoSwapOrder TxInfoType = "SwapOrder"
	// TxInfoCreation is the creation of the Safe itself
	TxInfoCreation TxInfoType = "Creation"
)

// TransferDirection tells whether a transfer left or reached the Safe
type TransferDirection string

const (
	// DirectionIncoming marks funds received by the Safe
	DirectionIncoming TransferDirection = "INCOMING"
	// DirectionOutgoing marks funds sent by the Safe
	DirectionOutgoing TransferDirection = "OUTGOING"
)

// TxInfo describes what a transaction does. Implemented only by the *XxxInfo types of this package.
type TxInfo interface {
	Type() TxInfoType
	txInfo()
}

// TransferInfo describes a transfer
type TransferInfo struct {
	Sender       common.Address    `json:"sender" mapstructure:"sender"`
	Recipient    common.Address    `json:"recipient" mapstructure:"recipient"`
	Direction    TransferDirection `json:"direction" mapstructure:"direction"`
	TokenType    string            `json:"tokenType" mapstructure:"tokenType"`
	TokenAddress common.Address    `json:"tokenAddress" mapstructure:"tokenAddress"`
	TokenSymbol  string            `json:"tokenSymbol" mapstructure:"tokenSymbol"`
	Value        string            `json:"value" mapstructure:"value"`
}

// CustomInfo describes a contract interaction
type CustomInfo struct {
	To             common.Address `json:"to" mapstructure:"to"`
	Value          string         `json:"value" mapstructure:"value"`
	DataSize       uint64         `json:"dataSize" mapstructure:"dataSize"`
	MethodName     string         `json:"methodName" mapstructure:"methodName"`
	ActionCount    uint32         `json:"actionCount" mapstructure:"actionCount"`
	IsCancellation bool           `json:"isCancellation" mapstructure:"isCancellation"`
}

// SettingsChangeInfo describes a change of owners, threshold, modules or guards
type SettingsChangeInfo struct {
	SettingType string       `json:"settingType" mapstructure:"settingType"`
	DataDecoded *DataDecoded `json:"dataDecoded" mapstructure:"dataDecoded"`
}

// SwapOrderInfo describes a swap order
type SwapOrderInfo struct {
	UID        string `json:"uid" mapstructure:"uid"`
	Status     string `json:"status" mapstructure:"status"`
	Kind       string `json:"kind" mapstructure:"kind"`
	SellToken  string `json:"sellToken" mapstructure:"sellToken"`
	BuyToken   string `json:"buyToken" mapstructure:"buyToken"`
	SellAmount string `json:"sellAmount" mapstructure:"sellAmount"`
	BuyAmount  string `json:"buyAmount" mapstructure:"buyAmount"`
}

// CreationInfo describes the creation of the Safe
type CreationInfo struct {
	Creator         common.Address `json:"creator" mapstructure:"creator"`
	TransactionHash common.Hash    `json:"transactionHash" mapstructure:"transactionHash"`
	Implementation  common.Address `json:"implementation" mapstructure:"implementation"`
	Factory         common.Address `json:"factory" mapstructure:"factory"`
	SaltNonce       string         `json:"saltNonce" mapstructure:"saltNonce"`
}

// DataDecoded is the decoded calldata of a transaction, as reported by the gateway
type DataDecoded struct {
	Method     string             `json:"method" mapstructure:"method"`
	Parameters []DecodedParameter `json:"parameters" mapstructure:"parameters"`
}

// DecodedParameter is one decoded calldata argument. ValueDecoded is filled for MultiSend batches.
type DecodedParameter struct {
	Name         string            `json:"name" mapstructure:"name"`
	Type         string            `json:"type" mapstructure:"type"`
	Value        interface{}       `json:"value" mapstructure:"value"`
	ValueDecoded []*MultiSendEntry `json:"valueDecoded" mapstructure:"valueDecoded"`
}

// MultiSendEntry is one inner call of a MultiSend batch
type MultiSendEntry struct {
	Operation   Operation      `json:"operation" mapstructure:"operation"`
	To          common.Address `json:"to" mapstructure:"to"`
	Value       string         `json:"value" mapstructure:"value"`
	Data        hexutil.Bytes  `json:"data" mapstructure:"data"`
	DataDecoded *DataDecoded   `json:"dataDecoded" mapstructure:"dataDecoded"`
}

// Type returns TxInfoTransfer
func (info *TransferInfo) Type() TxInfoType { return TxInfoTransfer }

// Type returns TxInfoCustom
func (info *CustomInfo) Type() TxInfoType { return TxInfoCustom }

// Type returns TxInfoSettingsChange
func (info *SettingsChangeInfo) Type() TxInfoType { return TxInfoSettingsChange }

// Type returns TxInfoSwapOrder
func (info *SwapOrderInfo) Type() TxInfoType { return TxInfoSwapOrder }

// Type returns TxInfoCreation
func (info *CreationInfo) Type() TxInfoType { return TxInfoCreation }

func (info *TransferInfo) txInfo()       {}
func (info *CustomInfo) txInfo()         {}
func (info *SettingsChangeInfo) txInfo() {}
func (info *SwapOrderInfo) txInfo()      {}
func (info *CreationInfo) txInfo()       {}

var safeCreationMethods = map[string]struct{}{
	"createProxy":                       {},
	"createProxyWithNonce":              {},
	"createProxyWithCallback":           {},
	"createChainSpecificProxyWithNonce": {},
}

// IsSafeCreationCall returns true if the call deploys a new Safe through one of the known proxy factories
func IsSafeCreationCall(to common.Address, method string, factories []common.Address) bool {
	_, isCreation := safeCreationMethods[method]
	if !isCreation {
		return false
	}

	for _, factory := range factories {
		if factory == to {
			return true
		}
	}

	return false
}

// ContainsSafeCreation returns true if the decoded call, or one of the calls of a MultiSend batch, deploys a new Safe
func (dd *DataDecoded) ContainsSafeCreation(to common.Address, factories []common.Address) bool {
	if dd == nil {
		return false
	}
	if IsSafeCreationCall(to, dd.Method, factories) {
		return true
	}

	for _, parameter := range dd.Parameters {
		for _, entry := range parameter.ValueDecoded {
			if entry == nil {
				continue
			}
			if entry.DataDecoded.ContainsSafeCreation(entry.To, factories) {
				return true
			}
		}
	}

	return false
}

// IsSafeCreation returns true if the summary alone tells the transaction deployed a new Safe. Batches
// report only their action count, their inner calls have to be checked with ContainsSafeCreation.
func IsSafeCreation(info TxInfo, factories []common.Address) bool {
	switch txInfo := info.(type) {
	case *CustomInfo:
		return IsSafeCreationCall(txInfo.To, txInfo.MethodName, factories)
	case *TransferInfo, *SettingsChangeInfo, *SwapOrderInfo, *CreationInfo:
		return false
	default:
		return false
	}
}

// IsBatch returns true if the transaction is a MultiSend batch
func IsBatch(info TxInfo) bool {
	customInfo, ok := info.(*CustomInfo)
	if !ok || customInfo == nil {
		return false
	}

	return customInfo.ActionCount > 0 || customInfo.MethodName == "multiSend"
}

// Title returns the header title shown for a transaction
func Title(info TxInfo) string {
	switch txInfo := info.(type) {
	case *TransferInfo:
		if txInfo.Direction == DirectionIncoming {
			return "Received"
		}
		return "Sent"
	case *CustomInfo:
		if txInfo.IsCancellation {
			return "On-chain rejection"
		}
		if txInfo.ActionCount > 0 {
			return "Batch"
		}
		if len(txInfo.MethodName) > 0 {
			return txInfo.MethodName
		}
		return "Contract interaction"
	case *SettingsChangeInfo:
		if txInfo.DataDecoded != nil && len(txInfo.DataDecoded.Method) > 0 {
			return txInfo.DataDecoded.Method
		}
		return txInfo.SettingType
	case *SwapOrderInfo:
		return "Swap order"
	case *CreationInfo:
		return "Safe Account created"
	default:
		return "Unknown"
	}
}

// TransferredValue returns the native value moved by a transaction, if the variant carries one
func TransferredValue(info TxInfo) (string, bool) {
	switch txInfo := info.(type) {
	case *TransferInfo:
		return txInfo.Value, txInfo.TokenType == "NATIVE_COIN"
	case *CustomInfo:
		return txInfo.Value, len(txInfo.Value) > 0
	case *SettingsChangeInfo, *SwapOrderInfo, *CreationInfo:
		return "", false
	default:
		return "", false
	}
}
