package gateway

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

var (
	addressType = reflect.TypeOf(common.Address{})
	hashType    = reflect.TypeOf(common.Hash{})
	bytesType   = reflect.TypeOf(hexutil.Bytes{})
	timeType    = reflect.TypeOf(time.Time{})
)

type rawTxData struct {
	To          common.Address      `mapstructure:"to"`
	Value       string              `mapstructure:"value"`
	HexData     hexutil.Bytes       `mapstructure:"hexData"`
	Operation   safetx.Operation    `mapstructure:"operation"`
	DataDecoded *safetx.DataDecoded `mapstructure:"dataDecoded"`
}

type rawTransactionDetails struct {
	TxID                  string                 `mapstructure:"txId"`
	SafeAddress           common.Address         `mapstructure:"safeAddress"`
	TxStatus              safetx.TxStatus        `mapstructure:"txStatus"`
	TxHash                *common.Hash           `mapstructure:"txHash"`
	ExecutedAt            *int64                 `mapstructure:"executedAt"`
	TxInfo                map[string]interface{} `mapstructure:"txInfo"`
	TxData                *rawTxData             `mapstructure:"txData"`
	DetailedExecutionInfo map[string]interface{} `mapstructure:"detailedExecutionInfo"`
}

type rawTransactionSummary struct {
	ID            string                 `mapstructure:"id"`
	Timestamp     int64                  `mapstructure:"timestamp"`
	TxStatus      safetx.TxStatus        `mapstructure:"txStatus"`
	TxHash        common.Hash            `mapstructure:"txHash"`
	TxInfo        map[string]interface{} `mapstructure:"txInfo"`
	ExecutionInfo map[string]interface{} `mapstructure:"executionInfo"`
}

type rawHistoryItem struct {
	Type         safetx.HistoryItemType `mapstructure:"type"`
	Transaction  *rawTransactionSummary `mapstructure:"transaction"`
	ConflictType string                 `mapstructure:"conflictType"`
	Timestamp    int64                  `mapstructure:"timestamp"`
	Label        string                 `mapstructure:"label"`
	Nonce        uint64                 `mapstructure:"nonce"`
}

type rawTransferInfo struct {
	Sender       common.Address           `mapstructure:"sender"`
	Recipient    common.Address           `mapstructure:"recipient"`
	Direction    safetx.TransferDirection `mapstructure:"direction"`
	TransferInfo struct {
		Type         string         `mapstructure:"type"`
		Value        string         `mapstructure:"value"`
		TokenAddress common.Address `mapstructure:"tokenAddress"`
		TokenSymbol  string         `mapstructure:"tokenSymbol"`
	} `mapstructure:"transferInfo"`
}

type rawToken struct {
	Address string `mapstructure:"address"`
}

type rawSwapOrderInfo struct {
	UID        string   `mapstructure:"uid"`
	Status     string   `mapstructure:"status"`
	Kind       string   `mapstructure:"kind"`
	SellToken  rawToken `mapstructure:"sellToken"`
	BuyToken   rawToken `mapstructure:"buyToken"`
	SellAmount string   `mapstructure:"sellAmount"`
	BuyAmount  string   `mapstructure:"buyAmount"`
}

// DecodeTransactionDetails decodes a generic JSON object into transaction details
func DecodeTransactionDetails(input interface{}) (*safetx.TransactionDetails, error) {
	raw := &rawTransactionDetails{}
	err := decode(input, raw)
	if err != nil {
		return nil, err
	}

	details := &safetx.TransactionDetails{
		TxID:        raw.TxID,
		SafeAddress: raw.SafeAddress,
		TxStatus:    raw.TxStatus,
		TxHash:      raw.TxHash,
		ExecutedAt:  raw.ExecutedAt,
	}
	details.TxInfo, err = decodeTxInfo(raw.TxInfo)
	if err != nil {
		return nil, err
	}
	if raw.TxData != nil {
		details.TxData = &safetx.TxData{
			To:          raw.TxData.To,
			Value:       raw.TxData.Value,
			HexData:     raw.TxData.HexData,
			Operation:   raw.TxData.Operation,
			DataDecoded: raw.TxData.DataDecoded,
		}
	}
	details.DetailedExecutionInfo, err = decodeDetailedExecutionInfo(raw.DetailedExecutionInfo)
	if err != nil {
		return nil, err
	}

	return details, nil
}

// DecodeHistoryItems decodes a list of generic JSON objects into history items. Unknown item types are skipped.
func DecodeHistoryItems(input []interface{}) ([]safetx.HistoryItem, error) {
	items := make([]safetx.HistoryItem, 0, len(input))
	for idx, rawInput := range input {
		item, err := decodeHistoryItem(rawInput)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d", err, idx)
		}
		if item == nil {
			continue
		}

		items = append(items, item)
	}

	return items, nil
}

func decodeHistoryItem(input interface{}) (safetx.HistoryItem, error) {
	raw := &rawHistoryItem{}
	err := decode(input, raw)
	if err != nil {
		return nil, err
	}

	switch raw.Type {
	case safetx.HistoryItemTransaction:
		if raw.Transaction == nil {
			return nil, fmt.Errorf("%w: transaction item without transaction", ErrInvalidResponse)
		}
		summary, errSummary := decodeSummary(raw.Transaction)
		if errSummary != nil {
			return nil, errSummary
		}
		return &safetx.TransactionItem{
			Transaction:  *summary,
			ConflictType: raw.ConflictType,
		}, nil
	case safetx.HistoryItemDateLabel:
		return &safetx.DateLabel{Timestamp: raw.Timestamp}, nil
	case safetx.HistoryItemLabel:
		return &safetx.Label{Label: raw.Label}, nil
	case safetx.HistoryItemConflictHeader:
		return &safetx.ConflictHeader{Nonce: raw.Nonce}, nil
	default:
		log.Debug("skipping unknown history item", "type", raw.Type)
		return nil, nil
	}
}

func decodeSummary(raw *rawTransactionSummary) (*safetx.TransactionSummary, error) {
	txInfo, err := decodeTxInfo(raw.TxInfo)
	if err != nil {
		return nil, err
	}
	executionInfo, err := decodeExecutionInfo(raw.ExecutionInfo)
	if err != nil {
		return nil, err
	}

	return &safetx.TransactionSummary{
		ID:            raw.ID,
		Timestamp:     raw.Timestamp,
		TxStatus:      raw.TxStatus,
		TxHash:        raw.TxHash,
		TxInfo:        txInfo,
		ExecutionInfo: executionInfo,
	}, nil
}

func decodeTxInfo(input map[string]interface{}) (safetx.TxInfo, error) {
	if input == nil {
		return nil, nil
	}

	infoType, _ := input["type"].(string)
	switch safetx.TxInfoType(infoType) {
	case safetx.TxInfoTransfer:
		raw := &rawTransferInfo{}
		err := decode(input, raw)
		if err != nil {
			return nil, err
		}
		return &safetx.TransferInfo{
			Sender:       raw.Sender,
			Recipient:    raw.Recipient,
			Direction:    raw.Direction,
			TokenType:    raw.TransferInfo.Type,
			TokenAddress: raw.TransferInfo.TokenAddress,
			TokenSymbol:  raw.TransferInfo.TokenSymbol,
			Value:        raw.TransferInfo.Value,
		}, nil
	case safetx.TxInfoCustom:
		info := &safetx.CustomInfo{}
		return info, decode(input, info)
	case safetx.TxInfoSettingsChange:
		info := &safetx.SettingsChangeInfo{}
		return info, decode(input, info)
	case safetx.TxInfoSwapOrder:
		raw := &rawSwapOrderInfo{}
		err := decode(input, raw)
		if err != nil {
			return nil, err
		}
		return &safetx.SwapOrderInfo{
			UID:        raw.UID,
			Status:     raw.Status,
			Kind:       raw.Kind,
			SellToken:  raw.SellToken.Address,
			BuyToken:   raw.BuyToken.Address,
			SellAmount: raw.SellAmount,
			BuyAmount:  raw.BuyAmount,
		}, nil
	case safetx.TxInfoCreation:
		info := &safetx.CreationInfo{}
		return info, decode(input, info)
	default:
		log.Debug("unsupported tx info type", "type", infoType)
		return nil, nil
	}
}

func decodeExecutionInfo(input map[string]interface{}) (safetx.ExecutionInfo, error) {
	if input == nil {
		return nil, nil
	}

	infoType, _ := input["type"].(string)
	switch safetx.ExecutionInfoType(infoType) {
	case safetx.ExecutionInfoMultisig:
		info := &safetx.MultisigExecutionInfo{}
		raw := &struct {
			Nonce                  uint64           `mapstructure:"nonce"`
			ConfirmationsRequired  uint32           `mapstructure:"confirmationsRequired"`
			ConfirmationsSubmitted uint32           `mapstructure:"confirmationsSubmitted"`
			MissingSigners         []common.Address `mapstructure:"missingSigners"`
		}{}
		err := decode(input, raw)
		if err != nil {
			return nil, err
		}
		info.Nonce = raw.Nonce
		info.ConfirmationsRequired = raw.ConfirmationsRequired
		info.ConfirmationsSubmitted = raw.ConfirmationsSubmitted
		info.Signers = raw.MissingSigners
		return info, nil
	case safetx.ExecutionInfoModule:
		raw := &struct {
			Address common.Address `mapstructure:"address"`
		}{}
		err := decode(input, raw)
		if err != nil {
			return nil, err
		}
		return &safetx.ModuleExecutionInfo{ModuleAddress: raw.Address}, nil
	default:
		return nil, fmt.Errorf("%w: unknown execution info type %q", ErrInvalidResponse, infoType)
	}
}

func decodeDetailedExecutionInfo(input map[string]interface{}) (safetx.DetailedExecutionInfo, error) {
	if input == nil {
		return nil, nil
	}

	infoType, _ := input["type"].(string)
	switch safetx.ExecutionInfoType(infoType) {
	case safetx.ExecutionInfoMultisig:
		info := &safetx.MultisigExecutionDetails{}
		return info, decode(input, info)
	case safetx.ExecutionInfoModule:
		info := &safetx.ModuleExecutionDetails{}
		return info, decode(input, info)
	default:
		return nil, fmt.Errorf("%w: unknown detailed execution info type %q", ErrInvalidResponse, infoType)
	}
}

func decode(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			addressHook,
			hashHook,
			bytesHook,
			timeHook,
		),
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           result,
	})
	if err != nil {
		return err
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, err.Error())
	}

	return nil
}

// addressHook accepts both plain hex strings and the gateway {"value": "0x..."} address objects
func addressHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != addressType {
		return data, nil
	}

	var value string
	switch typed := data.(type) {
	case string:
		value = typed
	case map[string]interface{}:
		value, _ = typed["value"].(string)
	default:
		return data, nil
	}
	if !common.IsHexAddress(value) {
		return nil, fmt.Errorf("invalid address %q", value)
	}

	return common.HexToAddress(value), nil
}

func hashHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != hashType {
		return data, nil
	}
	value, ok := data.(string)
	if !ok {
		return data, nil
	}

	decoded, err := decodeHex(value)
	if err != nil {
		return nil, err
	}
	if len(decoded) != common.HashLength {
		return nil, fmt.Errorf("invalid hash length %d", len(decoded))
	}

	return common.BytesToHash(decoded), nil
}

func bytesHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != bytesType {
		return data, nil
	}
	value, ok := data.(string)
	if !ok {
		return data, nil
	}

	decoded, err := decodeHex(value)
	if err != nil {
		return nil, err
	}

	return hexutil.Bytes(decoded), nil
}

// timeHook converts millisecond timestamps and RFC3339 strings
func timeHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType {
		return data, nil
	}

	switch typed := data.(type) {
	case float64:
		return time.UnixMilli(int64(typed)).UTC(), nil
	case int64:
		return time.UnixMilli(typed).UTC(), nil
	case string:
		return time.Parse(time.RFC3339, typed)
	default:
		return data, nil
	}
}

func decodeHex(value string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if len(trimmed) == 0 {
		return []byte{}, nil
	}

	return hexutil.Decode("0x" + trimmed)
}
