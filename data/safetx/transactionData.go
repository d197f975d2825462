package safetx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// TransactionData is the canonical, hashable content of a Safe transaction
type TransactionData struct {
	To             common.Address `json:"to"`
	Value          string         `json:"value"`
	Data           hexutil.Bytes  `json:"data"`
	Operation      Operation      `json:"operation"`
	SafeTxGas      string         `json:"safeTxGas"`
	BaseGas        string         `json:"baseGas"`
	GasPrice       string         `json:"gasPrice"`
	GasToken       common.Address `json:"gasToken"`
	RefundReceiver common.Address `json:"refundReceiver"`
	Nonce          uint64         `json:"nonce"`
}

// Amounts holds the parsed numeric fields of a transaction data
type Amounts struct {
	Value     *big.Int
	SafeTxGas *big.Int
	BaseGas   *big.Int
	GasPrice  *big.Int
}

// ParseAmounts parses and validates all numeric fields. An empty field counts as zero.
func (td *TransactionData) ParseAmounts() (*Amounts, error) {
	value, err := parseAmount("value", td.Value)
	if err != nil {
		return nil, err
	}
	safeTxGas, err := parseAmount("safeTxGas", td.SafeTxGas)
	if err != nil {
		return nil, err
	}
	baseGas, err := parseAmount("baseGas", td.BaseGas)
	if err != nil {
		return nil, err
	}
	gasPrice, err := parseAmount("gasPrice", td.GasPrice)
	if err != nil {
		return nil, err
	}

	return &Amounts{
		Value:     value,
		SafeTxGas: safeTxGas,
		BaseGas:   baseGas,
		GasPrice:  gasPrice,
	}, nil
}

// Validate checks the numeric fields and the operation type
func (td *TransactionData) Validate() error {
	if !td.Operation.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidOperation, td.Operation)
	}

	_, err := td.ParseAmounts()
	return err
}

// UsesNativeGasToken returns true if the refund, if any, is paid in the native coin
func (td *TransactionData) UsesNativeGasToken() bool {
	return td.GasToken == (common.Address{})
}

func parseAmount(field string, value string) (*big.Int, error) {
	if len(value) == 0 {
		return big.NewInt(0), nil
	}
	if strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
		return nil, fmt.Errorf("%w for %s: %s", ErrInvalidAmount, field, value)
	}

	parsed, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %s", ErrInvalidAmount, field, err.Error())
	}

	return parsed.ToBig(), nil
}
