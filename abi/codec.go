package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"

	ethAbi "github.com/ethereum/go-ethereum/accounts/abi"
)

// codec encodes the calldata of the Safe contracts
type codec struct {
	safe         ethAbi.ABI
	proxyFactory ethAbi.ABI
	multiSend    ethAbi.ABI
}

// NewCodec creates a new Safe contracts codec
func NewCodec() (*codec, error) {
	safe, err := ethAbi.JSON(strings.NewReader(safeABI))
	if err != nil {
		return nil, fmt.Errorf("%w while parsing the Safe ABI", err)
	}
	proxyFactory, err := ethAbi.JSON(strings.NewReader(proxyFactoryABI))
	if err != nil {
		return nil, fmt.Errorf("%w while parsing the proxy factory ABI", err)
	}
	multiSend, err := ethAbi.JSON(strings.NewReader(multiSendABI))
	if err != nil {
		return nil, fmt.Errorf("%w while parsing the MultiSend ABI", err)
	}

	return &codec{
		safe:         safe,
		proxyFactory: proxyFactory,
		multiSend:    multiSend,
	}, nil
}

// EncodeExecTransaction encodes the execTransaction call. The signatures blob goes last, as is.
func (c *codec) EncodeExecTransaction(data *safetx.TransactionData, signatures []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrNilTransactionData
	}
	if !data.Operation.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, data.Operation)
	}

	amounts, err := data.ParseAmounts()
	if err != nil {
		return nil, err
	}
	if signatures == nil {
		signatures = make([]byte, 0)
	}

	return c.safe.Pack(methodExecTransaction,
		data.To,
		amounts.Value,
		[]byte(data.Data),
		uint8(data.Operation),
		amounts.SafeTxGas,
		amounts.BaseGas,
		amounts.GasPrice,
		data.GasToken,
		data.RefundReceiver,
		signatures,
	)
}

// EncodeSetup encodes the Safe setup call
func (c *codec) EncodeSetup(args *SetupArgs) ([]byte, error) {
	if args == nil {
		return nil, ErrNilSetupArgs
	}

	owners := args.Owners
	if owners == nil {
		owners = make([]common.Address, 0)
	}

	return c.safe.Pack(methodSetup,
		owners,
		bigOrZero(args.Threshold),
		args.To,
		bytesOrEmpty(args.Data),
		args.FallbackHandler,
		args.PaymentToken,
		bigOrZero(args.Payment),
		args.PaymentReceiver,
	)
}

// EncodeCreateProxyWithNonce encodes the proxy factory deployment call
func (c *codec) EncodeCreateProxyWithNonce(singleton common.Address, initializer []byte, saltNonce *big.Int) ([]byte, error) {
	return c.proxyFactory.Pack(methodCreateProxyWithNonce, singleton, bytesOrEmpty(initializer), bigOrZero(saltNonce))
}

// EncodeMultiSend packs the calls and encodes them as a multiSend call
func (c *codec) EncodeMultiSend(calls []*MultiSendCall) ([]byte, error) {
	packed, err := PackMultiSendCalls(calls)
	if err != nil {
		return nil, err
	}

	return c.multiSend.Pack(methodMultiSend, packed)
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *codec) IsInterfaceNil() bool {
	return c == nil
}

func bigOrZero(value *big.Int) *big.Int {
	if value == nil {
		return big.NewInt(0)
	}

	return value
}

func bytesOrEmpty(value []byte) []byte {
	if value == nil {
		return make([]byte, 0)
	}

	return value
}
