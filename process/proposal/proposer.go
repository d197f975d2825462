package proposal

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
	"github.com/multiversx/mx-chain-safe-go/process"
)

var log = logger.GetOrCreate("process/proposal")

// ArgsProposer holds the arguments needed to create a new proposer
type ArgsProposer struct {
	Gateway       Gateway
	MessageSigner MessageSigner
	SafeTxHasher  process.SafeTxHasher
	ChainsConfig  process.ChainsConfigHandler
}

type proposer struct {
	gateway       Gateway
	messageSigner MessageSigner
	safeTxHasher  process.SafeTxHasher
	chainsConfig  process.ChainsConfigHandler
}

// NewProposer creates the component proposing and confirming Safe transactions
func NewProposer(args ArgsProposer) (*proposer, error) {
	if check.IfNil(args.Gateway) {
		return nil, ErrNilGateway
	}
	if check.IfNil(args.MessageSigner) {
		return nil, ErrNilMessageSigner
	}
	if check.IfNil(args.SafeTxHasher) {
		return nil, process.ErrNilHasher
	}
	if check.IfNil(args.ChainsConfig) {
		return nil, process.ErrNilChainsConfig
	}

	return &proposer{
		gateway:       args.Gateway,
		messageSigner: args.MessageSigner,
		safeTxHasher:  args.SafeTxHasher,
		chainsConfig:  args.ChainsConfig,
	}, nil
}

// RecommendedNonce returns the next free nonce of a Safe, queued transactions included
func (p *proposer) RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error) {
	nonces, err := p.gateway.GetNonces(ctx, chainID, safe)
	if err != nil {
		return 0, err
	}

	return nonces.RecommendedNonce, nil
}

// Propose signs the transaction with the sender key and registers it with the gateway
func (p *proposer) Propose(ctx context.Context, request *ProposeRequest) (*safetx.TransactionDetails, error) {
	err := checkProposeRequest(request)
	if err != nil {
		return nil, err
	}

	safeTxHash, err := p.computeSafeTxHash(request)
	if err != nil {
		return nil, err
	}

	signature, err := p.sign(ctx, request.Sender, safeTxHash)
	if err != nil {
		return nil, err
	}

	tx := request.Tx
	proposeRequest := &gateway.ProposeTransactionRequest{
		To:             tx.To,
		Value:          valueOrZero(tx.Value),
		Nonce:          strconv.FormatUint(tx.Nonce, 10),
		Operation:      tx.Operation,
		SafeTxGas:      valueOrZero(tx.SafeTxGas),
		BaseGas:        valueOrZero(tx.BaseGas),
		GasPrice:       valueOrZero(tx.GasPrice),
		GasToken:       tx.GasToken,
		RefundReceiver: tx.RefundReceiver,
		SafeTxHash:     safeTxHash,
		Sender:         request.Sender,
		Signature:      hexutil.Encode(signature),
		Origin:         request.Origin,
	}
	if len(tx.Data) > 0 {
		proposeRequest.Data = hexutil.Encode(tx.Data)
	}

	details, err := p.gateway.ProposeTransaction(ctx, request.ChainID, request.Safe.Address, proposeRequest)
	if err != nil {
		return nil, err
	}

	log.Debug("transaction proposed", "chainID", request.ChainID, "safe", request.Safe.Address.Hex(),
		"nonce", tx.Nonce, "safeTxHash", safeTxHash.Hex(), "sender", request.Sender.Hex())

	return details, nil
}

// Confirm signs an already proposed transaction hash and posts the signature
func (p *proposer) Confirm(ctx context.Context, request *ConfirmRequest) error {
	if request == nil {
		return ErrNilRequest
	}

	signature, err := p.sign(ctx, request.Signer, request.SafeTxHash)
	if err != nil {
		return err
	}

	err = p.gateway.AddConfirmation(ctx, request.ChainID, request.SafeTxHash, signature)
	if err != nil {
		return err
	}

	log.Debug("transaction confirmed", "chainID", request.ChainID, "safeTxHash", request.SafeTxHash.Hex(),
		"signer", request.Signer.Hex())

	return nil
}

func checkProposeRequest(request *ProposeRequest) error {
	if request == nil {
		return ErrNilRequest
	}
	if request.Safe == nil {
		return ErrNilSafeInfo
	}
	if request.Tx == nil {
		return ErrNilTransactionData
	}

	err := request.Tx.Validate()
	if err != nil {
		return err
	}
	if !request.Safe.IsOwner(request.Sender) {
		return fmt.Errorf("%w: %s", ErrSenderNotOwner, request.Sender.Hex())
	}
	if request.Tx.Nonce < request.Safe.Nonce {
		return fmt.Errorf("%w: %d, safe nonce is %d", ErrNonceTooLow, request.Tx.Nonce, request.Safe.Nonce)
	}

	return nil
}

func (p *proposer) computeSafeTxHash(request *ProposeRequest) (common.Hash, error) {
	chainID, ok := big.NewInt(0).SetString(request.ChainID, 10)
	if !ok || chainID.Sign() <= 0 {
		return common.Hash{}, fmt.Errorf("%w for chain id: %q", process.ErrInvalidValue, request.ChainID)
	}

	version, err := p.safeVersion(request)
	if err != nil {
		return common.Hash{}, err
	}

	return p.safeTxHasher.ComputeSafeTxHash(chainID, request.Safe.Address, version, request.Tx)
}

func (p *proposer) safeVersion(request *ProposeRequest) (string, error) {
	if request.Safe.Version != nil && len(*request.Safe.Version) > 0 {
		return *request.Safe.Version, nil
	}

	chainConfig, err := p.chainsConfig.ChainConfig(request.ChainID)
	if err != nil {
		return "", err
	}

	return chainConfig.LatestSafeVersion, nil
}

func (p *proposer) sign(ctx context.Context, signer common.Address, hash common.Hash) ([]byte, error) {
	signature, err := p.messageSigner.SignHash(ctx, signer, hash)
	if err != nil {
		return nil, err
	}
	if len(signature) != crypto.SignatureLength {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(signature))
	}

	return signature, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (p *proposer) IsInterfaceNil() bool {
	return p == nil
}

func valueOrZero(value string) string {
	if len(value) == 0 {
		return "0"
	}

	return value
}
