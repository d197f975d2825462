package groups

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
)

const (
	executeTransactionPath = "/execute"
	proposeTransactionPath = "/propose"
	confirmTransactionPath = "/confirm"
	recommendedNoncePath   = "/:chainid/:safe/nonce"

	urlParamChainID = "chainid"
	urlParamSafe    = "safe"
)

// transactionsFacadeHandler defines the methods to be implemented by a facade for Safe transaction requests
type transactionsFacadeHandler interface {
	ExecuteTransaction(ctx context.Context, chainID string, txID string, wallet common.Address, useRelay bool) (*execution.Artifact, error)
	ProposeTransaction(ctx context.Context, chainID string, safe common.Address, tx *safetx.TransactionData, sender common.Address, origin string) (*safetx.TransactionDetails, error)
	ConfirmTransaction(ctx context.Context, chainID string, safeTxHash common.Hash, signer common.Address) error
	RecommendedNonce(ctx context.Context, chainID string, safe common.Address) (uint64, error)
	IsInterfaceNil() bool
}

// ExecuteTxRequest represents the structure on which user input for executing a Safe transaction will validate against
type ExecuteTxRequest struct {
	ChainID  string `json:"chainId"`
	TxID     string `json:"txId"`
	Wallet   string `json:"wallet"`
	UseRelay bool   `json:"useRelay"`
}

// ProposeTxRequest represents the structure on which user input for proposing a Safe transaction will validate against
type ProposeTxRequest struct {
	ChainID string                  `json:"chainId"`
	Safe    string                  `json:"safe"`
	Tx      *safetx.TransactionData `json:"tx"`
	Sender  string                  `json:"sender"`
	Origin  string                  `json:"origin"`
}

// ConfirmTxRequest represents the structure on which user input for confirming a Safe transaction will validate against
type ConfirmTxRequest struct {
	ChainID    string `json:"chainId"`
	SafeTxHash string `json:"safeTxHash"`
	Signer     string `json:"signer"`
}

// ExecutionResponse is the artifact of a dispatched execution
type ExecutionResponse struct {
	TxHash        string `json:"txHash,omitempty"`
	TaskID        string `json:"taskId,omitempty"`
	SafeNonce     uint64 `json:"safeNonce"`
	WalletAddress string `json:"walletAddress,omitempty"`
	WalletNonce   uint64 `json:"walletNonce"`
}

type transactionsGroup struct {
	*baseGroup
	facade    transactionsFacadeHandler
	mutFacade sync.RWMutex
}

// NewTransactionsGroup returns a new instance of transactionsGroup
func NewTransactionsGroup(facadeHandler interface{}) (*transactionsGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(transactionsFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for transactions group", errors.ErrFacadeWrongTypeAssertion)
	}

	tg := &transactionsGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    executeTransactionPath,
			Method:  http.MethodPost,
			Handler: tg.executeTransaction,
		},
		{
			Path:    proposeTransactionPath,
			Method:  http.MethodPost,
			Handler: tg.proposeTransaction,
		},
		{
			Path:    confirmTransactionPath,
			Method:  http.MethodPost,
			Handler: tg.confirmTransaction,
		},
		{
			Path:    recommendedNoncePath,
			Method:  http.MethodGet,
			Handler: tg.getRecommendedNonce,
		},
	}
	tg.endpoints = endpoints

	return tg, nil
}

// executeTransaction dispatches the execution of an already signed Safe transaction
func (tg *transactionsGroup) executeTransaction(c *gin.Context) {
	request := ExecuteTxRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, err)
		return
	}

	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrExecuteTransaction, err)
		return
	}
	if len(request.TxID) == 0 {
		shared.RespondWithValidationError(c, errors.ErrExecuteTransaction, errors.ErrEmptyTxID)
		return
	}

	var wallet common.Address
	if request.UseRelay {
		wallet, err = parseOptionalAddress(request.Wallet)
	} else {
		wallet, err = parseAddress(request.Wallet)
	}
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrExecuteTransaction, fmt.Errorf("%w for wallet", err))
		return
	}

	artifact, err := tg.getFacade().ExecuteTransaction(c.Request.Context(), chainID, request.TxID, wallet, request.UseRelay)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrExecuteTransaction, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"execution": newExecutionResponse(artifact)})
}

func newExecutionResponse(artifact *execution.Artifact) *ExecutionResponse {
	if artifact == nil {
		return nil
	}

	response := &ExecutionResponse{
		TaskID:      artifact.TaskID,
		SafeNonce:   artifact.SafeNonce,
		WalletNonce: artifact.WalletNonce,
	}
	if artifact.TxHash != (common.Hash{}) {
		response.TxHash = artifact.TxHash.Hex()
	}
	if artifact.WalletAddress != (common.Address{}) {
		response.WalletAddress = artifact.WalletAddress.Hex()
	}

	return response
}

// proposeTransaction signs a new Safe transaction with the sender key and registers it with the gateway
func (tg *transactionsGroup) proposeTransaction(c *gin.Context) {
	request := ProposeTxRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, err)
		return
	}

	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrProposeTransaction, err)
		return
	}
	safe, err := parseAddress(request.Safe)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrProposeTransaction, fmt.Errorf("%w for safe", err))
		return
	}
	sender, err := parseAddress(request.Sender)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrProposeTransaction, fmt.Errorf("%w for sender", err))
		return
	}
	if request.Tx == nil {
		shared.RespondWithValidationError(c, errors.ErrProposeTransaction, errors.ErrInvalidJSONRequest)
		return
	}
	err = request.Tx.Validate()
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrProposeTransaction, err)
		return
	}

	details, err := tg.getFacade().ProposeTransaction(c.Request.Context(), chainID, safe, request.Tx, sender, request.Origin)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrProposeTransaction, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"transaction": details})
}

// confirmTransaction adds the signer confirmation to a proposed transaction
func (tg *transactionsGroup) confirmTransaction(c *gin.Context) {
	request := ConfirmTxRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, err)
		return
	}

	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrConfirmTransaction, err)
		return
	}
	safeTxHash, err := parseSafeTxHash(request.SafeTxHash)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrConfirmTransaction, err)
		return
	}
	signer, err := parseAddress(request.Signer)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrConfirmTransaction, fmt.Errorf("%w for signer", err))
		return
	}

	err = tg.getFacade().ConfirmTransaction(c.Request.Context(), chainID, safeTxHash, signer)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrConfirmTransaction, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"safeTxHash": safeTxHash.Hex()})
}

func parseSafeTxHash(input string) (common.Hash, error) {
	decoded, err := hexutil.Decode(input)
	if err != nil || len(decoded) != common.HashLength {
		return common.Hash{}, errors.ErrInvalidSafeTxHash
	}

	return common.BytesToHash(decoded), nil
}

// getRecommendedNonce returns the nonce the next proposed transaction of a Safe should use
func (tg *transactionsGroup) getRecommendedNonce(c *gin.Context) {
	chainID, err := parseChainID(c.Param(urlParamChainID))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetRecommendedNonce, err)
		return
	}
	safe, err := parseAddress(c.Param(urlParamSafe))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetRecommendedNonce, err)
		return
	}

	nonce, err := tg.getFacade().RecommendedNonce(c.Request.Context(), chainID, safe)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetRecommendedNonce, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"nonce": nonce})
}

func (tg *transactionsGroup) getFacade() transactionsFacadeHandler {
	tg.mutFacade.RLock()
	defer tg.mutFacade.RUnlock()

	return tg.facade
}

// UpdateFacade will update the facade
func (tg *transactionsGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(transactionsFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for transactions group", errors.ErrFacadeWrongTypeAssertion)
	}

	tg.mutFacade.Lock()
	tg.facade = castFacade
	tg.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tg *transactionsGroup) IsInterfaceNil() bool {
	return tg == nil
}
