package groups

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
)

const (
	activateSafePath  = "/activate"
	getOwnedSafesPath = "/:chainid/:owner"

	urlParamOwner = "owner"
)

// safesFacadeHandler defines the methods to be implemented by a facade for Safe account requests
type safesFacadeHandler interface {
	GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error)
	ActivateSafe(ctx context.Context, request *activation.ActivationRequest) (*activation.ActivationResult, error)
	IsInterfaceNil() bool
}

// ActivateSafeRequest represents the structure on which user input for deploying an undeployed Safe will validate against.
// Exactly one of Predicted and Replayed must be set.
type ActivateSafeRequest struct {
	ChainID   string                     `json:"chainId"`
	Address   string                     `json:"address"`
	Wallet    string                     `json:"wallet"`
	UseRelay  bool                       `json:"useRelay"`
	TxID      string                     `json:"txId"`
	Predicted *safetx.PredictedSafeProps `json:"predicted"`
	Replayed  *safetx.ReplayedSafeProps  `json:"replayed"`
}

// ActivationResponse is the outcome of a Safe deployment
type ActivationResponse struct {
	TrackingID string            `json:"trackingId"`
	TxHash     string            `json:"txHash,omitempty"`
	TaskID     string            `json:"taskId,omitempty"`
	Status     activation.Status `json:"status"`
	Replaced   bool              `json:"replaced"`
}

type safesGroup struct {
	*baseGroup
	facade    safesFacadeHandler
	mutFacade sync.RWMutex
}

// NewSafesGroup returns a new instance of safesGroup
func NewSafesGroup(facadeHandler interface{}) (*safesGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(safesFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for safes group", errors.ErrFacadeWrongTypeAssertion)
	}

	sg := &safesGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    getOwnedSafesPath,
			Method:  http.MethodGet,
			Handler: sg.getOwnedSafes,
		},
		{
			Path:    activateSafePath,
			Method:  http.MethodPost,
			Handler: sg.activateSafe,
		},
	}
	sg.endpoints = endpoints

	return sg, nil
}

// getOwnedSafes returns the Safes owned by an address on a chain
func (sg *safesGroup) getOwnedSafes(c *gin.Context) {
	chainID, err := parseChainID(c.Param(urlParamChainID))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetOwnedSafes, err)
		return
	}
	owner, err := parseAddress(c.Param(urlParamOwner))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetOwnedSafes, err)
		return
	}

	safes, err := sg.getFacade().GetOwnedSafes(c.Request.Context(), chainID, owner)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetOwnedSafes, err)
		return
	}
	if safes == nil {
		safes = make([]common.Address, 0)
	}

	shared.RespondWithSuccess(c, gin.H{"safes": safes})
}

// activateSafe deploys an undeployed Safe, optionally bundled with the execution of its first transaction
func (sg *safesGroup) activateSafe(c *gin.Context) {
	request := ActivateSafeRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, err)
		return
	}

	activationRequest, err := request.toActivationRequest()
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrActivateSafe, err)
		return
	}

	result, err := sg.getFacade().ActivateSafe(c.Request.Context(), activationRequest)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrActivateSafe, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"activation": newActivationResponse(result)})
}

func (request *ActivateSafeRequest) toActivationRequest() (*activation.ActivationRequest, error) {
	chainID, err := parseChainID(request.ChainID)
	if err != nil {
		return nil, err
	}
	address, err := parseAddress(request.Address)
	if err != nil {
		return nil, fmt.Errorf("%w for safe", err)
	}

	var wallet common.Address
	if request.UseRelay {
		wallet, err = parseOptionalAddress(request.Wallet)
	} else {
		wallet, err = parseAddress(request.Wallet)
	}
	if err != nil {
		return nil, fmt.Errorf("%w for wallet", err)
	}

	var props safetx.DeploymentProps
	switch {
	case request.Predicted != nil && request.Replayed == nil:
		props = request.Predicted
	case request.Replayed != nil && request.Predicted == nil:
		props = request.Replayed
	default:
		return nil, errors.ErrInvalidDeploymentProps
	}

	return &activation.ActivationRequest{
		Safe: &safetx.UndeployedSafe{
			ChainID: chainID,
			Address: address,
			Props:   props,
		},
		Wallet:   wallet,
		UseRelay: request.UseRelay,
		TxID:     request.TxID,
	}, nil
}

func newActivationResponse(result *activation.ActivationResult) *ActivationResponse {
	if result == nil {
		return nil
	}

	response := &ActivationResponse{
		TrackingID: result.TrackingID,
		TaskID:     result.TaskID,
		Status:     result.Status,
		Replaced:   result.Replaced,
	}
	if result.TxHash != (common.Hash{}) {
		response.TxHash = result.TxHash.Hex()
	}

	return response
}

func (sg *safesGroup) getFacade() safesFacadeHandler {
	sg.mutFacade.RLock()
	defer sg.mutFacade.RUnlock()

	return sg.facade
}

// UpdateFacade will update the facade
func (sg *safesGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(safesFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for safes group", errors.ErrFacadeWrongTypeAssertion)
	}

	sg.mutFacade.Lock()
	sg.facade = castFacade
	sg.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sg *safesGroup) IsInterfaceNil() bool {
	return sg == nil
}
