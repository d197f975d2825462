package groups

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/gateway"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
)

const reconcileHistoryPath = "/:chainid/:safe"

// historyFacadeHandler defines the methods to be implemented by a facade for history reconciliation requests
type historyFacadeHandler interface {
	ReconcileHistory(ctx context.Context, chainID string, safe common.Address, items []safetx.HistoryItem) (*reconciliation.Result, error)
	IsInterfaceNil() bool
}

// ReconcileHistoryRequest holds an optional history batch, in the gateway format. Without it the node
// reconciles against the first indexed history page.
type ReconcileHistoryRequest struct {
	Results []interface{} `json:"results"`
}

type historyGroup struct {
	*baseGroup
	facade    historyFacadeHandler
	mutFacade sync.RWMutex
}

// NewHistoryGroup returns a new instance of historyGroup
func NewHistoryGroup(facadeHandler interface{}) (*historyGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(historyFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for history group", errors.ErrFacadeWrongTypeAssertion)
	}

	hg := &historyGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    reconcileHistoryPath,
			Method:  http.MethodPost,
			Handler: hg.reconcileHistory,
		},
	}
	hg.endpoints = endpoints

	return hg, nil
}

// reconcileHistory matches a history batch of a Safe against the pending executions
func (hg *historyGroup) reconcileHistory(c *gin.Context) {
	chainID, err := parseChainID(c.Param(urlParamChainID))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrReconcileHistory, err)
		return
	}
	safe, err := parseAddress(c.Param(urlParamSafe))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrReconcileHistory, err)
		return
	}

	items, err := extractHistoryItems(c)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrReconcileHistory, err)
		return
	}

	result, err := hg.getFacade().ReconcileHistory(c.Request.Context(), chainID, safe, items)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrReconcileHistory, err)
		return
	}
	if result == nil {
		result = &reconciliation.Result{}
	}

	shared.RespondWithSuccess(c, gin.H{
		"confirmed":     nonNilStrings(result.Confirmed),
		"replaced":      nonNilStrings(result.Replaced),
		"safeCreations": result.SafeCreations,
		"incomplete":    result.Incomplete,
	})
}

// extractHistoryItems returns nil when the request carries no batch
func extractHistoryItems(c *gin.Context) ([]safetx.HistoryItem, error) {
	if c.Request.Body == nil {
		return nil, nil
	}

	request := ReconcileHistoryRequest{}
	err := c.ShouldBindJSON(&request)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidJSONRequest, err)
	}
	if request.Results == nil {
		return nil, nil
	}

	return gateway.DecodeHistoryItems(request.Results)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return make([]string, 0)
	}

	return values
}

func (hg *historyGroup) getFacade() historyFacadeHandler {
	hg.mutFacade.RLock()
	defer hg.mutFacade.RUnlock()

	return hg.facade
}

// UpdateFacade will update the facade
func (hg *historyGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(historyFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for history group", errors.ErrFacadeWrongTypeAssertion)
	}

	hg.mutFacade.Lock()
	hg.facade = castFacade
	hg.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (hg *historyGroup) IsInterfaceNil() bool {
	return hg == nil
}
