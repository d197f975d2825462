package groups

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
)

const statusPath = "/status"

// nodeFacadeHandler defines the methods to be implemented by a facade for node requests
type nodeFacadeHandler interface {
	StatusMetrics() map[string]interface{}
	IsInterfaceNil() bool
}

type nodeGroup struct {
	*baseGroup
	facade    nodeFacadeHandler
	mutFacade sync.RWMutex
}

// NewNodeGroup returns a new instance of nodeGroup
func NewNodeGroup(facadeHandler interface{}) (*nodeGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(nodeFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for node group", errors.ErrFacadeWrongTypeAssertion)
	}

	ng := &nodeGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    statusPath,
			Method:  http.MethodGet,
			Handler: ng.statusMetrics,
		},
	}
	ng.endpoints = endpoints

	return ng, nil
}

// statusMetrics returns the node statistics exported as key value pairs
func (ng *nodeGroup) statusMetrics(c *gin.Context) {
	details := ng.getFacade().StatusMetrics()

	shared.RespondWithSuccess(c, gin.H{"metrics": details})
}

func (ng *nodeGroup) getFacade() nodeFacadeHandler {
	ng.mutFacade.RLock()
	defer ng.mutFacade.RUnlock()

	return ng.facade
}

// UpdateFacade will update the facade
func (ng *nodeGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(nodeFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for node group", errors.ErrFacadeWrongTypeAssertion)
	}

	ng.mutFacade.Lock()
	ng.facade = castFacade
	ng.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ng *nodeGroup) IsInterfaceNil() bool {
	return ng == nil
}
