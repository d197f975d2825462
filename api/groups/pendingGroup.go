package groups

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/api/stream"
	"github.com/multiversx/mx-chain-safe-go/data/pending"
)

const (
	getPendingExecutionsPath    = "/all"
	streamPendingExecutionsPath = "/stream"
	pendingExecutionPath        = "/:txid"

	urlParamTxID = "txid"
)

// pendingFacadeHandler defines the methods to be implemented by a facade for pending execution requests
type pendingFacadeHandler interface {
	GetPendingExecutions() []*pending.Record
	GetPendingExecution(txID string) (*pending.Record, error)
	DiscardPendingExecution(txID string) error
	PendingChangesSource() stream.ChangesSource
	IsInterfaceNil() bool
}

type pendingGroup struct {
	*baseGroup
	facade      pendingFacadeHandler
	mutFacade   sync.RWMutex
	upgrader    websocket.Upgrader
	marshalizer marshal.Marshalizer
}

// NewPendingGroup returns a new instance of pendingGroup
func NewPendingGroup(facadeHandler interface{}) (*pendingGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(pendingFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for pending group", errors.ErrFacadeWrongTypeAssertion)
	}

	pg := &pendingGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		marshalizer: &marshal.JsonMarshalizer{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    getPendingExecutionsPath,
			Method:  http.MethodGet,
			Handler: pg.getPendingExecutions,
		},
		{
			Path:    streamPendingExecutionsPath,
			Method:  http.MethodGet,
			Handler: pg.streamPendingExecutions,
		},
		{
			Path:    pendingExecutionPath,
			Method:  http.MethodGet,
			Handler: pg.getPendingExecution,
		},
		{
			Path:    pendingExecutionPath,
			Method:  http.MethodDelete,
			Handler: pg.discardPendingExecution,
		},
	}
	pg.endpoints = endpoints

	return pg, nil
}

// getPendingExecutions returns all the tracked executions
func (pg *pendingGroup) getPendingExecutions(c *gin.Context) {
	records := pg.getFacade().GetPendingExecutions()
	if records == nil {
		records = make([]*pending.Record, 0)
	}

	shared.RespondWithSuccess(c, gin.H{"executions": records})
}

// getPendingExecution returns the tracked execution of one transaction
func (pg *pendingGroup) getPendingExecution(c *gin.Context) {
	txID := c.Param(urlParamTxID)
	if len(txID) == 0 {
		shared.RespondWithValidationError(c, errors.ErrGetPendingExecutions, errors.ErrEmptyTxID)
		return
	}

	record, err := pg.getFacade().GetPendingExecution(txID)
	if err != nil {
		shared.RespondWithNotFoundError(c, errors.ErrGetPendingExecutions, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"execution": record})
}

// discardPendingExecution drops the tracked execution of one transaction
func (pg *pendingGroup) discardPendingExecution(c *gin.Context) {
	txID := c.Param(urlParamTxID)
	if len(txID) == 0 {
		shared.RespondWithValidationError(c, errors.ErrDiscardPendingExecution, errors.ErrEmptyTxID)
		return
	}

	err := pg.getFacade().DiscardPendingExecution(txID)
	if err != nil {
		shared.RespondWithNotFoundError(c, errors.ErrDiscardPendingExecution, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"discarded": txID})
}

// streamPendingExecutions upgrades the connection to a websocket and pushes every pending execution change on it
func (pg *pendingGroup) streamPendingExecutions(c *gin.Context) {
	source := pg.getFacade().PendingChangesSource()

	conn, err := pg.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug("pending stream upgrade failed", "remote", c.ClientIP(), "error", err)
		return
	}

	sender, err := stream.NewChangesSender(pg.marshalizer, conn, source)
	if err != nil {
		log.Warn("cannot create pending changes sender", "error", err)
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, errors.ErrStreamPendingExecutions.Error()))
		_ = conn.Close()
		return
	}

	log.Debug("pending stream opened", "remote", c.ClientIP())
	sender.StartSendingBlocking()
	log.Debug("pending stream closed", "remote", c.ClientIP())
}

func (pg *pendingGroup) getFacade() pendingFacadeHandler {
	pg.mutFacade.RLock()
	defer pg.mutFacade.RUnlock()

	return pg.facade
}

// UpdateFacade will update the facade
func (pg *pendingGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(pendingFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for pending group", errors.ErrFacadeWrongTypeAssertion)
	}

	pg.mutFacade.Lock()
	pg.facade = castFacade
	pg.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (pg *pendingGroup) IsInterfaceNil() bool {
	return pg == nil
}
