package statusHandler

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/common"
)

// AppStatusFacade will be used for handling multiple monitoring tools at once
type AppStatusFacade struct {
	handlers []common.AppStatusHandler
}

// NewAppStatusFacadeWithHandlers will receive the handlers which should receive data
func NewAppStatusFacadeWithHandlers(aphs ...common.AppStatusHandler) (*AppStatusFacade, error) {
	if len(aphs) == 0 {
		return nil, ErrHandlersSliceIsNil
	}
	for _, aph := range aphs {
		if check.IfNil(aph) {
			return nil, ErrNilHandlerInSlice
		}
	}

	return &AppStatusFacade{
		handlers: aphs,
	}, nil
}

// AddUint64 will call the same function for each of the handlers
func (asf *AppStatusFacade) AddUint64(key string, value uint64) {
	for _, ash := range asf.handlers {
		ash.AddUint64(key, value)
	}
}

// Increment will call the same function for each of the handlers
func (asf *AppStatusFacade) Increment(key string) {
	for _, ash := range asf.handlers {
		ash.Increment(key)
	}
}

// Decrement will call the same function for each of the handlers
func (asf *AppStatusFacade) Decrement(key string) {
	for _, ash := range asf.handlers {
		ash.Decrement(key)
	}
}

// SetInt64Value will call the same function for each of the handlers
func (asf *AppStatusFacade) SetInt64Value(key string, value int64) {
	for _, ash := range asf.handlers {
		ash.SetInt64Value(key, value)
	}
}

// SetUInt64Value will call the same function for each of the handlers
func (asf *AppStatusFacade) SetUInt64Value(key string, value uint64) {
	for _, ash := range asf.handlers {
		ash.SetUInt64Value(key, value)
	}
}

// SetStringValue will call the same function for each of the handlers
func (asf *AppStatusFacade) SetStringValue(key string, value string) {
	for _, ash := range asf.handlers {
		ash.SetStringValue(key, value)
	}
}

// Close will call the same function for each of the handlers
func (asf *AppStatusFacade) Close() {
	for _, ash := range asf.handlers {
		ash.Close()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (asf *AppStatusFacade) IsInterfaceNil() bool {
	return asf == nil
}
