package appStatusPolling

import (
	"context"
	"sync"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/common"
)

var log = logger.GetOrCreate("core/appStatusPolling")

// MinPollingDuration is the minimum accepted polling interval
const MinPollingDuration = time.Millisecond

// AppStatusPolling will update an AppStatusHandler by polling components at a predefined interval
type AppStatusPolling struct {
	pollingDuration  time.Duration
	appStatusHandler common.AppStatusHandler
	mutRegistered    sync.RWMutex
	registeredFuncs  []func(appStatusHandler common.AppStatusHandler)
}

// NewAppStatusPolling will return an instance of AppStatusPolling
func NewAppStatusPolling(appStatusHandler common.AppStatusHandler, pollingDuration time.Duration) (*AppStatusPolling, error) {
	if check.IfNil(appStatusHandler) {
		return nil, ErrNilAppStatusHandler
	}
	if pollingDuration < MinPollingDuration {
		return nil, ErrPollingDurationToSmall
	}

	return &AppStatusPolling{
		pollingDuration:  pollingDuration,
		appStatusHandler: appStatusHandler,
		registeredFuncs:  make([]func(appStatusHandler common.AppStatusHandler), 0),
	}, nil
}

// RegisterPollingFunc will register a new handler function called on every polling round
func (asp *AppStatusPolling) RegisterPollingFunc(handler func(appStatusHandler common.AppStatusHandler)) error {
	if handler == nil {
		return ErrNilHandlerFunc
	}

	asp.mutRegistered.Lock()
	asp.registeredFuncs = append(asp.registeredFuncs, handler)
	asp.mutRegistered.Unlock()

	return nil
}

// Poll will notify the AppStatusHandler at a given time until the context is done
func (asp *AppStatusPolling) Poll(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Debug("app status polling stopped")
				return
			case <-time.After(asp.pollingDuration):
			}

			asp.mutRegistered.RLock()
			for _, handler := range asp.registeredFuncs {
				handler(asp.appStatusHandler)
			}
			asp.mutRegistered.RUnlock()
		}
	}()
}
