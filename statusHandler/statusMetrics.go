package statusHandler

import (
	"sync"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("statusHandler")

// statusMetrics keeps the last value of every metric so it can be served by the REST API
type statusMetrics struct {
	nodeMetrics *sync.Map
	mutAdd      sync.Mutex
}

// NewStatusMetrics will return an instance of the struct
func NewStatusMetrics() *statusMetrics {
	return &statusMetrics{
		nodeMetrics: &sync.Map{},
	}
}

// AddUint64 will add the value to the stored one
func (sm *statusMetrics) AddUint64(key string, value uint64) {
	sm.mutAdd.Lock()
	defer sm.mutAdd.Unlock()

	sm.nodeMetrics.Store(key, sm.loadUint64(key)+value)
}

// Increment method increment a metric
func (sm *statusMetrics) Increment(key string) {
	sm.AddUint64(key, 1)
}

// Decrement method - decrease a metric, never below zero
func (sm *statusMetrics) Decrement(key string) {
	sm.mutAdd.Lock()
	defer sm.mutAdd.Unlock()

	current := sm.loadUint64(key)
	if current == 0 {
		return
	}
	sm.nodeMetrics.Store(key, current-1)
}

func (sm *statusMetrics) loadUint64(key string) uint64 {
	value, ok := sm.nodeMetrics.Load(key)
	if !ok {
		return 0
	}

	converted, ok := value.(uint64)
	if !ok {
		return 0
	}

	return converted
}

// SetInt64Value method - will update the value for a key
func (sm *statusMetrics) SetInt64Value(key string, value int64) {
	sm.nodeMetrics.Store(key, value)
}

// SetUInt64Value method - will update the value for a key
func (sm *statusMetrics) SetUInt64Value(key string, value uint64) {
	sm.nodeMetrics.Store(key, value)
}

// SetStringValue method - will update the value of a key
func (sm *statusMetrics) SetStringValue(key string, value string) {
	sm.nodeMetrics.Store(key, value)
}

// Close method - won't do anything
func (sm *statusMetrics) Close() {
}

// StatusMetricsMap returns a copy of the stored metrics
func (sm *statusMetrics) StatusMetricsMap() map[string]interface{} {
	metrics := make(map[string]interface{})
	sm.nodeMetrics.Range(func(key, value interface{}) bool {
		metrics[key.(string)] = value
		return true
	})

	return metrics
}

// IsInterfaceNil returns true if there is no value under the interface
func (sm *statusMetrics) IsInterfaceNil() bool {
	return sm == nil
}
