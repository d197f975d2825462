package statusHandler

import "net/http"

// StatusMetricsStub -
type StatusMetricsStub struct {
	StatusMetricsMapCalled func() map[string]interface{}
	HandlerCalled          func() http.Handler
}

// StatusMetricsMap -
func (stub *StatusMetricsStub) StatusMetricsMap() map[string]interface{} {
	if stub.StatusMetricsMapCalled != nil {
		return stub.StatusMetricsMapCalled()
	}

	return make(map[string]interface{})
}

// Handler -
func (stub *StatusMetricsStub) Handler() http.Handler {
	if stub.HandlerCalled != nil {
		return stub.HandlerCalled()
	}

	return http.NotFoundHandler()
}

// IsInterfaceNil -
func (stub *StatusMetricsStub) IsInterfaceNil() bool {
	return stub == nil
}
