package executionMocks

// RelayMonitorStub -
type RelayMonitorStub struct {
	WatchCalled func(chainID string, txID string, taskID string)
}

// Watch -
func (stub *RelayMonitorStub) Watch(chainID string, txID string, taskID string) {
	if stub.WatchCalled != nil {
		stub.WatchCalled(chainID, txID, taskID)
	}
}

// IsInterfaceNil -
func (stub *RelayMonitorStub) IsInterfaceNil() bool {
	return stub == nil
}
