package processMocks

// OwnedSafesInvalidatorStub -
type OwnedSafesInvalidatorStub struct {
	InvalidateChainCalled func(chainID string)
}

// InvalidateChain -
func (stub *OwnedSafesInvalidatorStub) InvalidateChain(chainID string) {
	if stub.InvalidateChainCalled != nil {
		stub.InvalidateChainCalled(chainID)
	}
}

// IsInterfaceNil -
func (stub *OwnedSafesInvalidatorStub) IsInterfaceNil() bool {
	return stub == nil
}
