package executionMocks

import "github.com/multiversx/mx-chain-safe-go/data/safetx"

// TransactionEncoderStub -
type TransactionEncoderStub struct {
	EncodeCalled func(tx *safetx.SafeTransaction) ([]byte, error)
}

// Encode -
func (stub *TransactionEncoderStub) Encode(tx *safetx.SafeTransaction) ([]byte, error) {
	if stub.EncodeCalled != nil {
		return stub.EncodeCalled(tx)
	}

	return []byte("encoded"), nil
}

// IsInterfaceNil -
func (stub *TransactionEncoderStub) IsInterfaceNil() bool {
	return stub == nil
}
