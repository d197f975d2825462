package execution

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/process/signatures"
)

type execTransactionEncoder struct {
	codec ExecTransactionCodec
}

// NewExecTransactionEncoder creates the encoder of the execTransaction calldata
func NewExecTransactionEncoder(codec ExecTransactionCodec) (*execTransactionEncoder, error) {
	if check.IfNil(codec) {
		return nil, ErrNilEncoder
	}

	return &execTransactionEncoder{
		codec: codec,
	}, nil
}

// Encode encodes the call with the signatures sorted by signer
func (ete *execTransactionEncoder) Encode(tx *safetx.SafeTransaction) ([]byte, error) {
	if tx == nil {
		return nil, ErrNilSafeTransaction
	}

	return ete.codec.EncodeExecTransaction(&tx.Data, signatures.Encode(tx.Signatures))
}

// IsInterfaceNil returns true if there is no value under the interface
func (ete *execTransactionEncoder) IsInterfaceNil() bool {
	return ete == nil
}
