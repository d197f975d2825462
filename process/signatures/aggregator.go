package signatures

import (
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

// Aggregate builds a signature set out of a confirmations list. A confirmation without signature still
// contributes an empty entry for its signer. When a signer appears more than once, an empty signature
// never replaces a non empty one; otherwise the later confirmation wins.
func Aggregate(confirmations []*safetx.Confirmation) safetx.SignatureSet {
	set := safetx.NewSignatureSet()
	addToSet(set, confirmations)

	return set
}

// AddConfirmations merges the confirmations into the transaction signatures and returns the resulting set
func AddConfirmations(tx *safetx.SafeTransaction, confirmations []*safetx.Confirmation) safetx.SignatureSet {
	if tx == nil {
		return Aggregate(confirmations)
	}
	if tx.Signatures == nil {
		tx.Signatures = safetx.NewSignatureSet()
	}

	addToSet(tx.Signatures, confirmations)

	return tx.Signatures
}

func addToSet(set safetx.SignatureSet, confirmations []*safetx.Confirmation) {
	for _, confirmation := range confirmations {
		if confirmation == nil {
			continue
		}

		existing, found := set[confirmation.Signer]
		if found && len(existing) > 0 && len(confirmation.Signature) == 0 {
			continue
		}

		signature := make([]byte, len(confirmation.Signature))
		copy(signature, confirmation.Signature)
		set[confirmation.Signer] = signature
	}
}

// IsThresholdMet returns true if the transaction can be executed. Module executions are pre-authorized.
func IsThresholdMet(info safetx.ExecutionInfo) bool {
	switch executionInfo := info.(type) {
	case *safetx.MultisigExecutionInfo:
		if executionInfo == nil {
			return false
		}
		return executionInfo.ConfirmationsSubmitted >= executionInfo.ConfirmationsRequired
	case *safetx.ModuleExecutionInfo:
		return executionInfo != nil
	default:
		return false
	}
}

// Encode concatenates the signatures ordered ascending by signer address, as the Safe contract expects them.
// An empty set encodes to an empty, non nil blob.
func Encode(set safetx.SignatureSet) []byte {
	size := 0
	for _, signature := range set {
		size += len(signature)
	}

	encoded := make([]byte, 0, size)
	for _, signer := range set.SortedSigners() {
		encoded = append(encoded, set[signer]...)
	}

	return encoded
}

// CountSigned returns the number of signers holding a non empty signature
func CountSigned(set safetx.SignatureSet) uint32 {
	numSigned := uint32(0)
	for _, signature := range set {
		if len(signature) > 0 {
			numSigned++
		}
	}

	return numSigned
}
