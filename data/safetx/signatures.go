package safetx

import (
	"bytes"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Confirmation is a signer's approval of a Safe transaction. Signature may be empty when the signer
// approved on-chain or has not co-signed yet.
type Confirmation struct {
	Signer      common.Address `json:"signer"`
	Signature   hexutil.Bytes  `json:"signature"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

// SignatureSet maps each signer to its signature bytes. A signer without a signature maps to an empty slice.
type SignatureSet map[common.Address][]byte

// NewSignatureSet creates an empty signature set
func NewSignatureSet() SignatureSet {
	return make(SignatureSet)
}

// SortedSigners returns the signers in ascending order of their address bytes
func (ss SignatureSet) SortedSigners() []common.Address {
	signers := make([]common.Address, 0, len(ss))
	for signer := range ss {
		signers = append(signers, signer)
	}

	sort.Slice(signers, func(i, j int) bool {
		return bytes.Compare(signers[i].Bytes(), signers[j].Bytes()) < 0
	})

	return signers
}

// Has returns true if the signer is part of the set, with or without a signature
func (ss SignatureSet) Has(signer common.Address) bool {
	_, found := ss[signer]
	return found
}

// Clone returns a deep copy of the set
func (ss SignatureSet) Clone() SignatureSet {
	cloned := make(SignatureSet, len(ss))
	for signer, signature := range ss {
		cloned[signer] = append([]byte{}, signature...)
	}

	return cloned
}

// SafeTransaction is the transaction data together with the signatures gathered so far
type SafeTransaction struct {
	Data       TransactionData
	Signatures SignatureSet
}

// NewSafeTransaction creates a Safe transaction without any signature
func NewSafeTransaction(data TransactionData) *SafeTransaction {
	return &SafeTransaction{
		Data:       data,
		Signatures: NewSignatureSet(),
	}
}
