package keccak

import (
	"golang.org/x/crypto/sha3"
)

var keccakEmptyHash = computeKeccak("")

// Keccak is a sha3-Keccak implementation of the hasher interface, matching the EVM keccak256 opcode
type Keccak struct {
}

// NewKeccak creates a new Keccak hasher
func NewKeccak() *Keccak {
	return &Keccak{}
}

// Compute takes a string, and returns the sha3-Keccak hash of that string
func (k *Keccak) Compute(s string) []byte {
	if len(s) == 0 {
		return k.EmptyHash()
	}

	return computeKeccak(s)
}

// EmptyHash returns the sha3-Keccak hash of the empty string
func (k *Keccak) EmptyHash() []byte {
	result := make([]byte, len(keccakEmptyHash))
	copy(result, keccakEmptyHash)

	return result
}

// Size returns the size, in number of bytes, of a sha3-Keccak hash
func (k *Keccak) Size() int {
	return sha3.NewLegacyKeccak256().Size()
}

// IsInterfaceNil returns true if there is no value under the interface
func (k *Keccak) IsInterfaceNil() bool {
	return k == nil
}

func computeKeccak(s string) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}
