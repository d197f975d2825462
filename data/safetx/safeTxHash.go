package safetx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/hashing"
	"golang.org/x/mod/semver"
)

const (
	domainTypeWithChainID = "EIP712Domain(uint256 chainId,address verifyingContract)"
	domainTypeLegacy      = "EIP712Domain(address verifyingContract)"
	safeTxType            = "SafeTx(address to,uint256 value,bytes data,uint8 operation,uint256 safeTxGas,uint256 baseGas,uint256 gasPrice,address gasToken,address refundReceiver,uint256 nonce)"
	safeTxTypeLegacy      = "SafeTx(address to,uint256 value,bytes data,uint8 operation,uint256 safeTxGas,uint256 dataGas,uint256 gasPrice,address gasToken,address refundReceiver,uint256 nonce)"

	chainIDDomainVersion = "v1.3.0"
	baseGasVersion       = "v1.0.0"
)

var (
	bytes32Type = mustNewType("bytes32")
	addressType = mustNewType("address")
	uint256Type = mustNewType("uint256")
	uint8Type   = mustNewType("uint8")

	domainWithChainIDArgs = abi.Arguments{{Type: bytes32Type}, {Type: uint256Type}, {Type: addressType}}
	domainLegacyArgs      = abi.Arguments{{Type: bytes32Type}, {Type: addressType}}
	safeTxArgs            = abi.Arguments{
		{Type: bytes32Type},
		{Type: addressType},
		{Type: uint256Type},
		{Type: bytes32Type},
		{Type: uint8Type},
		{Type: uint256Type},
		{Type: uint256Type},
		{Type: uint256Type},
		{Type: addressType},
		{Type: addressType},
		{Type: uint256Type},
	}
)

type safeTxHasher struct {
	hasher hashing.Hasher
}

// NewSafeTxHasher creates the component computing EIP-712 Safe transaction hashes
func NewSafeTxHasher(hasher hashing.Hasher) (*safeTxHasher, error) {
	if check.IfNil(hasher) {
		return nil, ErrNilHasher
	}

	return &safeTxHasher{
		hasher: hasher,
	}, nil
}

// ComputeSafeTxHash returns the hash the owners sign for the given transaction data. The result depends on the
// chain, the Safe address and the Safe version.
func (sth *safeTxHasher) ComputeSafeTxHash(chainID *big.Int, safe common.Address, version string, data *TransactionData) (common.Hash, error) {
	if data == nil {
		return common.Hash{}, ErrNilTransactionData
	}
	semVersion, err := normalizeVersion(version)
	if err != nil {
		return common.Hash{}, err
	}
	amounts, err := data.ParseAmounts()
	if err != nil {
		return common.Hash{}, err
	}
	if !data.Operation.IsValid() {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrInvalidOperation, data.Operation)
	}

	domainSeparator, err := sth.computeDomainSeparator(chainID, safe, semVersion)
	if err != nil {
		return common.Hash{}, err
	}

	typeHash := sth.hash([]byte(safeTxType))
	if semver.Compare(semVersion, baseGasVersion) < 0 {
		typeHash = sth.hash([]byte(safeTxTypeLegacy))
	}

	encoded, err := safeTxArgs.Pack(
		typeHash,
		data.To,
		amounts.Value,
		sth.hash(data.Data),
		uint8(data.Operation),
		amounts.SafeTxGas,
		amounts.BaseGas,
		amounts.GasPrice,
		data.GasToken,
		data.RefundReceiver,
		new(big.Int).SetUint64(data.Nonce),
	)
	if err != nil {
		return common.Hash{}, err
	}
	structHash := sth.hash(encoded)

	message := make([]byte, 0, 2+2*common.HashLength)
	message = append(message, 0x19, 0x01)
	message = append(message, domainSeparator[:]...)
	message = append(message, structHash[:]...)

	return sth.hash(message), nil
}

func (sth *safeTxHasher) computeDomainSeparator(chainID *big.Int, safe common.Address, semVersion string) ([32]byte, error) {
	var encoded []byte
	var err error
	if semver.Compare(semVersion, chainIDDomainVersion) >= 0 {
		if chainID == nil {
			chainID = big.NewInt(0)
		}
		encoded, err = domainWithChainIDArgs.Pack(sth.hash([]byte(domainTypeWithChainID)), chainID, safe)
	} else {
		encoded, err = domainLegacyArgs.Pack(sth.hash([]byte(domainTypeLegacy)), safe)
	}
	if err != nil {
		return [32]byte{}, err
	}

	return sth.hash(encoded), nil
}

func (sth *safeTxHasher) hash(data []byte) [32]byte {
	var result [32]byte
	copy(result[:], sth.hasher.Compute(string(data)))

	return result
}

// IsInterfaceNil returns true if there is no value under the interface
func (sth *safeTxHasher) IsInterfaceNil() bool {
	return sth == nil
}

func normalizeVersion(version string) (string, error) {
	semVersion := version
	if !strings.HasPrefix(semVersion, "v") {
		semVersion = "v" + semVersion
	}
	if !semver.IsValid(semVersion) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSafeVersion, version)
	}

	return semVersion, nil
}

// CompareVersions compares two Safe versions, returning -1, 0 or +1. Invalid versions sort first.
func CompareVersions(first string, second string) int {
	firstSemVersion, _ := normalizeVersion(first)
	secondSemVersion, _ := normalizeVersion(second)

	return semver.Compare(firstSemVersion, secondSemVersion)
}

func mustNewType(name string) abi.Type {
	abiType, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(err)
	}

	return abiType
}
