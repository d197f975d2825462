package safetx

import "github.com/ethereum/go-ethereum/common"

// ExecutionInfoType is the discriminator of the ExecutionInfo union
type ExecutionInfoType string

const (
	// ExecutionInfoMultisig marks a transaction authorized by the owners threshold
	ExecutionInfoMultisig ExecutionInfoType = "MULTISIG"
	// ExecutionInfoModule marks a transaction executed by an enabled module
	ExecutionInfoModule ExecutionInfoType = "MODULE"
)

// ExecutionInfo describes how a transaction gets authorized. Implemented only by
// *MultisigExecutionInfo and *ModuleExecutionInfo.
type ExecutionInfo interface {
	Type() ExecutionInfoType
	executionInfo()
}

// MultisigExecutionInfo holds the owners threshold progress of a transaction
type MultisigExecutionInfo struct {
	Nonce                  uint64           `json:"nonce"`
	ConfirmationsRequired  uint32           `json:"confirmationsRequired"`
	ConfirmationsSubmitted uint32           `json:"confirmationsSubmitted"`
	Signers                []common.Address `json:"signers"`
	Rejectors              []common.Address `json:"rejectors"`
	Trusted                bool             `json:"trusted"`
}

// Type returns ExecutionInfoMultisig
func (info *MultisigExecutionInfo) Type() ExecutionInfoType {
	return ExecutionInfoMultisig
}

func (info *MultisigExecutionInfo) executionInfo() {}

// ModuleExecutionInfo holds the module that executed a transaction
type ModuleExecutionInfo struct {
	ModuleAddress common.Address `json:"address"`
}

// Type returns ExecutionInfoModule
func (info *ModuleExecutionInfo) Type() ExecutionInfoType {
	return ExecutionInfoModule
}

func (info *ModuleExecutionInfo) executionInfo() {}
