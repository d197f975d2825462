package safetx

import "fmt"

// Operation defines how a Safe forwards a call to its target
type Operation uint8

const (
	// OperationCall is a regular call issued by the Safe
	OperationCall Operation = 0
	// OperationDelegateCall runs the target code in the context of the Safe
	OperationDelegateCall Operation = 1
)

// IsValid returns true if the operation is one of the known operation types
func (op Operation) IsValid() bool {
	return op == OperationCall || op == OperationDelegateCall
}

// String returns the human readable form of the operation
func (op Operation) String() string {
	switch op {
	case OperationCall:
		return "CALL"
	case OperationDelegateCall:
		return "DELEGATECALL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(op))
	}
}
