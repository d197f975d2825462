package safetx

import "github.com/ethereum/go-ethereum/common"

// HistoryItemType is the discriminator of the HistoryItem union
type HistoryItemType string

const (
	// HistoryItemTransaction is an executed transaction
	HistoryItemTransaction HistoryItemType = "TRANSACTION"
	// HistoryItemDateLabel groups the following transactions by day
	HistoryItemDateLabel HistoryItemType = "DATE_LABEL"
	// HistoryItemLabel is a section label
	HistoryItemLabel HistoryItemType = "LABEL"
	// HistoryItemConflictHeader introduces transactions sharing the same nonce
	HistoryItemConflictHeader HistoryItemType = "CONFLICT_HEADER"
)

// TxStatus is the status reported by the gateway for a transaction
type TxStatus string

const (
	// TxStatusAwaitingConfirmations marks a queued transaction below threshold
	TxStatusAwaitingConfirmations TxStatus = "AWAITING_CONFIRMATIONS"
	// TxStatusAwaitingExecution marks a queued transaction ready to be executed
	TxStatusAwaitingExecution TxStatus = "AWAITING_EXECUTION"
	// TxStatusCancelled marks a transaction replaced by another one with the same nonce
	TxStatusCancelled TxStatus = "CANCELLED"
	// TxStatusFailed marks an executed transaction whose inner call failed
	TxStatusFailed TxStatus = "FAILED"
	// TxStatusSuccess marks a successfully executed transaction
	TxStatusSuccess TxStatus = "SUCCESS"
)

// HistoryItem is one entry of the indexed history list. Implemented only by *TransactionItem,
// *DateLabel, *Label and *ConflictHeader.
type HistoryItem interface {
	Type() HistoryItemType
	historyItem()
}

// TransactionSummary is the list representation of a transaction
type TransactionSummary struct {
	ID            string        `json:"id"`
	Timestamp     int64         `json:"timestamp"`
	TxStatus      TxStatus      `json:"txStatus"`
	TxHash        common.Hash   `json:"txHash"`
	TxInfo        TxInfo        `json:"txInfo"`
	ExecutionInfo ExecutionInfo `json:"executionInfo"`
}

// TransactionItem wraps a transaction summary
type TransactionItem struct {
	Transaction  TransactionSummary `json:"transaction"`
	ConflictType string             `json:"conflictType"`
}

// DateLabel is a day separator
type DateLabel struct {
	Timestamp int64 `json:"timestamp"`
}

// Label is a section separator
type Label struct {
	Label string `json:"label"`
}

// ConflictHeader precedes transactions competing for the same nonce
type ConflictHeader struct {
	Nonce uint64 `json:"nonce"`
}

// Type returns HistoryItemTransaction
func (item *TransactionItem) Type() HistoryItemType { return HistoryItemTransaction }

// Type returns HistoryItemDateLabel
func (item *DateLabel) Type() HistoryItemType { return HistoryItemDateLabel }

// Type returns HistoryItemLabel
func (item *Label) Type() HistoryItemType { return HistoryItemLabel }

// Type returns HistoryItemConflictHeader
func (item *ConflictHeader) Type() HistoryItemType { return HistoryItemConflictHeader }

func (item *TransactionItem) historyItem() {}
func (item *DateLabel) historyItem()       {}
func (item *Label) historyItem()           {}
func (item *ConflictHeader) historyItem()  {}

// MultisigNonce returns the Safe nonce of a multisig transaction summary
func (summary *TransactionSummary) MultisigNonce() (uint64, bool) {
	info, ok := summary.ExecutionInfo.(*MultisigExecutionInfo)
	if !ok || info == nil {
		return 0, false
	}

	return info.Nonce, true
}
