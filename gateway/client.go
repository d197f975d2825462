package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
)

var log = logger.GetOrCreate("gateway")

const (
	transactionDetailsPath = "/v1/chains/%s/transactions/%s"
	historyPath            = "/v1/chains/%s/safes/%s/transactions/history"
	proposePath            = "/v1/chains/%s/transactions/%s/propose"
	confirmationsPath      = "/v1/chains/%s/transactions/%s/confirmations"
	noncesPath             = "/v1/chains/%s/safes/%s/nonces"
	safeInfoPath           = "/v1/chains/%s/safes/%s"
	ownedSafesPath         = "/v1/chains/%s/owners/%s/safes"
)

type client struct {
	httpClient HttpClient
}

// NewClient creates a transaction gateway client over the provided JSON transport
func NewClient(httpClient HttpClient) (*client, error) {
	if check.IfNil(httpClient) {
		return nil, ErrNilHttpClient
	}

	return &client{
		httpClient: httpClient,
	}, nil
}

// GetTransactionDetails fetches the canonical record of a transaction
func (c *client) GetTransactionDetails(ctx context.Context, chainID string, txID string) (*safetx.TransactionDetails, error) {
	if len(txID) == 0 {
		return nil, ErrEmptyTxID
	}

	var response map[string]interface{}
	_, err := c.httpClient.Get(ctx, fmt.Sprintf(transactionDetailsPath, url.PathEscape(chainID), url.PathEscape(txID)), &response)
	if err != nil {
		return nil, err
	}

	return DecodeTransactionDetails(response)
}

// GetTransactionHistory fetches a page of the indexed history. An empty cursor fetches the first page.
func (c *client) GetTransactionHistory(ctx context.Context, chainID string, safe common.Address, cursor string) (*HistoryPage, error) {
	path := fmt.Sprintf(historyPath, url.PathEscape(chainID), safe.Hex())
	if len(cursor) > 0 {
		path += "?cursor=" + url.QueryEscape(cursor)
	}

	response := &rawHistoryPage{}
	_, err := c.httpClient.Get(ctx, path, response)
	if err != nil {
		return nil, err
	}

	items, err := DecodeHistoryItems(response.Results)
	if err != nil {
		return nil, err
	}

	page := &HistoryPage{
		Results: items,
	}
	if response.Next != nil {
		page.Next = *response.Next
	}
	if response.Previous != nil {
		page.Previous = *response.Previous
	}

	return page, nil
}

// ProposeTransaction posts a new transaction and returns its canonical record
func (c *client) ProposeTransaction(ctx context.Context, chainID string, safe common.Address, request *ProposeTransactionRequest) (*safetx.TransactionDetails, error) {
	if request == nil {
		return nil, ErrNilProposal
	}

	var response map[string]interface{}
	_, err := c.httpClient.Post(ctx, fmt.Sprintf(proposePath, url.PathEscape(chainID), safe.Hex()), request, &response)
	if err != nil {
		return nil, err
	}

	log.Debug("transaction proposed", "chainID", chainID, "safe", safe.Hex(), "safeTxHash", request.SafeTxHash.Hex())

	return DecodeTransactionDetails(response)
}

// AddConfirmation posts an owner signature for a proposed transaction
func (c *client) AddConfirmation(ctx context.Context, chainID string, safeTxHash common.Hash, signature []byte) error {
	request := &AddConfirmationRequest{
		SignedSafeTxHash: hexEncode(signature),
	}

	_, err := c.httpClient.Post(ctx, fmt.Sprintf(confirmationsPath, url.PathEscape(chainID), safeTxHash.Hex()), request, nil)
	return err
}

// GetNonces fetches the current and the recommended nonce of a Safe
func (c *client) GetNonces(ctx context.Context, chainID string, safe common.Address) (*SafeNonces, error) {
	response := &SafeNonces{}
	_, err := c.httpClient.Get(ctx, fmt.Sprintf(noncesPath, url.PathEscape(chainID), safe.Hex()), response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetSafeInfo fetches the on-chain state of a Safe
func (c *client) GetSafeInfo(ctx context.Context, chainID string, safe common.Address) (*safetx.SafeInfo, error) {
	response := &rawSafeInfo{}
	_, err := c.httpClient.Get(ctx, fmt.Sprintf(safeInfoPath, url.PathEscape(chainID), safe.Hex()), response)
	if err != nil {
		return nil, err
	}

	info := &safetx.SafeInfo{
		ChainID:   response.ChainID,
		Address:   response.Address.Value,
		Version:   response.Version,
		Nonce:     response.Nonce,
		Threshold: response.Threshold,
		Owners:    make([]common.Address, 0, len(response.Owners)),
		Deployed:  true,
	}
	for _, owner := range response.Owners {
		info.Owners = append(info.Owners, owner.Value)
	}
	if response.FallbackHandler != nil {
		info.FallbackHandler = response.FallbackHandler.Value
	}

	return info, nil
}

// GetOwnedSafes fetches the Safes owned by an address on a chain
func (c *client) GetOwnedSafes(ctx context.Context, chainID string, owner common.Address) ([]common.Address, error) {
	response := &ownedSafesResponse{}
	_, err := c.httpClient.Get(ctx, fmt.Sprintf(ownedSafesPath, url.PathEscape(chainID), owner.Hex()), response)
	if err != nil {
		return nil, err
	}

	return response.Safes, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *client) IsInterfaceNil() bool {
	return c == nil
}

func hexEncode(data []byte) string {
	return fmt.Sprintf("0x%x", data)
}
