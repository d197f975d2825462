package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/process"
)

var log = logger.GetOrCreate("chain")

// ArgsProvidersHolder holds the arguments needed to create a new providers holder
type ArgsProvidersHolder struct {
	Chains      []config.ChainConfig
	DialTimeout time.Duration
}

type providersHolder struct {
	rpcURLs     map[string]string
	dialTimeout time.Duration

	mut     sync.Mutex
	clients map[string]*ethclient.Client
}

// NewProvidersHolder creates the holder of the chain RPC clients. Clients are dialed on first use and reused.
func NewProvidersHolder(args ArgsProvidersHolder) (*providersHolder, error) {
	if args.DialTimeout <= 0 {
		return nil, ErrInvalidDialTimeout
	}

	rpcURLs := make(map[string]string, len(args.Chains))
	for _, chainCfg := range args.Chains {
		if len(chainCfg.RPCURL) == 0 {
			return nil, fmt.Errorf("%w for chain %s", ErrMissingRPCURL, chainCfg.ChainID)
		}
		rpcURLs[chainCfg.ChainID] = chainCfg.RPCURL
	}

	return &providersHolder{
		rpcURLs:     rpcURLs,
		dialTimeout: args.DialTimeout,
		clients:     make(map[string]*ethclient.Client),
	}, nil
}

// ProviderForChain returns the RPC client of the chain
func (ph *providersHolder) ProviderForChain(chainID string) (process.ChainProvider, error) {
	rpcURL, found := ph.rpcURLs[chainID]
	if !found {
		return nil, fmt.Errorf("%w: %s", process.ErrUnknownChain, chainID)
	}

	ph.mut.Lock()
	defer ph.mut.Unlock()

	client, found := ph.clients[chainID]
	if found {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ph.dialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w while dialing chain %s", err, chainID)
	}

	ph.clients[chainID] = client
	log.Debug("chain provider created", "chainID", chainID)

	return client, nil
}

// Close closes every dialed client
func (ph *providersHolder) Close() error {
	ph.mut.Lock()
	defer ph.mut.Unlock()

	for chainID, client := range ph.clients {
		client.Close()
		delete(ph.clients, chainID)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ph *providersHolder) IsInterfaceNil() bool {
	return ph == nil
}
