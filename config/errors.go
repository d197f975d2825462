package config

import "errors"

// ErrMissingGatewayURL signals that the gateway URL was not configured
var ErrMissingGatewayURL = errors.New("missing gateway URL")

// ErrMissingRelayURL signals that the sponsor relay URL was not configured
var ErrMissingRelayURL = errors.New("missing relay URL")

// ErrNoChainsConfigured signals that no chain was configured
var ErrNoChainsConfigured = errors.New("no chains configured")

// ErrDuplicatedChain signals that the same chain was configured twice
var ErrDuplicatedChain = errors.New("duplicated chain")

// ErrInvalidAddress signals that a configured address is not a valid hex address
var ErrInvalidAddress = errors.New("invalid address")

// ErrInvalidSignerType signals that a configured signer has an unknown type
var ErrInvalidSignerType = errors.New("invalid signer type")

// ErrInvalidCacheCapacity signals that a cache was configured with a non positive capacity
var ErrInvalidCacheCapacity = errors.New("invalid cache capacity")

// ErrInvalidPollingConfig signals that a polling interval or timeout is zero
var ErrInvalidPollingConfig = errors.New("invalid polling config")

// ErrMissingLatestSafeVersion signals that a chain has no latest Safe version configured
var ErrMissingLatestSafeVersion = errors.New("missing latest safe version")

// ErrUnknownChain signals that the requested chain is not configured
var ErrUnknownChain = errors.New("unknown chain")
