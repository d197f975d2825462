package config

// Config will hold the whole configuration of the safe node
type Config struct {
	Gateway             GatewayConfig
	Relay               RelayConfig
	Hardware            HardwareConfig
	Keystore            KeystoreConfig
	Execution           ExecutionConfig
	Activation          ActivationConfig
	RelayPolling        RelayPollingConfig
	HistoryMonitor      HistoryMonitorConfig
	PendingStore        PendingStoreConfig
	OwnedSafesCache     CacheConfig
	ReconciliationCache CacheConfig
	Signers             []SignerConfig
	Chains              []ChainConfig
	WebServer           WebServerConfig
	Api                 ApiRoutesConfig
}

// GatewayConfig holds the transaction gateway service settings
type GatewayConfig struct {
	URL                 string
	RequestTimeoutInSec int
}

// RelayConfig holds the sponsor relay settings
type RelayConfig struct {
	URL                 string
	APIKey              string
	RequestTimeoutInSec int
}

// HardwareConfig holds the hardware signer bridge settings
type HardwareConfig struct {
	Enabled             bool
	BridgeURL           string
	RequestTimeoutInSec int
}

// KeystoreConfig holds the location of the wallet keys used by the direct-key executor
type KeystoreConfig struct {
	Directory string
}

// ExecutionConfig holds the settings of the wallet executors
type ExecutionConfig struct {
	GasLimitMultiplierPercent uint64
	ReceiptWatchEnabled       bool
}

// ActivationConfig holds the settings used while waiting for a transaction to be mined
type ActivationConfig struct {
	MaxLookupRetries           uint
	InitialRetryIntervalInMs   uint64
	MaxRetryIntervalInMs       uint64
	ReceiptPollingIntervalInMs uint64
	RequiredConfirmations      uint64
}

// RelayPollingConfig holds the relay task status polling settings
type RelayPollingConfig struct {
	PollingIntervalInMs uint64
	TimeoutInSec        uint64
}

// HistoryMonitorConfig holds the settings of the component polling the indexed history
type HistoryMonitorConfig struct {
	Enabled              bool
	PollingIntervalInSec uint64
	WatchedSafes         []WatchedSafeConfig
}

// WatchedSafeConfig identifies a Safe whose history is polled
type WatchedSafeConfig struct {
	ChainID string
	Address string
}

// PendingStoreConfig holds the redis settings used to persist pending executions
type PendingStoreConfig struct {
	Enabled   bool
	Address   string
	Password  string
	DB        int
	KeyPrefix string
	TTLInSec  uint64
}

// CacheConfig holds the settings of an in-memory LRU cache
type CacheConfig struct {
	Capacity int
}

// SignerConfig describes a wallet able to execute transactions
type SignerConfig struct {
	Address        string
	Type           string
	DerivationPath string
}

// ChainConfig holds the per chain endpoints and canonical contract deployments
type ChainConfig struct {
	ChainID           string
	RPCURL            string
	LatestSafeVersion string
	ProxyFactory      string
	SafeSingleton     string
	FallbackHandler   string
	MultiSend         string
	MultiSendCallOnly string
}

// WebServerConfig holds the REST API server settings
type WebServerConfig struct {
	RestApiInterface        string
	PprofEnabled            bool
	DebugMode               bool
	PendingStreamBufferSize int
	Antiflood               WebServerAntifloodConfig
}

// WebServerAntifloodConfig will hold the anti-flooding parameters for the web server
type WebServerAntifloodConfig struct {
	WebServerAntifloodEnabled    bool
	SimultaneousRequests         uint32
	SameSourceRequests           uint32
	SameSourceResetIntervalInSec uint32
}

// ApiRoutesConfig holds the configuration related to Rest API routes
type ApiRoutesConfig struct {
	Logging     ApiLoggingConfig
	APIPackages map[string]APIPackageConfig
}

// ApiLoggingConfig holds the configuration related to API requests logging
type ApiLoggingConfig struct {
	LoggingEnabled          bool
	ThresholdInMicroSeconds int
}

// APIPackageConfig holds the configuration for the routes of each package
type APIPackageConfig struct {
	Routes []RouteConfig
}

// RouteConfig holds the configuration for a single route
type RouteConfig struct {
	Name string
	Open bool
}
