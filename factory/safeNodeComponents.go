package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/abi"
	"github.com/multiversx/mx-chain-safe-go/api/gin"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/chain"
	safeCommon "github.com/multiversx/mx-chain-safe-go/common"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/core/appStatusPolling"
	"github.com/multiversx/mx-chain-safe-go/core/httpclient"
	"github.com/multiversx/mx-chain-safe-go/data/safetx"
	"github.com/multiversx/mx-chain-safe-go/facade"
	"github.com/multiversx/mx-chain-safe-go/factory/disabled"
	"github.com/multiversx/mx-chain-safe-go/gateway"
	"github.com/multiversx/mx-chain-safe-go/hardware"
	"github.com/multiversx/mx-chain-safe-go/hashing/keccak"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/activation"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/process/pending"
	"github.com/multiversx/mx-chain-safe-go/process/proposal"
	"github.com/multiversx/mx-chain-safe-go/process/reconciliation"
	"github.com/multiversx/mx-chain-safe-go/process/relayStatus"
	"github.com/multiversx/mx-chain-safe-go/process/signerRegistry"
	"github.com/multiversx/mx-chain-safe-go/process/txWaiter"
	"github.com/multiversx/mx-chain-safe-go/relay"
	"github.com/multiversx/mx-chain-safe-go/statusHandler"
	"github.com/multiversx/mx-chain-safe-go/storage/keystore"
	"github.com/multiversx/mx-chain-safe-go/storage/ownedSafes"
	"github.com/multiversx/mx-chain-safe-go/storage/pendingStore"
	"github.com/multiversx/mx-chain-storage-go/lrucache"
	"github.com/redis/go-redis/v9"
)

var log = logger.GetOrCreate("factory")

const (
	chainDialTimeout               = 10 * time.Second
	defaultRequestTimeout          = 10 * time.Second
	redisOperationTimeout          = 5 * time.Second
	statusPollingInterval          = 2 * time.Second
	defaultPendingStreamBufferSize = 100
	relayAuthorizationValue        = "Bearer %s"
)

type closeHandler struct {
	name  string
	close func() error
}

// ArgsSafeNodeComponents holds the arguments needed to create the safe node components
type ArgsSafeNodeComponents struct {
	Config     config.Config
	AppVersion string
}

type safeNodeComponents struct {
	cfg        config.Config
	appVersion string

	marshaller       marshal.Marshalizer
	chainsConfig     process.ChainsConfigHandler
	chainProviders   process.ChainProvidersHolder
	appStatusHandler safeCommon.AppStatusHandler
	statusMetrics    facade.StatusMetricsHandler
	metricsSource    facade.MetricsHandlerProvider
	gatewayClient    gatewayClient
	relayClient      process.RelayClient
	hardwareService  process.HardwareService
	secretStore      process.SecretStore
	signerRegistry   process.SignerRegistry
	codec            abiCodec
	encoder          execution.TransactionEncoder
	safeTxHasher     process.SafeTxHasher
	pendingTracker   process.PendingTracker
	broadcaster      changesBroadcasterHandler
	transactionWait  execution.TransactionWaiter
	relayMonitor     execution.RelayMonitor
	dispatcher       dispatcherHandler
	activator        facade.Activator
	proposer         facade.Proposer
	ownedSafes       ownedSafesHandler
	reconciler       reconciliation.Reconciler
	statusPolling    *appStatusPolling.AppStatusPolling
	safeNodeFacade   shared.FacadeHandler
	webServer        shared.UpgradeableHttpServerHandler

	closeHandlers []closeHandler
	cancelPolling func()
}

// NewSafeNodeComponents creates and wires every component of the safe node. On error, the components
// created so far are closed.
func NewSafeNodeComponents(args ArgsSafeNodeComponents) (*safeNodeComponents, error) {
	err := args.Config.Check()
	if err != nil {
		return nil, err
	}

	snc := &safeNodeComponents{
		cfg:           args.Config,
		appVersion:    args.AppVersion,
		marshaller:    &marshal.JsonMarshalizer{},
		closeHandlers: make([]closeHandler, 0),
	}

	createFuncs := []func() error{
		snc.createStatusComponents,
		snc.createChainComponents,
		snc.createClients,
		snc.createCryptoComponents,
		snc.createPendingComponents,
		snc.createExecutionComponents,
		snc.createProposalComponents,
		snc.createReconciliationComponents,
		snc.createApiComponents,
	}
	for _, createFunc := range createFuncs {
		err = createFunc()
		if err != nil {
			_ = snc.Close()
			return nil, err
		}
	}

	return snc, nil
}

func requestTimeout(timeoutInSec int) time.Duration {
	if timeoutInSec <= 0 {
		return defaultRequestTimeout
	}

	return time.Duration(timeoutInSec) * time.Second
}

func (snc *safeNodeComponents) addCloser(name string, closeFunc func() error) {
	snc.closeHandlers = append(snc.closeHandlers, closeHandler{name: name, close: closeFunc})
}

func (snc *safeNodeComponents) createStatusComponents() error {
	prometheusHandler := statusHandler.NewPrometheusStatusHandler()
	statusMetrics := statusHandler.NewStatusMetrics()
	appStatusFacade, err := statusHandler.NewAppStatusFacadeWithHandlers(prometheusHandler, statusMetrics)
	if err != nil {
		return err
	}
	appStatusFacade.SetStringValue(safeCommon.MetricAppVersion, snc.appVersion)

	snc.appStatusHandler = appStatusFacade
	snc.statusMetrics = statusMetrics
	snc.metricsSource = prometheusHandler
	snc.addCloser("status handlers", func() error {
		appStatusFacade.Close()
		return nil
	})

	snc.statusPolling, err = appStatusPolling.NewAppStatusPolling(appStatusFacade, statusPollingInterval)

	return err
}

func (snc *safeNodeComponents) createChainComponents() error {
	chainsConfig, err := config.NewChainsConfig(snc.cfg.Chains)
	if err != nil {
		return err
	}
	snc.chainsConfig = chainsConfig

	providers, err := chain.NewProvidersHolder(chain.ArgsProvidersHolder{
		Chains:      snc.cfg.Chains,
		DialTimeout: chainDialTimeout,
	})
	if err != nil {
		return err
	}
	snc.chainProviders = providers
	snc.addCloser("chain providers", providers.Close)

	return nil
}

func (snc *safeNodeComponents) createClients() error {
	gatewayHttpClient, err := httpclient.NewHttpClient(httpclient.ArgsHttpClient{
		BaseURL:        snc.cfg.Gateway.URL,
		RequestTimeout: requestTimeout(snc.cfg.Gateway.RequestTimeoutInSec),
		Marshaller:     snc.marshaller,
	})
	if err != nil {
		return fmt.Errorf("%w while creating the gateway http client", err)
	}
	snc.gatewayClient, err = gateway.NewClient(gatewayHttpClient)
	if err != nil {
		return err
	}

	relayHeaders := make(map[string]string)
	if len(snc.cfg.Relay.APIKey) > 0 {
		relayHeaders["Authorization"] = fmt.Sprintf(relayAuthorizationValue, snc.cfg.Relay.APIKey)
	}
	relayHttpClient, err := httpclient.NewHttpClient(httpclient.ArgsHttpClient{
		BaseURL:        snc.cfg.Relay.URL,
		RequestTimeout: requestTimeout(snc.cfg.Relay.RequestTimeoutInSec),
		Headers:        relayHeaders,
		Marshaller:     snc.marshaller,
	})
	if err != nil {
		return fmt.Errorf("%w while creating the relay http client", err)
	}
	snc.relayClient, err = relay.NewClient(relayHttpClient)
	if err != nil {
		return err
	}

	return snc.createHardwareService()
}

func (snc *safeNodeComponents) createHardwareService() error {
	if !snc.cfg.Hardware.Enabled {
		log.Debug("hardware signer bridge is disabled")
		snc.hardwareService = &disabled.HardwareService{}
		return nil
	}

	bridgeHttpClient, err := httpclient.NewHttpClient(httpclient.ArgsHttpClient{
		BaseURL:        snc.cfg.Hardware.BridgeURL,
		RequestTimeout: requestTimeout(snc.cfg.Hardware.RequestTimeoutInSec),
		Marshaller:     snc.marshaller,
	})
	if err != nil {
		return fmt.Errorf("%w while creating the hardware bridge http client", err)
	}

	bridgeClient, err := hardware.NewBridgeClient(bridgeHttpClient)
	if err != nil {
		return err
	}
	snc.hardwareService = bridgeClient
	snc.addCloser("hardware bridge", bridgeClient.Disconnect)

	return nil
}

func (snc *safeNodeComponents) createCryptoComponents() error {
	var err error
	snc.safeTxHasher, err = safetx.NewSafeTxHasher(keccak.NewKeccak())
	if err != nil {
		return err
	}

	codec, err := abi.NewCodec()
	if err != nil {
		return err
	}
	snc.codec = codec

	snc.encoder, err = execution.NewExecTransactionEncoder(codec)
	if err != nil {
		return err
	}

	snc.signerRegistry, err = signerRegistry.NewSignerRegistry(snc.cfg.Signers)
	if err != nil {
		return err
	}

	if len(snc.cfg.Keystore.Directory) == 0 {
		log.Warn("no keystore directory configured, direct key signing is disabled")
		snc.secretStore = &disabled.SecretStore{}
		return nil
	}

	snc.secretStore, err = keystore.NewFileSecretStore(snc.cfg.Keystore.Directory)
	if err != nil {
		return fmt.Errorf("%w while loading the keystore", err)
	}

	return nil
}

func (snc *safeNodeComponents) createPendingComponents() error {
	persister, err := snc.createPendingPersister()
	if err != nil {
		return err
	}

	tracker, err := pending.NewPendingTracker(pending.ArgsPendingTracker{
		Persister:        persister,
		AppStatusHandler: snc.appStatusHandler,
	})
	if err != nil {
		return err
	}

	bufferSize := snc.cfg.WebServer.PendingStreamBufferSize
	if bufferSize <= 0 {
		bufferSize = defaultPendingStreamBufferSize
	}
	broadcaster, err := pending.NewChangesBroadcaster(bufferSize)
	if err != nil {
		return err
	}
	tracker.RegisterHandler(broadcaster.Handle)
	snc.addCloser("pending changes broadcaster", broadcaster.Close)

	snc.pendingTracker = tracker
	snc.broadcaster = broadcaster

	return snc.statusPolling.RegisterPollingFunc(func(appStatusHandler safeCommon.AppStatusHandler) {
		appStatusHandler.SetUInt64Value(safeCommon.MetricTrackedExecutions, uint64(len(tracker.GetAll())))
		appStatusHandler.SetUInt64Value(safeCommon.MetricPendingStreamSubscribers, uint64(broadcaster.NumSubscribers()))
	})
}

func (snc *safeNodeComponents) createPendingPersister() (pending.Persister, error) {
	storeCfg := snc.cfg.PendingStore
	if !storeCfg.Enabled {
		log.Debug("pending store is disabled, pending executions will not survive a restart")
		return nil, nil
	}
	if len(storeCfg.Address) == 0 {
		return nil, ErrMissingRedisAddress
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{storeCfg.Address},
		Password: storeCfg.Password,
		DB:       storeCfg.DB,
	})
	snc.addCloser("redis client", client.Close)

	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRedisUnreachable, err.Error())
	}

	return pendingStore.NewRedisPersister(pendingStore.ArgsRedisPersister{
		Client:           client,
		KeyPrefix:        storeCfg.KeyPrefix,
		TTL:              time.Duration(storeCfg.TTLInSec) * time.Second,
		OperationTimeout: redisOperationTimeout,
	})
}

func (snc *safeNodeComponents) createExecutionComponents() error {
	activationCfg := snc.cfg.Activation
	waiter, err := txWaiter.NewTransactionWaiter(txWaiter.ArgsTransactionWaiter{
		ChainProviders:         snc.chainProviders,
		MaxLookupRetries:       activationCfg.MaxLookupRetries,
		InitialRetryInterval:   time.Duration(activationCfg.InitialRetryIntervalInMs) * time.Millisecond,
		MaxRetryInterval:       time.Duration(activationCfg.MaxRetryIntervalInMs) * time.Millisecond,
		ReceiptPollingInterval: time.Duration(activationCfg.ReceiptPollingIntervalInMs) * time.Millisecond,
		RequiredConfirmations:  activationCfg.RequiredConfirmations,
	})
	if err != nil {
		return err
	}
	snc.transactionWait = waiter

	poller, err := relayStatus.NewRelayStatusPoller(relayStatus.ArgsRelayStatusPoller{
		RelayClient:     snc.relayClient,
		PollingInterval: time.Duration(snc.cfg.RelayPolling.PollingIntervalInMs) * time.Millisecond,
		Timeout:         time.Duration(snc.cfg.RelayPolling.TimeoutInSec) * time.Second,
	})
	if err != nil {
		return err
	}

	monitor, err := relayStatus.NewRelayMonitor(relayStatus.ArgsRelayMonitor{
		Poller:           poller,
		PendingTracker:   snc.pendingTracker,
		AppStatusHandler: snc.appStatusHandler,
	})
	if err != nil {
		return err
	}
	snc.relayMonitor = monitor
	snc.addCloser("relay monitor", monitor.Close)

	directKeyExecutor, err := execution.NewDirectKeyExecutor(execution.ArgsDirectKeyExecutor{
		SecretStore:               snc.secretStore,
		ChainProviders:            snc.chainProviders,
		Encoder:                   snc.encoder,
		GasLimitMultiplierPercent: snc.cfg.Execution.GasLimitMultiplierPercent,
	})
	if err != nil {
		return err
	}

	hardwareExecutor, err := execution.NewHardwareExecutor(execution.ArgsHardwareExecutor{
		SignerRegistry:  snc.signerRegistry,
		HardwareService: snc.hardwareService,
		ChainProviders:  snc.chainProviders,
		Encoder:         snc.encoder,
	})
	if err != nil {
		return err
	}

	relayExecutor, err := execution.NewRelayExecutor(execution.ArgsRelayExecutor{
		DetailsProvider: snc.gatewayClient,
		RelayClient:     snc.relayClient,
		Encoder:         snc.encoder,
		ChainsConfig:    snc.chainsConfig,
	})
	if err != nil {
		return err
	}

	dispatcher, err := execution.NewDispatcher(execution.ArgsDispatcher{
		DirectKeyExecutor:   directKeyExecutor,
		HardwareExecutor:    hardwareExecutor,
		RelayExecutor:       relayExecutor,
		SignerRegistry:      snc.signerRegistry,
		PendingTracker:      snc.pendingTracker,
		TransactionWaiter:   waiter,
		RelayMonitor:        monitor,
		AppStatusHandler:    snc.appStatusHandler,
		ReceiptWatchEnabled: snc.cfg.Execution.ReceiptWatchEnabled,
	})
	if err != nil {
		return err
	}
	snc.dispatcher = dispatcher
	snc.addCloser("dispatcher", dispatcher.Close)

	snc.activator, err = activation.NewActivator(activation.ArgsActivator{
		Dispatcher:         dispatcher,
		Codec:              snc.codec,
		TransactionEncoder: snc.encoder,
		TransactionWaiter:  waiter,
		PendingTracker:     snc.pendingTracker,
		ChainsConfig:       snc.chainsConfig,
		AppStatusHandler:   snc.appStatusHandler,
	})

	return err
}

func (snc *safeNodeComponents) createProposalComponents() error {
	messageSigner, err := proposal.NewKeyMessageSigner(snc.secretStore)
	if err != nil {
		return err
	}

	snc.proposer, err = proposal.NewProposer(proposal.ArgsProposer{
		Gateway:       snc.gatewayClient,
		MessageSigner: messageSigner,
		SafeTxHasher:  snc.safeTxHasher,
		ChainsConfig:  snc.chainsConfig,
	})

	return err
}

func (snc *safeNodeComponents) createReconciliationComponents() error {
	ownedSafesCacher, err := lrucache.NewCache(snc.cfg.OwnedSafesCache.Capacity)
	if err != nil {
		return err
	}
	snc.ownedSafes, err = ownedSafes.NewOwnedSafesCache(ownedSafes.ArgsOwnedSafesCache{
		Provider: snc.gatewayClient,
		Cacher:   ownedSafesCacher,
	})
	if err != nil {
		return err
	}

	seenCache, err := lrucache.NewCache(snc.cfg.ReconciliationCache.Capacity)
	if err != nil {
		return err
	}
	snc.reconciler, err = reconciliation.NewHistoryReconciler(reconciliation.ArgsHistoryReconciler{
		PendingTracker:        snc.pendingTracker,
		DetailsProvider:       snc.gatewayClient,
		ChainsConfig:          snc.chainsConfig,
		OwnedSafesInvalidator: snc.ownedSafes,
		SeenCache:             seenCache,
		AppStatusHandler:      snc.appStatusHandler,
		DetailsRequestTimeout: requestTimeout(snc.cfg.Gateway.RequestTimeoutInSec),
	})
	if err != nil {
		return err
	}

	return snc.createHistoryMonitor()
}

func (snc *safeNodeComponents) createHistoryMonitor() error {
	monitorCfg := snc.cfg.HistoryMonitor
	if !monitorCfg.Enabled || len(monitorCfg.WatchedSafes) == 0 {
		log.Debug("history monitor is disabled")
		return nil
	}

	watchedSafes := make([]reconciliation.WatchedSafe, 0, len(monitorCfg.WatchedSafes))
	for _, watched := range monitorCfg.WatchedSafes {
		watchedSafes = append(watchedSafes, reconciliation.WatchedSafe{
			ChainID: watched.ChainID,
			Address: common.HexToAddress(watched.Address),
		})
	}

	monitor, err := reconciliation.NewHistoryMonitor(reconciliation.ArgsHistoryMonitor{
		HistoryProvider: snc.gatewayClient,
		Reconciler:      snc.reconciler,
		WatchedSafes:    watchedSafes,
		PollingInterval: time.Duration(monitorCfg.PollingIntervalInSec) * time.Second,
		RequestTimeout:  requestTimeout(snc.cfg.Gateway.RequestTimeoutInSec),
	})
	if err != nil {
		return err
	}
	snc.addCloser("history monitor", monitor.Close)

	return nil
}

func (snc *safeNodeComponents) createApiComponents() error {
	safeNodeFacade, err := facade.NewSafeNodeFacade(facade.ArgsSafeNodeFacade{
		WebServerConfig:      snc.cfg.WebServer,
		ApiRoutesConfig:      snc.cfg.Api,
		PendingTracker:       snc.pendingTracker,
		ChangesSource:        snc.broadcaster,
		Gateway:              snc.gatewayClient,
		Dispatcher:           snc.dispatcher,
		Proposer:             snc.proposer,
		Activator:            snc.activator,
		Reconciler:           snc.reconciler,
		OwnedSafesProvider:   snc.ownedSafes,
		StatusMetrics:        snc.statusMetrics,
		MetricsHandlerSource: snc.metricsSource,
	})
	if err != nil {
		return err
	}
	snc.safeNodeFacade = safeNodeFacade

	webServer, err := gin.NewGinWebServerHandler(gin.ArgsNewWebServer{
		Facade:          safeNodeFacade,
		ApiConfig:       snc.cfg.Api,
		AntiFloodConfig: snc.cfg.WebServer.Antiflood,
	})
	if err != nil {
		return err
	}
	snc.webServer = webServer
	snc.addCloser("web server", webServer.Close)

	return nil
}

// Start starts the REST API server and the status polling
func (snc *safeNodeComponents) Start() error {
	err := snc.webServer.StartHttpServer()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	snc.cancelPolling = cancel
	snc.statusPolling.Poll(ctx)

	log.Info("safe node started", "rest API interface", snc.safeNodeFacade.RestApiInterface(), "version", snc.appVersion)

	return nil
}

// Facade returns the facade serving the REST API
func (snc *safeNodeComponents) Facade() shared.FacadeHandler {
	return snc.safeNodeFacade
}

// Close closes the created components in the reverse order of their creation
func (snc *safeNodeComponents) Close() error {
	if snc.cancelPolling != nil {
		snc.cancelPolling()
	}

	var lastError error
	for i := len(snc.closeHandlers) - 1; i >= 0; i-- {
		handler := snc.closeHandlers[i]
		log.Debug("closing", "component", handler.name)

		err := handler.close()
		if err != nil {
			log.Error("error closing component", "component", handler.name, "error", err)
			lastError = err
		}
	}
	snc.closeHandlers = make([]closeHandler, 0)

	return lastError
}

// IsInterfaceNil returns true if there is no value under the interface
func (snc *safeNodeComponents) IsInterfaceNil() bool {
	return snc == nil
}
