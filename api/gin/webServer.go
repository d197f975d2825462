package gin

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiErrors "github.com/multiversx/mx-chain-safe-go/api/errors"
	"github.com/multiversx/mx-chain-safe-go/api/groups"
	"github.com/multiversx/mx-chain-safe-go/api/middleware"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/common"
	"github.com/multiversx/mx-chain-safe-go/config"
)

var log = logger.GetOrCreate("api/gin")

const metricsPath = "/metrics"

type resetHandler interface {
	Reset()
	IsInterfaceNil() bool
}

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade          shared.FacadeHandler
	ApiConfig       config.ApiRoutesConfig
	AntiFloodConfig config.WebServerAntifloodConfig
}

type webServer struct {
	sync.RWMutex
	facade          shared.FacadeHandler
	apiConfig       config.ApiRoutesConfig
	antiFloodConfig config.WebServerAntifloodConfig
	httpServer      shared.HttpServerCloser
	groups          map[string]shared.GroupHandler
	cancelFunc      func()
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	gws := &webServer{
		facade:          args.Facade,
		antiFloodConfig: args.AntiFloodConfig,
		apiConfig:       args.ApiConfig,
	}

	return gws, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return apiErrors.ErrNilFacadeHandler
	}
	if !args.AntiFloodConfig.WebServerAntifloodEnabled {
		return nil
	}
	if args.AntiFloodConfig.SameSourceResetIntervalInSec == 0 {
		return fmt.Errorf("%w, SameSourceResetIntervalInSec should not be 0", apiErrors.ErrCannotCreateGinWebServer)
	}

	return nil
}

// UpdateFacade updates the facade of all the registered groups
func (ws *webServer) UpdateFacade(facade shared.FacadeHandler) error {
	if check.IfNil(facade) {
		return apiErrors.ErrNilFacadeHandler
	}

	ws.Lock()
	defer ws.Unlock()

	ws.facade = facade

	for groupName, groupHandler := range ws.groups {
		log.Debug("upgrading facade for gin API group", "group name", groupName)
		err := groupHandler.UpdateFacade(facade)
		if err != nil {
			log.Error("cannot update facade for gin API group", "group name", groupName, "error", err)
		}
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.facade.RestApiInterface() == common.DefaultRestPortOff {
		log.Debug("web server is turned off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.facade.RestApiInterface(), Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.facade.RestApiInterface())
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Debug("starting web server",
		"antiflood enabled", ws.antiFloodConfig.WebServerAntifloodEnabled,
		"SimultaneousRequests", ws.antiFloodConfig.SimultaneousRequests,
		"SameSourceRequests", ws.antiFloodConfig.SameSourceRequests,
		"SameSourceResetIntervalInSec", ws.antiFloodConfig.SameSourceResetIntervalInSec,
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.facade.RestAPIServerDebugMode() {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}

	for _, proc := range processors {
		if check.IfNil(proc) {
			continue
		}

		engine.Use(proc.MiddlewareHandlerFunc())
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)

	pendingGroup, err := groups.NewPendingGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["pending"] = pendingGroup

	transactionsGroup, err := groups.NewTransactionsGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["transactions"] = transactionsGroup

	historyGroup, err := groups.NewHistoryGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["history"] = historyGroup

	safesGroup, err := groups.NewSafesGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["safes"] = safesGroup

	nodeGroup, err := groups.NewNodeGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["node"] = nodeGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, ws.apiConfig, nil)
	}

	ginRouter.GET(metricsPath, gin.WrapH(ws.facade.MetricsHandler()))

	if ws.facade.PprofEnabled() {
		pprof.Register(ginRouter)
	}
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	if ws.apiConfig.Logging.LoggingEnabled {
		responseLoggerMiddleware := middleware.NewResponseLoggerMiddleware(time.Duration(ws.apiConfig.Logging.ThresholdInMicroSeconds) * time.Microsecond)
		middlewares = append(middlewares, responseLoggerMiddleware)
	}

	if !ws.antiFloodConfig.WebServerAntifloodEnabled {
		return middlewares, nil
	}

	sourceLimiter, err := middleware.NewSourceThrottler(ws.antiFloodConfig.SameSourceRequests)
	if err != nil {
		return nil, err
	}

	var ctx context.Context
	ctx, ws.cancelFunc = context.WithCancel(context.Background())

	go ws.sourceLimiterReset(ctx, sourceLimiter)

	middlewares = append(middlewares, sourceLimiter)

	globalLimiter, err := middleware.NewGlobalThrottler(ws.antiFloodConfig.SimultaneousRequests)
	if err != nil {
		return nil, err
	}

	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

func (ws *webServer) sourceLimiterReset(ctx context.Context, reset resetHandler) {
	betweenResetDuration := time.Second * time.Duration(ws.antiFloodConfig.SameSourceResetIntervalInSec)
	timer := time.NewTimer(betweenResetDuration)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			log.Trace("calling reset on WS source limiter")
			reset.Reset()
			timer.Reset(betweenResetDuration)
		case <-ctx.Done():
			log.Debug("closing webServer.sourceLimiterReset go routine")
			return
		}
	}
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	if ws.cancelFunc != nil {
		ws.cancelFunc()
	}

	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
