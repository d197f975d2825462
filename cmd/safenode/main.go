package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/gops/agent"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/config"
	"github.com/multiversx/mx-chain-safe-go/core"
	"github.com/multiversx/mx-chain-safe-go/factory"
	"github.com/urfave/cli"
)

const defaultAppVersion = "undefined"

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	log = logger.GetOrCreate("main")
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//            go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = defaultAppVersion

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Safe Node CLI App"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for starting a node that executes, proposes and tracks Safe multisig transactions"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startSafeNode(c, app.Version)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startSafeNode(ctx *cli.Context, version string) error {
	flags := getFlagsConfig(ctx)

	err := initLogger(flags)
	if err != nil {
		return err
	}
	enableGopsIfNeeded(flags.enableGops)

	cfg, err := loadConfig(flags.configurationFile)
	if err != nil {
		return err
	}
	cfg.WebServer.RestApiInterface = applyFlags(flags, cfg.WebServer.RestApiInterface)

	log.Info("starting safe node", "version", version, "pid", os.Getpid())

	components, err := factory.NewSafeNodeComponents(factory.ArgsSafeNodeComponents{
		Config:     *cfg,
		AppVersion: version,
	})
	if err != nil {
		return err
	}

	err = components.Start()
	if err != nil {
		log.LogIfError(components.Close())
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	log.Info("application is now running")
	<-sigs
	log.Info("terminating at user's signal...")

	return components.Close()
}

func initLogger(flags *flagsConfig) error {
	err := logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)

	err = logger.SetLogLevel(flags.logLevel)
	if err != nil {
		return err
	}

	if flags.disableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return err
		}
	}
	log.Trace("logger updated", "level", flags.logLevel, "disable ANSI color", flags.disableAnsiColor)

	return nil
}

func loadConfig(filepath string) (*config.Config, error) {
	cfg := &config.Config{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func enableGopsIfNeeded(gopsEnabled bool) {
	if gopsEnabled {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("failure to init gops", "error", err.Error())
		}
	}

	log.Trace("gops", "enabled", gopsEnabled)
}
