package main

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-safe-go/common"
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"service endpoints, the signers, the chains and the REST API routes.",
		Value: "./config/config.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. If set to off, the REST API is not started",
		Value: "",
	}
	// gopsEn used to enable diagnosis of running go processes
	gopsEn = cli.BoolFlag{
		Name:  "gops-enable",
		Usage: "Boolean option for enabling gops over the process. If set, stack can be viewed by calling 'gops stack <pid>'.",
	}
)

type flagsConfig struct {
	configurationFile string
	logLevel          string
	disableAnsiColor  bool
	restApiInterface  string
	enableGops        bool
}

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		logLevel,
		disableAnsiColor,
		restApiInterface,
		gopsEn,
	}
}

func getFlagsConfig(ctx *cli.Context) *flagsConfig {
	return &flagsConfig{
		configurationFile: ctx.GlobalString(configurationFile.Name),
		logLevel:          ctx.GlobalString(logLevel.Name),
		disableAnsiColor:  ctx.GlobalBool(disableAnsiColor.Name),
		restApiInterface:  ctx.GlobalString(restApiInterface.Name),
		enableGops:        ctx.GlobalBool(gopsEn.Name),
	}
}

func applyFlags(flags *flagsConfig, restApiInterfaceFromConfig string) string {
	if len(flags.restApiInterface) > 0 {
		return flags.restApiInterface
	}
	if len(restApiInterfaceFromConfig) > 0 {
		return restApiInterfaceFromConfig
	}

	return common.DefaultRestInterface
}
