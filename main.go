// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/logbridge/internal/cmd"
	"github.com/mia-platform/logbridge/internal/config"
	"github.com/mia-platform/logbridge/internal/info"
	"github.com/mia-platform/logbridge/internal/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "logbridge writes log entries through a pluggable logging engine"
	appLong  = `logbridge writes log entries through a pluggable logging engine.
	Messages are composite format templates whose {0}, {1}, ... items are replaced
	by the arguments, and severities are translated on the levels of the engine.

	The engine is configured with a YAML file, a .env file in the working directory
	and the LOGBRIDGE_* environment variables, in increasing order of precedence.`

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	configFlagName      = "config"
	configShortFlagName = "c"
	configFlagUsage     = "path to the YAML configuration file of the logging engine"

	dotEnvPath    = ".env"
	cliLoggerName = "logbridge:cli"

	versionCmdName = "version"
)

var (
	allLoggerLevels = []string{
		logger.TRACE.String(),
		logger.DEBUG.String(),
		logger.INFO.String(),
		logger.WARN.String(),
		logger.ERROR.String(),
		logger.FATAL.String(),
	}
	logLevelDefaultValue = logger.INFO.String()
	logLevelFlagUsage    = "set the threshold of the logging engine, overriding the configuration (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel   string
	configPath string

	closeEngine func() error
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.StringVarP(&f.configPath, configFlagName, configShortFlagName, "", configFlagUsage)
}

// setupEngine builds the logging engine from the configuration and stores its provider,
// and the logger used by the cli itself, in the command context.
func (f *rootFlags) setupEngine(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(dotEnvPath); err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(logLevelFlagName) {
		cfg.Level = f.logLevel
	}

	provider, closeEngine, err := internalcmd.NewProvider(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	f.closeEngine = closeEngine

	log, err := provider.CreateLogger(cliLoggerName)
	if err != nil {
		return err
	}

	cmd.SetContext(logger.WithContext(logger.WithProvider(cmd.Context(), provider), log))
	return nil
}

func main() {
	cmd := rootCmd()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := flag.setupEngine(cmd); err != nil {
				cmd.PrintErrln(err)
				return err
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if flag.closeEngine == nil {
				return nil
			}

			if err := flag.closeEngine(); err != nil {
				cmd.PrintErrln(err)
				return err
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.EmitCmd(),
		internalcmd.ServeCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
