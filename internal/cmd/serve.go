// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"net/http"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/logbridge/internal/logger"
	"github.com/mia-platform/logbridge/internal/server"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "start an http relay that writes the received entries through the logging engine"
	serveCmdLong  = `Start an http relay that writes the received entries through the logging engine.
	Entries are posted as JSON on /log with the fields name, severity, message, args,
	error and culture, and are written exactly as the emit command would write them.

	The listening address is read from the LOGBRIDGE_HTTP_HOST and LOGBRIDGE_HTTP_PORT
	environment variables. The server stops when the process receives an interrupt.`

	serveCmdExample = `# Start the relay on the default port
	logbridge serve

	# Send an entry to the relay
	curl -X POST localhost:3000/log -d '{"name":"svc","severity":"warn","message":"x={0}","args":[5]}'`

	portFlagName  = "port"
	portFlagShort = "p"
	portFlagUsage = "If set, overrides the port read from LOGBRIDGE_HTTP_PORT"
)

// ServeCmd returns the Cobra command that starts the http relay.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions()
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// serveFlags holds the flags for the "serve" command.
type serveFlags struct {
	port int
}

// addFlags adds the cli flags to the cobra command.
func (f *serveFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.port, portFlagName, portFlagShort, 0, portFlagUsage)
}

// toOptions converts the serve flags to serveOptions.
func (f *serveFlags) toOptions() (*serveOptions, error) {
	config, err := server.LoadServerConfig()
	if err != nil {
		return nil, err
	}

	if f.port != 0 {
		config.HTTPPort = f.port
	}

	return &serveOptions{
		config:    config,
		newServer: server.NewServer,
	}, nil
}

// serveOptions holds the options set for the current serve function.
type serveOptions struct {
	config    *server.Config
	newServer func(context.Context, *server.Config) (server.Server, error)
}

// execute serves the relay until ctx is done.
func (o *serveOptions) execute(ctx context.Context) error {
	srv, err := o.newServer(ctx, o.config)
	if err != nil {
		return err
	}

	srv.AddRoute(http.MethodPost, server.RelayPath, server.RelayHandler(logger.ProviderFromContext(ctx)))

	if err := logger.FromContext(ctx).Info("relay listening on {0}:{1}", o.config.HTTPHost, o.config.HTTPPort); err != nil {
		return err
	}
	srv.StartAsync(ctx)

	<-ctx.Done()
	return srv.Stop()
}
