// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	emitCmdUsage = "emit MESSAGE [ARG...]"
	emitCmdShort = "write one log entry through the configured logging engine"
	emitCmdLong  = `Write one log entry through the configured logging engine.
	MESSAGE is a composite format template where {0}, {1}, ... are replaced by the
	following arguments in order. Arguments that look like integers, decimals or
	booleans are passed as such, so that format strings like {0:N2} apply to them.

	The engine, its threshold and its output are read from the configuration file
	and from the LOGBRIDGE_* environment variables.`

	emitCmdExample = `# Write an info entry on the default logger
	logbridge emit "x={0}" 5

	# Write an error entry with an attached error on a named logger
	logbridge emit --name svc.module --severity error --error "connection reset" "failed: {0}" reason

	# Format numbers with the german conventions
	logbridge emit --culture de "total {0:N2}" 1234.5`
)

// EmitCmd returns the Cobra command that writes a single log entry.
func EmitCmd() *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
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
