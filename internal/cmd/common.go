// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/logbridge/internal/logger"
)

var (
	errNoArguments     = errors.New("no message provided")
	errInvalidSeverity = errors.New("invalid severity provided")
	errInvalidCulture  = errors.New("invalid culture provided")

	severities = []logger.Severity{
		logger.TRACE,
		logger.DEBUG,
		logger.INFO,
		logger.WARN,
		logger.ERROR,
		logger.FATAL,
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidSeverity), errors.Is(err, errInvalidCulture):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// allSeverities returns the lowercase names of every severity.
func allSeverities() []string {
	names := make([]string, 0, len(severities))
	for _, severity := range severities {
		names = append(names, strings.ToLower(severity.String()))
	}
	return names
}

// parseArgument turns a cli argument into an integer, a decimal or a boolean when it
// reads as one, and keeps it as a string otherwise.
func parseArgument(arg string) any {
	if value, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return value
	}

	if value, err := strconv.ParseFloat(arg, 64); err == nil && strings.ContainsAny(arg, "0123456789") {
		return value
	}

	switch arg {
	case "true":
		return true
	case "false":
		return false
	default:
		return arg
	}
}

func severityCompletion(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	for _, name := range allSeverities() {
		if strings.HasPrefix(name, toComplete) {
			comps = append(comps, name)
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}
