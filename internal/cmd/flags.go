// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/mia-platform/logbridge/internal/format"
	"github.com/mia-platform/logbridge/internal/info"
	"github.com/mia-platform/logbridge/internal/logger"
)

const (
	nameFlagName  = "name"
	nameFlagShort = "n"
	nameFlagUsage = "Name of the logger category used to look up the engine configuration"

	severityFlagName  = "severity"
	severityFlagShort = "s"

	errorFlagName  = "error"
	errorFlagUsage = "If set, attaches an error with this text to the entry"

	cultureFlagName  = "culture"
	cultureFlagUsage = "BCP 47 language tag whose number conventions are used to format the arguments"
)

var severityFlagUsage = "Severity of the entry (possible values: " + strings.Join(allSeverities(), ", ") + ")"

// emitFlags holds the flags for the "emit" command.
type emitFlags struct {
	name     string
	severity string
	err      string
	culture  string
}

// addFlags adds the cli flags to the cobra command.
func (f *emitFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, nameFlagName, nameFlagShort, info.AppName, nameFlagUsage)
	cmd.Flags().StringVarP(&f.severity, severityFlagName, severityFlagShort, "info", severityFlagUsage)
	cmd.Flags().StringVar(&f.err, errorFlagName, "", errorFlagUsage)
	cmd.Flags().StringVar(&f.culture, cultureFlagName, "", cultureFlagUsage)

	_ = cmd.RegisterFlagCompletionFunc(severityFlagName, severityCompletion)
}

// toOptions converts the emit flags to emitOptions enriching it with the passed arguments.
func (f *emitFlags) toOptions(args []string) (*emitOptions, error) {
	if len(args) == 0 {
		return nil, errNoArguments
	}

	severity, ok := logger.ParseSeverity(f.severity)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errInvalidSeverity, f.severity)
	}

	var provider format.Provider
	if f.culture != "" {
		tag, err := language.Parse(f.culture)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errInvalidCulture, f.culture)
		}
		provider = format.Culture(tag)
	}

	var entryErr error
	if f.err != "" {
		entryErr = errors.New(f.err)
	}

	arguments := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		arguments = append(arguments, parseArgument(arg))
	}

	return &emitOptions{
		name:      f.name,
		severity:  severity,
		err:       entryErr,
		provider:  provider,
		message:   args[0],
		arguments: arguments,
	}, nil
}
