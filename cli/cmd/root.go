// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/gadctl/config"
	"github.com/netapp/gadctl/logging"
)

const (
	FormatJSON = "json"
	FormatWide = "wide"
	FormatYAML = "yaml"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1

	requestSource = "CLI"
)

var (
	ExitCode int

	Debug        bool
	LogLevel     string
	LogFormat    string
	MetricsFile  string
	OutputFormat string

	// appFs is the filesystem task files are read from.
	appFs = afero.NewOsFs()

	ctx = context.TODO
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "gadctl",
	Short:        "A CLI tool for Hitachi VSP global-active device pairs",
	Long: `A CLI tool that brings a Hitachi VSP global-active device (GAD) pair to a declared state ` +
		`across two storage controllers`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCmdLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return writeMetrics()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", config.DefaultLogLevel,
		"Logging level (trace, debug, info, warn, error, fatal)")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", config.DefaultLogFormat,
		"Logging format (text, json)")
	RootCmd.PersistentFlags().StringVar(&MetricsFile, "metrics-file", "",
		"Write storage API metrics to this file in Prometheus text format")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "", "Output format. One of json|yaml|wide")
}

func initCmdLogging() error {
	return logging.InitLogging(Debug, LogLevel, LogFormat)
}

func writeMetrics() error {
	if MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(MetricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("could not write metrics to %s; %v", MetricsFile, err)
	}
	return nil
}

func validateOutputFormat() error {
	switch OutputFormat {
	case "", FormatJSON, FormatYAML, FormatWide:
		return nil
	default:
		return fmt.Errorf("unknown output format %q; must be one of json|yaml|wide", OutputFormat)
	}
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
