// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/gadctl/config"
)

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of gadctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOutputFormat(); err != nil {
			return err
		}
		writeVersion(cmd.OutOrStdout(), getClientVersion())
		return nil
	},
}

type Version struct {
	Version   string `json:"version"`
	BuildType string `json:"buildType"`
	BuildTime string `json:"buildTime,omitempty"`
	GoVersion string `json:"goVersion"`
}

type VersionResponse struct {
	Client Version `json:"client"`
}

func getClientVersion() *VersionResponse {
	return &VersionResponse{
		Client: Version{
			Version:   config.Version(),
			BuildType: config.BuildType,
			BuildTime: config.BuildTime,
			GoVersion: runtime.Version(),
		},
	}
}

func writeVersion(out io.Writer, version *VersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, version)
	case FormatYAML:
		WriteYAML(out, version)
	case FormatWide:
		writeWideVersionTable(out, version)
	default:
		writeVersionTable(out, version)
	}
}

func writeVersionTable(out io.Writer, version *VersionResponse) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Client Version"})

	table.Append([]string{
		version.Client.Version,
	})

	table.Render()
}

func writeWideVersionTable(out io.Writer, version *VersionResponse) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Client Version", "Build Type", "Build Time", "Go Version"})

	table.Append([]string{
		version.Client.Version,
		version.Client.BuildType,
		version.Client.BuildTime,
		version.Client.GoVersion,
	})

	table.Render()
}
