// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get one or more resources from the storage controllers",
}

func WriteJSON(out io.Writer, v any) {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(out, string(jsonBytes))
}

func WriteYAML(out io.Writer, v any) {
	jsonBytes, _ := json.Marshal(v)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	fmt.Fprint(out, string(yamlBytes))
}
