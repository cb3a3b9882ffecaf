// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp"
)

var (
	getPairTaskFile string
	getPairRaw      bool
)

func init() {
	getCmd.AddCommand(getPairCmd)
	bindTaskFileFlag(getPairCmd.Flags(), &getPairTaskFile)
	getPairCmd.Flags().BoolVar(&getPairRaw, "raw", false,
		"Report pairs as the controller does, without reading volume details from both sides")
}

var getPairCmd = &cobra.Command{
	Use:     "pair",
	Short:   "Get the GAD pairs a task file refers to",
	Aliases: []string{"p", "pairs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOutputFormat(); err != nil {
			return err
		}
		return pairList(cmd.OutOrStdout(), getPairTaskFile, !getPairRaw)
	},
}

// PairListResponse is the document written for get pair.
type PairListResponse struct {
	Items []vsp.PairView `json:"items"`
}

func pairList(out io.Writer, taskFile string, doMore bool) error {
	ctx := GenerateRequestContext(ctx(), "", requestSource)

	task, err := loadTask(appFs, taskFile)
	if err != nil {
		WriteFailure(out, err)
		return err
	}

	local, remote, logout := controllers(ctx, task)
	defer logout()

	reconciler := vsp.NewGADPairReconciler(local, remote, debugTraceFlags())
	pairs, err := reconciler.GetPairFacts(ctx, &task.Spec, doMore)
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not get GAD pairs.")
		WriteFailure(out, err)
		return err
	}

	WritePairs(out, pairs)
	return nil
}

func WritePairs(out io.Writer, pairs []vsp.PairView) {
	switch OutputFormat {
	case FormatYAML:
		WriteYAML(out, PairListResponse{Items: pairs})
	case FormatWide:
		writePairTable(out, pairs)
	default:
		WriteJSON(out, PairListResponse{Items: pairs})
	}
}
