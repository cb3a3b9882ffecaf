// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp"
)

var reconcileTaskFile string

func init() {
	RootCmd.AddCommand(reconcileCmd)
	bindTaskFileFlag(reconcileCmd.Flags(), &reconcileTaskFile)
}

var reconcileCmd = &cobra.Command{
	Use:     "reconcile",
	Short:   "Bring a GAD pair to the state declared in a task file",
	Aliases: []string{"apply"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOutputFormat(); err != nil {
			return err
		}
		return reconcile(cmd.OutOrStdout(), reconcileTaskFile)
	},
}

// Failure is written instead of a result when a task cannot be completed.
type Failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

func reconcile(out io.Writer, taskFile string) error {
	ctx := GenerateRequestContext(ctx(), "", requestSource)

	task, err := loadTask(appFs, taskFile)
	if err != nil {
		WriteFailure(out, err)
		return err
	}

	local, remote, logout := controllers(ctx, task)
	defer logout()

	reconciler := vsp.NewGADPairReconciler(local, remote, debugTraceFlags())
	result, err := reconciler.Reconcile(ctx, task.State, &task.Spec)
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not reconcile GAD pair.")
		WriteFailure(out, err)
		return err
	}

	WriteResult(out, result)
	return nil
}

func WriteFailure(out io.Writer, err error) {
	failure := Failure{Failed: true, Msg: err.Error()}
	switch OutputFormat {
	case FormatYAML:
		WriteYAML(out, failure)
	default:
		WriteJSON(out, failure)
	}
}

func WriteResult(out io.Writer, result *vsp.ReconcileResult) {
	switch OutputFormat {
	case FormatYAML:
		WriteYAML(out, result)
	case FormatWide:
		writeResultTable(out, result)
	default:
		WriteJSON(out, result)
	}
}

func writeResultTable(out io.Writer, result *vsp.ReconcileResult) {
	fmt.Fprintf(out, "%s (changed: %s)\n", result.Comment, strconv.FormatBool(result.Changed))
	if result.Pair != nil {
		writePairTable(out, []vsp.PairView{*result.Pair})
	}
}

func writePairTable(out io.Writer, pairs []vsp.PairView) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"Copy Group", "Copy Pair", "Primary", "Primary Status", "Secondary", "Secondary Status", "Size",
		"Consistency Group",
	})

	for _, pair := range pairs {
		size := ""
		if pair.PrimaryVolumeCapacityBytes > 0 {
			size = humanize.IBytes(pair.PrimaryVolumeCapacityBytes)
		}
		consistencyGroup := ""
		if pair.ConsistencyGroupID >= 0 {
			consistencyGroup = strconv.Itoa(pair.ConsistencyGroupID)
		}
		table.Append([]string{
			pair.CopyGroupName,
			pair.CopyPairName,
			pair.PrimaryHexVolumeID,
			pair.PrimaryVolumeStatus,
			pair.SecondaryHexVolumeID,
			pair.SecondaryVolumeStatus,
			size,
			consistencyGroup,
		})
	}

	table.Render()
}
