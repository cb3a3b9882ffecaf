// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils/errors"
)

// Task is the declared state of one GAD pair together with the two controllers holding it.
type Task struct {
	ConnectionInfo          api.ConnectionInfo `json:"connection_info"`
	SecondaryConnectionInfo api.ConnectionInfo `json:"secondary_connection_info"`
	State                   string             `json:"state,omitempty"`
	Spec                    vsp.PairSpec       `json:"spec"`
}

// bindTaskFileFlag adds the task file flag shared by commands that act on a task.
func bindTaskFileFlag(flags *pflag.FlagSet, taskFile *string) {
	flags.StringVarP(taskFile, "filename", "f", "", "Path to the task file (YAML)")
}

// loadTask reads a task file from fs. A task without a state asks for the pair to be present.
func loadTask(fs afero.Fs, path string) (*Task, error) {
	if path == "" {
		return nil, errors.InvalidInputError("a task file is required")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read task file %s; %v", path, err)
	}

	var task Task
	if err = yaml.Unmarshal(data, &task); err != nil {
		return nil, errors.InvalidInputError("could not parse task file %s; %v", path, err)
	}

	if task.ConnectionInfo.Address == "" {
		return nil, errors.InvalidInputError("connection_info.address is required")
	}
	if task.SecondaryConnectionInfo.Address == "" {
		return nil, errors.InvalidInputError("secondary_connection_info.address is required")
	}
	if task.State == "" {
		task.State = vsp.StatePresent
	}
	return &task, nil
}

// debugTraceFlags turns on method trace lines when debugging.
func debugTraceFlags() map[string]bool {
	return map[string]bool{"method": Debug, "api": Debug}
}

// controllers wires a client for each side of the task, each knowing the other as its remote.
// The returned function ends both sessions.
func controllers(ctx context.Context, task *Task) (vsp.ControllerHandle, vsp.ControllerHandle, func()) {
	flags := debugTraceFlags()
	local := api.NewClient(api.NewClientConfig(task.ConnectionInfo, flags))
	remote := api.NewClient(api.NewClientConfig(task.SecondaryConnectionInfo, flags))
	local.SetRemote(remote)
	remote.SetRemote(local)

	Logc(ctx).WithFields(LogFields{
		"local":  task.ConnectionInfo,
		"remote": task.SecondaryConnectionInfo,
	}).Debug("Connecting to storage controllers.")

	logout := func() {
		for _, client := range []*api.Client{local, remote} {
			if err := client.Logout(ctx); err != nil {
				Logc(ctx).WithField("controller", client.Name()).WithError(err).Debug("Could not end session.")
			}
		}
	}
	return vsp.NewControllerHandle(local), vsp.NewControllerHandle(remote), logout
}
