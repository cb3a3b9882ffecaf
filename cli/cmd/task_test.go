// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	logging.InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

const createTask = `
connection_info:
  address: 10.0.0.1
  username: admin
  password: secret
  serial: "410000"
secondary_connection_info:
  address: 10.0.0.2
  username: admin
  password: secret
  serial: "420000"
  verify_tls: true
state: present
spec:
  primary_volume_id: 10
  secondary_pool_id: 3
  copy_group_name: CG1
  copy_pair_name: P1
  copy_pace: 3
  secondary_hostgroups:
    - name: HG1
      port: CL1-A
      lun_id: 4
`

func TestLoadTask(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tasks/create.yaml", []byte(createTask), 0o600))

	task, err := loadTask(fs, "/tasks/create.yaml")
	require.NoError(t, err)

	expected := &Task{
		ConnectionInfo: api.ConnectionInfo{
			Address: "10.0.0.1", Username: "admin", Password: "secret", Serial: "410000",
		},
		SecondaryConnectionInfo: api.ConnectionInfo{
			Address: "10.0.0.2", Username: "admin", Password: "secret", Serial: "420000", VerifyTLS: true,
		},
		State: vsp.StatePresent,
		Spec: vsp.PairSpec{
			PrimaryVolumeID: utils.Ptr(10),
			SecondaryPoolID: utils.Ptr(3),
			CopyGroupName:   "CG1",
			CopyPairName:    "P1",
			CopyPaceLevel:   utils.Ptr(3),
			SecondaryHostGroups: []vsp.HostGroupSpec{
				{Name: "HG1", Port: "CL1-A", LunID: utils.Ptr(4)},
			},
		},
	}
	if diff := cmp.Diff(expected, task); diff != "" {
		t.Errorf("unexpected task (-want +got):\n%s", diff)
	}
}

func TestLoadTaskDefaultsToPresent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "task.yaml", []byte(`
connection_info: {address: 10.0.0.1}
secondary_connection_info: {address: 10.0.0.2}
spec: {copy_group_name: CG1}
`), 0o600))

	task, err := loadTask(fs, "task.yaml")
	require.NoError(t, err)
	assert.Equal(t, vsp.StatePresent, task.State)
	assert.Equal(t, "CG1", task.Spec.CopyGroupName)
}

func TestLoadTaskErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "garbled.yaml", []byte("spec: [unterminated"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "no_remote.yaml", []byte(`
connection_info: {address: 10.0.0.1}
state: absent
`), 0o600))
	require.NoError(t, afero.WriteFile(fs, "no_local.yaml", []byte(`
secondary_connection_info: {address: 10.0.0.2}
`), 0o600))

	tests := map[string]struct {
		path         string
		invalidInput bool
		message      string
	}{
		"NoPath":   {path: "", invalidInput: true, message: "a task file is required"},
		"Missing":  {path: "missing.yaml", invalidInput: false, message: "could not read task file missing.yaml"},
		"Garbled":  {path: "garbled.yaml", invalidInput: true, message: "could not parse task file"},
		"NoRemote": {path: "no_remote.yaml", invalidInput: true, message: "secondary_connection_info.address"},
		"NoLocal":  {path: "no_local.yaml", invalidInput: true, message: "connection_info.address"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadTask(fs, test.path)
			require.Error(t, err)
			assert.Equal(t, test.invalidInput, errors.IsInvalidInputError(err))
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestDebugTraceFlags(t *testing.T) {
	defer func(debug bool) { Debug = debug }(Debug)

	Debug = false
	assert.False(t, debugTraceFlags()["method"])

	Debug = true
	assert.True(t, debugTraceFlags()["method"])
	assert.True(t, debugTraceFlags()["api"])
	assert.False(t, debugTraceFlags()["sensitive"])
}

func TestBindTaskFileFlag(t *testing.T) {
	var taskFile string
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindTaskFileFlag(flags, &taskFile)

	require.NoError(t, flags.Parse([]string{"-f", "/tasks/create.yaml"}))
	assert.Equal(t, "/tasks/create.yaml", taskFile)
}
