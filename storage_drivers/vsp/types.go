// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"context"
	"strconv"

	"github.com/brunoga/deep"
	"github.com/mitchellh/hashstructure/v2"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
)

// Desired pair states accepted by the reconciler.
const (
	StatePresent    = "present"
	StateAbsent     = "absent"
	StateSplit      = "split"
	StateResync     = "resync"
	StateSwapSplit  = "swap_split"
	StateSwapResync = "swap_resync"
	StateResize     = "resize"
	StateExpand     = "expand"
)

// States lists every desired state, in the order they are documented.
var States = []string{
	StatePresent, StateAbsent, StateSplit, StateResync, StateSwapSplit, StateSwapResync, StateResize, StateExpand,
}

// Pair volume statuses reported by the controller.
const (
	PairStatusSMPL = "SMPL"
	PairStatusPAIR = "PAIR"
	PairStatusPSUS = "PSUS"
	PairStatusPSUE = "PSUE"
	PairStatusSSWS = "SSWS"
	PairStatusCOPY = "COPY"
)

type HostGroupSpec struct {
	Name  string `json:"name"`
	Port  string `json:"port"`
	LunID *int   `json:"lun_id,omitempty"`
}

type IscsiTargetSpec struct {
	Name  string `json:"name"`
	Port  string `json:"port"`
	LunID *int   `json:"lun_id,omitempty"`
}

// NvmSubsystemSpec names an NVMe subsystem. Paths restricts the host NQNs that get a namespace
// path; when empty every host NQN registered on the subsystem gets one.
type NvmSubsystemSpec struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths,omitempty"`
}

// PairSpec describes one GAD pair as the caller wants it.
type PairSpec struct {
	PrimaryVolumeID        *int   `json:"primary_volume_id,omitempty"`
	SecondaryVolumeID      *int   `json:"secondary_volume_id,omitempty"`
	PrimaryStorageSerial   string `json:"primary_storage_serial_number,omitempty"`
	SecondaryStorageSerial string `json:"secondary_storage_serial_number,omitempty"`
	SecondaryPoolID        *int   `json:"secondary_pool_id,omitempty"`

	ConsistencyGroupID          *int `json:"consistency_group_id,omitempty"`
	AllocateNewConsistencyGroup bool `json:"allocate_new_consistency_group,omitempty"`

	SecondaryHostGroups   []HostGroupSpec   `json:"secondary_hostgroups,omitempty"`
	SecondaryIscsiTargets []IscsiTargetSpec `json:"secondary_iscsi_targets,omitempty"`
	SecondaryNvmSubsystem *NvmSubsystemSpec `json:"secondary_nvm_subsystem,omitempty"`

	CopyGroupName         string `json:"copy_group_name,omitempty"`
	CopyPairName          string `json:"copy_pair_name,omitempty"`
	LocalDeviceGroupName  string `json:"local_device_group_name,omitempty"`
	RemoteDeviceGroupName string `json:"remote_device_group_name,omitempty"`
	MuNumber              *int   `json:"mu_number,omitempty"`
	QuorumDiskID          *int   `json:"quorum_disk_id,omitempty"`

	CopyPaceLevel            *int   `json:"copy_pace,omitempty"`
	FenceLevel               string `json:"fence_level,omitempty"`
	DoInitialCopy            *bool  `json:"do_initial_copy,omitempty"`
	IsDataReductionForceCopy *bool  `json:"is_data_reduction_force_copy,omitempty"`

	BeginSecondaryVolumeID *int `json:"begin_secondary_volume_id,omitempty"`
	EndSecondaryVolumeID   *int `json:"end_secondary_volume_id,omitempty"`

	SecondaryVolumeName string `json:"secondary_volume_name,omitempty"`
	NewVolumeSize       string `json:"new_volume_size,omitempty"`
	ShouldDeleteSvol    bool   `json:"should_delete_svol,omitempty"`
	SetAluaMode         *bool  `json:"set_alua_mode,omitempty"`
}

// connectivityModes counts how many host presentation families the spec names.
func (s *PairSpec) connectivityModes() int {
	modes := 0
	if len(s.SecondaryHostGroups) > 0 {
		modes++
	}
	if len(s.SecondaryIscsiTargets) > 0 {
		modes++
	}
	if s.SecondaryNvmSubsystem != nil {
		modes++
	}
	return modes
}

// ControllerHandle is everything needed to talk to one storage controller.
type ControllerHandle struct {
	Serial         string
	Volumes        api.VolumeAPI
	Hosts          api.HostConnectivityAPI
	ResourceGroups api.ResourceGroupAPI
	CopyGroups     api.CopyGroupAPI
	System         api.StorageSystemAPI
}

// NewControllerHandle exposes every gateway of one REST client.
func NewControllerHandle(client *api.Client) ControllerHandle {
	return ControllerHandle{
		Serial:         client.Name(),
		Volumes:        client,
		Hosts:          client,
		ResourceGroups: client,
		CopyGroups:     client,
		System:         client,
	}
}

// deviceID returns the storage device id of the controller, or "" when it cannot be read.
func (h ControllerHandle) deviceID(ctx context.Context) string {
	if h.System == nil {
		return ""
	}
	info, err := h.System.StorageInfo(ctx)
	if err != nil {
		Logc(ctx).WithField("controller", h.Serial).WithError(err).Debug("Could not read storage info.")
		return ""
	}
	return info.StorageDeviceID
}

// owns reports whether deviceID names this controller. An empty id matches no controller.
func (h ControllerHandle) owns(ctx context.Context, deviceID string) bool {
	return deviceID != "" && h.deviceID(ctx) == deviceID
}

// ReplicationContext carries both controllers and the spec through one reconciliation. It holds
// a private copy of the spec, isolated from the caller in both directions.
type ReplicationContext struct {
	Local  ControllerHandle
	Remote ControllerHandle
	spec   PairSpec
}

func NewReplicationContext(local, remote ControllerHandle, spec *PairSpec) *ReplicationContext {
	return &ReplicationContext{Local: local, Remote: remote, spec: deep.MustCopy(*spec)}
}

// Spec returns a copy of the pair spec.
func (rc *ReplicationContext) Spec() PairSpec {
	return deep.MustCopy(rc.spec)
}

// Fingerprint identifies the spec in logs so that repeated reconciliations of the same pair
// can be correlated.
func (rc *ReplicationContext) Fingerprint() string {
	hash, err := hashstructure.Hash(rc.spec, hashstructure.FormatV2, nil)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(hash, 16)
}

// ReconcileResult is what one reconciliation reports back to the caller.
type ReconcileResult struct {
	Changed bool      `json:"changed"`
	Comment string    `json:"comment,omitempty"`
	Pair    *PairView `json:"gad_pair,omitempty"`
}
