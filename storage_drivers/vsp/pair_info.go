// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
)

const (
	unsetID          = -1
	defaultMuNumber  = 0
	unknownAttribute = ""
)

// PairView is the caller-facing record of one GAD pair. Every field is always present so the
// output shape does not depend on what the controller chose to report.
type PairView struct {
	CopyGroupName          string `json:"copy_group_name"`
	CopyPairName           string `json:"copy_pair_name"`
	RemoteMirrorCopyPairID string `json:"remote_mirror_copy_pair_id"`
	ReplicationType        string `json:"replication_type"`
	LocalDeviceGroupName   string `json:"local_device_group_name"`
	RemoteDeviceGroupName  string `json:"remote_device_group_name"`
	MuNumber               int    `json:"mu_number"`
	ConsistencyGroupID     int    `json:"consistency_group_id"`
	FenceLevel             string `json:"fence_level"`
	CopyPaceLevel          int    `json:"copy_pace_level"`
	CopyProgressRate       int    `json:"copy_progress_rate"`
	QuorumDiskID           int    `json:"quorum_disk_id"`

	PrimaryVolumeID          int    `json:"primary_volume_id"`
	PrimaryHexVolumeID       string `json:"primary_hex_volume_id"`
	PrimaryVolumeStatus      string `json:"primary_volume_status"`
	PrimaryVolumeIOMode      string `json:"primary_volume_io_mode"`
	PrimaryVolumeStorageID   string `json:"primary_volume_storage_id"`
	SecondaryVolumeID        int    `json:"secondary_volume_id"`
	SecondaryHexVolumeID     string `json:"secondary_hex_volume_id"`
	SecondaryVolumeStatus    string `json:"secondary_volume_status"`
	SecondaryVolumeIOMode    string `json:"secondary_volume_io_mode"`
	SecondaryVolumeStorageID string `json:"secondary_volume_storage_id"`

	PrimaryVirtualVolumeID        int    `json:"primary_virtual_volume_id"`
	PrimaryVirtualHexVolumeID     string `json:"primary_virtual_hex_volume_id"`
	PrimaryVolumeAluaEnabled      bool   `json:"primary_volume_alua_enabled"`
	PrimaryResourceGroupName      string `json:"primary_resource_group_name"`
	PrimaryVirtualStorageSerial   string `json:"primary_virtual_storage_serial"`
	PrimaryVirtualStorageModel    string `json:"primary_virtual_storage_model"`
	SecondaryVirtualVolumeID      int    `json:"secondary_virtual_volume_id"`
	SecondaryVirtualHexVolumeID   string `json:"secondary_virtual_hex_volume_id"`
	SecondaryVolumeAluaEnabled    bool   `json:"secondary_volume_alua_enabled"`
	SecondaryResourceGroupName    string `json:"secondary_resource_group_name"`
	SecondaryVirtualStorageSerial string `json:"secondary_virtual_storage_serial"`
	SecondaryVirtualStorageModel  string `json:"secondary_virtual_storage_model"`
	PrimaryVolumeCapacityBytes    uint64 `json:"primary_volume_capacity_bytes,omitempty"`
	SecondaryVolumeCapacityBytes  uint64 `json:"secondary_volume_capacity_bytes,omitempty"`
}

// volumeAttributes are the facts about one side of a pair that only the owning controller knows.
type volumeAttributes struct {
	VirtualLdevID        *int
	IsAluaEnabled        bool
	ResourceGroupName    string
	VirtualStorageSerial string
	VirtualStorageModel  string
	CapacityBytes        uint64
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// NewPairView normalizes a copy pair as reported by the controller.
func NewPairView(pair *api.CopyPair) *PairView {
	replicationType := pair.ReplicationType
	if replicationType == "" {
		replicationType = api.ReplicationTypeGAD
	}

	return &PairView{
		CopyGroupName:          pair.CopyGroupName,
		CopyPairName:           pair.CopyPairName,
		RemoteMirrorCopyPairID: pair.RemoteMirrorCopyPairID,
		ReplicationType:        replicationType,
		LocalDeviceGroupName:   pair.LocalDeviceGroupName,
		RemoteDeviceGroupName:  pair.RemoteDeviceGroupName,
		MuNumber:               intOrDefault(pair.MuNumber, defaultMuNumber),
		ConsistencyGroupID:     intOrDefault(pair.ConsistencyGroupID, unsetID),
		FenceLevel:             pair.FenceLevel,
		CopyPaceLevel:          intOrDefault(pair.CopyPace, unsetID),
		CopyProgressRate:       intOrDefault(pair.CopyProgressRate, unsetID),
		QuorumDiskID:           intOrDefault(pair.QuorumDiskID, unsetID),

		PrimaryVolumeID:          pair.PvolLdevID,
		PrimaryHexVolumeID:       utils.FormatLdevHex(pair.PvolLdevID),
		PrimaryVolumeStatus:      pair.PvolStatus,
		PrimaryVolumeIOMode:      pair.PvolIOMode,
		PrimaryVolumeStorageID:   pair.PvolStorageDeviceID,
		SecondaryVolumeID:        pair.SvolLdevID,
		SecondaryHexVolumeID:     utils.FormatLdevHex(pair.SvolLdevID),
		SecondaryVolumeStatus:    pair.SvolStatus,
		SecondaryVolumeIOMode:    pair.SvolIOMode,
		SecondaryVolumeStorageID: pair.SvolStorageDeviceID,

		PrimaryVirtualVolumeID:      unsetID,
		PrimaryVirtualHexVolumeID:   unknownAttribute,
		SecondaryVirtualVolumeID:    unsetID,
		SecondaryVirtualHexVolumeID: unknownAttribute,
	}
}

// PairViews normalizes every pair of a lookup result. Pairs read through their copy group take
// the group's mirror unit when they do not carry one.
func PairViews(result api.CopyGroupResult) []PairView {
	var groupMuNumber *int
	switch r := result.(type) {
	case nil:
		return []PairView{}
	case api.GroupWithPairs:
		groupMuNumber = r.Group.MuNumber
	}

	pairs := result.CopyPairs()
	views := make([]PairView, 0, len(pairs))
	for i := range pairs {
		pair := pairs[i]
		if pair.MuNumber == nil {
			pair.MuNumber = groupMuNumber
		}
		views = append(views, *NewPairView(&pair))
	}
	return views
}

func (v *PairView) applyPrimaryAttributes(attrs *volumeAttributes) {
	if attrs == nil {
		return
	}
	v.PrimaryVirtualVolumeID = intOrDefault(attrs.VirtualLdevID, unsetID)
	if attrs.VirtualLdevID != nil {
		v.PrimaryVirtualHexVolumeID = utils.FormatLdevHex(*attrs.VirtualLdevID)
	}
	v.PrimaryVolumeAluaEnabled = attrs.IsAluaEnabled
	v.PrimaryResourceGroupName = attrs.ResourceGroupName
	v.PrimaryVirtualStorageSerial = attrs.VirtualStorageSerial
	v.PrimaryVirtualStorageModel = attrs.VirtualStorageModel
	v.PrimaryVolumeCapacityBytes = attrs.CapacityBytes
}

func (v *PairView) applySecondaryAttributes(attrs *volumeAttributes) {
	if attrs == nil {
		return
	}
	v.SecondaryVirtualVolumeID = intOrDefault(attrs.VirtualLdevID, unsetID)
	if attrs.VirtualLdevID != nil {
		v.SecondaryVirtualHexVolumeID = utils.FormatLdevHex(*attrs.VirtualLdevID)
	}
	v.SecondaryVolumeAluaEnabled = attrs.IsAluaEnabled
	v.SecondaryResourceGroupName = attrs.ResourceGroupName
	v.SecondaryVirtualStorageSerial = attrs.VirtualStorageSerial
	v.SecondaryVirtualStorageModel = attrs.VirtualStorageModel
	v.SecondaryVolumeCapacityBytes = attrs.CapacityBytes
}
