// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"context"
	"fmt"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

// GADPairProvisioner moves one GAD pair between states. It runs against the local controller and
// leaves remote volume work to a remoteReplicationHelper.
type GADPairProvisioner struct {
	rc     *ReplicationContext
	remote *remoteReplicationHelper
	trace  bool
}

func NewGADPairProvisioner(rc *ReplicationContext, debugTraceFlags map[string]bool) *GADPairProvisioner {
	trace := debugTraceFlags["method"]
	return &GADPairProvisioner{
		rc:     rc,
		remote: newRemoteReplicationHelper(rc.Remote, trace),
		trace:  trace,
	}
}

func (p *GADPairProvisioner) logTransition(ctx context.Context, pair *api.CopyPair, operation, to string) {
	Logc(ctx).WithFields(LogFields{
		"copyGroup": pair.CopyGroupName,
		"copyPair":  pair.CopyPairName,
		"operation": operation,
		"from":      pair.PvolStatus + "/" + pair.SvolStatus,
		"to":        to,
	}).Info("GAD pair transition.")
}

// refresh re-reads a pair after a change.
func (p *GADPairProvisioner) refresh(ctx context.Context, pair *api.CopyPair, copyPairID string) (*api.CopyPair,
	error,
) {
	if copyPairID == "" {
		copyPairID = pair.RemoteMirrorCopyPairID
	}
	if copyPairID != "" {
		return p.rc.Local.CopyGroups.CopyPairGetByID(ctx, copyPairID)
	}
	result, err := p.rc.Local.CopyGroups.GADPairGetByName(ctx, pair.CopyGroupName, pair.CopyPairName)
	if err != nil {
		return nil, err
	}
	if refreshed := api.FirstPair(result); refreshed != nil {
		return refreshed, nil
	}
	return nil, errors.NotFoundError("copy pair %s not found in copy group %s", pair.CopyPairName, pair.CopyGroupName)
}

// Create provisions a secondary volume on the remote controller and pairs it with the primary.
// The secondary is removed again if the pair cannot be created.
func (p *GADPairProvisioner) Create(ctx context.Context) (*api.CopyPair, error) {
	spec := p.rc.Spec()
	fields := LogFields{
		"Method":        "Create",
		"Type":          "GADPairProvisioner",
		"copyGroupName": spec.CopyGroupName,
		"copyPairName":  spec.CopyPairName,
	}
	Logd(ctx, p.trace).WithFields(fields).Debug(">>>> Create")
	defer Logd(ctx, p.trace).WithFields(fields).Debug("<<<< Create")

	if spec.PrimaryVolumeID == nil {
		return nil, errors.InvalidInputError("primary_volume_id is required to create a GAD pair")
	}
	local := p.rc.Local

	isNewGroup := true
	muNumber := spec.MuNumber
	if spec.CopyGroupName != "" {
		result, err := local.CopyGroups.CopyGroupGetByName(ctx, spec.CopyGroupName)
		switch {
		case err == nil:
			isNewGroup = false
			if group, ok := result.(api.GroupWithPairs); ok && group.Group.MuNumber != nil {
				muNumber = group.Group.MuNumber
			}
		case api.IsNotFound(err):
		default:
			return nil, err
		}
	}

	primary, err := local.Volumes.VolumeGet(ctx, *spec.PrimaryVolumeID)
	if err != nil {
		return nil, err
	}
	if spec.SetAluaMode != nil && primary.IsAluaEnabled != *spec.SetAluaMode {
		if err = local.Volumes.VolumeSettingsChange(ctx, primary.LdevID, "", spec.SetAluaMode); err != nil {
			return nil, err
		}
		if primary, err = local.Volumes.VolumeGet(ctx, primary.LdevID); err != nil {
			return nil, err
		}
	}

	svolID, err := p.remote.GetSecondaryVolumeID(ctx, primary, spec)
	if err != nil {
		return nil, err
	}

	request := &api.GADPairCreateRequest{
		CopyGroupName:            spec.CopyGroupName,
		CopyPairName:             spec.CopyPairName,
		ReplicationType:          api.ReplicationTypeGAD,
		PvolLdevID:               primary.LdevID,
		SvolLdevID:               svolID,
		IsNewGroupCreation:       isNewGroup,
		MuNumber:                 muNumber,
		LocalDeviceGroupName:     spec.LocalDeviceGroupName,
		RemoteDeviceGroupName:    spec.RemoteDeviceGroupName,
		ConsistencyGroupID:       spec.ConsistencyGroupID,
		FenceLevel:               spec.FenceLevel,
		CopyPace:                 spec.CopyPaceLevel,
		DoInitialCopy:            spec.DoInitialCopy,
		IsDataReductionForceCopy: spec.IsDataReductionForceCopy,
		QuorumDiskID:             spec.QuorumDiskID,
	}
	if spec.AllocateNewConsistencyGroup {
		request.IsConsistencyGroupIDAutoAssign = utils.Ptr(true)
	}

	copyPairID, err := local.CopyGroups.GADPairCreate(ctx, request)
	if err != nil {
		cause := fmt.Errorf("could not create GAD pair %s/%s; %w", spec.CopyGroupName, spec.CopyPairName, err)
		rollbackErr := p.remote.DeleteVolumeAndAllMappings(ctx, svolID)
		if rollbackErr != nil {
			Logc(ctx).WithField("svol", svolID).WithError(rollbackErr).Error("Could not remove secondary volume.")
		}
		return nil, errors.WrapWithProvisioningError(cause, rollbackErr)
	}

	Logc(ctx).WithFields(LogFields{
		"copyGroup": spec.CopyGroupName,
		"copyPair":  spec.CopyPairName,
		"pvol":      primary.LdevID,
		"svol":      svolID,
		"newGroup":  isNewGroup,
		"from":      PairStatusSMPL,
		"to":        PairStatusPAIR,
	}).Info("GAD pair transition.")

	return p.refresh(ctx, &api.CopyPair{CopyGroupName: spec.CopyGroupName, CopyPairName: spec.CopyPairName},
		copyPairID)
}

// Split suspends mirroring. A pair left in SSWS by an earlier swap split is converged to PSUS.
// It reports whether anything was changed.
func (p *GADPairProvisioner) Split(ctx context.Context, pair *api.CopyPair) (*api.CopyPair, bool, error) {
	copyGroups := p.rc.Local.CopyGroups

	var copyPairID string
	var err error
	switch {
	case pair.SvolStatus == PairStatusSSWS:
		p.logTransition(ctx, pair, "swap split to PSUS", PairStatusPSUS)
		copyPairID, err = copyGroups.GADPairSwapSplitToPSUS(ctx, pair.RemoteMirrorCopyPairID)
	case pair.PvolStatus == PairStatusPSUS:
		return pair, false, nil
	default:
		p.logTransition(ctx, pair, "split", PairStatusPSUS)
		copyPairID, err = copyGroups.GADPairSplit(ctx, pair.RemoteMirrorCopyPairID)
	}
	if err != nil {
		return nil, false, err
	}

	refreshed, err := p.refresh(ctx, pair, copyPairID)
	return refreshed, true, err
}

// Resync restarts mirroring of a split pair.
func (p *GADPairProvisioner) Resync(ctx context.Context, pair *api.CopyPair) (*api.CopyPair, bool, error) {
	if pair.PvolStatus == PairStatusPAIR {
		return pair, false, nil
	}

	p.logTransition(ctx, pair, "resync", PairStatusPAIR)
	copyPairID, err := p.rc.Local.CopyGroups.GADPairResync(ctx, pair.RemoteMirrorCopyPairID)
	if err != nil {
		return nil, false, err
	}
	refreshed, err := p.refresh(ctx, pair, copyPairID)
	return refreshed, true, err
}

func (p *GADPairProvisioner) checkSwapAllowed(pair *api.CopyPair) error {
	spec := p.rc.Spec()
	if (pair.ConsistencyGroupID != nil && *pair.ConsistencyGroupID >= 0) || spec.ConsistencyGroupID != nil {
		return errors.UnsupportedError("no swap split with consistency group; GAD pair %s/%s is in a consistency group",
			pair.CopyGroupName, pair.CopyPairName)
	}
	return nil
}

// SwapSplit suspends mirroring leaving the secondary writable.
func (p *GADPairProvisioner) SwapSplit(ctx context.Context, pair *api.CopyPair) (*api.CopyPair, bool, error) {
	if err := p.checkSwapAllowed(pair); err != nil {
		return nil, false, err
	}
	if pair.SvolStatus == PairStatusSSWS {
		return pair, false, nil
	}

	p.logTransition(ctx, pair, "swap split", PairStatusSSWS)
	copyPairID, err := p.rc.Local.CopyGroups.GADPairSwapSplit(ctx, pair.RemoteMirrorCopyPairID)
	if err != nil {
		return nil, false, err
	}
	refreshed, err := p.refresh(ctx, pair, copyPairID)
	return refreshed, true, err
}

// SwapResync restarts mirroring with the roles of the two volumes reversed.
func (p *GADPairProvisioner) SwapResync(ctx context.Context, pair *api.CopyPair) (*api.CopyPair, bool, error) {
	if err := p.checkSwapAllowed(pair); err != nil {
		return nil, false, err
	}
	if pair.PvolStatus == PairStatusPAIR && pair.SvolStatus == PairStatusPAIR {
		return pair, false, nil
	}

	p.logTransition(ctx, pair, "swap resync", PairStatusPAIR)
	copyPairID, err := p.rc.Local.CopyGroups.GADPairSwapResync(ctx, pair.RemoteMirrorCopyPairID)
	if err != nil {
		return nil, false, err
	}
	refreshed, err := p.refresh(ctx, pair, copyPairID)
	return refreshed, true, err
}

// IsResizeNeeded reports whether the requested size is larger than the volume.
func IsResizeNeeded(volume *api.Volume, spec PairSpec) (bool, error) {
	requested, err := utils.ConvertSizeToBytes(spec.NewVolumeSize)
	if err != nil {
		return false, errors.InvalidInputError("invalid new_volume_size %q; %v", spec.NewVolumeSize, err)
	}
	blocks, err := volumeBlocks(volume)
	if err != nil {
		return false, err
	}
	return requested > utils.BlocksToBytes(blocks), nil
}

// Resize grows both volumes of the pair through the pair itself. Shrinking is refused.
func (p *GADPairProvisioner) Resize(ctx context.Context) (*api.CopyPair, error) {
	spec := p.rc.Spec()
	fields := LogFields{
		"Method":        "Resize",
		"Type":          "GADPairProvisioner",
		"copyGroupName": spec.CopyGroupName,
		"copyPairName":  spec.CopyPairName,
		"size":          spec.NewVolumeSize,
	}
	Logd(ctx, p.trace).WithFields(fields).Debug(">>>> Resize")
	defer Logd(ctx, p.trace).WithFields(fields).Debug("<<<< Resize")

	result, err := p.rc.Local.CopyGroups.GADPairGetByName(ctx, spec.CopyGroupName, spec.CopyPairName)
	if err != nil {
		return nil, err
	}
	pair := api.FirstPair(result)
	if pair == nil {
		return nil, errors.NotFoundError("copy pair %s not found in copy group %s", spec.CopyPairName, spec.CopyGroupName)
	}

	primary, secondary := p.rc.Local, p.rc.Remote
	if p.rc.Remote.owns(ctx, pair.PvolStorageDeviceID) {
		primary, secondary = secondary, primary
	}

	pvol, err := primary.Volumes.VolumeGet(ctx, pair.PvolLdevID)
	if err != nil {
		return nil, err
	}
	if _, err = secondary.Volumes.VolumeGet(ctx, pair.SvolLdevID); err != nil {
		return nil, err
	}

	needed, err := IsResizeNeeded(pvol, spec)
	if err != nil {
		return nil, err
	}
	if !needed {
		return nil, errors.UnsupportedError("reduce size not supported; GAD pair %s/%s is already %s",
			pair.CopyGroupName, pair.CopyPairName, pvol.ByteFormatCapacity)
	}

	requested, _ := utils.ConvertSizeToBytes(spec.NewVolumeSize)
	current, err := volumeBlocks(pvol)
	if err != nil {
		return nil, err
	}
	additional := utils.BytesToBlocks(requested) - current

	p.logTransition(ctx, pair, "resize", pair.PvolStatus)
	if err = p.rc.Local.CopyGroups.GADPairResize(ctx, pair, additional); err != nil {
		return nil, err
	}
	return p.refresh(ctx, pair, "")
}

// Delete dissolves the pair, splitting it first if needed, and removes the secondary volume
// when the spec asks for it.
func (p *GADPairProvisioner) Delete(ctx context.Context, pair *api.CopyPair) error {
	spec := p.rc.Spec()
	fields := LogFields{
		"Method":        "Delete",
		"Type":          "GADPairProvisioner",
		"copyGroupName": pair.CopyGroupName,
		"copyPairName":  pair.CopyPairName,
	}
	Logd(ctx, p.trace).WithFields(fields).Debug(">>>> Delete")
	defer Logd(ctx, p.trace).WithFields(fields).Debug("<<<< Delete")

	copyGroups := p.rc.Local.CopyGroups

	p.logTransition(ctx, pair, "delete", PairStatusSMPL)
	err := copyGroups.GADPairDelete(ctx, pair.RemoteMirrorCopyPairID)
	if err != nil {
		if pair.PvolStatus == PairStatusPSUS && pair.SvolStatus != PairStatusSSWS {
			return err
		}
		Logc(ctx).WithError(err).Debug("Could not delete GAD pair, splitting it first.")
		if _, _, err = p.Split(ctx, pair); err != nil {
			return err
		}
		if err = copyGroups.GADPairDelete(ctx, pair.RemoteMirrorCopyPairID); err != nil {
			return err
		}
	}

	if !spec.ShouldDeleteSvol {
		return nil
	}

	// The secondary lives on whichever controller does not own the primary.
	owner := p.remote
	if p.rc.Local.owns(ctx, pair.SvolStorageDeviceID) {
		owner = newRemoteReplicationHelper(p.rc.Local, p.trace)
	}
	return owner.DeleteVolumeAndAllMappings(ctx, pair.SvolLdevID)
}
