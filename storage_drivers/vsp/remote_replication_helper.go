// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/multierr"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

const (
	// maxSecondaryAllocationAttempts bounds how many free ldev ids are tried when the controller
	// reports that the one just picked was taken in the meantime.
	maxSecondaryAllocationAttempts = 3

	defaultSecondaryVolumePrefix = "smrha"
)

type hostGroupTarget struct {
	hostGroup *api.HostGroup
	lunID     *int
}

type iscsiTarget struct {
	target *api.IscsiTarget
	lunID  *int
}

// connectivityTargets are the resolved host presentation objects a new secondary is attached to.
type connectivityTargets struct {
	hostGroups      []hostGroupTarget
	iscsiTargets    []iscsiTarget
	nvmSubsystem    *api.NVMeSubsystem
	nvmHostNQNs     []string
	resourceGroupID int
}

// remoteReplicationHelper provisions and tears down secondary volumes on one controller.
type remoteReplicationHelper struct {
	controller ControllerHandle
	trace      bool
}

func newRemoteReplicationHelper(controller ControllerHandle, trace bool) *remoteReplicationHelper {
	return &remoteReplicationHelper{controller: controller, trace: trace}
}

// GetSecondaryVolumeID creates a secondary volume for primary that is ready to be paired, and
// returns its ldev id. Nothing is left behind on the controller if it fails.
func (h *remoteReplicationHelper) GetSecondaryVolumeID(
	ctx context.Context, primary *api.Volume, spec PairSpec,
) (int, error) {
	ctx = WithController(ctx, h.controller.Serial)

	fields := LogFields{
		"Method": "GetSecondaryVolumeID",
		"Type":   "remoteReplicationHelper",
		"pvol":   primary.LdevID,
	}
	Logd(ctx, h.trace).WithFields(fields).Debug(">>>> GetSecondaryVolumeID")
	defer Logd(ctx, h.trace).WithFields(fields).Debug("<<<< GetSecondaryVolumeID")

	// Connectivity is resolved before anything is created.
	targets, err := h.resolveConnectivity(ctx, spec)
	if err != nil {
		return 0, err
	}

	request, err := secondaryVolumeRequest(primary, spec)
	if err != nil {
		return 0, err
	}

	excluded := roaring.New()
	var ldevID int
	for attempt := 1; ; attempt++ {
		if ldevID, err = h.selectFreeLdev(ctx, primary, spec, excluded); err != nil {
			return 0, err
		}

		request.LdevID = utils.Ptr(ldevID)
		if _, err = h.controller.Volumes.VolumeCreate(ctx, request); err == nil {
			break
		}
		if !api.IsAlreadyExists(err) || attempt >= maxSecondaryAllocationAttempts {
			return 0, fmt.Errorf("could not create secondary volume %d on storage %s; %w",
				ldevID, h.controller.Serial, err)
		}

		Logc(ctx).WithFields(LogFields{
			"ldevId":  ldevID,
			"attempt": attempt,
		}).Warning("Selected ldev id was taken, selecting another.")
		excluded.Add(uint32(ldevID))
	}

	Logc(ctx).WithFields(LogFields{
		"pvol": primary.LdevID,
		"svol": ldevID,
	}).Info("Created secondary volume.")

	if err = h.prepareSecondaryVolume(ctx, primary, spec, targets, ldevID); err != nil {
		cause := fmt.Errorf("could not prepare secondary volume %d on storage %s; %w",
			ldevID, h.controller.Serial, err)
		rollbackErr := h.DeleteVolumeAndAllMappings(ctx, ldevID)
		if rollbackErr != nil {
			Logc(ctx).WithField("svol", ldevID).WithError(rollbackErr).Error("Could not remove secondary volume.")
		}
		return 0, errors.WrapWithProvisioningError(cause, rollbackErr)
	}

	return ldevID, nil
}

// secondaryVolumeRequest sizes the secondary like the primary. Controllers that only report a
// formatted capacity are sized from that.
func secondaryVolumeRequest(primary *api.Volume, spec PairSpec) (*api.VolumeCreateRequest, error) {
	blocks, err := volumeBlocks(primary)
	if err != nil {
		return nil, err
	}

	request := &api.VolumeCreateRequest{
		BlockCapacity:     blocks,
		DataReductionMode: primary.DataReductionMode,
	}
	if spec.SecondaryPoolID != nil {
		request.PoolID = *spec.SecondaryPoolID
	}
	return request, nil
}

// volumeBlocks returns the capacity of a volume in blocks.
func volumeBlocks(volume *api.Volume) (uint64, error) {
	if volume.BlockCapacity > 0 {
		return volume.BlockCapacity, nil
	}
	bytes, err := utils.ConvertSizeToBytes(volume.ByteFormatCapacity)
	if err != nil {
		return 0, fmt.Errorf("could not determine the size of ldev %d; %v", volume.LdevID, err)
	}
	return utils.BytesToBlocks(bytes), nil
}

func (h *remoteReplicationHelper) resolveConnectivity(ctx context.Context, spec PairSpec) (*connectivityTargets,
	error,
) {
	targets := &connectivityTargets{}
	resourceGroups := map[int]struct{}{}

	for _, hg := range spec.SecondaryHostGroups {
		hostGroup, err := h.controller.Hosts.HostGroupGetByName(ctx, hg.Port, hg.Name)
		if err != nil {
			if api.IsNotFound(err) {
				return nil, errors.NotFoundError("host group %s not found on port %s of storage %s",
					hg.Name, hg.Port, h.controller.Serial)
			}
			return nil, err
		}
		targets.hostGroups = append(targets.hostGroups, hostGroupTarget{hostGroup: hostGroup, lunID: hg.LunID})
		resourceGroups[hostGroup.ResourceGroupID] = struct{}{}
	}

	for _, it := range spec.SecondaryIscsiTargets {
		target, err := h.controller.Hosts.IscsiTargetGetByName(ctx, it.Port, it.Name)
		if err != nil {
			if api.IsNotFound(err) {
				return nil, errors.NotFoundError("iSCSI target %s not found on port %s of storage %s",
					it.Name, it.Port, h.controller.Serial)
			}
			return nil, err
		}
		targets.iscsiTargets = append(targets.iscsiTargets, iscsiTarget{target: target, lunID: it.LunID})
		resourceGroups[target.ResourceGroupID] = struct{}{}
	}

	if spec.SecondaryNvmSubsystem != nil {
		subsystem, err := h.nvmSubsystemByName(ctx, spec.SecondaryNvmSubsystem.Name)
		if err != nil {
			return nil, err
		}
		hostNQNs, err := h.nvmHostNQNs(ctx, subsystem.NvmSubsystemID, spec.SecondaryNvmSubsystem.Paths)
		if err != nil {
			return nil, err
		}
		targets.nvmSubsystem = subsystem
		targets.nvmHostNQNs = hostNQNs
		resourceGroups[subsystem.ResourceGroupID] = struct{}{}
	}

	if len(resourceGroups) > 1 {
		return nil, errors.InvalidInputError(
			"secondary connectivity spans %d resource groups on storage %s; a volume can only be in one",
			len(resourceGroups), h.controller.Serial)
	}
	for id := range resourceGroups {
		targets.resourceGroupID = id
	}
	return targets, nil
}

func (h *remoteReplicationHelper) nvmSubsystemByName(ctx context.Context, name string) (*api.NVMeSubsystem,
	error,
) {
	subsystems, err := h.controller.Hosts.NVMeSubsystemList(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subsystems {
		if subsystems[i].NvmSubsystemName == name {
			return &subsystems[i], nil
		}
	}
	return nil, errors.NotFoundError("NVMe subsystem %s not found on storage %s", name, h.controller.Serial)
}

// nvmHostNQNs returns the registered host NQNs of a subsystem, restricted to wanted if given.
func (h *remoteReplicationHelper) nvmHostNQNs(ctx context.Context, nvmSubsystemID int, wanted []string) ([]string,
	error,
) {
	registered, err := h.controller.Hosts.NVMeHostNQNList(ctx, nvmSubsystemID)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(registered))
	for _, nqn := range registered {
		known[nqn.HostNqn] = struct{}{}
	}

	if len(wanted) == 0 {
		hostNQNs := make([]string, 0, len(registered))
		for _, nqn := range registered {
			hostNQNs = append(hostNQNs, nqn.HostNqn)
		}
		return hostNQNs, nil
	}

	for _, nqn := range wanted {
		if _, ok := known[nqn]; !ok {
			return nil, errors.NotFoundError("host NQN %s is not registered on NVMe subsystem %d of storage %s",
				nqn, nvmSubsystemID, h.controller.Serial)
		}
	}
	return wanted, nil
}

// selectFreeLdev picks the ldev id for a new secondary, skipping ids in excluded.
func (h *remoteReplicationHelper) selectFreeLdev(
	ctx context.Context, primary *api.Volume, spec PairSpec, excluded *roaring.Bitmap,
) (int, error) {
	if spec.BeginSecondaryVolumeID != nil && spec.EndSecondaryVolumeID != nil {
		begin, end := *spec.BeginSecondaryVolumeID, *spec.EndSecondaryVolumeID
		free, err := h.controller.Volumes.FreeLdevsInRange(ctx, begin, end)
		if err != nil {
			return 0, err
		}
		for _, volume := range free {
			if volume.LdevID <= begin || volume.LdevID >= end {
				continue
			}
			if volume.ResourceGroupID != api.DefaultResourceGroupID || excluded.Contains(uint32(volume.LdevID)) {
				continue
			}
			return volume.LdevID, nil
		}
		return 0, errors.CapacityExhaustedError("no free secondary volume id between %d and %d on storage %s",
			begin, end, h.controller.Serial)
	}

	free, err := h.controller.Volumes.FreeLdevsMatchingPvol(ctx, primary.LdevID)
	if err != nil {
		return 0, err
	}
	candidate := -1
	for _, volume := range free {
		if volume.ResourceGroupID != api.DefaultResourceGroupID || excluded.Contains(uint32(volume.LdevID)) {
			continue
		}
		if volume.LdevID == primary.LdevID {
			return volume.LdevID, nil
		}
		if candidate < 0 {
			candidate = volume.LdevID
		}
	}
	if candidate < 0 {
		return 0, errors.CapacityExhaustedError("no free secondary volume id matching primary volume %d on storage %s",
			primary.LdevID, h.controller.Serial)
	}
	return candidate, nil
}

// prepareSecondaryVolume labels the new volume, moves it next to its host presentation, marks it
// GAD reserved and maps it.
func (h *remoteReplicationHelper) prepareSecondaryVolume(
	ctx context.Context, primary *api.Volume, spec PairSpec, targets *connectivityTargets, ldevID int,
) error {
	volumes := h.controller.Volumes

	label := spec.SecondaryVolumeName
	if label == "" {
		label = primary.Label
	}
	if label == "" {
		label = fmt.Sprintf("%s-%d", defaultSecondaryVolumePrefix, primary.LdevID)
	}
	if err := volumes.VolumeSettingsChange(ctx, ldevID, label, spec.SetAluaMode); err != nil {
		return err
	}

	volume, err := volumes.VolumeGet(ctx, ldevID)
	if err != nil {
		return err
	}

	if volume.VirtualLdevID != nil && *volume.VirtualLdevID != api.VirtualLdevUnassigned {
		if err = volumes.VirtualLdevUnassign(ctx, ldevID, *volume.VirtualLdevID); err != nil {
			return err
		}
	}

	if volume.ResourceGroupID != targets.resourceGroupID {
		if volume.ResourceGroupID != api.DefaultResourceGroupID {
			if err = h.controller.ResourceGroups.ResourceGroupRemoveLdevs(ctx, volume.ResourceGroupID,
				[]int{ldevID}); err != nil {
				return err
			}
		}
		if targets.resourceGroupID != api.DefaultResourceGroupID {
			if err = h.controller.ResourceGroups.ResourceGroupAddLdevs(ctx, targets.resourceGroupID,
				[]int{ldevID}); err != nil {
				return err
			}
		}
	}

	if err = volumes.VirtualLdevAssign(ctx, ldevID, api.VirtualLdevUnassigned); err != nil {
		return err
	}

	return h.attach(ctx, targets, ldevID)
}

func (h *remoteReplicationHelper) attach(ctx context.Context, targets *connectivityTargets, ldevID int) error {
	hosts := h.controller.Hosts

	for _, hg := range targets.hostGroups {
		if err := hosts.HostGroupAddLuns(ctx, hg.hostGroup, []int{ldevID}, hg.lunID); err != nil {
			return err
		}
	}
	for _, it := range targets.iscsiTargets {
		if err := hosts.IscsiTargetAddLuns(ctx, it.target, []int{ldevID}, it.lunID); err != nil {
			return err
		}
	}

	if targets.nvmSubsystem != nil {
		subsystemID := targets.nvmSubsystem.NvmSubsystemID
		namespaceID, err := hosts.NVMeNamespaceCreate(ctx, subsystemID, ldevID)
		if err != nil {
			return err
		}
		for _, hostNQN := range targets.nvmHostNQNs {
			if err = hosts.NVMeHostNamespacePathSet(ctx, subsystemID, hostNQN, namespaceID); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteVolumeAndAllMappings unmaps a volume from every host, releases its virtual ldev id, returns
// it to the default resource group and deletes it. A volume that does not exist is not an error.
func (h *remoteReplicationHelper) DeleteVolumeAndAllMappings(ctx context.Context, ldevID int) error {
	ctx = WithController(ctx, h.controller.Serial)

	fields := LogFields{
		"Method": "DeleteVolumeAndAllMappings",
		"Type":   "remoteReplicationHelper",
		"ldevId": ldevID,
	}
	Logd(ctx, h.trace).WithFields(fields).Debug(">>>> DeleteVolumeAndAllMappings")
	defer Logd(ctx, h.trace).WithFields(fields).Debug("<<<< DeleteVolumeAndAllMappings")

	volumes := h.controller.Volumes
	volume, err := volumes.VolumeGet(ctx, ldevID)
	if err != nil {
		if api.IsNotFound(err) {
			return nil
		}
		return err
	}

	if volume.IsNVMe() {
		err = h.deleteNamespace(ctx, *volume.NvmSubsystemID, *volume.NamespaceID)
	} else {
		err = h.deleteLunPaths(ctx, volume.Ports)
	}
	if err != nil {
		return fmt.Errorf("could not unmap ldev %d on storage %s; %w", ldevID, h.controller.Serial, err)
	}

	// The GAD reserve is released in every resource group, the default one included.
	if volume.VirtualLdevID != nil && *volume.VirtualLdevID != api.VirtualLdevUnassigned {
		if err = volumes.VirtualLdevUnassign(ctx, ldevID, *volume.VirtualLdevID); err != nil {
			return err
		}
	}
	if volume.ResourceGroupID != api.DefaultResourceGroupID {
		if err = h.controller.ResourceGroups.ResourceGroupRemoveLdevs(ctx, volume.ResourceGroupID,
			[]int{ldevID}); err != nil {
			return err
		}
	}

	force := volume.DataReductionMode != "" && volume.DataReductionMode != "disabled"
	if err = volumes.VolumeDelete(ctx, ldevID, force); err != nil {
		return err
	}

	Logc(ctx).WithField("ldevId", ldevID).Info("Deleted volume.")
	return nil
}

func (h *remoteReplicationHelper) deleteLunPaths(ctx context.Context, ports []api.LunPort) error {
	var errs error
	for _, port := range ports {
		if err := h.controller.Volumes.LunPathDelete(ctx, port); err != nil && !api.IsNotFound(err) {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (h *remoteReplicationHelper) deleteNamespace(ctx context.Context, nvmSubsystemID, namespaceID int) error {
	hosts := h.controller.Hosts

	hostNQNs, err := hosts.NVMeHostNQNList(ctx, nvmSubsystemID)
	if err != nil {
		return err
	}

	var errs error
	for _, nqn := range hostNQNs {
		err = hosts.NVMeHostNamespacePathDelete(ctx, nvmSubsystemID, nqn.HostNqn, namespaceID)
		if err != nil && !api.IsNotFound(err) {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return errs
	}

	if err = hosts.NVMeNamespaceDelete(ctx, nvmSubsystemID, namespaceID); err != nil && !api.IsNotFound(err) {
		return err
	}
	return nil
}
