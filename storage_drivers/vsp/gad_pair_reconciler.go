// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

const (
	commentPairNotPresent = "GAD pair not present"
	commentPairExists     = "GAD pair already exists"
	commentPairCreated    = "GAD pair created"
	commentPairDeleted    = "GAD pair deleted"
	commentNoChange       = "GAD pair already in the desired state"
	commentPairChanged    = "GAD pair updated"
)

// GADPairReconciler drives one GAD pair towards a desired state.
type GADPairReconciler struct {
	local           ControllerHandle
	remote          ControllerHandle
	debugTraceFlags map[string]bool
}

func NewGADPairReconciler(local, remote ControllerHandle, debugTraceFlags map[string]bool) *GADPairReconciler {
	return &GADPairReconciler{local: local, remote: remote, debugTraceFlags: debugTraceFlags}
}

func isTransition(state string) bool {
	switch state {
	case StateSplit, StateResync, StateSwapSplit, StateSwapResync, StateResize, StateExpand:
		return true
	}
	return false
}

func isSwap(state string) bool {
	return state == StateSwapSplit || state == StateSwapResync
}

// ValidatePairSpec checks that spec carries what desiredState needs.
func ValidatePairSpec(desiredState string, spec *PairSpec) error {
	if !slices.Contains(States, desiredState) {
		return errors.InvalidInputError("invalid state %q; must be one of %v", desiredState, States)
	}
	if spec == nil {
		return errors.InvalidInputError("spec is required")
	}

	if spec.ConsistencyGroupID != nil && spec.AllocateNewConsistencyGroup {
		return errors.InvalidInputError(
			"consistency_group_id and allocate_new_consistency_group are mutually exclusive")
	}
	if (spec.BeginSecondaryVolumeID == nil) != (spec.EndSecondaryVolumeID == nil) {
		return errors.InvalidInputError(
			"begin_secondary_volume_id and end_secondary_volume_id must be given together")
	}
	if spec.BeginSecondaryVolumeID != nil && *spec.BeginSecondaryVolumeID >= *spec.EndSecondaryVolumeID {
		return errors.InvalidInputError("begin_secondary_volume_id %d must be less than end_secondary_volume_id %d",
			*spec.BeginSecondaryVolumeID, *spec.EndSecondaryVolumeID)
	}

	switch {
	case desiredState == StatePresent:
		if spec.PrimaryVolumeID == nil {
			return errors.InvalidInputError("primary_volume_id is required to create a GAD pair")
		}
		if spec.SecondaryPoolID == nil {
			return errors.InvalidInputError("secondary_pool_id is required to create a GAD pair")
		}
		if spec.CopyGroupName == "" || spec.CopyPairName == "" {
			return errors.InvalidInputError("copy_group_name and copy_pair_name are required to create a GAD pair")
		}
		if modes := spec.connectivityModes(); modes != 1 {
			return errors.InvalidInputError("exactly one of secondary_hostgroups, secondary_iscsi_targets or "+
				"secondary_nvm_subsystem is required to create a GAD pair; %d given", modes)
		}
		for _, hg := range spec.SecondaryHostGroups {
			if hg.Name == "" || hg.Port == "" {
				return errors.InvalidInputError("secondary host groups need a name and a port")
			}
		}
		for _, it := range spec.SecondaryIscsiTargets {
			if it.Name == "" || it.Port == "" {
				return errors.InvalidInputError("secondary iSCSI targets need a name and a port")
			}
		}
		if spec.SecondaryNvmSubsystem != nil && spec.SecondaryNvmSubsystem.Name == "" {
			return errors.InvalidInputError("secondary NVMe subsystem needs a name")
		}

	case desiredState == StateAbsent:
		if spec.PrimaryVolumeID == nil && (spec.CopyGroupName == "" || spec.CopyPairName == "") {
			return errors.InvalidInputError(
				"primary_volume_id or copy_group_name and copy_pair_name are required to delete a GAD pair")
		}

	case isTransition(desiredState):
		if spec.CopyPairName == "" {
			if spec.PrimaryVolumeID != nil {
				return errors.InvalidInputError("copy_pair_name is required for %s; primary_volume_id cannot "+
					"identify a pair whose roles may have been swapped", desiredState)
			}
			return errors.InvalidInputError("copy_pair_name is required for %s", desiredState)
		}
		if spec.CopyGroupName == "" {
			return errors.InvalidInputError("copy_group_name is required for %s", desiredState)
		}
		if desiredState == StateResize || desiredState == StateExpand {
			if spec.NewVolumeSize == "" {
				return errors.InvalidInputError("new_volume_size is required for %s", desiredState)
			}
			if _, err := utils.ConvertSizeToBytes(spec.NewVolumeSize); err != nil {
				return errors.InvalidInputError("invalid new_volume_size %q; %v", spec.NewVolumeSize, err)
			}
		}
	}
	return nil
}

// Reconcile brings the pair described by spec to desiredState and reports what it did.
func (r *GADPairReconciler) Reconcile(ctx context.Context, desiredState string, spec *PairSpec) (
	*ReconcileResult, error,
) {
	if err := ValidatePairSpec(desiredState, spec); err != nil {
		return nil, err
	}

	rc := NewReplicationContext(r.local, r.remote, spec)
	fields := LogFields{
		"Method":      "Reconcile",
		"Type":        "GADPairReconciler",
		"state":       desiredState,
		"fingerprint": rc.Fingerprint(),
	}
	Logd(ctx, r.debugTraceFlags["method"]).WithFields(fields).Debug(">>>> Reconcile")
	defer Logd(ctx, r.debugTraceFlags["method"]).WithFields(fields).Debug("<<<< Reconcile")

	existing, err := r.resolvePair(ctx, rc, desiredState)
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"state":       desiredState,
		"copyGroup":   spec.CopyGroupName,
		"copyPair":    spec.CopyPairName,
		"pairPresent": existing != nil,
		"fingerprint": rc.Fingerprint(),
	}).Debug("Reconciling GAD pair.")

	result, err := r.dispatch(ctx, rc, desiredState, existing)
	if err != nil {
		return nil, err
	}
	if result.Pair == nil {
		return result, nil
	}
	return r.enrich(ctx, rc, desiredState, result)
}

// resolvePair finds the pair the spec refers to. A missing pair is reported as nil.
func (r *GADPairReconciler) resolvePair(ctx context.Context, rc *ReplicationContext, desiredState string) (
	*api.CopyPair, error,
) {
	spec := rc.Spec()
	copyGroups := rc.Local.CopyGroups

	var pair *api.CopyPair
	var err error
	switch {
	case desiredState == StatePresent || (desiredState == StateAbsent && spec.PrimaryVolumeID != nil):
		pair, err = copyGroups.GADPairGetByPvol(ctx, *spec.PrimaryVolumeID)
	case isSwap(desiredState) && spec.SecondaryVolumeID != nil:
		pair, err = copyGroups.GADPairGetBySvol(ctx, *spec.SecondaryVolumeID)
	default:
		var result api.CopyGroupResult
		if result, err = copyGroups.GADPairGetByName(ctx, spec.CopyGroupName, spec.CopyPairName); err == nil {
			pair = api.FirstPair(result)
		}
	}

	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return pair, nil
}

func (r *GADPairReconciler) dispatch(
	ctx context.Context, rc *ReplicationContext, desiredState string, existing *api.CopyPair,
) (*ReconcileResult, error) {
	provisioner := NewGADPairProvisioner(rc, r.debugTraceFlags)
	spec := rc.Spec()

	if existing == nil {
		if desiredState != StatePresent {
			return &ReconcileResult{Changed: false, Comment: commentPairNotPresent}, nil
		}

		// The primary is checked here so that nothing is built on the remote side for a volume
		// that does not exist.
		if _, err := rc.Local.Volumes.VolumeGet(ctx, *spec.PrimaryVolumeID); err != nil {
			if api.IsNotFound(err) {
				return nil, errors.NotFoundError("primary volume %d not found on storage %s",
					*spec.PrimaryVolumeID, rc.Local.Serial)
			}
			return nil, err
		}

		pair, err := provisioner.Create(ctx)
		if err != nil {
			return nil, err
		}
		return &ReconcileResult{Changed: true, Comment: commentPairCreated, Pair: NewPairView(pair)}, nil
	}

	var pair *api.CopyPair
	var changed bool
	var err error
	switch desiredState {
	case StatePresent:
		return &ReconcileResult{Changed: false, Comment: commentPairExists, Pair: NewPairView(existing)}, nil
	case StateAbsent:
		if err = provisioner.Delete(ctx, existing); err != nil {
			return nil, err
		}
		return &ReconcileResult{Changed: true, Comment: commentPairDeleted}, nil
	case StateSplit:
		pair, changed, err = provisioner.Split(ctx, existing)
	case StateResync:
		pair, changed, err = provisioner.Resync(ctx, existing)
	case StateSwapSplit:
		pair, changed, err = provisioner.SwapSplit(ctx, existing)
	case StateSwapResync:
		pair, changed, err = provisioner.SwapResync(ctx, existing)
	case StateResize, StateExpand:
		pair, err = provisioner.Resize(ctx)
		changed = err == nil
	}
	if err != nil {
		return nil, err
	}

	comment := commentNoChange
	if changed {
		comment = commentPairChanged
	}
	return &ReconcileResult{Changed: changed, Comment: comment, Pair: NewPairView(pair)}, nil
}

// GetPairFacts reads pairs without changing anything. A spec naming a copy pair yields that pair,
// one naming a primary volume yields the pair it belongs to, and one naming only a copy group
// yields every pair of the group. With doMore the pairs are enriched like a reconciliation result.
func (r *GADPairReconciler) GetPairFacts(ctx context.Context, spec *PairSpec, doMore bool) ([]PairView, error) {
	if spec == nil {
		spec = &PairSpec{}
	}
	rc := NewReplicationContext(r.local, r.remote, spec)
	copyGroups := rc.Local.CopyGroups

	var views []PairView
	switch {
	case spec.CopyGroupName != "" && spec.CopyPairName != "":
		result, err := copyGroups.GADPairGetByName(ctx, spec.CopyGroupName, spec.CopyPairName)
		if err != nil {
			if api.IsNotFound(err) {
				return []PairView{}, nil
			}
			return nil, err
		}
		views = PairViews(result)
	case spec.PrimaryVolumeID != nil:
		pair, err := copyGroups.GADPairGetByPvol(ctx, *spec.PrimaryVolumeID)
		if err != nil {
			if api.IsNotFound(err) {
				return []PairView{}, nil
			}
			return nil, err
		}
		views = []PairView{*NewPairView(pair)}
	case spec.CopyGroupName != "":
		result, err := copyGroups.CopyGroupGetByName(ctx, spec.CopyGroupName)
		if err != nil {
			if api.IsNotFound(err) {
				return []PairView{}, nil
			}
			return nil, err
		}
		views = PairViews(result)
	default:
		result, err := copyGroups.CopyPairList(ctx, "")
		if err != nil {
			return nil, err
		}
		views = PairViews(result)
	}

	if !doMore {
		return views, nil
	}
	for i := range views {
		primary, secondary, err := r.getOtherAttributes(ctx, rc, &views[i], "")
		if err != nil {
			return nil, err
		}
		views[i].applyPrimaryAttributes(primary)
		views[i].applySecondaryAttributes(secondary)
	}
	return views, nil
}

func (r *GADPairReconciler) enrich(
	ctx context.Context, rc *ReplicationContext, desiredState string, result *ReconcileResult,
) (*ReconcileResult, error) {
	primary, secondary, err := r.getOtherAttributes(ctx, rc, result.Pair, desiredState)
	if err != nil {
		return nil, err
	}
	result.Pair.applyPrimaryAttributes(primary)
	result.Pair.applySecondaryAttributes(secondary)
	return result, nil
}

// owners returns the controllers holding the primary and the secondary volume of a pair. Pairs
// that do not report storage device ids are taken to have their primary on the local controller,
// except right after a swap split, which is issued from the side holding the secondary.
func (r *GADPairReconciler) owners(
	ctx context.Context, rc *ReplicationContext, view *PairView, desiredState string,
) (ControllerHandle, ControllerHandle) {
	switch {
	case rc.Local.owns(ctx, view.PrimaryVolumeStorageID):
		return rc.Local, rc.Remote
	case rc.Remote.owns(ctx, view.PrimaryVolumeStorageID):
		return rc.Remote, rc.Local
	case desiredState == StateSwapSplit:
		return rc.Remote, rc.Local
	default:
		return rc.Local, rc.Remote
	}
}

// getOtherAttributes reads, from the controller owning each volume of the pair, the facts the pair
// record does not carry. The two sides are read concurrently.
func (r *GADPairReconciler) getOtherAttributes(
	ctx context.Context, rc *ReplicationContext, view *PairView, desiredState string,
) (*volumeAttributes, *volumeAttributes, error) {
	primaryOwner, secondaryOwner := r.owners(ctx, rc, view, desiredState)

	var primary, secondary *volumeAttributes
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = readVolumeAttributes(gctx, primaryOwner, view.PrimaryVolumeID)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = readVolumeAttributes(gctx, secondaryOwner, view.SecondaryVolumeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return primary, secondary, nil
}

// readVolumeAttributes returns nil if the volume has gone away.
func readVolumeAttributes(ctx context.Context, owner ControllerHandle, ldevID int) (*volumeAttributes, error) {
	ctx = WithController(ctx, owner.Serial)

	volume, err := owner.Volumes.VolumeGet(ctx, ldevID)
	if err != nil {
		if api.IsNotFound(err) {
			Logc(ctx).WithField("ldevId", ldevID).Debug("Volume not found, skipping its attributes.")
			return nil, nil
		}
		return nil, err
	}

	attrs := &volumeAttributes{
		VirtualLdevID: volume.VirtualLdevID,
		IsAluaEnabled: volume.IsAluaEnabled,
	}
	if blocks, err := volumeBlocks(volume); err == nil {
		attrs.CapacityBytes = utils.BlocksToBytes(blocks)
	}

	resourceGroup, err := owner.ResourceGroups.ResourceGroupGet(ctx, volume.ResourceGroupID)
	if err != nil {
		return nil, err
	}
	attrs.ResourceGroupName = resourceGroup.ResourceGroupName

	machines, err := owner.ResourceGroups.VirtualStorageMachineList(ctx)
	if err != nil {
		return nil, err
	}
	for _, machine := range machines {
		if machine.VirtualStorageID == resourceGroup.VirtualStorageID {
			attrs.VirtualStorageSerial = machine.VirtualSerialNumber
			attrs.VirtualStorageModel = machine.Model
			break
		}
	}
	if attrs.VirtualStorageSerial == "" {
		attrs.VirtualStorageSerial = owner.Serial
	}

	Logc(ctx).WithFields(LogFields{
		"ldevId":        ldevID,
		"resourceGroup": resourceGroup.ResourceGroupID,
	}).Trace("Read volume attributes.")

	return attrs, nil
}
