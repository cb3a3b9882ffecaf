// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vsp

import (
	"context"
	"net/http"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/storage_drivers/vsp/api"
	"github.com/netapp/gadctl/utils"
	"github.com/netapp/gadctl/utils/errors"
)

func newTestHelper(t *testing.T) (*remoteReplicationHelper, *mockController) {
	mockCtrl := gomock.NewController(t)
	remote := newMockController(mockCtrl)
	return newRemoteReplicationHelper(remote.handle("420000"), true), remote
}

func freeLdevs(ids ...int) []api.Volume {
	volumes := make([]api.Volume, 0, len(ids))
	for _, id := range ids {
		volumes = append(volumes, api.Volume{LdevID: id, EmulationType: api.EmulationTypeNotDefined})
	}
	return volumes
}

func testPrimary() *api.Volume {
	return &api.Volume{
		LdevID:             10,
		EmulationType:      "OPEN-V-CVS",
		ByteFormatCapacity: "10.00 G",
		DataReductionMode:  "disabled",
		ResourceGroupID:    0,
	}
}

func TestSelectFreeLdevInRange(t *testing.T) {
	rangeSpec := PairSpec{BeginSecondaryVolumeID: utils.Ptr(100), EndSecondaryVolumeID: utils.Ptr(110)}

	t.Run("OpenInterval", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).Return(freeLdevs(100, 105, 109), nil)

		ldevID, err := h.selectFreeLdev(ctx(), testPrimary(), rangeSpec, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, 105, ldevID, "the range bounds are never selected")
	})

	t.Run("SkipsOtherResourceGroups", func(t *testing.T) {
		h, remote := newTestHelper(t)
		free := freeLdevs(100, 105, 109)
		free[1].ResourceGroupID = 3
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).Return(free, nil)

		ldevID, err := h.selectFreeLdev(ctx(), testPrimary(), rangeSpec, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, 109, ldevID)
	})

	t.Run("SkipsExcluded", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).Return(freeLdevs(100, 105, 109), nil)

		ldevID, err := h.selectFreeLdev(ctx(), testPrimary(), rangeSpec, roaring.BitmapOf(105))
		require.NoError(t, err)
		assert.Equal(t, 109, ldevID)
	})

	t.Run("Exhausted", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).Return(freeLdevs(100, 110), nil)

		_, err := h.selectFreeLdev(ctx(), testPrimary(), rangeSpec, roaring.New())
		assert.True(t, errors.IsCapacityExhaustedError(err))
		assert.Contains(t, err.Error(), "between 100 and 110")
	})
}

func TestSelectFreeLdevMatchingPrimary(t *testing.T) {
	t.Run("SameID", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10, 11, 12), nil)

		ldevID, err := h.selectFreeLdev(ctx(), testPrimary(), PairSpec{}, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, 10, ldevID)
	})

	t.Run("FirstFree", func(t *testing.T) {
		h, remote := newTestHelper(t)
		free := freeLdevs(12, 13)
		free[0].ResourceGroupID = 5
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(free, nil)

		ldevID, err := h.selectFreeLdev(ctx(), testPrimary(), PairSpec{}, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, 13, ldevID)
	})

	t.Run("Exhausted", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10), nil)

		_, err := h.selectFreeLdev(ctx(), testPrimary(), PairSpec{}, roaring.BitmapOf(10))
		assert.True(t, errors.IsCapacityExhaustedError(err))
		assert.Contains(t, err.Error(), "matching primary volume 10")
	})
}

func TestGetSecondaryVolumeIDHostGroup(t *testing.T) {
	h, remote := newTestHelper(t)
	spec := PairSpec{
		SecondaryPoolID:     utils.Ptr(3),
		SecondaryHostGroups: []HostGroupSpec{{Name: "HG1", Port: "CL1-A"}},
	}
	hostGroup := &api.HostGroup{PortID: "CL1-A", HostGroupNumber: 1, HostGroupName: "HG1", ResourceGroupID: 0}

	gomock.InOrder(
		remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").Return(hostGroup, nil),
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10, 11), nil),
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), &api.VolumeCreateRequest{
			LdevID: utils.Ptr(10), PoolID: 3, BlockCapacity: 20971520, DataReductionMode: "disabled",
		}).Return(10, nil),
		remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 10, "smrha-10", nil).Return(nil),
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).Return(&api.Volume{
			LdevID: 10, EmulationType: "OPEN-V-CVS", VirtualLdevID: utils.Ptr(10),
		}, nil),
		remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 10, 10).Return(nil),
		remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil),
		remote.hosts.EXPECT().HostGroupAddLuns(gomock.Any(), hostGroup, []int{10}, nil).Return(nil),
	)

	ldevID, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
	require.NoError(t, err)
	assert.Equal(t, 10, ldevID)
}

func TestGetSecondaryVolumeIDMovesResourceGroup(t *testing.T) {
	h, remote := newTestHelper(t)
	spec := PairSpec{
		SecondaryPoolID:       utils.Ptr(3),
		SecondaryIscsiTargets: []IscsiTargetSpec{{Name: "IT1", Port: "CL2-A", LunID: utils.Ptr(7)}},
		SecondaryVolumeName:   "db01-svol",
		SetAluaMode:           utils.Ptr(true),
	}
	target := &api.IscsiTarget{PortID: "CL2-A", HostGroupNumber: 2, HostGroupName: "IT1", ResourceGroupID: 4}

	gomock.InOrder(
		remote.hosts.EXPECT().IscsiTargetGetByName(gomock.Any(), "CL2-A", "IT1").Return(target, nil),
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(12), nil),
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).Return(12, nil),
		remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 12, "db01-svol", utils.Ptr(true)).Return(nil),
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 12).Return(&api.Volume{
			LdevID: 12, EmulationType: "OPEN-V-CVS", ResourceGroupID: 0,
			VirtualLdevID: utils.Ptr(api.VirtualLdevUnassigned),
		}, nil),
		remote.resourceGroups.EXPECT().ResourceGroupAddLdevs(gomock.Any(), 4, []int{12}).Return(nil),
		remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 12, api.VirtualLdevUnassigned).Return(nil),
		remote.hosts.EXPECT().IscsiTargetAddLuns(gomock.Any(), target, []int{12}, utils.Ptr(7)).Return(nil),
	)

	ldevID, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
	require.NoError(t, err)
	assert.Equal(t, 12, ldevID)
}

func TestGetSecondaryVolumeIDNVMe(t *testing.T) {
	h, remote := newTestHelper(t)
	primary := testPrimary()
	primary.BlockCapacity = 4194304
	primary.Label = "db01"
	spec := PairSpec{
		SecondaryPoolID:       utils.Ptr(3),
		SecondaryNvmSubsystem: &NvmSubsystemSpec{Name: "NVM1"},
	}

	remote.hosts.EXPECT().NVMeSubsystemList(gomock.Any()).Return([]api.NVMeSubsystem{
		{NvmSubsystemID: 1, NvmSubsystemName: "NVM0"},
		{NvmSubsystemID: 2, NvmSubsystemName: "NVM1"},
	}, nil)
	remote.hosts.EXPECT().NVMeHostNQNList(gomock.Any(), 2).Return([]api.HostNQN{
		{NvmSubsystemID: 2, HostNqn: "nqn.2014-08.org.nvmexpress:host1"},
		{NvmSubsystemID: 2, HostNqn: "nqn.2014-08.org.nvmexpress:host2"},
	}, nil)
	remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10), nil)
	remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, request *api.VolumeCreateRequest) (int, error) {
			assert.Equal(t, uint64(4194304), request.BlockCapacity)
			return 10, nil
		})
	remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 10, "db01", nil).Return(nil)
	remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).Return(&api.Volume{LdevID: 10, EmulationType: "OPEN-V-CVS"}, nil)
	remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil)
	remote.hosts.EXPECT().NVMeNamespaceCreate(gomock.Any(), 2, 10).Return(14, nil)
	remote.hosts.EXPECT().NVMeHostNamespacePathSet(gomock.Any(), 2, "nqn.2014-08.org.nvmexpress:host1", 14).Return(nil)
	remote.hosts.EXPECT().NVMeHostNamespacePathSet(gomock.Any(), 2, "nqn.2014-08.org.nvmexpress:host2", 14).Return(nil)

	ldevID, err := h.GetSecondaryVolumeID(ctx(), primary, spec)
	require.NoError(t, err)
	assert.Equal(t, 10, ldevID)
}

func TestGetSecondaryVolumeIDConnectivityNotFound(t *testing.T) {
	t.Run("HostGroup", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").
			Return(nil, errors.NotFoundError("host group HG1 not found on port CL1-A"))

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), PairSpec{
			SecondaryPoolID: utils.Ptr(3), SecondaryHostGroups: []HostGroupSpec{{Name: "HG1", Port: "CL1-A"}},
		})
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "host group HG1")
	})

	t.Run("IscsiTarget", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().IscsiTargetGetByName(gomock.Any(), "CL2-A", "IT1").
			Return(nil, api.Error{StatusCode: http.StatusNotFound})

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), PairSpec{
			SecondaryPoolID: utils.Ptr(3), SecondaryIscsiTargets: []IscsiTargetSpec{{Name: "IT1", Port: "CL2-A"}},
		})
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "iSCSI target IT1")
	})

	t.Run("NvmSubsystem", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().NVMeSubsystemList(gomock.Any()).Return([]api.NVMeSubsystem{}, nil)

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), PairSpec{
			SecondaryPoolID: utils.Ptr(3), SecondaryNvmSubsystem: &NvmSubsystemSpec{Name: "NVM1"},
		})
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "NVMe subsystem NVM1")
	})

	t.Run("HostNQN", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().NVMeSubsystemList(gomock.Any()).Return([]api.NVMeSubsystem{
			{NvmSubsystemID: 2, NvmSubsystemName: "NVM1"},
		}, nil)
		remote.hosts.EXPECT().NVMeHostNQNList(gomock.Any(), 2).Return([]api.HostNQN{{HostNqn: "nqn.a"}}, nil)

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), PairSpec{
			SecondaryPoolID:       utils.Ptr(3),
			SecondaryNvmSubsystem: &NvmSubsystemSpec{Name: "NVM1", Paths: []string{"nqn.b"}},
		})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestGetSecondaryVolumeIDAmbiguousResourceGroups(t *testing.T) {
	h, remote := newTestHelper(t)
	remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").
		Return(&api.HostGroup{PortID: "CL1-A", HostGroupName: "HG1", ResourceGroupID: 1}, nil)
	remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-B", "HG2").
		Return(&api.HostGroup{PortID: "CL1-B", HostGroupName: "HG2", ResourceGroupID: 2}, nil)

	_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), PairSpec{
		SecondaryPoolID: utils.Ptr(3),
		SecondaryHostGroups: []HostGroupSpec{
			{Name: "HG1", Port: "CL1-A"},
			{Name: "HG2", Port: "CL1-B"},
		},
	})
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestGetSecondaryVolumeIDTakenLdev(t *testing.T) {
	spec := PairSpec{
		SecondaryPoolID:        utils.Ptr(3),
		SecondaryHostGroups:    []HostGroupSpec{{Name: "HG1", Port: "CL1-A"}},
		BeginSecondaryVolumeID: utils.Ptr(100),
		EndSecondaryVolumeID:   utils.Ptr(110),
	}
	hostGroup := &api.HostGroup{PortID: "CL1-A", HostGroupNumber: 1, HostGroupName: "HG1"}
	taken := errors.AlreadyExistsError("ldev is already defined")

	t.Run("SelectsAnother", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").Return(hostGroup, nil)
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).
			Return(freeLdevs(101, 102), nil).Times(2)

		var requested []int
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, request *api.VolumeCreateRequest) (int, error) {
				requested = append(requested, *request.LdevID)
				if *request.LdevID == 101 {
					return 0, taken
				}
				return *request.LdevID, nil
			}).Times(2)
		remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 102, "smrha-10", nil).Return(nil)
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 102).Return(&api.Volume{LdevID: 102, EmulationType: "OPEN-V-CVS"}, nil)
		remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 102, api.VirtualLdevUnassigned).Return(nil)
		remote.hosts.EXPECT().HostGroupAddLuns(gomock.Any(), hostGroup, []int{102}, nil).Return(nil)

		ldevID, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
		require.NoError(t, err)
		assert.Equal(t, 102, ldevID)
		assert.Equal(t, []int{101, 102}, requested)
	})

	t.Run("GivesUp", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").Return(hostGroup, nil)
		remote.volumes.EXPECT().FreeLdevsInRange(gomock.Any(), 100, 110).
			Return(freeLdevs(101, 102, 103, 104), nil).Times(maxSecondaryAllocationAttempts)
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).
			Return(0, taken).Times(maxSecondaryAllocationAttempts)

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
		assert.True(t, errors.IsAlreadyExistsError(err))
		assert.False(t, errors.IsProvisioningError(err), "nothing was created, so nothing was rolled back")
	})
}

func TestGetSecondaryVolumeIDRollback(t *testing.T) {
	spec := PairSpec{
		SecondaryPoolID:     utils.Ptr(3),
		SecondaryHostGroups: []HostGroupSpec{{Name: "HG1", Port: "CL1-A", LunID: utils.Ptr(4)}},
	}
	hostGroup := &api.HostGroup{PortID: "CL1-A", HostGroupNumber: 1, HostGroupName: "HG1", ResourceGroupID: 3}
	mapFailure := api.Error{StatusCode: http.StatusBadRequest, Message: "LUN 4 is already in use"}

	setup := func(remote *mockController) *gomock.Call {
		remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").Return(hostGroup, nil)
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10), nil)
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).Return(10, nil)
		remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 10, "smrha-10", nil).Return(nil)
		created := remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).
			Return(&api.Volume{LdevID: 10, EmulationType: "OPEN-V-CVS"}, nil)
		remote.resourceGroups.EXPECT().ResourceGroupAddLdevs(gomock.Any(), 3, []int{10}).Return(nil)
		remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil)
		remote.hosts.EXPECT().HostGroupAddLuns(gomock.Any(), hostGroup, []int{10}, utils.Ptr(4)).Return(mapFailure)

		// The rollback reads the volume again and finds it half prepared.
		return remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).Return(&api.Volume{
			LdevID: 10, EmulationType: "OPEN-V-CVS", ResourceGroupID: 3,
			VirtualLdevID: utils.Ptr(api.VirtualLdevGADReserved),
		}, nil).After(created)
	}

	t.Run("VolumeRemoved", func(t *testing.T) {
		h, remote := newTestHelper(t)
		setup(remote)

		deleted := false
		remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 10, api.VirtualLdevGADReserved).Return(nil)
		remote.resourceGroups.EXPECT().ResourceGroupRemoveLdevs(gomock.Any(), 3, []int{10}).Return(nil)
		remote.volumes.EXPECT().VolumeDelete(gomock.Any(), 10, false).DoAndReturn(
			func(_ any, _ int, _ bool) error {
				deleted = true
				return nil
			})

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
		require.Error(t, err)
		assert.True(t, errors.IsProvisioningError(err))
		hasRollbackErr, _ := errors.HasRollbackError(err)
		assert.False(t, hasRollbackErr)
		assert.Contains(t, err.Error(), "LUN 4 is already in use")
		assert.True(t, deleted, "no secondary volume may be left behind")
	})

	t.Run("RollbackFails", func(t *testing.T) {
		h, remote := newTestHelper(t)
		setup(remote)

		remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 10, api.VirtualLdevGADReserved).Return(nil)
		remote.resourceGroups.EXPECT().ResourceGroupRemoveLdevs(gomock.Any(), 3, []int{10}).
			Return(api.Error{StatusCode: http.StatusInternalServerError, Message: "resource group locked"})

		_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), spec)
		require.Error(t, err)
		hasRollbackErr, rollbackErr := errors.HasRollbackError(err)
		assert.True(t, hasRollbackErr)
		assert.Contains(t, rollbackErr.Error(), "resource group locked")
		assert.Contains(t, err.Error(), "LUN 4 is already in use")

		var apiErr api.Error
		require.True(t, errors.As(err, &apiErr))
	})
}

func TestGetSecondaryVolumeIDRemovesVolumeOnAnyFailure(t *testing.T) {
	stepFailure := api.Error{StatusCode: http.StatusInternalServerError, Message: "step failed"}
	hostGroupSpec := PairSpec{
		SecondaryPoolID:     utils.Ptr(3),
		SecondaryHostGroups: []HostGroupSpec{{Name: "HG1", Port: "CL1-A"}},
	}
	hostGroupIn := func(resourceGroupID int) *api.HostGroup {
		return &api.HostGroup{PortID: "CL1-A", HostGroupNumber: 1, HostGroupName: "HG1", ResourceGroupID: resourceGroupID}
	}
	nvmSpec := PairSpec{SecondaryPoolID: utils.Ptr(3), SecondaryNvmSubsystem: &NvmSubsystemSpec{Name: "NVM1"}}
	hostNQNs := []api.HostNQN{{NvmSubsystemID: 2, HostNqn: "nqn.a"}}

	// expectCreated covers everything up to a created ldev 10 and returns the first volume read.
	expectCreated := func(remote *mockController, hostGroup *api.HostGroup, created *api.Volume) *gomock.Call {
		if hostGroup != nil {
			remote.hosts.EXPECT().HostGroupGetByName(gomock.Any(), "CL1-A", "HG1").Return(hostGroup, nil)
		} else {
			remote.hosts.EXPECT().NVMeSubsystemList(gomock.Any()).Return([]api.NVMeSubsystem{
				{NvmSubsystemID: 2, NvmSubsystemName: "NVM1"},
			}, nil)
			remote.hosts.EXPECT().NVMeHostNQNList(gomock.Any(), 2).Return(hostNQNs, nil)
		}
		remote.volumes.EXPECT().FreeLdevsMatchingPvol(gomock.Any(), 10).Return(freeLdevs(10), nil)
		remote.volumes.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).Return(10, nil)
		if created == nil {
			remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 10, "smrha-10", nil).Return(stepFailure)
			return nil
		}
		remote.volumes.EXPECT().VolumeSettingsChange(gomock.Any(), 10, "smrha-10", nil).Return(nil)
		return remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).Return(created, nil)
	}

	// expectRemoved covers the rollback reading back ldev 10 as found and deleting it.
	expectRemoved := func(remote *mockController, after *gomock.Call, found *api.Volume, deleted *bool) {
		read := remote.volumes.EXPECT().VolumeGet(gomock.Any(), 10).Return(found, nil)
		if after != nil {
			read.After(after)
		}
		if found.VirtualLdevID != nil && *found.VirtualLdevID != api.VirtualLdevUnassigned {
			remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 10, *found.VirtualLdevID).Return(nil)
		}
		if found.ResourceGroupID != api.DefaultResourceGroupID {
			remote.resourceGroups.EXPECT().ResourceGroupRemoveLdevs(gomock.Any(), found.ResourceGroupID, []int{10}).
				Return(nil)
		}
		remote.volumes.EXPECT().VolumeDelete(gomock.Any(), 10, false).DoAndReturn(
			func(_ any, _ int, _ bool) error {
				*deleted = true
				return nil
			})
	}

	volume := func(resourceGroupID int, virtualLdevID *int) *api.Volume {
		return &api.Volume{
			LdevID: 10, EmulationType: "OPEN-V-CVS", ResourceGroupID: resourceGroupID, VirtualLdevID: virtualLdevID,
		}
	}

	tests := map[string]struct {
		spec  PairSpec
		mocks func(remote *mockController, deleted *bool)
	}{
		"VolumeSettingsChange": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(0)
				expectCreated(remote, hostGroup, nil)
				expectRemoved(remote, nil, volume(0, utils.Ptr(10)), deleted)
			},
		},
		"VirtualLdevUnassign": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(0)
				created := expectCreated(remote, hostGroup, volume(0, utils.Ptr(10)))
				remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 10, 10).Return(stepFailure)
				expectRemoved(remote, created, volume(0, utils.Ptr(10)), deleted)
			},
		},
		"ResourceGroupRemoveLdevs": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(0)
				created := expectCreated(remote, hostGroup, volume(5, utils.Ptr(api.VirtualLdevUnassigned)))
				remote.resourceGroups.EXPECT().ResourceGroupRemoveLdevs(gomock.Any(), 5, []int{10}).Return(stepFailure)
				expectRemoved(remote, created, volume(5, utils.Ptr(api.VirtualLdevUnassigned)), deleted)
			},
		},
		"ResourceGroupAddLdevs": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(3)
				created := expectCreated(remote, hostGroup, volume(0, utils.Ptr(api.VirtualLdevUnassigned)))
				remote.resourceGroups.EXPECT().ResourceGroupAddLdevs(gomock.Any(), 3, []int{10}).Return(stepFailure)
				expectRemoved(remote, created, volume(0, utils.Ptr(api.VirtualLdevUnassigned)), deleted)
			},
		},
		"VirtualLdevAssign": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(3)
				created := expectCreated(remote, hostGroup, volume(0, utils.Ptr(api.VirtualLdevUnassigned)))
				remote.resourceGroups.EXPECT().ResourceGroupAddLdevs(gomock.Any(), 3, []int{10}).Return(nil)
				remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).
					Return(stepFailure)
				expectRemoved(remote, created, volume(3, utils.Ptr(api.VirtualLdevUnassigned)), deleted)
			},
		},
		"HostGroupAddLunsInDefaultResourceGroup": {
			spec: hostGroupSpec,
			mocks: func(remote *mockController, deleted *bool) {
				hostGroup := hostGroupIn(0)
				created := expectCreated(remote, hostGroup, volume(0, utils.Ptr(api.VirtualLdevUnassigned)))
				remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil)
				remote.hosts.EXPECT().HostGroupAddLuns(gomock.Any(), hostGroup, []int{10}, nil).Return(stepFailure)
				// The reserve must be released before the volume can go.
				expectRemoved(remote, created, volume(0, utils.Ptr(api.VirtualLdevGADReserved)), deleted)
			},
		},
		"NVMeNamespaceCreate": {
			spec: nvmSpec,
			mocks: func(remote *mockController, deleted *bool) {
				created := expectCreated(remote, nil, volume(0, nil))
				remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil)
				remote.hosts.EXPECT().NVMeNamespaceCreate(gomock.Any(), 2, 10).Return(0, stepFailure)
				expectRemoved(remote, created, volume(0, utils.Ptr(api.VirtualLdevGADReserved)), deleted)
			},
		},
		"NVMeHostNamespacePathSet": {
			spec: nvmSpec,
			mocks: func(remote *mockController, deleted *bool) {
				created := expectCreated(remote, nil, volume(0, nil))
				remote.volumes.EXPECT().VirtualLdevAssign(gomock.Any(), 10, api.VirtualLdevUnassigned).Return(nil)
				remote.hosts.EXPECT().NVMeNamespaceCreate(gomock.Any(), 2, 10).Return(14, nil)
				remote.hosts.EXPECT().NVMeHostNamespacePathSet(gomock.Any(), 2, "nqn.a", 14).Return(stepFailure)

				found := volume(0, utils.Ptr(api.VirtualLdevGADReserved))
				found.NvmSubsystemID = utils.Ptr(2)
				found.NamespaceID = utils.Ptr(14)
				remote.hosts.EXPECT().NVMeHostNQNList(gomock.Any(), 2).Return(hostNQNs, nil)
				remote.hosts.EXPECT().NVMeHostNamespacePathDelete(gomock.Any(), 2, "nqn.a", 14).
					Return(api.Error{StatusCode: http.StatusNotFound})
				remote.hosts.EXPECT().NVMeNamespaceDelete(gomock.Any(), 2, 14).Return(nil)
				expectRemoved(remote, created, found, deleted)
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h, remote := newTestHelper(t)
			deleted := false
			test.mocks(remote, &deleted)

			_, err := h.GetSecondaryVolumeID(ctx(), testPrimary(), test.spec)
			require.Error(t, err)
			assert.True(t, errors.IsProvisioningError(err))
			hasRollbackErr, _ := errors.HasRollbackError(err)
			assert.False(t, hasRollbackErr)
			assert.Contains(t, err.Error(), "step failed")
			assert.True(t, deleted, "no secondary volume may be left behind")
		})
	}
}

func TestDeleteVolumeAndAllMappings(t *testing.T) {
	t.Run("LunPaths", func(t *testing.T) {
		h, remote := newTestHelper(t)
		ports := []api.LunPort{
			{PortID: "CL1-A", HostGroupNumber: 1, Lun: 0},
			{PortID: "CL2-A", HostGroupNumber: 1, Lun: 0},
		}
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).Return(&api.Volume{
			LdevID: 105, EmulationType: "OPEN-V-CVS", Ports: ports, DataReductionMode: "compression",
		}, nil)
		remote.volumes.EXPECT().LunPathDelete(gomock.Any(), ports[0]).Return(nil)
		remote.volumes.EXPECT().LunPathDelete(gomock.Any(), ports[1]).Return(api.Error{StatusCode: http.StatusNotFound})
		remote.volumes.EXPECT().VolumeDelete(gomock.Any(), 105, true).Return(nil)

		assert.NoError(t, h.DeleteVolumeAndAllMappings(ctx(), 105))
	})

	t.Run("LunPathFailures", func(t *testing.T) {
		h, remote := newTestHelper(t)
		ports := []api.LunPort{
			{PortID: "CL1-A", HostGroupNumber: 1, Lun: 0},
			{PortID: "CL2-A", HostGroupNumber: 1, Lun: 0},
		}
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).Return(&api.Volume{
			LdevID: 105, EmulationType: "OPEN-V-CVS", Ports: ports,
		}, nil)
		remote.volumes.EXPECT().LunPathDelete(gomock.Any(), gomock.Any()).
			Return(api.Error{StatusCode: http.StatusInternalServerError, Message: "busy"}).Times(2)

		err := h.DeleteVolumeAndAllMappings(ctx(), 105)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not unmap ldev 105")
	})

	t.Run("NVMe", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).Return(&api.Volume{
			LdevID: 105, EmulationType: "OPEN-V-CVS", NvmSubsystemID: utils.Ptr(2), NamespaceID: utils.Ptr(14),
		}, nil)
		remote.hosts.EXPECT().NVMeHostNQNList(gomock.Any(), 2).Return([]api.HostNQN{
			{HostNqn: "nqn.a"}, {HostNqn: "nqn.b"},
		}, nil)
		remote.hosts.EXPECT().NVMeHostNamespacePathDelete(gomock.Any(), 2, "nqn.a", 14).Return(nil)
		remote.hosts.EXPECT().NVMeHostNamespacePathDelete(gomock.Any(), 2, "nqn.b", 14).
			Return(api.Error{StatusCode: http.StatusNotFound})
		remote.hosts.EXPECT().NVMeNamespaceDelete(gomock.Any(), 2, 14).Return(nil)
		remote.volumes.EXPECT().VolumeDelete(gomock.Any(), 105, false).Return(nil)

		assert.NoError(t, h.DeleteVolumeAndAllMappings(ctx(), 105))
	})

	t.Run("ReleasesReserveInDefaultResourceGroup", func(t *testing.T) {
		h, remote := newTestHelper(t)
		gomock.InOrder(
			remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).Return(&api.Volume{
				LdevID: 105, EmulationType: "OPEN-V-CVS", VirtualLdevID: utils.Ptr(api.VirtualLdevGADReserved),
			}, nil),
			remote.volumes.EXPECT().VirtualLdevUnassign(gomock.Any(), 105, api.VirtualLdevGADReserved).Return(nil),
			remote.volumes.EXPECT().VolumeDelete(gomock.Any(), 105, false).Return(nil),
		)

		assert.NoError(t, h.DeleteVolumeAndAllMappings(ctx(), 105))
	})

	t.Run("NamesControllerInContext", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).DoAndReturn(
			func(ctx context.Context, _ int) (*api.Volume, error) {
				assert.Equal(t, "420000", ctx.Value(logging.ContextKeyController))
				return nil, api.Error{StatusCode: http.StatusNotFound}
			})

		assert.NoError(t, h.DeleteVolumeAndAllMappings(ctx(), 105))
	})

	t.Run("AlreadyGone", func(t *testing.T) {
		h, remote := newTestHelper(t)
		remote.volumes.EXPECT().VolumeGet(gomock.Any(), 105).Return(nil, errors.NotFoundError("ldev 105 not found"))

		assert.NoError(t, h.DeleteVolumeAndAllMappings(ctx(), 105))
	})
}
