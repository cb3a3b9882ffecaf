// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/netapp/gadctl/utils/errors"
)

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_vsp/mock_api.go github.com/netapp/gadctl/storage_drivers/vsp/api VolumeAPI,HostConnectivityAPI,ResourceGroupAPI,CopyGroupAPI,StorageSystemAPI

// VolumeAPI manages logical devices (ldevs) on one storage controller.
type VolumeAPI interface {
	VolumeCreate(ctx context.Context, request *VolumeCreateRequest) (int, error)
	VolumeGet(ctx context.Context, ldevID int) (*Volume, error)
	VolumeDelete(ctx context.Context, ldevID int, force bool) error
	LunPathDelete(ctx context.Context, port LunPort) error
	VolumeSettingsChange(ctx context.Context, ldevID int, label string, isAluaEnabled *bool) error
	VirtualLdevAssign(ctx context.Context, ldevID, virtualLdevID int) error
	VirtualLdevUnassign(ctx context.Context, ldevID, virtualLdevID int) error
	FreeLdevsMatchingPvol(ctx context.Context, pvolLdevID int) ([]Volume, error)
	FreeLdevsInRange(ctx context.Context, begin, end int) ([]Volume, error)
}

// HostConnectivityAPI manages the host-facing presentation of ldevs: host groups, iSCSI targets
// and NVMe subsystems.
type HostConnectivityAPI interface {
	HostGroupGetByName(ctx context.Context, portID, name string) (*HostGroup, error)
	IscsiTargetGetByName(ctx context.Context, portID, name string) (*IscsiTarget, error)
	HostGroupAddLuns(ctx context.Context, hostGroup *HostGroup, ldevIDs []int, lunID *int) error
	IscsiTargetAddLuns(ctx context.Context, target *IscsiTarget, ldevIDs []int, lunID *int) error

	NVMeSubsystemList(ctx context.Context) ([]NVMeSubsystem, error)
	NVMeNamespaceCreate(ctx context.Context, nvmSubsystemID, ldevID int) (int, error)
	NVMeHostNamespacePathSet(ctx context.Context, nvmSubsystemID int, hostNQN string, namespaceID int) error
	NVMeNamespaceDelete(ctx context.Context, nvmSubsystemID, namespaceID int) error
	NVMeHostNamespacePathDelete(ctx context.Context, nvmSubsystemID int, hostNQN string, namespaceID int) error
	NVMeHostNQNList(ctx context.Context, nvmSubsystemID int) ([]HostNQN, error)
}

type ResourceGroupAPI interface {
	ResourceGroupAddLdevs(ctx context.Context, resourceGroupID int, ldevIDs []int) error
	ResourceGroupRemoveLdevs(ctx context.Context, resourceGroupID int, ldevIDs []int) error
	ResourceGroupGet(ctx context.Context, resourceGroupID int) (*ResourceGroup, error)
	VirtualStorageMachineList(ctx context.Context) ([]VirtualStorageMachine, error)
}

// CopyGroupAPI manages GAD pairs. Every call addresses both controllers, so the implementation
// must know the remote controller it pairs with.
type CopyGroupAPI interface {
	GADPairCreate(ctx context.Context, request *GADPairCreateRequest) (string, error)
	GADPairSplit(ctx context.Context, copyPairID string) (string, error)
	GADPairResync(ctx context.Context, copyPairID string) (string, error)
	GADPairSwapSplit(ctx context.Context, copyPairID string) (string, error)
	GADPairSwapResync(ctx context.Context, copyPairID string) (string, error)
	GADPairSwapSplitToPSUS(ctx context.Context, copyPairID string) (string, error)
	GADPairResize(ctx context.Context, pair *CopyPair, additionalBlocks uint64) error
	GADPairDelete(ctx context.Context, copyPairID string) error

	CopyGroupGetByName(ctx context.Context, copyGroupName string) (CopyGroupResult, error)
	CopyPairGetByID(ctx context.Context, copyPairID string) (*CopyPair, error)
	CopyPairList(ctx context.Context, copyGroupName string) (CopyGroupResult, error)
	GADPairGetByName(ctx context.Context, copyGroupName, copyPairName string) (CopyGroupResult, error)
	GADPairGetByPvol(ctx context.Context, pvolLdevID int) (*CopyPair, error)
	GADPairGetBySvol(ctx context.Context, svolLdevID int) (*CopyPair, error)
}

type StorageSystemAPI interface {
	StorageInfo(ctx context.Context) (*StorageInfo, error)
}

const (
	// VirtualLdevGADReserved is the virtual ldev id the controller reports for an ldev carrying the
	// GAD reserve attribute.
	VirtualLdevGADReserved = 65534
	// VirtualLdevUnassigned is the virtual ldev id the controller reports when none is set.
	// Assigning it sets the GAD reserve attribute.
	VirtualLdevUnassigned = 65535

	EmulationTypeNotDefined = "NOT DEFINED"
	ReplicationTypeGAD      = "GAD"

	DefaultResourceGroupID = 0
)

// ConnectionInfo describes how to reach one storage controller.
type ConnectionInfo struct {
	Address   string `json:"address"`
	Port      int    `json:"port,omitempty"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Serial    string `json:"serial,omitempty"`
	VerifyTLS bool   `json:"verify_tls,omitempty"`
	UseHTTP   bool   `json:"use_http,omitempty"`
}

// String hides the credentials.
func (c ConnectionInfo) String() string {
	return fmt.Sprintf("{Address:%s Port:%d Username:%s Password:<REDACTED> Serial:%s}",
		c.Address, c.Port, c.Username, c.Serial)
}

type StorageInfo struct {
	StorageDeviceID   string `json:"storageDeviceId"`
	Model             string `json:"model"`
	SerialNumber      int    `json:"serialNumber"`
	DKCMicroVersion   string `json:"dkcMicroVersion,omitempty"`
	CommunicationMode string `json:"communicationModes,omitempty"`
}

type LunPort struct {
	PortID          string `json:"portId"`
	HostGroupNumber int    `json:"hostGroupNumber"`
	HostGroupName   string `json:"hostGroupName,omitempty"`
	Lun             int    `json:"lun"`
}

type Volume struct {
	LdevID             int       `json:"ldevId"`
	EmulationType      string    `json:"emulationType,omitempty"`
	BlockCapacity      uint64    `json:"blockCapacity,omitempty"`
	ByteFormatCapacity string    `json:"byteFormatCapacity,omitempty"`
	PoolID             *int      `json:"poolId,omitempty"`
	DataReductionMode  string    `json:"dataReductionMode,omitempty"`
	ResourceGroupID    int       `json:"resourceGroupId"`
	VirtualLdevID      *int      `json:"virtualLdevId,omitempty"`
	Label              string    `json:"label,omitempty"`
	Status             string    `json:"status,omitempty"`
	Attributes         []string  `json:"attributes,omitempty"`
	NumOfPorts         int       `json:"numOfPorts,omitempty"`
	Ports              []LunPort `json:"ports,omitempty"`
	IsAluaEnabled      bool      `json:"isAluaEnabled"`
	NvmSubsystemID     *int      `json:"nvmSubsystemId,omitempty"`
	NamespaceID        *int      `json:"namespaceId,omitempty"`
}

// IsDefined is false for ldev ids that are free on the controller.
func (v *Volume) IsDefined() bool {
	return v.EmulationType != "" && v.EmulationType != EmulationTypeNotDefined
}

// IsNVMe reports whether the volume is presented through an NVMe namespace.
func (v *Volume) IsNVMe() bool {
	return v.NvmSubsystemID != nil && v.NamespaceID != nil
}

type VolumeCreateRequest struct {
	LdevID             *int   `json:"ldevId,omitempty"`
	PoolID             int    `json:"poolId"`
	BlockCapacity      uint64 `json:"blockCapacity,omitempty"`
	ByteFormatCapacity string `json:"byteFormatCapacity,omitempty"`
	DataReductionMode  string `json:"dataReductionMode,omitempty"`
}

type HostGroup struct {
	HostGroupID     string `json:"hostGroupId"`
	PortID          string `json:"portId"`
	HostGroupNumber int    `json:"hostGroupNumber"`
	HostGroupName   string `json:"hostGroupName"`
	HostMode        string `json:"hostMode,omitempty"`
	ResourceGroupID int    `json:"resourceGroupId"`
}

type IscsiTarget struct {
	HostGroupID     string `json:"hostGroupId"`
	PortID          string `json:"portId"`
	HostGroupNumber int    `json:"hostGroupNumber"`
	HostGroupName   string `json:"hostGroupName"`
	IscsiName       string `json:"iscsiName,omitempty"`
	ResourceGroupID int    `json:"resourceGroupId"`
}

type NVMeSubsystem struct {
	NvmSubsystemID   int      `json:"nvmSubsystemId"`
	NvmSubsystemName string   `json:"nvmSubsystemName"`
	ResourceGroupID  int      `json:"resourceGroupId"`
	HostMode         string   `json:"hostMode,omitempty"`
	PortIDs          []string `json:"portIds,omitempty"`
}

type HostNQN struct {
	HostNqnID       string `json:"hostNqnId"`
	NvmSubsystemID  int    `json:"nvmSubsystemId"`
	HostNqn         string `json:"hostNqn"`
	HostNqnNickname string `json:"hostNqnNickname,omitempty"`
}

type ResourceGroup struct {
	ResourceGroupID   int    `json:"resourceGroupId"`
	ResourceGroupName string `json:"resourceGroupName"`
	LockStatus        string `json:"lockStatus,omitempty"`
	VirtualStorageID  int    `json:"virtualStorageId"`
	LdevIDs           []int  `json:"ldevIds,omitempty"`
}

type VirtualStorageMachine struct {
	VirtualStorageID    int    `json:"virtualStorageId"`
	StorageDeviceID     string `json:"storageDeviceId"`
	Model               string `json:"model"`
	VirtualSerialNumber string `json:"virtualSerialNumber"`
	ResourceGroupIDs    []int  `json:"resourceGroupIds,omitempty"`
}

type CopyPair struct {
	RemoteMirrorCopyPairID string `json:"remoteMirrorCopyPairId"`
	CopyGroupName          string `json:"copyGroupName"`
	CopyPairName           string `json:"copyPairName"`
	ReplicationType        string `json:"replicationType"`
	RemoteSerialNumber     string `json:"remoteSerialNumber,omitempty"`
	PvolLdevID             int    `json:"pvolLdevId"`
	PvolStatus             string `json:"pvolStatus"`
	PvolStorageDeviceID    string `json:"pvolStorageDeviceId,omitempty"`
	SvolLdevID             int    `json:"svolLdevId"`
	SvolStatus             string `json:"svolStatus"`
	SvolStorageDeviceID    string `json:"svolStorageDeviceId,omitempty"`
	MuNumber               *int   `json:"muNumber,omitempty"`
	ConsistencyGroupID     *int   `json:"consistencyGroupId,omitempty"`
	FenceLevel             string `json:"fenceLevel,omitempty"`
	CopyPace               *int   `json:"copyPace,omitempty"`
	CopyProgressRate       *int   `json:"copyProgressRate,omitempty"`
	PvolIOMode             string `json:"pvolIOMode,omitempty"`
	SvolIOMode             string `json:"svolIOMode,omitempty"`
	QuorumDiskID           *int   `json:"quorumDiskId,omitempty"`
	LocalDeviceGroupName   string `json:"localDeviceGroupName,omitempty"`
	RemoteDeviceGroupName  string `json:"remoteDeviceGroupName,omitempty"`
}

type CopyGroup struct {
	RemoteMirrorCopyGroupID string     `json:"remoteMirrorCopyGroupId"`
	CopyGroupName           string     `json:"copyGroupName"`
	MuNumber                *int       `json:"muNumber,omitempty"`
	LocalDeviceGroupName    string     `json:"localDeviceGroupName"`
	RemoteDeviceGroupName   string     `json:"remoteDeviceGroupName"`
	RemoteStorageDeviceID   string     `json:"remoteStorageDeviceId,omitempty"`
	CopyPairs               []CopyPair `json:"copyPairs,omitempty"`
}

type GADPairCreateRequest struct {
	CopyGroupName                  string `json:"copyGroupName"`
	CopyPairName                   string `json:"copyPairName"`
	ReplicationType                string `json:"replicationType"`
	RemoteStorageDeviceID          string `json:"remoteStorageDeviceId"`
	PvolLdevID                     int    `json:"pvolLdevId"`
	SvolLdevID                     int    `json:"svolLdevId"`
	IsNewGroupCreation             bool   `json:"isNewGroupCreation"`
	MuNumber                       *int   `json:"muNumber,omitempty"`
	PathGroupID                    *int   `json:"pathGroupId,omitempty"`
	LocalDeviceGroupName           string `json:"localDeviceGroupName,omitempty"`
	RemoteDeviceGroupName          string `json:"remoteDeviceGroupName,omitempty"`
	ConsistencyGroupID             *int   `json:"consistencyGroupId,omitempty"`
	IsConsistencyGroupIDAutoAssign *bool  `json:"isConsistencyGroupIdAutoAssign,omitempty"`
	FenceLevel                     string `json:"fenceLevel,omitempty"`
	CopyPace                       *int   `json:"copyPace,omitempty"`
	DoInitialCopy                  *bool  `json:"doInitialCopy,omitempty"`
	IsDataReductionForceCopy       *bool  `json:"isDataReductionForceCopy,omitempty"`
	QuorumDiskID                   *int   `json:"quorumDiskId,omitempty"`
}

// ///////////////////////////////////////////////////////////////////////////
//
// Copy group lookup results
//
// ///////////////////////////////////////////////////////////////////////////

// CopyGroupResult is what a copy-group lookup returned. Its shape is decided once, where the
// controller's response is decoded; callers read pairs through CopyPairs or switch on the type.
type CopyGroupResult interface {
	CopyPairs() []CopyPair
	isCopyGroupResult()
}

// SinglePair is the result of addressing one pair by name or id.
type SinglePair struct {
	Pair CopyPair
}

// PairList is a flat list of pairs, possibly spanning copy groups.
type PairList struct {
	Pairs []CopyPair
}

// GroupWithPairs is one copy group together with its member pairs.
type GroupWithPairs struct {
	Group CopyGroup
}

func (r SinglePair) CopyPairs() []CopyPair     { return []CopyPair{r.Pair} }
func (r PairList) CopyPairs() []CopyPair       { return r.Pairs }
func (r GroupWithPairs) CopyPairs() []CopyPair { return r.Group.CopyPairs }

func (SinglePair) isCopyGroupResult()     {}
func (PairList) isCopyGroupResult()       {}
func (GroupWithPairs) isCopyGroupResult() {}

// FirstPair returns the first pair of a result, or nil if there is none.
func FirstPair(result CopyGroupResult) *CopyPair {
	if result == nil {
		return nil
	}
	pairs := result.CopyPairs()
	if len(pairs) == 0 {
		return nil
	}
	pair := pairs[0]
	return &pair
}

// CopyPairID builds the composite id the controller uses to address a remote mirror pair.
func CopyPairID(remoteStorageDeviceID, copyGroupName, localDeviceGroupName, remoteDeviceGroupName,
	copyPairName string,
) string {
	return strings.Join([]string{
		remoteStorageDeviceID, copyGroupName, localDeviceGroupName, remoteDeviceGroupName, copyPairName,
	}, ",")
}

// ///////////////////////////////////////////////////////////////////////////
//
// Jobs and errors
//
// ///////////////////////////////////////////////////////////////////////////

const (
	JobStatusCompleted = "Completed"
	JobStateSucceeded  = "Succeeded"
	JobStateFailed     = "Failed"
)

type Job struct {
	JobID             int       `json:"jobId"`
	Self              string    `json:"self"`
	UserID            string    `json:"userId,omitempty"`
	Status            string    `json:"status"`
	State             string    `json:"state"`
	CreatedTime       string    `json:"createdTime,omitempty"`
	UpdatedTime       string    `json:"updatedTime,omitempty"`
	CompletedTime     string    `json:"completedTime,omitempty"`
	AffectedResources []string  `json:"affectedResources,omitempty"`
	Error             *APIError `json:"error,omitempty"`
}

// APIError is the error document returned by the REST API.
type APIError struct {
	ErrorSource string `json:"errorSource,omitempty"`
	MessageID   string `json:"messageId,omitempty"`
	Message     string `json:"message"`
	Cause       string `json:"cause,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

// Error is returned for any non-success response from the controller.
type Error struct {
	StatusCode int
	MessageID  string
	Message    string
	Solution   string
}

func (e Error) Error() string {
	msg := fmt.Sprintf("API request failed; status %d", e.StatusCode)
	if e.MessageID != "" {
		msg += "; " + e.MessageID
	}
	if e.Message != "" {
		msg += "; " + e.Message
	}
	if e.Solution != "" {
		msg += " (" + e.Solution + ")"
	}
	return msg
}

// IsNotFound is true for typed not-found errors and for 404 responses from the controller.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.IsNotFoundError(err) {
		return true
	}
	var apiErr Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsAlreadyExists is true when the controller refused to create something that is already there.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	if errors.IsAlreadyExistsError(err) {
		return true
	}
	var apiErr Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}
