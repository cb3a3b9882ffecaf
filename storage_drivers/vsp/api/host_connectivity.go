// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/utils/errors"
)

const (
	hostGroupsPath     = "/host-groups"
	nvmSubsystemsPath  = "/nvm-subsystems"
	namespacesPath     = "/namespaces"
	namespacePathsPath = "/namespace-paths"
	hostNqnsPath       = "/host-nqns"
)

type lunCreateRequest struct {
	PortID          string `json:"portId"`
	HostGroupNumber int    `json:"hostGroupNumber"`
	LdevID          int    `json:"ldevId"`
	Lun             *int   `json:"lun,omitempty"`
}

func (c *Client) hostGroupsOnPort(ctx context.Context, portID string, result any) error {
	query := url.Values{}
	query.Set("portId", portID)
	query.Set("detailInfoType", "resourceGroup")
	return c.get(ctx, hostGroupsPath, query, result, false)
}

// HostGroupGetByName finds a host group by port and name.
func (c *Client) HostGroupGetByName(ctx context.Context, portID, name string) (*HostGroup, error) {
	var result dataList[HostGroup]
	if err := c.hostGroupsOnPort(ctx, portID, &result); err != nil {
		return nil, err
	}
	for _, hostGroup := range result.Data {
		if hostGroup.HostGroupName == name {
			return &hostGroup, nil
		}
	}
	return nil, errors.NotFoundError("host group %s not found on port %s", name, portID)
}

// IscsiTargetGetByName finds an iSCSI target by port and name. iSCSI targets are host groups on
// iSCSI ports as far as the controller is concerned.
func (c *Client) IscsiTargetGetByName(ctx context.Context, portID, name string) (*IscsiTarget, error) {
	var result dataList[IscsiTarget]
	if err := c.hostGroupsOnPort(ctx, portID, &result); err != nil {
		return nil, err
	}
	for _, target := range result.Data {
		if target.HostGroupName == name {
			return &target, nil
		}
	}
	return nil, errors.NotFoundError("iSCSI target %s not found on port %s", name, portID)
}

func (c *Client) addLuns(ctx context.Context, portID string, hostGroupNumber int, ldevIDs []int, lunID *int) error {
	for i, ldevID := range ldevIDs {
		request := lunCreateRequest{PortID: portID, HostGroupNumber: hostGroupNumber, LdevID: ldevID}
		if lunID != nil {
			// An explicit LUN applies to the first ldev; the rest are numbered after it.
			lun := *lunID + i
			request.Lun = &lun
		}
		if _, err := c.modify(ctx, http.MethodPost, lunsPath, request, false); err != nil {
			return err
		}
		Logc(ctx).WithFields(LogFields{
			"controller":      c.Name(),
			"portId":          portID,
			"hostGroupNumber": hostGroupNumber,
			"ldevId":          ldevID,
		}).Debug("Mapped ldev.")
	}
	return nil
}

func (c *Client) HostGroupAddLuns(ctx context.Context, hostGroup *HostGroup, ldevIDs []int, lunID *int) error {
	return c.addLuns(ctx, hostGroup.PortID, hostGroup.HostGroupNumber, ldevIDs, lunID)
}

func (c *Client) IscsiTargetAddLuns(ctx context.Context, target *IscsiTarget, ldevIDs []int, lunID *int) error {
	return c.addLuns(ctx, target.PortID, target.HostGroupNumber, ldevIDs, lunID)
}

func (c *Client) NVMeSubsystemList(ctx context.Context) ([]NVMeSubsystem, error) {
	var result dataList[NVMeSubsystem]
	query := url.Values{}
	query.Set("detailInfoType", "resourceGroup")
	if err := c.get(ctx, nvmSubsystemsPath, query, &result, false); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// NVMeNamespaceCreate creates a namespace for an ldev and returns the namespace id.
func (c *Client) NVMeNamespaceCreate(ctx context.Context, nvmSubsystemID, ldevID int) (int, error) {
	body := map[string]int{"nvmSubsystemId": nvmSubsystemID, "ldevId": ldevID}
	job, err := c.modify(ctx, http.MethodPost, namespacesPath, body, false)
	if err != nil {
		return 0, err
	}

	// The namespace is identified as "<nvmSubsystemId>,<namespaceId>".
	resource, err := affectedResource(job)
	if err != nil {
		return 0, err
	}
	var subsystemID, namespaceID int
	if _, err = fmt.Sscanf(resource, "%d,%d", &subsystemID, &namespaceID); err != nil {
		return 0, fmt.Errorf("could not parse namespace id %q; %v", resource, err)
	}
	return namespaceID, nil
}

func (c *Client) NVMeHostNamespacePathSet(
	ctx context.Context, nvmSubsystemID int, hostNQN string, namespaceID int,
) error {
	body := map[string]any{"nvmSubsystemId": nvmSubsystemID, "hostNqn": hostNQN, "namespaceId": namespaceID}
	_, err := c.modify(ctx, http.MethodPost, namespacePathsPath, body, false)
	return err
}

func (c *Client) NVMeNamespaceDelete(ctx context.Context, nvmSubsystemID, namespaceID int) error {
	resource := fmt.Sprintf("%d,%d", nvmSubsystemID, namespaceID)
	_, err := c.modify(ctx, http.MethodDelete, namespacesPath+"/"+objectPath(resource), nil, false)
	return err
}

func (c *Client) NVMeHostNamespacePathDelete(
	ctx context.Context, nvmSubsystemID int, hostNQN string, namespaceID int,
) error {
	resource := fmt.Sprintf("%d,%s,%d", nvmSubsystemID, hostNQN, namespaceID)
	_, err := c.modify(ctx, http.MethodDelete, namespacePathsPath+"/"+objectPath(resource), nil, false)
	return err
}

func (c *Client) NVMeHostNQNList(ctx context.Context, nvmSubsystemID int) ([]HostNQN, error) {
	var result dataList[HostNQN]
	query := url.Values{}
	query.Set("nvmSubsystemId", strconv.Itoa(nvmSubsystemID))
	if err := c.get(ctx, hostNqnsPath, query, &result, false); err != nil {
		return nil, err
	}
	return result.Data, nil
}
