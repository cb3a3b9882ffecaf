// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"strconv"

	. "github.com/netapp/gadctl/logging"
)

const (
	resourceGroupsPath  = "/resource-groups"
	virtualStoragesPath = "/virtual-storages"
)

func resourceGroupActionPath(resourceGroupID int, action string) string {
	return resourceGroupsPath + "/" + strconv.Itoa(resourceGroupID) + "/actions/" + action + "/invoke"
}

// ResourceGroupAddLdevs moves ldevs into a resource group. The ldevs must be in resource group 0.
func (c *Client) ResourceGroupAddLdevs(ctx context.Context, resourceGroupID int, ldevIDs []int) error {
	body := actionParameters{Parameters: map[string][]int{"ldevIds": ldevIDs}}
	if _, err := c.modify(ctx, http.MethodPost, resourceGroupActionPath(resourceGroupID, "add-resource"), body,
		false); err != nil {
		return err
	}
	Logc(ctx).WithFields(LogFields{
		"controller":      c.Name(),
		"resourceGroupId": resourceGroupID,
		"ldevIds":         ldevIDs,
	}).Debug("Added ldevs to resource group.")
	return nil
}

// ResourceGroupRemoveLdevs moves ldevs from a resource group back to resource group 0.
func (c *Client) ResourceGroupRemoveLdevs(ctx context.Context, resourceGroupID int, ldevIDs []int) error {
	body := actionParameters{Parameters: map[string][]int{"ldevIds": ldevIDs}}
	if _, err := c.modify(ctx, http.MethodPost, resourceGroupActionPath(resourceGroupID, "remove-resource"), body,
		false); err != nil {
		return err
	}
	Logc(ctx).WithFields(LogFields{
		"controller":      c.Name(),
		"resourceGroupId": resourceGroupID,
		"ldevIds":         ldevIDs,
	}).Debug("Removed ldevs from resource group.")
	return nil
}

func (c *Client) ResourceGroupGet(ctx context.Context, resourceGroupID int) (*ResourceGroup, error) {
	resourceGroup := &ResourceGroup{}
	if err := c.get(ctx, resourceGroupsPath+"/"+strconv.Itoa(resourceGroupID), nil, resourceGroup, false); err != nil {
		return nil, err
	}
	return resourceGroup, nil
}

func (c *Client) VirtualStorageMachineList(ctx context.Context) ([]VirtualStorageMachine, error) {
	var result dataList[VirtualStorageMachine]
	if err := c.get(ctx, virtualStoragesPath, nil, &result, false); err != nil {
		return nil, err
	}
	return result.Data, nil
}
