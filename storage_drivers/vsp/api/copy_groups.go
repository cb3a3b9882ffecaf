// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	. "github.com/netapp/gadctl/logging"
	"github.com/netapp/gadctl/utils/errors"
)

const (
	copyGroupsPath = "/remote-mirror-copygroups"
	copyPairsPath  = "/remote-mirror-copypairs"
)

func copyPairPath(copyPairID string) string {
	return copyPairsPath + "/" + objectPath(copyPairID)
}

func copyPairActionPath(copyPairID, action string) string {
	return copyPairPath(copyPairID) + "/actions/" + action + "/invoke"
}

// GADPairCreate creates a GAD pair and returns its copy pair id.
func (c *Client) GADPairCreate(ctx context.Context, request *GADPairCreateRequest) (string, error) {
	if c.config.DebugTraceFlags["method"] {
		fields := LogFields{
			"Method":        "GADPairCreate",
			"Type":          "Client",
			"copyGroupName": request.CopyGroupName,
			"copyPairName":  request.CopyPairName,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> GADPairCreate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< GADPairCreate")
	}

	body := *request
	if body.ReplicationType == "" {
		body.ReplicationType = ReplicationTypeGAD
	}
	if body.RemoteStorageDeviceID == "" {
		remoteID, err := c.remoteStorageDeviceID(ctx)
		if err != nil {
			return "", err
		}
		body.RemoteStorageDeviceID = remoteID
	}

	job, err := c.modify(ctx, http.MethodPost, copyPairsPath, &body, true)
	if err != nil {
		return "", err
	}

	if copyPairID, err := affectedResource(job); err == nil {
		return copyPairID, nil
	}

	// The controller may have named the device groups itself, so the id is read back.
	result, err := c.GADPairGetByName(ctx, body.CopyGroupName, body.CopyPairName)
	if err != nil {
		return "", fmt.Errorf("could not read created copy pair %s of copy group %s; %w",
			body.CopyPairName, body.CopyGroupName, err)
	}
	pair := FirstPair(result)
	if pair.RemoteMirrorCopyPairID != "" {
		return pair.RemoteMirrorCopyPairID, nil
	}
	return CopyPairID(body.RemoteStorageDeviceID, pair.CopyGroupName, pair.LocalDeviceGroupName,
		pair.RemoteDeviceGroupName, pair.CopyPairName), nil
}

func (c *Client) pairAction(ctx context.Context, copyPairID, action string, parameters map[string]any) (string,
	error,
) {
	parameters["replicationType"] = ReplicationTypeGAD
	body := actionParameters{Parameters: parameters}

	job, err := c.modify(ctx, http.MethodPost, copyPairActionPath(copyPairID, action), body, true)
	if err != nil {
		return "", err
	}

	Logc(ctx).WithFields(LogFields{
		"controller": c.Name(),
		"copyPairId": copyPairID,
		"action":     action,
		"parameters": parameters,
	}).Debug("Invoked copy pair action.")

	if resource, err := affectedResource(job); err == nil {
		return resource, nil
	}
	return copyPairID, nil
}

func (c *Client) GADPairSplit(ctx context.Context, copyPairID string) (string, error) {
	return c.pairAction(ctx, copyPairID, "split", map[string]any{})
}

func (c *Client) GADPairResync(ctx context.Context, copyPairID string) (string, error) {
	return c.pairAction(ctx, copyPairID, "resync", map[string]any{})
}

// GADPairSwapSplit splits the pair leaving the secondary writable (SSWS).
func (c *Client) GADPairSwapSplit(ctx context.Context, copyPairID string) (string, error) {
	return c.pairAction(ctx, copyPairID, "split", map[string]any{"svolOperationMode": "SSWS"})
}

// GADPairSwapResync resynchronizes the pair with the secondary taking the primary role.
func (c *Client) GADPairSwapResync(ctx context.Context, copyPairID string) (string, error) {
	return c.pairAction(ctx, copyPairID, "resync", map[string]any{"doSwapSvol": true})
}

// GADPairSwapSplitToPSUS converges a pair whose secondary is in SSWS to a plain split.
func (c *Client) GADPairSwapSplitToPSUS(ctx context.Context, copyPairID string) (string, error) {
	return c.pairAction(ctx, copyPairID, "split", map[string]any{"svolOperationMode": "PSUS"})
}

// GADPairResize grows both volumes of a pair by the same number of blocks.
func (c *Client) GADPairResize(ctx context.Context, pair *CopyPair, additionalBlocks uint64) error {
	_, err := c.pairAction(ctx, pair.RemoteMirrorCopyPairID, "expand",
		map[string]any{"additionalBlockCapacity": additionalBlocks})
	return err
}

func (c *Client) GADPairDelete(ctx context.Context, copyPairID string) error {
	if c.config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "GADPairDelete", "Type": "Client", "copyPairId": copyPairID}
		Logc(ctx).WithFields(fields).Debug(">>>> GADPairDelete")
		defer Logc(ctx).WithFields(fields).Debug("<<<< GADPairDelete")
	}

	_, err := c.modify(ctx, http.MethodDelete, copyPairPath(copyPairID), nil, true)
	return err
}

// copyGroups reads every copy group shared with the remote controller, with member pairs.
// Pairs inherit the group's naming, which the controller only reports at group level.
func (c *Client) copyGroups(ctx context.Context) ([]CopyGroup, error) {
	remoteID, err := c.remoteStorageDeviceID(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("remoteStorageDeviceId", remoteID)
	query.Set("detailInfoType", "pair")

	var result dataList[CopyGroup]
	if err = c.get(ctx, copyGroupsPath, query, &result, true); err != nil {
		return nil, err
	}

	groups := make([]CopyGroup, 0, len(result.Data))
	for _, group := range result.Data {
		pairs := make([]CopyPair, 0, len(group.CopyPairs))
		for _, pair := range group.CopyPairs {
			if pair.ReplicationType != "" && pair.ReplicationType != ReplicationTypeGAD {
				continue
			}
			if pair.CopyGroupName == "" {
				pair.CopyGroupName = group.CopyGroupName
			}
			if pair.LocalDeviceGroupName == "" {
				pair.LocalDeviceGroupName = group.LocalDeviceGroupName
			}
			if pair.RemoteDeviceGroupName == "" {
				pair.RemoteDeviceGroupName = group.RemoteDeviceGroupName
			}
			if pair.MuNumber == nil {
				pair.MuNumber = group.MuNumber
			}
			pairs = append(pairs, pair)
		}
		group.CopyPairs = pairs
		groups = append(groups, group)
	}
	return groups, nil
}

// CopyGroupGetByName returns a copy group with its pairs.
func (c *Client) CopyGroupGetByName(ctx context.Context, copyGroupName string) (CopyGroupResult, error) {
	groups, err := c.copyGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.CopyGroupName == copyGroupName {
			return GroupWithPairs{Group: group}, nil
		}
	}
	return nil, errors.NotFoundError("copy group %s not found", copyGroupName)
}

func (c *Client) CopyPairGetByID(ctx context.Context, copyPairID string) (*CopyPair, error) {
	pair := &CopyPair{}
	if err := c.get(ctx, copyPairPath(copyPairID), nil, pair, true); err != nil {
		if IsNotFound(err) {
			return nil, errors.WrapWithNotFoundError(err, "copy pair %s not found", copyPairID)
		}
		return nil, err
	}
	return pair, nil
}

// CopyPairList lists the GAD pairs of one copy group, or of every copy group if no name is given.
func (c *Client) CopyPairList(ctx context.Context, copyGroupName string) (CopyGroupResult, error) {
	groups, err := c.copyGroups(ctx)
	if err != nil {
		return nil, err
	}
	pairs := make([]CopyPair, 0)
	for _, group := range groups {
		if copyGroupName == "" || group.CopyGroupName == copyGroupName {
			pairs = append(pairs, group.CopyPairs...)
		}
	}
	return PairList{Pairs: pairs}, nil
}

// GADPairGetByName finds one pair by copy group and copy pair name.
func (c *Client) GADPairGetByName(ctx context.Context, copyGroupName, copyPairName string) (CopyGroupResult,
	error,
) {
	groups, err := c.copyGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.CopyGroupName != copyGroupName {
			continue
		}
		for _, pair := range group.CopyPairs {
			if pair.CopyPairName == copyPairName {
				return SinglePair{Pair: pair}, nil
			}
		}
	}
	return nil, errors.NotFoundError("copy pair %s not found in copy group %s", copyPairName, copyGroupName)
}

// GADPairGetByPvol finds the pair in which the given local ldev is the primary.
func (c *Client) GADPairGetByPvol(ctx context.Context, pvolLdevID int) (*CopyPair, error) {
	return c.findPair(ctx, func(pair *CopyPair, localID string) bool {
		return pair.PvolLdevID == pvolLdevID && (pair.PvolStorageDeviceID == "" || pair.PvolStorageDeviceID == localID)
	}, "no GAD pair has primary ldev %d", pvolLdevID)
}

// GADPairGetBySvol finds the pair in which the given local ldev is the secondary.
func (c *Client) GADPairGetBySvol(ctx context.Context, svolLdevID int) (*CopyPair, error) {
	return c.findPair(ctx, func(pair *CopyPair, localID string) bool {
		return pair.SvolLdevID == svolLdevID && (pair.SvolStorageDeviceID == "" || pair.SvolStorageDeviceID == localID)
	}, "no GAD pair has secondary ldev %d", svolLdevID)
}

func (c *Client) findPair(
	ctx context.Context, match func(*CopyPair, string) bool, notFound string, a ...any,
) (*CopyPair, error) {
	info, err := c.StorageInfo(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := c.copyGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		for _, pair := range group.CopyPairs {
			if match(&pair, info.StorageDeviceID) {
				return &pair, nil
			}
		}
	}
	return nil, errors.NotFoundError(notFound, a...)
}
