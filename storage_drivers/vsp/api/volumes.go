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
	ldevsPath = "/ldevs"
	lunsPath  = "/luns"

	// maxFreeLdevCount bounds the number of free ldevs requested in one matching-allocation query.
	maxFreeLdevCount = 100
)

type actionParameters struct {
	Parameters any `json:"parameters"`
}

func ldevPath(ldevID int) string {
	return ldevsPath + "/" + strconv.Itoa(ldevID)
}

func ldevActionPath(ldevID int, action string) string {
	return ldevPath(ldevID) + "/actions/" + action + "/invoke"
}

// VolumeCreate creates an ldev and returns its id. When the request names an ldev id that is
// already in use, the error satisfies IsAlreadyExists.
func (c *Client) VolumeCreate(ctx context.Context, request *VolumeCreateRequest) (int, error) {
	if c.config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "VolumeCreate", "Type": "Client", "poolId": request.PoolID}
		Logc(ctx).WithFields(fields).Debug(">>>> VolumeCreate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< VolumeCreate")
	}

	job, err := c.modify(ctx, http.MethodPost, ldevsPath, request, false)
	if err != nil {
		if IsAlreadyExists(err) && request.LdevID != nil {
			return 0, errors.WrapWithAlreadyExistsError(err, "ldev %d is already defined", *request.LdevID)
		}
		return 0, err
	}

	resource, err := affectedResource(job)
	if err != nil {
		if request.LdevID != nil {
			return *request.LdevID, nil
		}
		return 0, err
	}

	ldevID, err := strconv.Atoi(resource)
	if err != nil {
		return 0, fmt.Errorf("could not parse ldev id %q; %v", resource, err)
	}

	Logc(ctx).WithFields(LogFields{"controller": c.Name(), "ldevId": ldevID}).Debug("Created ldev.")
	return ldevID, nil
}

// VolumeGet returns one ldev. An ldev id that is not defined on the controller is reported as not found.
func (c *Client) VolumeGet(ctx context.Context, ldevID int) (*Volume, error) {
	volume := &Volume{}
	if err := c.get(ctx, ldevPath(ldevID), nil, volume, false); err != nil {
		if IsNotFound(err) {
			return nil, errors.WrapWithNotFoundError(err, "ldev %d not found", ldevID)
		}
		return nil, err
	}
	if !volume.IsDefined() {
		return nil, errors.NotFoundError("ldev %d not found", ldevID)
	}
	return volume, nil
}

func (c *Client) VolumeDelete(ctx context.Context, ldevID int, force bool) error {
	if c.config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "VolumeDelete", "Type": "Client", "ldevId": ldevID, "force": force}
		Logc(ctx).WithFields(fields).Debug(">>>> VolumeDelete")
		defer Logc(ctx).WithFields(fields).Debug("<<<< VolumeDelete")
	}

	var body any
	if force {
		body = map[string]bool{"isDataReductionDeleteForceExecute": true}
	}
	_, err := c.modify(ctx, http.MethodDelete, ldevPath(ldevID), body, false)
	return err
}

// LunPathDelete removes one LUN mapping.
func (c *Client) LunPathDelete(ctx context.Context, port LunPort) error {
	lunID := fmt.Sprintf("%s,%d,%d", port.PortID, port.HostGroupNumber, port.Lun)
	_, err := c.modify(ctx, http.MethodDelete, lunsPath+"/"+objectPath(lunID), nil, false)
	return err
}

// VolumeSettingsChange sets the label and, when isAluaEnabled is non-nil, the ALUA flag of an ldev.
func (c *Client) VolumeSettingsChange(ctx context.Context, ldevID int, label string, isAluaEnabled *bool) error {
	body := map[string]any{}
	if label != "" {
		body["label"] = label
	}
	if isAluaEnabled != nil {
		body["isAluaEnabled"] = *isAluaEnabled
	}
	if len(body) == 0 {
		return nil
	}

	_, err := c.modify(ctx, http.MethodPatch, ldevPath(ldevID), body, false)
	return err
}

func (c *Client) VirtualLdevAssign(ctx context.Context, ldevID, virtualLdevID int) error {
	body := actionParameters{Parameters: map[string]int{"virtualLdevId": virtualLdevID}}
	_, err := c.modify(ctx, http.MethodPost, ldevActionPath(ldevID, "assign-virtual-ldevid"), body, false)
	return err
}

func (c *Client) VirtualLdevUnassign(ctx context.Context, ldevID, virtualLdevID int) error {
	body := actionParameters{Parameters: map[string]int{"virtualLdevId": virtualLdevID}}
	_, err := c.modify(ctx, http.MethodPost, ldevActionPath(ldevID, "unassign-virtual-ldevid"), body, false)
	return err
}

// FreeLdevsMatchingPvol lists free ldevs starting at the primary's id, so a free id equal to the
// primary's comes first when there is one.
func (c *Client) FreeLdevsMatchingPvol(ctx context.Context, pvolLdevID int) ([]Volume, error) {
	return c.freeLdevs(ctx, pvolLdevID, maxFreeLdevCount)
}

// FreeLdevsInRange lists free ldevs with begin <= id <= end.
func (c *Client) FreeLdevsInRange(ctx context.Context, begin, end int) ([]Volume, error) {
	if end < begin {
		return nil, errors.InvalidInputError("invalid ldev range %d-%d", begin, end)
	}
	volumes, err := c.freeLdevs(ctx, begin, end-begin+1)
	if err != nil {
		return nil, err
	}

	inRange := make([]Volume, 0, len(volumes))
	for _, volume := range volumes {
		if volume.LdevID >= begin && volume.LdevID <= end {
			inRange = append(inRange, volume)
		}
	}
	return inRange, nil
}

func (c *Client) freeLdevs(ctx context.Context, headLdevID, count int) ([]Volume, error) {
	query := url.Values{}
	query.Set("ldevOption", "undefined")
	query.Set("headLdevId", strconv.Itoa(headLdevID))
	query.Set("count", strconv.Itoa(count))

	var result dataList[Volume]
	if err := c.get(ctx, ldevsPath, query, &result, false); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"controller": c.Name(),
		"headLdevId": headLdevID,
		"count":      len(result.Data),
	}).Debug("Read free ldevs.")

	return result.Data, nil
}
