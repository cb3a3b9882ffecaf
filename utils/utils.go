// Copyright 2025 NetApp, Inc. All Rights Reserved.

package utils

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	. "github.com/netapp/gadctl/logging"
)

const (
	REDACTED = "<REDACTED>"

	// BlockSize is the size of one logical block as reported in an ldev's blockCapacity.
	BlockSize = 512
)

// ///////////////////////////////////////////////////////////////////////////
//
// Binary units
//
// ///////////////////////////////////////////////////////////////////////////

type sizeUnits []string

func (s sizeUnits) Len() int {
	return len(s)
}

func (s sizeUnits) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s sizeUnits) Less(i, j int) bool {
	return len(s[i]) > len(s[j])
}

var (
	lookupTable2  = make(map[string]int)
	units2        = sizeUnits{}
	lookupTable10 = make(map[string]int)
	units10       = sizeUnits{}
)

func init() {
	// Storage arrays report "G" and "T" meaning GiB and TiB, so the bare letters are binary.
	for exp, letter := range []string{"k", "m", "g", "t", "p", "e"} {
		lookupTable2[letter] = exp + 1
		lookupTable2[letter+"i"] = exp + 1
		lookupTable2[letter+"ib"] = exp + 1
	}
	lookupTable10["b"] = 0
	lookupTable10["bytes"] = 0
	for exp, letter := range []string{"k", "m", "g", "t", "p", "e"} {
		lookupTable10[letter+"b"] = exp + 1
	}

	// The slices of units are used to ensure that they are accessed by suffix from longest to
	// shortest, i.e. match 'tib' before matching 'b'.
	for unit := range lookupTable2 {
		units2 = append(units2, unit)
	}
	sort.Sort(units2)
	for unit := range lookupTable10 {
		units10 = append(units10, unit)
	}
	sort.Sort(units10)
}

// ConvertSizeToBytes converts a human-readable size to bytes. Both the "10G" form used in task
// files and the "10.00 G" form the REST API reports in byteFormatCapacity are accepted.
func ConvertSizeToBytes(s string) (uint64, error) {
	// make lowercase and squeeze spaces so units detection always works
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, fmt.Errorf("invalid size value ''")
	}

	// first look for binary units
	for _, unit := range units2 {
		if strings.HasSuffix(s, unit) {
			return scaleSize(strings.TrimSuffix(s, unit), 1024, lookupTable2[unit])
		}
	}

	// fall back to SI units
	for _, unit := range units10 {
		if strings.HasSuffix(s, unit) {
			return scaleSize(strings.TrimSuffix(s, unit), 1000, lookupTable10[unit])
		}
	}

	// no valid units found, so ensure the value is a number
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value '%s': %v", s, err)
	}
	return value, nil
}

func scaleSize(number string, base float64, exponent int) (uint64, error) {
	value, err := strconv.ParseFloat(number, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid size value '%s': %v", number, err)
	}
	return uint64(math.Round(value * math.Pow(base, float64(exponent)))), nil
}

// BlocksToBytes converts a blockCapacity to a byte count.
func BlocksToBytes(blocks uint64) uint64 {
	return blocks * BlockSize
}

// BytesToBlocks converts a byte count to whole blocks, rounding up.
func BytesToBlocks(bytes uint64) uint64 {
	return (bytes + BlockSize - 1) / BlockSize
}

// FormatLdevHex renders an ldev id the way the storage management tools display it, e.g. 00:01:2C.
func FormatLdevHex(ldevID int) string {
	if ldevID < 0 {
		return ""
	}
	hex := fmt.Sprintf("%06X", ldevID)
	return hex[0:2] + ":" + hex[2:4] + ":" + hex[4:6]
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// ///////////////////////////////////////////////////////////////////////////
//
// HTTP tracing
//
// ///////////////////////////////////////////////////////////////////////////

var redactedHeaders = []string{"Authorization", "Remote-Authorization"}

func redactHeaders(header http.Header) map[string][]string {
	headers := make(map[string][]string)
	for k, v := range header {
		headers[k] = v
	}
	for _, h := range redactedHeaders {
		if _, ok := headers[h]; ok {
			headers[h] = []string{REDACTED}
		}
	}
	return headers
}

func LogHTTPRequest(request *http.Request, requestBody []byte, redactBody bool) {
	header := ">>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>"
	footer := "--------------------------------------------------------------------------------"

	requestURL, _ := url.Parse(request.URL.String())
	requestURL.User = nil

	var body string
	if requestBody == nil {
		body = "<nil>"
	} else if redactBody {
		body = REDACTED
	} else {
		body = string(requestBody)
	}

	Logc(request.Context()).Debugf("\n%s\n%s %s\nHeaders: %v\nBody: %s\n%s",
		header, request.Method, requestURL, redactHeaders(request.Header), body, footer)
}

func LogHTTPResponse(ctx context.Context, response *http.Response, responseBody []byte, redactBody bool) {
	header := "<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<"
	footer := "================================================================================"

	var body string
	if responseBody == nil {
		body = "<nil>"
	} else if redactBody {
		body = REDACTED
	} else {
		body = string(responseBody)
	}

	Logc(ctx).Debugf("\n%s\nStatus: %s\nHeaders: %v\nBody: %s\n%s",
		header, response.Status, redactHeaders(response.Header), body, footer)
}
