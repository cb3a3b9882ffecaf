// Copyright 2025 NetApp, Inc. All Rights Reserved.

package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertSizeToBytes(t *testing.T) {
	d := map[string]uint64{
		"512":      512,
		"1KB":      1000,
		"1Ki":      1024,
		"1KiB":     1024,
		"4k":       4096,
		"1gi":      1073741824,
		"1GiB":     1073741824,
		"1gb":      1000000000,
		"1g":       1073741824,
		"10G":      10737418240,
		"10.00 G":  10737418240,
		"1.50 T":   1649267441664,
		" 20 GB ":  20000000000,
		"100bytes": 100,
	}

	for size, expected := range d {
		actual, err := ConvertSizeToBytes(size)
		assert.NoError(t, err, "size %q", size)
		assert.Equal(t, expected, actual, "size %q", size)
	}
}

func TestConvertSizeToBytesInvalid(t *testing.T) {
	for _, size := range []string{"", "G", "ten gigs", "-1G", "1.5"} {
		_, err := ConvertSizeToBytes(size)
		assert.Error(t, err, "size %q", size)
	}
}

func TestBlockConversions(t *testing.T) {
	assert.Equal(t, uint64(10737418240), BlocksToBytes(20971520))
	assert.Equal(t, uint64(20971520), BytesToBlocks(10737418240))
	assert.Equal(t, uint64(1), BytesToBlocks(1))
	assert.Equal(t, uint64(0), BytesToBlocks(0))
}

func TestFormatLdevHex(t *testing.T) {
	assert.Equal(t, "00:00:0A", FormatLdevHex(10))
	assert.Equal(t, "00:01:2C", FormatLdevHex(300))
	assert.Equal(t, "00:FF:FF", FormatLdevHex(65535))
	assert.Equal(t, "", FormatLdevHex(-1))
}

func TestRedactHeaders(t *testing.T) {
	header := http.Header{}
	header.Set("Authorization", "Session abc")
	header.Set("Remote-Authorization", "Session def")
	header.Set("Accept", "application/json")

	redacted := redactHeaders(header)
	assert.Equal(t, []string{REDACTED}, redacted["Authorization"])
	assert.Equal(t, []string{REDACTED}, redacted["Remote-Authorization"])
	assert.Equal(t, []string{"application/json"}, redacted["Accept"])
	assert.Equal(t, "Session abc", header.Get("Authorization"), "source header must not change")
}

func TestPtr(t *testing.T) {
	p := Ptr(5)
	assert.Equal(t, 5, *p)
}
