// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(buildType, buildHash, buildTypeRev string) {
		BuildType, BuildHash, BuildTypeRev = buildType, buildHash, buildTypeRev
	}(BuildType, BuildHash, BuildTypeRev)

	BuildHash = "abc123"
	BuildTypeRev = "2"

	BuildType = "stable"
	assert.Equal(t, gadctlVersion, Version())

	BuildType = "custom"
	assert.Equal(t, gadctlVersion+"-custom+abc123", Version())

	BuildType = "beta"
	assert.Equal(t, gadctlVersion+"-beta.2+abc123", Version())
}
