// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
	"time"
)

const (
	/* Misc. constants */
	OrchestratorName = "gadctl"
	gadctlVersion    = "25.10.0"

	/* Storage REST API constants */
	StorageAPITimeoutSeconds = 90
	StorageAPIBasePath       = "/ConfigurationManager/v1/objects"
	StorageAPIDefaultPort    = 443

	// RESTRequestsPerSecond and RESTBurst bound the request rate against a single controller.
	RESTRequestsPerSecond = 10
	RESTBurst             = 5

	/* Asynchronous job constants */
	JobPollInterval = 2 * time.Second
	JobWaitTimeout  = 15 * time.Minute

	/* Logging constants */
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

// Version returns the full version string of this build.
func Version() string {
	switch BuildType {
	case "stable":
		return gadctlVersion
	case "custom":
		return fmt.Sprintf("%v-%v+%v", gadctlVersion, BuildType, BuildHash)
	default:
		return fmt.Sprintf("%v-%v.%v+%v", gadctlVersion, BuildType, BuildTypeRev, BuildHash)
	}
}
