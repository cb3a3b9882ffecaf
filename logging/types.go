// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"
	ContextKeyController    ContextKey = "controller"

	ContextSourceCLI      = "CLI"
	ContextSourceInternal = "Internal"

	TextFormat = "text"
	JSONFormat = "json"

	// MaxLogEntryLength caps a single console line; REST dumps of large ldev lists can be huge.
	MaxLogEntryLength = 64000
)

// ContextKey is used for context.Context value. The value requires a key that is not primitive type.
type ContextKey string

// LogFields is interchangeable with logrus fields so it can be passed straight to WithFields.
type LogFields = log.Fields
