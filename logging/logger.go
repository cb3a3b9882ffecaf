// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Logc returns a log entry carrying the request identity stored in ctx.
func Logc(ctx context.Context) *log.Entry {
	if ctx == nil {
		ctx = context.Background()
	}

	entry := log.WithFields(log.Fields{
		"requestID":     ctx.Value(ContextKeyRequestID),
		"requestSource": ctx.Value(ContextKeyRequestSource),
	})

	if val := ctx.Value(ContextKeyController); val != nil {
		entry = entry.WithField(string(ContextKeyController), val)
	}

	return entry
}

// Logd is Logc for method-trace lines; when traceEnabled is false the entry is routed to a
// discarding logger so callers don't need to guard every trace call.
func Logd(ctx context.Context, traceEnabled bool) *log.Entry {
	if !traceEnabled {
		return log.NewEntry(discardLogger)
	}
	return Logc(ctx)
}

// GenerateRequestContext returns a context carrying a request ID and source, keeping any
// values already present in ctx.
func GenerateRequestContext(ctx context.Context, requestID, requestSource string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return ctx
}

// WithController tags ctx so that log lines name the storage controller being addressed.
func WithController(ctx context.Context, serial string) context.Context {
	return context.WithValue(ctx, ContextKeyController, serial)
}
