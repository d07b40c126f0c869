// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys shared by the middleware
// chain and the handlers. Values are read and written through ctxutil.
package ctxkey

// key keeps these values apart from context keys defined by other packages.
type key uint8

const (
	// KeyRequestID holds the X-Request-ID correlation value (string).
	KeyRequestID key = iota + 1

	// KeyIdentity holds the caller resolved from the bearer token (*identity.Identity).
	KeyIdentity

	// KeyLogger holds the per-request *slog.Logger.
	KeyLogger
)
