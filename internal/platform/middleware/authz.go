// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/constants"
	"github.com/taibuivan/artcine/internal/platform/ctxutil"
	"github.com/taibuivan/artcine/internal/platform/respond"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// Authorizer resolves an Authorization header into the calling identity.
//
// Defining it here keeps the middleware independent of the auth package and
// lets tests inject a stub.
type Authorizer interface {
	Authorize(ctx context.Context, authorizationHeader string) (*identity.Identity, error)
}

// authFailureKey holds the error reported by the [Authorizer] for a request
// that carried an unusable Authorization header.
type authFailureKey struct{}

// Authenticate resolves the bearer token on every request that carries one.
//
// # Flow
//  1. No Authorization header: the request proceeds as anonymous.
//  2. Otherwise the [Authorizer] verifies the token and reloads the identity.
//     On failure the request still proceeds as anonymous and the error is
//     kept for [RequireAuth], so public routes ignore a stale header.
//  3. The identity is injected into the context and the request logger.
func Authenticate(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			caller, err := authorizer.Authorize(request.Context(), authHeader)
			if err != nil {
				ctx := context.WithValue(request.Context(), authFailureKey{}, err)
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), caller)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("username", caller.Username)))
			if trace := traceFrom(ctx); trace != nil {
				trace.username = caller.Username
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// A rejected token is reported with the error [Authenticate] recorded (401,
// or 500 when the store is unreachable); a missing header gets a plain 401.
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			if err, ok := request.Context().Value(authFailureKey{}).(error); ok {
				respond.Error(writer, request, err)
				return
			}
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
