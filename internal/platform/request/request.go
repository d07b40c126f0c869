// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides chi's parameter lookup and the JSON body decoding behind a few
helpers so every handler reports bad input the same way.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/ctxutil"
	"github.com/taibuivan/artcine/internal/platform/validate"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// MaxBodyBytes bounds every decoded request body.
const MaxBodyBytes = 64 << 10

/*
DecodeJSON reads a single JSON object from the request body into target.

Returns:
  - error: validate.ErrInvalidJSON for malformed, oversized or trailing input
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, MaxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	if decoder.More() {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.

Titles and names may contain characters the client had to escape (an
encoded slash, for instance). chi matches on the raw path in that case, so
the value is unescaped here.
*/
func Param(request *http.Request, name string) string {
	value := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

/*
RequiredIdentity ensures the request is authenticated and returns the caller.

Returns:
  - *identity.Identity: The resolved caller
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredIdentity(request *http.Request) (*identity.Identity, error) {
	caller := ctxutil.GetIdentity(request.Context())
	if caller == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return caller, nil
}
