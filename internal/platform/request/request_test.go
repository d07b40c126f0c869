// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/artcine/internal/platform/request"
	"github.com/taibuivan/artcine/internal/platform/validate"
	"github.com/taibuivan/artcine/internal/users/identity"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Username string `json:"username"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"username":"alice01"}`, false},
		{"malformed", `{"username":`, true},
		{"empty", ``, true},
		{"trailing_object", `{"username":"a"}{"username":"b"}`, true},
		{"oversized", `{"username":"` + strings.Repeat("a", requestutil.MaxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target payload
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			err := requestutil.DecodeJSON(request, &target)
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrInvalidJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice01", target.Username)
		})
	}
}

func TestParam(t *testing.T) {
	var got string
	router := chi.NewRouter()
	router.Get("/movies/{title}", func(w http.ResponseWriter, r *http.Request) {
		got = requestutil.Param(r, "title")
	})

	tests := []struct {
		target string
		want   string
	}{
		{"/movies/Silent%20Light", "Silent Light"},
		{"/movies/AC%2FDC%20Live", "AC/DC Live"},
		{"/movies/100%25", "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredIdentity(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := requestutil.RequiredIdentity(request)
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))

	caller := &identity.Identity{Username: "alice01"}
	request = request.WithContext(ctxutil.WithIdentity(request.Context(), caller))

	got, err := requestutil.RequiredIdentity(request)
	require.NoError(t, err)
	assert.Same(t, caller, got)
}
