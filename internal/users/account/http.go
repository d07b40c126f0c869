// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artcine/internal/platform/middleware"
	requestutil "github.com/taibuivan/artcine/internal/platform/request"
	"github.com/taibuivan/artcine/internal/platform/respond"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// Handler implements the HTTP layer for user accounts.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
//
// # Endpoints
//   - POST   /                            : Register (public).
//   - GET    /                            : All users.
//   - GET    /{username}                  : One user.
//   - PUT    /{username}                  : Update own profile.
//   - DELETE /{username}                  : Delete own account.
//   - POST   /{username}/movies/{movieID} : Add a favorite.
//   - DELETE /{username}/movies/{movieID} : Remove a favorite.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.register)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", handler.list)
		r.Get("/{username}", handler.get)
		r.Put("/{username}", handler.update)
		r.Delete("/{username}", handler.delete)

		r.Post("/{username}/movies/{movieID}", handler.addFavorite)
		r.Delete("/{username}/movies/{movieID}", handler.removeFavorite)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

type updateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Birthday *string `json:"birthday"`
}

/*
POST /users.

Description: Registers a new account. The response never contains the
password hash.

Response:
  - 201: Identity
  - 400: Malformed JSON or username already taken
  - 422: Validation failure with per-field details
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Register(request.Context(), RegisterInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.accountService.Get(request.Context(), requestutil.Param(request, identity.FieldUsername))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
PUT /users/{username}.

Description: Partially updates the caller's own profile. Only the fields
present in the body change.

Response:
  - 200: Updated identity
  - 400: Not the owner, malformed JSON or new username taken
  - 404: User not found
  - 422: Validation failure
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := requestutil.Param(request, identity.FieldUsername)
	if !caller.Owns(username) {
		respond.Error(writer, request, ErrPermissionDenied)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), caller, username, UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := requestutil.Param(request, identity.FieldUsername)
	if err := handler.accountService.Delete(request.Context(), caller, username); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, username+" was deleted")
}

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.AddFavorite(request.Context(), caller,
		requestutil.Param(request, identity.FieldUsername),
		requestutil.Param(request, FieldMovieID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.RemoveFavorite(request.Context(), caller,
		requestutil.Param(request, identity.FieldUsername),
		requestutil.Param(request, FieldMovieID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
