// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artcine/internal/platform/request"
	"github.com/taibuivan/artcine/internal/platform/respond"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// # Definitions & Constructors

// Handler implements the login endpoint.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] for the login endpoint, mounted at /login.
//
// # Endpoints
//   - POST / : Authenticates and returns the user with a JWT.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.login)
	return router
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Login exchanges a username and password for an access token.

POST /login

Request:
  - Body: loginRequest, or the username and password query parameters when
    the body is empty or omits them

Response:
  - 200: LoginResult (user, token, expires_at)
  - 400: Malformed JSON
  - 401: Incorrect username or password
  - 429: Too many failed attempts
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	query := request.URL.Query()
	if input.Username == "" {
		input.Username = query.Get(identity.FieldUsername)
	}
	if input.Password == "" {
		input.Password = query.Get(identity.FieldPassword)
	}

	result, err := handler.authService.Login(request.Context(), LoginInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
