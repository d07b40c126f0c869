// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artcine/internal/platform/middleware"
	requestutil "github.com/taibuivan/artcine/internal/platform/request"
	"github.com/taibuivan/artcine/internal/platform/respond"
)

// Handler implements the catalogue HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new movie [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalogue endpoints. All of them
// require authentication.
//
// # Endpoints
//   - GET /                 : All movies.
//   - GET /{title}          : One movie by title.
//   - GET /genre/{name}     : A genre by name.
//   - GET /director/{name}  : A director by name.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/genre/{name}", handler.genre)
	router.Get("/director/{name}", handler.director)
	router.Get("/{title}", handler.get)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldTitle))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) genre(writer http.ResponseWriter, request *http.Request) {
	genre, err := handler.service.Genre(request.Context(), requestutil.Param(request, FieldName))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

func (handler *Handler) director(writer http.ResponseWriter, request *http.Request) {
	director, err := handler.service.Director(request.Context(), requestutil.Param(request, FieldName))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, director)
}
