// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/herodex/internal/platform/request"
	"github.com/taibuivan/herodex/internal/platform/respond"
	"github.com/taibuivan/herodex/pkg/pagination"
)

type Handler struct {
	service  *Service
	pageSize int
}

// NewHandler constructs a new comment [Handler].
// pageSize is the fixed number of comments per thread page.
func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// RegisterRoutes mounts the thread endpoints. The router is expected to be
// nested under /heroes/{identifier}, where the identifier is the hero's UUID.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listComments)
	router.Post("/", handler.createComment)
}

// createCommentRequest is the inbound JSON schema for posting a comment.
type createCommentRequest struct {
	Body string `json:"body"`
}

/*
POST /api/v1/heroes/{identifier}/comments.

Description: Posts a comment on a hero's thread. The referenced hero must
exist; the response echoes the stored comment with the hero populated.

Request body:
  - body: string (required, bounded length)

Response:
  - 201: Comment (hero populated)
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND (unknown hero)
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	heroID := requestutil.Param(request, "identifier")

	var body createCommentRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateComment(request.Context(), heroID, body.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
GET /api/v1/heroes/{identifier}/comments.

Description: One page of the hero's thread, newest comment first.

Request:
  - page: int (1-based; anything unparsable or below 1 becomes 1)

Response:
  - 200: []Comment + count + pagination block
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	heroID := requestutil.Param(request, "identifier")
	paginationParams := pagination.FromRequest(request, handler.pageSize)

	comments, total, err := handler.service.ListComments(request.Context(), heroID, paginationParams.Size, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if comments == nil {
		comments = []*Comment{}
	}

	respond.Paginated(writer, comments, total, pagination.NewMeta(paginationParams.Page, paginationParams.Size, total))
}
