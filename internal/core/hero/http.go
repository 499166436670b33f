// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hero provides the HTTP interface for catalog discovery.

# Routing Strategy

All endpoints are public and read-only. Search filters arrive two ways for
client compatibility: the single-purpose searches (name, stats) read a JSON
body, while the combined search reads the query string.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package hero

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/herodex/internal/platform/request"
	"github.com/taibuivan/herodex/internal/platform/respond"
	"github.com/taibuivan/herodex/pkg/convert"
	"github.com/taibuivan/herodex/pkg/pagination"
)

// Handler implements the HTTP layer for catalog discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service  *Service
	pageSize int
}

// NewHandler constructs a new hero [Handler] with its service dependency.
// pageSize is the fixed number of heroes per list page.
func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// RegisterRoutes mounts the hero domain's endpoints onto router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listHeroes)
	router.Get("/search", handler.searchHeroes)
	router.Post("/search/name", handler.searchByName)
	router.Post("/search/stats", handler.searchByStats)
	router.Get("/{identifier}", handler.getHero)
}

// # Catalog Endpoints

/*
GET /api/v1/heroes.

Description: Retrieves the full roster, paginated, sorted by name ascending.

Request:
  - page: int (1-based; anything unparsable or below 1 becomes 1)

Response:
  - 200: []Hero + count + pagination block
*/
func (handler *Handler) listHeroes(writer http.ResponseWriter, request *http.Request) {
	handler.respondList(writer, request, Filter{})
}

/*
GET /api/v1/heroes/{identifier}.

Description: Retrieves a single hero by UUID or name slug.

Response:
  - 200: Hero
  - 404: NOT_FOUND
*/
func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	hero, err := handler.service.GetHero(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, hero)
}

// # Search Endpoints

// searchByNameRequest is the inbound JSON schema for the name search.
type searchByNameRequest struct {
	Name string `json:"name"`
}

/*
POST /api/v1/heroes/search/name.

Description: Case-insensitive prefix search on the hero name. An empty or
missing name matches every hero (every name starts with the empty string).
Pattern metacharacters in the input are matched literally.

Request body:
  - name: string

Response:
  - 200: []Hero + count + pagination block
*/
func (handler *Handler) searchByName(writer http.ResponseWriter, request *http.Request) {
	var body searchByNameRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondList(writer, request, Filter{Name: body.Name})
}

// searchByStatsRequest is the inbound JSON schema for the minimum-stats search.
type searchByStatsRequest struct {
	Powerstats map[string]int `json:"powerstats"`
}

/*
POST /api/v1/heroes/search/stats.

Description: Returns heroes meeting every supplied stat lower bound
(logical AND). Stats absent from the mapping are unconstrained; an empty
mapping matches every hero. Unknown keys are ignored.

Request body:
  - powerstats: map[string]int (e.g. {"speed": 100, "combat": 50})

Response:
  - 200: []Hero + count + pagination block
*/
func (handler *Handler) searchByStats(writer http.ResponseWriter, request *http.Request) {
	var body searchByStatsRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondList(writer, request, Filter{MinStats: body.Powerstats})
}

/*
GET /api/v1/heroes/search.

Description: Combined filter search. All filters arrive via the query string;
any parameter left unset is passed through as unconstrained.

Request:
  - name: string (case-insensitive prefix)
  - gender: string (exact match)
  - intelligence, strength, speed, durability, power, combat: int (lower bounds)
  - page: int

Response:
  - 200: []Hero + count + pagination block
*/
func (handler *Handler) searchHeroes(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	filter := Filter{
		Name:   queryParams.Get(FieldName),
		Gender: queryParams.Get(FieldGender),
	}

	// A stat constrains the search only when its parameter is present.
	// Non-numeric values parse to 0, a vacuous lower bound.
	for _, stat := range StatKeys() {
		if raw := queryParams.Get(stat); raw != "" {
			if filter.MinStats == nil {
				filter.MinStats = make(map[string]int, len(StatKeys()))
			}
			filter.MinStats[stat] = convert.ToInt(raw)
		}
	}

	handler.respondList(writer, request, filter)
}

// respondList runs the shared list pipeline: page params, service call,
// paginated envelope.
func (handler *Handler) respondList(writer http.ResponseWriter, request *http.Request, filter Filter) {
	paginationParams := pagination.FromRequest(request, handler.pageSize)

	heroes, total, err := handler.service.ListHeroes(request.Context(), filter, paginationParams.Size, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Keep the JSON data field an array even when the page is empty.
	if heroes == nil {
		heroes = []*Hero{}
	}

	respond.Paginated(writer, heroes, total, pagination.NewMeta(paginationParams.Page, paginationParams.Size, total))
}
