package controllers

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"go.uber.org/zap"
)

var (
	regexSearch = regexp.MustCompile(`^[A-Za-z0-9_ +,.()'"-]+$`)
)

type searchAPI struct {
	baseAPI
	searchService SearchService
}

func NewSearchAPI(searchService SearchService, log *zap.Logger) *searchAPI {
	return &searchAPI{
		baseAPI:       newBaseAPI(log),
		searchService: searchService,
	}
}

func (api *searchAPI) Routes(group *helper.RouteGroup) {
	group.POST("/search", api.search)
	group.POST("/search/boolean", api.booleanSearch)
	group.POST("/autocomplete", api.autocomplete)
}

// searchRequest model info
//
//	@Description	request body for full text search.
type searchRequest struct {
	Query  string `json:"query" validate:"required"`                // query entered by the user.
	TopK   int    `json:"top_k" validate:"omitempty,min=1,max=100"` // the number of relevant documents you want to display in the full text search results.
	Offset int    `json:"offset" validate:"min=0"`                  // offset for pagination
}

// searchResponse model info
//
//	@Description	response body for full text search.
type searchResponse struct {
	Data searcher.SearchResult `json:"data"` // ranked documents with the corrected query.
}

// search godoc
// @Summary		search operation to find documents relevant to the query given by the user. Support spelling correction.
// @Description	search operation to find documents relevant to the query given by the user. Out of vocabulary terms are corrected to the closest index term.
// @Tags			search
// @ID search
// @Param			body	body	searchRequest	true	"query"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}
	if !regexSearch.MatchString(request.Query) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: query must be alphanumeric or contain special characters: +, ., (, ), ,, ', \", -"))
		return
	}

	results, err := api.searchService.Search(request.Query, request.TopK, request.Offset)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// booleanSearch godoc
// @Summary		boolean search with AND, OR, NOT and parentheses.
// @Tags			search
// @ID boolean-search
// @Param			body	body	queryRequest	true	"boolean expression"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search/boolean [post]
// @Success		200	{array}	datastructure.Document
// @Failure		400	{object}	errorResponse
func (api *searchAPI) booleanSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request queryRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	docs, err := api.searchService.BooleanSearch(request.Query)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": docs}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// autocompleteRequest model info
//
//	@Description	request body for term autocompletion.
type autocompleteRequest struct {
	Prefix string `json:"prefix" validate:"required"`          // what the user typed so far.
	K      int    `json:"k" validate:"omitempty,min=1,max=50"` // maximum number of completions.
}

// autocomplete godoc
// @Summary		autocomplete operation returns index terms starting with the prefix, most frequent first.
// @Tags			search
// @ID autocomplete
// @Param			body	body	autocompleteRequest	true	"prefix"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocomplete [post]
// @Success		200	{array}	string
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request autocompleteRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	results, err := api.searchService.Autocomplete(request.Prefix, request.K)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
