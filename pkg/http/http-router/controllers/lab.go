package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"go.uber.org/zap"
)

type labAPI struct {
	baseAPI
	labService LabService
}

func NewLabAPI(labService LabService, log *zap.Logger) *labAPI {
	return &labAPI{
		baseAPI:    newBaseAPI(log),
		labService: labService,
	}
}

func (api *labAPI) Routes(group *helper.RouteGroup) {
	labs := group.Group("/labs")
	labs.GET("/dataset", api.dataset)
	labs.POST("/preprocess", api.preprocess)
	labs.POST("/boolean", api.boolean)
	labs.POST("/vsm", api.vsm)
	labs.POST("/bm25", api.bm25)
	labs.POST("/structured", api.structured)
	labs.POST("/rocchio", api.rocchio)
	labs.POST("/pagerank", api.pagerank)
	labs.POST("/spell", api.spell)
	labs.POST("/color", api.color)
}

// dataset godoc
// @Summary		the toy corpus, link graph, dictionary and palette the labs run on.
// @Tags			labs
// @ID lab-dataset
// @Produce		application/json
// @Router			/api/labs/dataset [get]
// @Success		200	{object}	usecases.LabDataset
func (api *labAPI) dataset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.labService.Dataset()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// preprocessRequest model info
//
//	@Description	request body of the preprocessing lab.
type preprocessRequest struct {
	Text     string `json:"text" validate:"required"`                                   // raw text to analyze.
	Language string `json:"language" validate:"omitempty,oneof=lab english indonesian"` // stemmer to use, lab by default.
}

// preprocess godoc
// @Summary		tokenize, remove stopwords and stem a text, returning every stage.
// @Tags			labs
// @ID lab-preprocess
// @Param			body	body	preprocessRequest	true	"text to analyze"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/preprocess [post]
// @Success		200	{object}	analyzer.PreprocessTrace
// @Failure		400	{object}	errorResponse
func (api *labAPI) preprocess(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request preprocessRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	trace, err := api.labService.Preprocess(request.Text, request.Language)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": trace}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// booleanRequest model info
//
//	@Description	either a term list joined by one operator or a full boolean expression.
type booleanRequest struct {
	Terms      []string `json:"terms" validate:"required_without=Expression,dive,required"` // terms joined by operator.
	Operator   string   `json:"operator" validate:"omitempty,oneof=AND OR and or"`          // AND (default) or OR.
	Expression string   `json:"expression"`                                                 // e.g. (retrieval OR search) AND NOT image.
}

// boolean godoc
// @Summary		boolean retrieval over the lab corpus.
// @Tags			labs
// @ID lab-boolean
// @Param			body	body	booleanRequest	true	"terms or expression"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/boolean [post]
// @Success		200	{object}	usecases.BooleanResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) boolean(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request booleanRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	result, err := api.labService.Boolean(request.Terms, request.Operator, request.Expression)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// queryRequest model info
//
//	@Description	a free text query.
type queryRequest struct {
	Query string `json:"query" validate:"required"` // query entered by the user.
}

// vsm godoc
// @Summary		rank the lab corpus by tf-idf cosine similarity.
// @Tags			labs
// @ID lab-vsm
// @Param			body	body	queryRequest	true	"query"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/vsm [post]
// @Success		200	{object}	usecases.RankingResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) vsm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request queryRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.labService.VSM(request.Query)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// bm25Request model info
//
//	@Description	a query with the bm25 free parameters.
type bm25Request struct {
	Query string   `json:"query" validate:"required"`         // query entered by the user.
	K1    *float64 `json:"k1" validate:"required,gte=0"`      // term frequency saturation.
	B     *float64 `json:"b" validate:"required,gte=0,lte=1"` // length normalization.
}

// bm25 godoc
// @Summary		rank the lab corpus with okapi bm25.
// @Tags			labs
// @ID lab-bm25
// @Param			body	body	bm25Request	true	"query and parameters"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/bm25 [post]
// @Success		200	{object}	usecases.RankingResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) bm25(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request bm25Request
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	params := searcher.BM25Params{K1: *request.K1, B: *request.B}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.labService.BM25(request.Query, params)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// structuredRequest model info
//
//	@Description	field:term constraints joined by AND, with optional field weights.
type structuredRequest struct {
	Query   string             `json:"query" validate:"required"`               // e.g. title:retrieval AND body:"inverted index".
	Weights map[string]float64 `json:"weights" validate:"omitempty,dive,gte=0"` // field -> weight, defaults when empty.
}

// structured godoc
// @Summary		rank the documents whose fields contain every query term.
// @Tags			labs
// @ID lab-structured
// @Param			body	body	structuredRequest	true	"structured query"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/structured [post]
// @Success		200	{object}	usecases.StructuredResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) structured(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request structuredRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	result := api.labService.Structured(request.Query, searcher.FieldWeights(request.Weights))
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// rocchioRequest model info
//
//	@Description	a query with relevance judgments on corpus documents.
type rocchioRequest struct {
	Query       string   `json:"query" validate:"required"`
	Relevant    []int    `json:"relevant" validate:"dive,gte=0"`
	NonRelevant []int    `json:"non_relevant" validate:"dive,gte=0"`
	Alpha       *float64 `json:"alpha" validate:"omitempty,gte=0"`
	Beta        *float64 `json:"beta" validate:"omitempty,gte=0"`
	Gamma       *float64 `json:"gamma" validate:"omitempty,gte=0"`
}

// rocchio godoc
// @Summary		move the query vector toward relevant documents and re-rank.
// @Tags			labs
// @ID lab-rocchio
// @Param			body	body	rocchioRequest	true	"query and judgments"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/rocchio [post]
// @Success		200	{object}	usecases.RocchioResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) rocchio(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request rocchioRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	params := api.labService.Defaults().Rocchio
	if request.Alpha != nil {
		params.Alpha = *request.Alpha
	}
	if request.Beta != nil {
		params.Beta = *request.Beta
	}
	if request.Gamma != nil {
		params.Gamma = *request.Gamma
	}

	result, err := api.labService.Rocchio(request.Query, request.Relevant, request.NonRelevant, params)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// pagerankRequest model info
//
//	@Description	pagerank parameters; every field is optional.
type pagerankRequest struct {
	Graph      *datastructure.Graph `json:"graph" validate:"omitempty"`                     // defaults to the lab link graph.
	Damping    *float64             `json:"damping" validate:"omitempty,gte=0,lte=1"`       // probability of following a link.
	Iterations *int                 `json:"iterations" validate:"omitempty,gte=0,lte=1000"` // fixed number of power iterations.
}

// pagerank godoc
// @Summary		run a fixed number of pagerank iterations and return every intermediate vector.
// @Tags			labs
// @ID lab-pagerank
// @Param			body	body	pagerankRequest	true	"graph and parameters"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/pagerank [post]
// @Success		200	{object}	linkanalysis.PageRankResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) pagerank(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request pagerankRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	result, err := api.labService.PageRank(request.Graph, request.Damping, request.Iterations)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// spellRequest model info
//
//	@Description	a word to correct against a dictionary.
type spellRequest struct {
	Word       string   `json:"word" validate:"required"`
	Dictionary []string `json:"dictionary" validate:"dive,required"` // defaults to the lab dictionary.
}

// spell godoc
// @Summary		suggest up to three dictionary words within edit distance 2.
// @Tags			labs
// @ID lab-spell
// @Param			body	body	spellRequest	true	"word"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/spell [post]
// @Success		200	{object}	usecases.SpellResult
// @Failure		400	{object}	errorResponse
func (api *labAPI) spell(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request spellRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.labService.Spell(request.Word, request.Dictionary)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// colorRequest model info
//
//	@Description	a query color and optionally the images to rank.
type colorRequest struct {
	Color *datastructure.RGB        `json:"color" validate:"required"`
	Items []datastructure.ImageItem `json:"items"` // defaults to the lab palette.
}

// color godoc
// @Summary		rank images by similarity 1/(1+d) of their dominant color to the query color.
// @Tags			labs
// @ID lab-color
// @Param			body	body	colorRequest	true	"query color"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/labs/color [post]
// @Success		200	{array}	datastructure.ScoredImage
// @Failure		400	{object}	errorResponse
func (api *labAPI) color(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request colorRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.labService.Color(*request.Color, request.Items)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
