package controllers

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/ir-lab/pkg/content"
	helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	"go.uber.org/zap"
)

const (
	STATUS_COMING_SOON = "coming_soon"
)

type contentAPI struct {
	baseAPI
	contentService ContentService
}

func NewContentAPI(contentService ContentService, log *zap.Logger) *contentAPI {
	return &contentAPI{
		baseAPI:        newBaseAPI(log),
		contentService: contentService,
	}
}

func (api *contentAPI) Routes(group *helper.RouteGroup) {
	group.GET("/units", api.units)
	group.GET("/assessments/:unit", api.assessment)
	group.POST("/assessments/:unit/grade", api.grade)
	group.GET("/topics/:topic", api.topic)
}

// comingSoon answers 200 with a coming soon marker when err says the content
// does not exist yet. It reports whether it answered.
func (api *contentAPI) comingSoon(w http.ResponseWriter, r *http.Request, id string, err error) bool {
	if !errors.Is(err, content.ErrContentNotFound) {
		return false
	}
	if werr := api.writeJSON(w, http.StatusOK, envelope{"status": STATUS_COMING_SOON, "id": id}, nil); werr != nil {
		api.ServerErrorResponse(w, r, werr)
	}
	return true
}

// units godoc
// @Summary		the units that have an assessment.
// @Tags			content
// @ID units
// @Produce		application/json
// @Router			/api/units [get]
// @Success		200	{array}	string
func (api *contentAPI) units(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	units, err := api.contentService.Units()
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": units}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// assessment godoc
// @Summary		the assessment of a unit, or a coming soon marker.
// @Tags			content
// @ID assessment
// @Param			unit	path	string	true	"unit id"
// @Produce		application/json
// @Router			/api/assessments/{unit} [get]
// @Success		200	{object}	datastructure.Assessment
// @Failure		400	{object}	errorResponse
func (api *contentAPI) assessment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	unitID := ps.ByName("unit")
	assessment, err := api.contentService.Assessment(unitID)
	if api.comingSoon(w, r, unitID, err) {
		return
	}
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": assessment}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// gradeRequest model info
//
//	@Description	chosen option index per question id.
type gradeRequest struct {
	Answers map[string]int `json:"answers" validate:"required,dive,gte=0"`
}

// grade godoc
// @Summary		grade an assessment attempt. Unanswered questions count as wrong.
// @Tags			content
// @ID assessment-grade
// @Param			unit	path	string			true	"unit id"
// @Param			body	body	gradeRequest	true	"answers"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/assessments/{unit}/grade [post]
// @Success		200	{object}	content.GradeResult
// @Failure		400	{object}	errorResponse
func (api *contentAPI) grade(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var request gradeRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	unitID := ps.ByName("unit")
	result, err := api.contentService.Grade(unitID, request.Answers)
	if api.comingSoon(w, r, unitID, err) {
		return
	}
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// topic godoc
// @Summary		the slides of a topic, or a coming soon marker.
// @Tags			content
// @ID topic
// @Param			topic	path	string	true	"topic id"
// @Produce		application/json
// @Router			/api/topics/{topic} [get]
// @Success		200	{object}	datastructure.Topic
// @Failure		400	{object}	errorResponse
func (api *contentAPI) topic(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	topicID := ps.ByName("topic")
	topic, err := api.contentService.Topic(topicID)
	if api.comingSoon(w, r, topicID, err) {
		return
	}
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": topic}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
