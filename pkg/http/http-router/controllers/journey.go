package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	"go.uber.org/zap"
)

type journeyAPI struct {
	baseAPI
	journeyService JourneyService
}

func NewJourneyAPI(journeyService JourneyService, log *zap.Logger) *journeyAPI {
	return &journeyAPI{
		baseAPI:        newBaseAPI(log),
		journeyService: journeyService,
	}
}

func (api *journeyAPI) Routes(group *helper.RouteGroup) {
	group.POST("/learners", api.newLearner)
	group.GET("/journey/:learner", api.progress)
	group.POST("/journey/:learner/complete", api.complete)
	group.GET("/topics/:topic/read/:learner", api.isRead)
	group.POST("/topics/:topic/read/:learner", api.markRead)
}

// newLearner godoc
// @Summary		hand out a new learner id.
// @Tags			journey
// @ID new-learner
// @Produce		application/json
// @Router			/api/learners [post]
// @Success		201	{object}	map[string]string
func (api *journeyAPI) newLearner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := api.journeyService.NewLearner()
	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": envelope{"learner_id": id}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// progress godoc
// @Summary		the learning journey of a learner with every node's lock state.
// @Tags			journey
// @ID journey-progress
// @Param			learner	path	string	true	"learner id"
// @Produce		application/json
// @Router			/api/journey/{learner} [get]
// @Success		200	{object}	learning.Progress
// @Failure		400	{object}	errorResponse
func (api *journeyAPI) progress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	progress, err := api.journeyService.Progress(ps.ByName("learner"))
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": progress}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// completeRequest model info
//
//	@Description	the learning node to mark completed.
type completeRequest struct {
	NodeID string `json:"node_id" validate:"required"`
}

// complete godoc
// @Summary		complete a learning node. Locked nodes are refused.
// @Tags			journey
// @ID journey-complete
// @Param			learner	path	string			true	"learner id"
// @Param			body	body	completeRequest	true	"node"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/journey/{learner}/complete [post]
// @Success		200	{object}	learning.Progress
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		409	{object}	errorResponse
func (api *journeyAPI) complete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var request completeRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	progress, err := api.journeyService.Complete(ps.ByName("learner"), request.NodeID)
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": progress}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// readRequest model info
//
//	@Description	read flag of a topic; true when left out.
type readRequest struct {
	Read *bool `json:"read"`
}

// markRead godoc
// @Summary		mark a topic as read or unread for a learner.
// @Tags			journey
// @ID topic-mark-read
// @Param			topic	path	string		true	"topic id"
// @Param			learner	path	string		true	"learner id"
// @Param			body	body	readRequest	false	"read flag"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/topics/{topic}/read/{learner} [post]
// @Success		200	{object}	map[string]bool
// @Failure		400	{object}	errorResponse
func (api *journeyAPI) markRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	read := true
	if r.ContentLength != 0 {
		var request readRequest
		if !api.decodeAndValidate(w, r, &request) {
			return
		}
		if request.Read != nil {
			read = *request.Read
		}
	}

	if err := api.journeyService.MarkRead(ps.ByName("learner"), ps.ByName("topic"), read); err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"read": read}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// isRead godoc
// @Summary		whether a learner has read a topic.
// @Tags			journey
// @ID topic-is-read
// @Param			topic	path	string	true	"topic id"
// @Param			learner	path	string	true	"learner id"
// @Produce		application/json
// @Router			/api/topics/{topic}/read/{learner} [get]
// @Success		200	{object}	map[string]bool
// @Failure		400	{object}	errorResponse
func (api *journeyAPI) isRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	read, err := api.journeyService.IsRead(ps.ByName("learner"), ps.ByName("topic"))
	if err != nil {
		api.handleError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"read": read}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
