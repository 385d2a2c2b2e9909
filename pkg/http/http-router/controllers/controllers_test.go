package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/content"
	"github.com/lintang-b-s/ir-lab/pkg/dataset"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/ir-lab/pkg/http/usecases"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/learning"
	"github.com/lintang-b-s/ir-lab/pkg/searcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJourney struct {
	completeErr error
	read        map[string]bool
}

func (f *fakeJourney) NewLearner() string { return "learner-1" }

func (f *fakeJourney) Progress(learnerID string) (learning.Progress, error) {
	return learning.Progress{LearnerID: learnerID, Completed: []string{}}, nil
}

func (f *fakeJourney) Complete(learnerID, nodeID string) (learning.Progress, error) {
	if f.completeErr != nil {
		return learning.Progress{}, f.completeErr
	}
	return learning.Progress{LearnerID: learnerID, Completed: []string{nodeID}}, nil
}

func (f *fakeJourney) MarkRead(learnerID, topicID string, read bool) error {
	f.read[learnerID+"/"+topicID] = read
	return nil
}

func (f *fakeJourney) IsRead(learnerID, topicID string) (bool, error) {
	return f.read[learnerID+"/"+topicID], nil
}

type fakeContent struct{}

func (fakeContent) Assessment(unitID string) (datastructure.Assessment, error) {
	return datastructure.Assessment{}, pkg.WrapErrorf(content.ErrContentNotFound, pkg.ErrNotFound, "assessment %s", unitID)
}

func (fakeContent) Grade(unitID string, answers map[string]int) (content.GradeResult, error) {
	return content.GradeResult{}, pkg.WrapErrorf(content.ErrContentNotFound, pkg.ErrNotFound, "assessment %s", unitID)
}

func (fakeContent) Topic(topicID string) (datastructure.Topic, error) {
	return datastructure.Topic{ID: topicID, Title: "Introduction"}, nil
}

func (fakeContent) Units() ([]string, error) {
	return []string{"unit-1"}, nil
}

func newTestRouter(t *testing.T, journey *fakeJourney) *httprouter.Router {
	t.Helper()
	idx, err := index.IndexDocuments(dataset.Documents(), analyzer.NewLabAnalyzer())
	require.NoError(t, err)
	log := zap.NewNop()
	labService := usecases.NewLabService(log, idx,
		usecases.LabData{Graph: dataset.LinkGraph(), Dictionary: dataset.Dictionary(), Palette: dataset.Palette()},
		usecases.LabDefaults{
			BM25:               searcher.DefaultBM25Params,
			Rocchio:            searcher.DefaultRocchioParams,
			PageRankDamping:    0.85,
			PageRankIterations: 20,
		})

	router := httprouter.New()
	group := helper.NewRouteGroup(router, "/api")
	NewLabAPI(labService, log).Routes(group)
	NewJourneyAPI(journey, log).Routes(group)
	NewContentAPI(fakeContent{}, log).Routes(group)
	return router
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestLabEndpoints(t *testing.T) {
	router := newTestRouter(t, &fakeJourney{read: map[string]bool{}})

	t.Run("bm25 ranks the color document first", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/labs/bm25",
			map[string]any{"query": "image color retrieval", "k1": 1.2, "b": 0.75})
		require.Equal(t, http.StatusOK, rec.Code)

		var result usecases.RankingResult
		require.NoError(t, json.Unmarshal(out["data"], &result))
		require.NotEmpty(t, result.Docs)
		assert.Equal(t, 4, result.Docs[0].Document.ID)
	})

	t.Run("bm25 without parameters is rejected", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/labs/bm25", map[string]any{"query": "image"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(out["error"]), "k1")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/labs/vsm", map[string]any{"query": "image", "top": 3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pagerank damping out of range", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/labs/pagerank", map[string]any{"damping": 1.5})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pagerank graph too large", func(t *testing.T) {
		nodes := make([]string, 1001)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("n%d", i)
		}
		rec, out := do(t, router, http.MethodPost, "/api/labs/pagerank",
			map[string]any{"graph": map[string]any{"nodes": nodes}, "iterations": 1000})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(out["error"]), "nodes")
	})

	t.Run("pagerank on the default graph", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/labs/pagerank", map[string]any{})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(out["data"]), "\"ranks\"")
	})

	t.Run("rocchio with an unknown document", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/labs/rocchio",
			map[string]any{"query": "retrieval", "relevant": []int{42}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("spell suggests from the lab dictionary", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/labs/spell", map[string]any{"word": "Retreival"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(out["data"]), "\"retrieval\"")
	})

	t.Run("color needs a query color", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/labs/color", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestJourneyEndpoints(t *testing.T) {
	journey := &fakeJourney{read: map[string]bool{}}
	router := newTestRouter(t, journey)

	t.Run("new learner", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/learners", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"learner_id":"learner-1"}`, string(out["data"]))
	})

	t.Run("complete an unlocked node", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/journey/learner-1/complete", map[string]any{"node_id": "intro"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("complete a locked node", func(t *testing.T) {
		journey.completeErr = pkg.WrapErrorf(learning.ErrLocked, pkg.ErrConflict, "node bm25")
		defer func() { journey.completeErr = nil }()

		rec, out := do(t, router, http.MethodPost, "/api/journey/learner-1/complete", map[string]any{"node_id": "bm25"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, string(out["error"]), "locked")
	})

	t.Run("complete without a node", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/api/journey/learner-1/complete", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("mark read defaults to true", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/topics/intro/read/learner-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"read":true}`, string(out["data"]))

		rec, out = do(t, router, http.MethodGet, "/api/topics/intro/read/learner-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"read":true}`, string(out["data"]))
	})

	t.Run("mark unread", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/topics/intro/read/learner-1", map[string]any{"read": false})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"read":false}`, string(out["data"]))
	})
}

func TestContentEndpoints(t *testing.T) {
	router := newTestRouter(t, &fakeJourney{read: map[string]bool{}})

	t.Run("missing assessment is coming soon", func(t *testing.T) {
		rec, out := do(t, router, http.MethodGet, "/api/assessments/unit-9", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `"coming_soon"`, string(out["status"]))
		assert.JSONEq(t, `"unit-9"`, string(out["id"]))
	})

	t.Run("grading a missing assessment is coming soon", func(t *testing.T) {
		rec, out := do(t, router, http.MethodPost, "/api/assessments/unit-9/grade",
			map[string]any{"answers": map[string]int{"q1": 0}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `"coming_soon"`, string(out["status"]))
	})

	t.Run("topic", func(t *testing.T) {
		rec, out := do(t, router, http.MethodGet, "/api/topics/intro", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(out["data"]), "Introduction")
	})

	t.Run("units", func(t *testing.T) {
		rec, out := do(t, router, http.MethodGet, "/api/units", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["unit-1"]`, string(out["data"]))
	})
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "bad param", err: pkg.WrapErrorf(searcher.ErrEmptyQuery, pkg.ErrBadParamInput, "q"), want: http.StatusBadRequest},
		{name: "not found", err: pkg.WrapErrorf(learning.ErrUnknownNode, pkg.ErrNotFound, "x"), want: http.StatusNotFound},
		{name: "conflict", err: pkg.WrapErrorf(learning.ErrLocked, pkg.ErrConflict, "x"), want: http.StatusConflict},
		{name: "plain", err: assert.AnError, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getStatusCode(tt.err))
		})
	}
}
