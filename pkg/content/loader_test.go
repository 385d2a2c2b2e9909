package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const unit1Assessment = `{
  "title": "Unit 1 Quiz",
  "questions": [
    {"id": "q1", "text": "What does IDF penalize?", "options": ["rare terms", "common terms"], "correctIndex": 1,
     "explanation": "terms found in many documents get a low idf", "topic": "tfidf", "remedial": "vsm"},
    {"id": "q2", "text": "Boolean AND is a...", "options": ["union", "intersection"], "correctIndex": 1,
     "topic": "boolean", "remedial": "boolean"},
    {"id": "q3", "text": "BM25 k1 controls...", "options": ["saturation", "length"], "correctIndex": 0,
     "topic": "bm25", "remedial": "vsm"}
  ]
}`

const boolTopic = `{
  "id": "boolean",
  "title": "Boolean Retrieval",
  "unitId": "unit-2",
  "slides": [
    {"slideNumber": 1, "type": "text", "title": "Sets", "content": "documents are sets of terms"},
    {"slideNumber": 2, "type": "list", "title": "Operators", "items": ["AND", "OR", "NOT"]},
    {"slideNumber": 3, "type": "carousel", "title": "Unknown type"}
  ]
}`

func writeContent(t *testing.T, dir, kind, id, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, kind), 0700))
	path := filepath.Join(dir, kind, id+".json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadAssessment(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, ASSESSMENT_DIR, "unit-1", unit1Assessment)
	writeContent(t, dir, ASSESSMENT_DIR, "unit-9", `{"title": "broken", "questions": [{"id": "q", "text": "?", "options": ["a", "b"], "correctIndex": 2}]}`)
	writeContent(t, dir, ASSESSMENT_DIR, "unit-8", `{"title": `)
	loader := NewLoader(dir)

	t.Run("found", func(t *testing.T) {
		a, err := loader.LoadAssessment("unit-1")
		require.NoError(t, err)
		assert.Equal(t, "Unit 1 Quiz", a.Title)
		require.Len(t, a.Questions, 3)
		assert.Equal(t, 1, a.Questions[0].CorrectIndex)
	})

	t.Run("missing unit is recoverable", func(t *testing.T) {
		_, err := loader.LoadAssessment("unit-7")
		assert.ErrorIs(t, err, ErrContentNotFound)
		assert.Equal(t, pkg.ErrNotFound, pkg.ErrorCode(err))
	})

	t.Run("correct index out of range", func(t *testing.T) {
		_, err := loader.LoadAssessment("unit-9")
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := loader.LoadAssessment("unit-8")
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		_, err := loader.LoadAssessment("../secrets")
		assert.ErrorIs(t, err, ErrInvalidContentID)
		assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	})

	t.Run("list units", func(t *testing.T) {
		units, err := loader.ListUnits()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"unit-1", "unit-8", "unit-9"}, units)
	})
}

func TestLoadTopic(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, TOPIC_DIR, "boolean", boolTopic)
	loader := NewLoader(dir)

	topic, err := loader.LoadTopic("boolean")
	require.NoError(t, err)
	assert.Equal(t, "unit-2", topic.UnitID)
	require.Len(t, topic.Slides, 3)
	assert.Equal(t, datastructure.SlideText, topic.Slides[0].Type)
	assert.Equal(t, datastructure.SlideList, topic.Slides[1].Type)
	assert.Equal(t, []string{"AND", "OR", "NOT"}, topic.Slides[1].Items)
	assert.Equal(t, datastructure.SlideText, topic.Slides[2].Type)

	_, err = loader.LoadTopic("pagerank")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestCacheInvalidation(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir, TOPIC_DIR, "boolean", boolTopic)
	loader := NewLoader(dir)

	_, err := loader.LoadTopic("boolean")
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = loader.LoadTopic("boolean")
	require.NoError(t, err, "served from cache")

	loader.Invalidate(path)
	_, err = loader.LoadTopic("boolean")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir, TOPIC_DIR, "boolean", boolTopic)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ASSESSMENT_DIR), 0700))
	loader := NewLoader(dir)

	_, err := loader.LoadTopic("boolean")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loader.Watch(ctx, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		// rewrite until the watcher is up and has seen a change.
		_ = os.WriteFile(path, []byte(`{"id": "boolean", "title": "Boolean Model", "unitId": "unit-2"}`), 0600)
		topic, err := loader.LoadTopic("boolean")
		return err == nil && topic.Title == "Boolean Model"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestParseSlideType(t *testing.T) {
	assert.Equal(t, datastructure.SlideQuiz, ParseSlideType("quiz"))
	assert.Equal(t, datastructure.SlideSummary, ParseSlideType(" Summary "))
	assert.Equal(t, datastructure.SlideText, ParseSlideType(""))
	assert.Equal(t, datastructure.SlideText, ParseSlideType("video"))
}

func TestGrade(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, ASSESSMENT_DIR, "unit-1", unit1Assessment)
	a, err := NewLoader(dir).LoadAssessment("unit-1")
	require.NoError(t, err)

	t.Run("all correct", func(t *testing.T) {
		res := Grade(a, map[string]int{"q1": 1, "q2": 1, "q3": 0})
		assert.Equal(t, 3, res.Correct)
		assert.Equal(t, 100.0, res.Percent)
		assert.Empty(t, res.Remedial)
	})

	t.Run("wrong and unanswered", func(t *testing.T) {
		res := Grade(a, map[string]int{"q1": 0, "q2": 1})
		assert.Equal(t, 1, res.Correct)
		assert.Equal(t, 3, res.Total)
		assert.InDelta(t, 100.0/3, res.Percent, 1e-9)
		assert.Equal(t, []string{"vsm"}, res.Remedial)
		assert.Equal(t, -1, res.Results[2].Chosen)
		assert.False(t, res.Results[2].Correct)
	})

	t.Run("empty assessment", func(t *testing.T) {
		res := Grade(datastructure.Assessment{}, nil)
		assert.Equal(t, 0.0, res.Percent)
	})
}
