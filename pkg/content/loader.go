package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

var (
	// ErrContentNotFound is recoverable: the unit or topic is not written yet.
	ErrContentNotFound  = errors.New("content not found")
	ErrInvalidContent   = errors.New("invalid content")
	ErrInvalidContentID = errors.New("invalid content id")
)

const (
	ASSESSMENT_DIR = "assessments"
	TOPIC_DIR      = "topics"
)

var contentID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Loader reads the authored course content from dir:
//
//	<dir>/assessments/<unitID>.json
//	<dir>/topics/<topicID>.json
//
// Parsed files are cached until Invalidate is called.
type Loader struct {
	dir      string
	validate *validator.Validate
	mu       sync.RWMutex
	cache    map[string]any
}

func NewLoader(dir string) *Loader {
	validate := validator.New()
	validate.RegisterStructValidation(questionValidation, datastructure.Question{})
	return &Loader{
		dir:      dir,
		validate: validate,
		cache:    make(map[string]any),
	}
}

func questionValidation(sl validator.StructLevel) {
	q := sl.Current().Interface().(datastructure.Question)
	if q.CorrectIndex >= len(q.Options) {
		sl.ReportError(q.CorrectIndex, "CorrectIndex", "correctIndex", "ltoptions", "")
	}
}

func (l *Loader) Dir() string {
	return l.dir
}

func (l *Loader) LoadAssessment(unitID string) (datastructure.Assessment, error) {
	assessment := datastructure.Assessment{}
	err := l.load(ASSESSMENT_DIR, unitID, &assessment)
	return assessment, err
}

func (l *Loader) LoadTopic(topicID string) (datastructure.Topic, error) {
	topic := datastructure.Topic{}
	err := l.load(TOPIC_DIR, topicID, &topic)
	return topic, err
}

func (l *Loader) load(kind, id string, out any) error {
	if !contentID.MatchString(id) {
		return pkg.WrapErrorf(ErrInvalidContentID, pkg.ErrBadParamInput, "%s %q", kind, id)
	}
	path := filepath.Join(l.dir, kind, id+".json")

	l.mu.RLock()
	cached, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		return assign(out, cached)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pkg.WrapErrorf(ErrContentNotFound, pkg.ErrNotFound, "%s %q", kind, id)
		}
		return fmt.Errorf("error when reading %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return pkg.WrapErrorf(fmt.Errorf("%w: %v", ErrInvalidContent, err), pkg.ErrInternalServerError, "%s %q", kind, id)
	}
	if err := l.validate.Struct(out); err != nil {
		return pkg.WrapErrorf(fmt.Errorf("%w: %v", ErrInvalidContent, err), pkg.ErrInternalServerError, "%s %q", kind, id)
	}

	if topic, ok := out.(*datastructure.Topic); ok {
		for i := range topic.Slides {
			topic.Slides[i].Type = ParseSlideType(string(topic.Slides[i].Type))
		}
	}

	l.mu.Lock()
	l.cache[path] = deref(out)
	l.mu.Unlock()
	return nil
}

func deref(v any) any {
	switch t := v.(type) {
	case *datastructure.Assessment:
		return *t
	case *datastructure.Topic:
		return *t
	}
	return v
}

func assign(out any, cached any) error {
	switch t := out.(type) {
	case *datastructure.Assessment:
		*t = cached.(datastructure.Assessment)
	case *datastructure.Topic:
		*t = cached.(datastructure.Topic)
	default:
		return fmt.Errorf("unsupported content type %T", out)
	}
	return nil
}

// Invalidate drops cached content. An empty path drops everything.
func (l *Loader) Invalidate(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if path == "" {
		l.cache = make(map[string]any)
		return
	}
	delete(l.cache, filepath.Clean(path))
}

// ListUnits returns the unit ids that have an assessment file.
func (l *Loader) ListUnits() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.dir, ASSESSMENT_DIR))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	units := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		units = append(units, strings.TrimSuffix(e.Name(), ".json"))
	}
	return units, nil
}

// ParseSlideType maps the authored type to a SlideType; anything unknown is
// rendered as plain text.
func ParseSlideType(s string) datastructure.SlideType {
	switch t := datastructure.SlideType(strings.ToLower(strings.TrimSpace(s))); t {
	case datastructure.SlideList, datastructure.SlideQuiz, datastructure.SlideProject,
		datastructure.SlideDiagram, datastructure.SlideSummary:
		return t
	}
	return datastructure.SlideText
}
