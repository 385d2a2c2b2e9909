package datastructure

// Question model info
// @Description one multiple choice question of a unit assessment.
type Question struct {
	ID           string   `json:"id" validate:"required"`
	Text         string   `json:"text" validate:"required"`
	Options      []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correctIndex" validate:"min=0"`
	Explanation  string   `json:"explanation"`
	Topic        string   `json:"topic"`
	Remedial     string   `json:"remedial"` // topic id to revisit after a wrong answer
}

// Assessment model info
// @Description a unit assessment as authored in content/assessments/<unit>.json.
type Assessment struct {
	Title     string     `json:"title" validate:"required"`
	Questions []Question `json:"questions" validate:"required,min=1,dive"`
}

type SlideType string

const (
	SlideText    SlideType = "text"
	SlideList    SlideType = "list"
	SlideQuiz    SlideType = "quiz"
	SlideProject SlideType = "project"
	SlideDiagram SlideType = "diagram"
	SlideSummary SlideType = "summary"
)

// Slide model info
// @Description a slide of a topic. Type selects how the slide is rendered; optional fields depend on it.
type Slide struct {
	SlideNumber int       `json:"slideNumber" validate:"min=1"`
	Type        SlideType `json:"type"`
	Title       string    `json:"title" validate:"required"`
	Content     string    `json:"content"`
	Items       []string  `json:"items,omitempty"`
	Formula     string    `json:"formula,omitempty"`
	SubTopics   []string  `json:"subTopics,omitempty"`
}

// Topic model info
// @Description a topic as authored in content/topics/<id>.json.
type Topic struct {
	ID     string  `json:"id" validate:"required"`
	Title  string  `json:"title" validate:"required"`
	UnitID string  `json:"unitId" validate:"required"`
	Slides []Slide `json:"slides" validate:"dive"`
}
