package datastructure

// LearningNode model info
// @Description a lesson of the learning journey. A node is unlocked once all of its prerequisites are completed.
type LearningNode struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Unit          string   `json:"unit"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites"`
}

func NewLearningNode(id, title, unit string, prerequisites ...string) LearningNode {
	return LearningNode{
		ID:            id,
		Title:         title,
		Unit:          unit,
		Prerequisites: prerequisites,
	}
}
