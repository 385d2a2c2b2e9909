package learning

import (
	"sync"
)

// ProgressStore persists the completed set and the per topic read flags of a
// learner. Loads and saves are explicit.
type ProgressStore interface {
	LoadCompleted(learnerID string) ([]string, error)
	SaveCompleted(learnerID string, completed []string) error
	MarkRead(learnerID, topicID string, read bool) error
	IsRead(learnerID, topicID string) (bool, error)
}

// Progress model info
// @Description the learning journey as seen by one learner.
type Progress struct {
	LearnerID string         `json:"learner_id"`
	Completed []string       `json:"completed"`
	Nodes     []NodeStatus   `json:"nodes"`
	Units     []UnitProgress `json:"units"`
}

// Tracker applies journey rules to stored progress. The read-modify-write of
// Complete is serialized so concurrent requests of one learner do not lose
// updates.
type Tracker struct {
	journey *Journey
	store   ProgressStore
	mu      sync.Mutex
}

func NewTracker(journey *Journey, store ProgressStore) *Tracker {
	return &Tracker{journey: journey, store: store}
}

func (t *Tracker) Journey() *Journey {
	return t.journey
}

func (t *Tracker) Progress(learnerID string) (Progress, error) {
	completed, err := t.store.LoadCompleted(learnerID)
	if err != nil {
		return Progress{}, err
	}
	return t.progress(learnerID, completed), nil
}

func (t *Tracker) progress(learnerID string, completed []string) Progress {
	set := CompletedSet(completed)
	return Progress{
		LearnerID: learnerID,
		Completed: completed,
		Nodes:     t.journey.Status(set),
		Units:     t.journey.UnitProgress(set),
	}
}

func (t *Tracker) Complete(learnerID, nodeID string) (Progress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	completed, err := t.store.LoadCompleted(learnerID)
	if err != nil {
		return Progress{}, err
	}
	updated, err := t.journey.Complete(nodeID, completed)
	if err != nil {
		return Progress{}, err
	}
	if len(updated) != len(completed) {
		if err := t.store.SaveCompleted(learnerID, updated); err != nil {
			return Progress{}, err
		}
	}
	return t.progress(learnerID, updated), nil
}

func (t *Tracker) MarkRead(learnerID, topicID string, read bool) error {
	return t.store.MarkRead(learnerID, topicID, read)
}

func (t *Tracker) IsRead(learnerID, topicID string) (bool, error) {
	return t.store.IsRead(learnerID, topicID)
}
