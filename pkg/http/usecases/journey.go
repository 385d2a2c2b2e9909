package usecases

import (
	"errors"

	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/kvdb"
	"github.com/lintang-b-s/ir-lab/pkg/learning"
	"github.com/lintang-b-s/ir-lab/pkg/metrics"
	"go.uber.org/zap"
)

type JourneyService struct {
	log     *zap.Logger
	tracker ProgressTracker
}

func NewJourneyService(log *zap.Logger, tracker ProgressTracker) *JourneyService {
	return &JourneyService{
		log:     log,
		tracker: tracker,
	}
}

// NewLearner hands out a learner id. Nothing is stored until the learner
// completes a node or reads a topic.
func (s *JourneyService) NewLearner() string {
	return kvdb.NewLearnerID()
}

func (s *JourneyService) Progress(learnerID string) (learning.Progress, error) {
	return s.tracker.Progress(learnerID)
}

func (s *JourneyService) Complete(learnerID, nodeID string) (learning.Progress, error) {
	progress, err := s.tracker.Complete(learnerID, nodeID)
	switch {
	case errors.Is(err, learning.ErrUnknownNode):
		return learning.Progress{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "complete")
	case errors.Is(err, learning.ErrLocked):
		return learning.Progress{}, pkg.WrapErrorf(err, pkg.ErrConflict, "complete")
	case err != nil:
		return learning.Progress{}, err
	}

	if node, ok := s.tracker.Journey().Node(nodeID); ok {
		metrics.NodesCompletedTotal.WithLabelValues(node.Unit).Inc()
	}
	s.log.Info("learning node completed", zap.String("learner", learnerID), zap.String("node", nodeID))
	return progress, nil
}

func (s *JourneyService) MarkRead(learnerID, topicID string, read bool) error {
	return s.tracker.MarkRead(learnerID, topicID, read)
}

func (s *JourneyService) IsRead(learnerID, topicID string) (bool, error) {
	return s.tracker.IsRead(learnerID, topicID)
}
