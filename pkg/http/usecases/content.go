package usecases

import (
	"errors"

	"github.com/lintang-b-s/ir-lab/pkg/content"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/metrics"
	"go.uber.org/zap"
)

type ContentService struct {
	log    *zap.Logger
	loader ContentLoader
}

func NewContentService(log *zap.Logger, loader ContentLoader) *ContentService {
	return &ContentService{
		log:    log,
		loader: loader,
	}
}

func (s *ContentService) Assessment(unitID string) (datastructure.Assessment, error) {
	assessment, err := s.loader.LoadAssessment(unitID)
	s.observe("assessment", err)
	return assessment, err
}

func (s *ContentService) Grade(unitID string, answers map[string]int) (content.GradeResult, error) {
	assessment, err := s.loader.LoadAssessment(unitID)
	if err != nil {
		s.observe("assessment", err)
		return content.GradeResult{}, err
	}
	return content.Grade(assessment, answers), nil
}

func (s *ContentService) Topic(topicID string) (datastructure.Topic, error) {
	topic, err := s.loader.LoadTopic(topicID)
	s.observe("topic", err)
	return topic, err
}

func (s *ContentService) Units() ([]string, error) {
	return s.loader.ListUnits()
}

func (s *ContentService) observe(kind string, err error) {
	switch {
	case errors.Is(err, content.ErrContentNotFound):
		metrics.ContentComingSoonTotal.WithLabelValues(kind).Inc()
	case err != nil:
		s.log.Error("failed to load content", zap.String("kind", kind), zap.Error(err))
	}
}
