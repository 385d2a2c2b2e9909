package journey_di

import (
	"github.com/lintang-b-s/ir-lab/pkg/dataset"
	"github.com/lintang-b-s/ir-lab/pkg/kvdb"
	"github.com/lintang-b-s/ir-lab/pkg/learning"
)

func New(db *kvdb.KVDB) (*learning.Tracker, error) {
	journey, err := learning.NewJourney(dataset.Journey())
	if err != nil {
		return nil, err
	}
	return learning.NewTracker(journey, db), nil
}
