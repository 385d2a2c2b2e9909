package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsInitialization(t *testing.T) {
	assert.NotNil(t, LabComputationsTotal)
	assert.NotNil(t, LabErrorsTotal)
	assert.NotNil(t, LabComputationDuration)
	assert.NotNil(t, NodesCompletedTotal)
	assert.NotNil(t, ContentComingSoonTotal)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
}

func TestObserveLab(t *testing.T) {
	okBefore := testutil.ToFloat64(LabComputationsTotal.WithLabelValues("test-lab"))
	errBefore := testutil.ToFloat64(LabErrorsTotal.WithLabelValues("test-lab"))

	ObserveLab("test-lab", time.Now(), nil)
	ObserveLab("test-lab", time.Now(), errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(LabComputationsTotal.WithLabelValues("test-lab")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(LabErrorsTotal.WithLabelValues("test-lab")))
}
