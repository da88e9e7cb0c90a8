package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordWriteOutcome(t *testing.T) {
	okBefore := testutil.ToFloat64(writes.WithLabelValues("venue", "create", "ok"))
	errBefore := testutil.ToFloat64(writes.WithLabelValues("venue", "create", "error"))

	RecordWrite("venue", "create", nil)
	RecordWrite("venue", "create", errors.New("boom"))
	RecordWrite("venue", "create", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(writes.WithLabelValues("venue", "create", "ok")))
	assert.Equal(t, errBefore+2, testutil.ToFloat64(writes.WithLabelValues("venue", "create", "error")))
}

func TestObserveRequestCounts(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/venues/{venueID}", "200"))
	ObserveRequest("GET", "/venues/{venueID}", 200, 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/venues/{venueID}", "200")))
}

func TestRecordSeed(t *testing.T) {
	before := testutil.ToFloat64(seeds)
	RecordSeed()
	assert.Equal(t, before+1, testutil.ToFloat64(seeds))
}
