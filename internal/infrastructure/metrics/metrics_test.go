package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	counter := RequestsTotal.WithLabelValues("hotel", "test_record_request", OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	RecordRequest("hotel", "test_record_request", OutcomeSuccess, 120*time.Millisecond)
	RecordRequest("hotel", "test_record_request", OutcomeSuccess, 80*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecordEnvelopeFailure(t *testing.T) {
	counter := EnvelopeFailuresTotal.WithLabelValues("booking", "test_envelope", "DATA_MISSING")
	before := testutil.ToFloat64(counter)

	RecordEnvelopeFailure("booking", "test_envelope", "DATA_MISSING")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordCacheLookup(t *testing.T) {
	hits := CacheLookupsTotal.WithLabelValues("test_cache", "hit")
	misses := CacheLookupsTotal.WithLabelValues("test_cache", "miss")

	RecordCacheLookup("test_cache", true)
	RecordCacheLookup("test_cache", false)
	RecordCacheLookup("test_cache", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(hits))
	assert.Equal(t, float64(2), testutil.ToFloat64(misses))
}
