package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/prometheus/prompb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScrapeRegistry(t *testing.T) {
	registry, err := NewScrapeRegistry()
	require.NoError(t, err)
	require.NotNil(t, registry)
	require.NotNil(t, registry.Handler())
}

func TestScrapeRegistry_CounterVec(t *testing.T) {
	registry, err := NewScrapeRegistry()
	require.NoError(t, err)

	counterVec, err := registry.NewCounterVec(prometheus.CounterOpts{
		Name: "signups_total",
		Help: "Total signup attempts.",
	}, []string{"activity", "outcome"})
	require.NoError(t, err)

	counterVec.With(prometheus.Labels{"activity": "Chess Club", "outcome": "ok"}).Inc()
	counterVec.With(prometheus.Labels{"activity": "Chess Club", "outcome": "ok"}).Add(2)

	// The sample should show up on the scrape endpoint.
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	registry.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "signups_total")
	assert.Contains(t, body, `activity="Chess Club"`)
}

func TestScrapeRegistry_DuplicateRegistration(t *testing.T) {
	registry, err := NewScrapeRegistry()
	require.NoError(t, err)

	opts := prometheus.GaugeOpts{Name: "activity_participants", Help: "h"}
	_, err = registry.NewGauge(opts)
	require.NoError(t, err)

	_, err = registry.NewGauge(opts)
	assert.Error(t, err)
}

func TestNewPushRegistry(t *testing.T) {
	registry := NewPushRegistry(PushConfig{
		URL:      "http://localhost:8428",
		Prefix:   "mergington_activities",
		Job:      "activities",
		Instance: "school",
	})
	require.NotNil(t, registry)
	require.NotNil(t, registry.pusher)
}

// decodeWriteRequest unpacks a snappy-compressed remote write body.
func decodeWriteRequest(t *testing.T, r *http.Request) *prompb.WriteRequest {
	t.Helper()

	assert.Equal(t, "snappy", r.Header.Get("Content-Encoding"))
	assert.Equal(t, "application/x-protobuf", r.Header.Get("Content-Type"))
	assert.Equal(t, "0.1.0", r.Header.Get("X-Prometheus-Remote-Write-Version"))

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	decoded, err := snappy.Decode(nil, body)
	require.NoError(t, err)

	var req prompb.WriteRequest
	require.NoError(t, proto.Unmarshal(decoded, &req))
	return &req
}

func TestPushGauge_Set(t *testing.T) {
	received := make(chan *prompb.WriteRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- decodeWriteRequest(t, r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	registry := NewPushRegistry(PushConfig{
		URL:    server.URL,
		Prefix: "mergington_activities",
		Job:    "activities",
	})

	gaugeVec, err := registry.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_participants",
	}, []string{"activity"})
	require.NoError(t, err)

	gaugeVec.With(prometheus.Labels{"activity": "Chess Club"}).Set(7)

	req := <-received
	require.Len(t, req.Timeseries, 1)
	ts := req.Timeseries[0]

	labels := map[string]string{}
	for _, l := range ts.Labels {
		labels[l.Name] = l.Value
	}
	assert.Equal(t, "mergington_activities_activity_participants", labels["__name__"])
	assert.Equal(t, "activities", labels["job"])
	assert.Equal(t, "Chess Club", labels["activity"])

	require.Len(t, ts.Samples, 1)
	assert.Equal(t, float64(7), ts.Samples[0].Value)
}

func TestPushCounter_Accumulates(t *testing.T) {
	values := make(chan float64, 3)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeWriteRequest(t, r)
		require.Len(t, req.Timeseries, 1)
		values <- req.Timeseries[0].Samples[0].Value
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	registry := NewPushRegistry(PushConfig{URL: server.URL})
	counter, err := registry.NewCounter(prometheus.CounterOpts{Name: "signups_total"})
	require.NoError(t, err)

	counter.Inc()
	counter.Add(4)

	assert.Equal(t, float64(1), <-values)
	assert.Equal(t, float64(5), <-values, "counter should push the running total")
}

func TestPushCounterVec_SameLabelsSameCounter(t *testing.T) {
	registry := NewPushRegistry(PushConfig{URL: "http://localhost:8428"})
	counterVec, err := registry.NewCounterVec(prometheus.CounterOpts{Name: "signups_total"}, []string{"activity"})
	require.NoError(t, err)

	a := counterVec.With(prometheus.Labels{"activity": "Chess Club"})
	b := counterVec.With(prometheus.Labels{"activity": "Chess Club"})
	assert.Same(t, a, b)

	c := counterVec.With(prometheus.Labels{"activity": "Drama Club"})
	assert.NotSame(t, a, c)
}

func TestLabelsToKey_Stable(t *testing.T) {
	a := labelsToKey(prometheus.Labels{"x": "1", "y": "2"})
	b := labelsToKey(prometheus.Labels{"y": "2", "x": "1"})
	assert.Equal(t, a, b)
}
