package jobqueue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
)

func TestEnqueueSettlement_PublishesThroughQStash(t *testing.T) {
	var (
		gotPath    string
		gotHeaders http.Header
		gotBody    string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "qstash-token",
		TargetBaseURL:    "https://fantasy-cricket.fly.dev",
		Retries:          2,
		InternalJobToken: "internal-job-token",
	}, logging.NewNop())

	err := publisher.EnqueueSettlement(context.Background(), 7, 90*time.Second)
	require.NoError(t, err)

	require.Equal(t, "/v2/publish/https://fantasy-cricket.fly.dev/v1/internal/jobs/settle", gotPath)
	require.Equal(t, "Bearer qstash-token", gotHeaders.Get("Authorization"))
	require.Equal(t, "POST", gotHeaders.Get("Upstash-Method"))
	require.Equal(t, "2", gotHeaders.Get("Upstash-Retries"))
	require.Equal(t, "90s", gotHeaders.Get("Upstash-Delay"))
	require.Equal(t, "settle-gw-7", gotHeaders.Get("Upstash-Deduplication-Id"))
	require.Equal(t, "internal-job-token", gotHeaders.Get("Upstash-Forward-X-Internal-Job-Token"))
	require.JSONEq(t, `{"gameweek":7}`, gotBody)
}

func TestEnqueueSettlement_TransientFailuresOpenCircuit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		Token:         "qstash-token",
		TargetBaseURL: "https://fantasy-cricket.fly.dev",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	for i := 0; i < 2; i++ {
		err := publisher.EnqueueSettlement(context.Background(), 3, 0)
		require.Error(t, err)
	}

	err := publisher.EnqueueSettlement(context.Background(), 3, 0)
	require.ErrorContains(t, err, "temporarily unavailable")
}

func TestEnqueueSettlement_ClientErrorDoesNotTripCircuit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		Token:         "qstash-token",
		TargetBaseURL: "https://fantasy-cricket.fly.dev",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	for i := 0; i < 5; i++ {
		err := publisher.EnqueueSettlement(context.Background(), 4, 0)
		require.Error(t, err)
		require.NotContains(t, err.Error(), "temporarily unavailable")
	}
}

func TestNormalizeDelay(t *testing.T) {
	require.Equal(t, "0s", normalizeDelay(0))
	require.Equal(t, "0s", normalizeDelay(-time.Second))
	require.Equal(t, "45s", normalizeDelay(45*time.Second))
	require.Equal(t, "120s", normalizeDelay(2*time.Minute))
}

func TestValidateHTTPBaseURL(t *testing.T) {
	got, err := validateHTTPBaseURL("https://qstash.upstash.io/")
	require.NoError(t, err)
	require.Equal(t, "https://qstash.upstash.io", got)

	_, err = validateHTTPBaseURL("")
	require.Error(t, err)

	_, err = validateHTTPBaseURL("ftp://example.com")
	require.Error(t, err)
}

func TestShellQuote(t *testing.T) {
	require.Equal(t, "'plain'", shellQuote("plain"))
	require.Equal(t, `'it'"'"'s'`, shellQuote("it's"))
}

func TestTruncateForLog(t *testing.T) {
	require.Equal(t, "abc", truncateForLog("abc", 10))
	require.Equal(t, "ab...(truncated)", truncateForLog("abcdef", 2))
	require.Equal(t, "abcdef", truncateForLog("abcdef", 0))
}

func TestIsRetryableStatus(t *testing.T) {
	require.True(t, isRetryableStatus(http.StatusRequestTimeout))
	require.True(t, isRetryableStatus(http.StatusTooManyRequests))
	require.True(t, isRetryableStatus(http.StatusBadGateway))
	require.False(t, isRetryableStatus(http.StatusBadRequest))
	require.False(t, isRetryableStatus(http.StatusNotFound))
}
