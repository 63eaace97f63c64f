package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocksh/internal/shell"
	"mocksh/internal/vfs"
)

func TestRecordCommand(t *testing.T) {
	before := testutil.ToFloat64(commandsTotal.WithLabelValues("ls"))
	RecordCommand("ls", false, false)
	assert.Equal(t, before+1, testutil.ToFloat64(commandsTotal.WithLabelValues("ls")))

	failed := testutil.ToFloat64(treeMutationsTotal.WithLabelValues("mkdir", "error"))
	RecordCommand("mkdir", true, true)
	assert.Equal(t, failed+1, testutil.ToFloat64(treeMutationsTotal.WithLabelValues("mkdir", "error")))
}

func TestObserveResult(t *testing.T) {
	before := testutil.ToFloat64(treeMutationsTotal.WithLabelValues("rm", "success"))
	s := shell.NewSession(vfs.NewDir(), shell.WithObserver(ObserveResult))
	s.Submit("mkdir a")
	s.Submit("rm a")
	s.Submit("rmdir a")
	assert.Equal(t, before, testutil.ToFloat64(treeMutationsTotal.WithLabelValues("rm", "success")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(treeMutationsTotal.WithLabelValues("rm", "error")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(treeMutationsTotal.WithLabelValues("rmdir", "success")), 1.0)
}

func TestSessionGauge(t *testing.T) {
	before := testutil.ToFloat64(activeSessions)
	SessionOpened("web")
	SessionOpened("web")
	SessionClosed()
	assert.Equal(t, before+1, testutil.ToFloat64(activeSessions))
	SessionClosed()
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordHTTPRequest("GET", "/", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "mocksh_http_requests_total")
}
