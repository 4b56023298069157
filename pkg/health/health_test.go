package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func passing() CheckFunc {
	return func(context.Context) error { return nil }
}

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func fetch(t *testing.T, endpoint http.HandlerFunc) (int, checkBody) {
	t.Helper()
	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body checkBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

func runN(c *check, n int) {
	for range n {
		c.run(context.Background())
	}
}

func TestLiveEndpoint(t *testing.T) {
	t.Run("AllPassing", func(t *testing.T) {
		h := New()
		h.AddLivenessCheck("goroutines", time.Second, passing())
		h.AddLivenessCheck("outbox", time.Second, passing())

		code, body := fetch(t, h.LiveEndpoint)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
		assert.Empty(t, body.Checks)
	})
	t.Run("NoChecks", func(t *testing.T) {
		code, body := fetch(t, New().LiveEndpoint)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	})
	t.Run("FailingPastThreshold", func(t *testing.T) {
		h := New()
		h.AddLivenessCheck("outbox", time.Second, failing("oldest pending item is 20m0s old"))
		runN(h.liveness[0], 3)

		code, body := fetch(t, h.LiveEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "oldest pending item is 20m0s old", body.Checks["outbox"])
	})
	t.Run("FailingBelowThreshold", func(t *testing.T) {
		h := New()
		h.AddLivenessCheck("flaky", time.Second, failing("temporary"))
		runN(h.liveness[0], 2)

		code, _ := fetch(t, h.LiveEndpoint)
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("ReadyAndPassing", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing())
		h.SetReady(true)

		code, body := fetch(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	})
	t.Run("NotMarkedReady", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing())

		code, body := fetch(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Contains(t, body.Checks, "_readiness")
	})
	t.Run("Draining", func(t *testing.T) {
		h := New()
		h.SetReady(true)
		code, _ := fetch(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusOK, code)

		h.SetReady(false)
		code, _ = fetch(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})
	t.Run("OneOfManyFailing", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing())
		h.AddReadinessCheck("kafka", time.Second, failing("dial tcp: connection refused"))
		h.SetReady(true)
		runN(h.readiness[1], 3)

		code, body := fetch(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Contains(t, body.Checks, "kafka")
		assert.NotContains(t, body.Checks, "postgres")
	})
}

func TestIsReady(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", time.Second, failing("down"))
	assert.False(t, h.IsReady(), "not marked ready")

	h.SetReady(true)
	assert.True(t, h.IsReady(), "checks start healthy")

	runN(h.readiness[0], 3)
	assert.False(t, h.IsReady())
}

func TestCheckThresholds(t *testing.T) {
	down := true
	h := New()
	h.AddLivenessCheck("flaky", time.Second, func(context.Context) error {
		if down {
			return errors.New("down")
		}
		return nil
	}, WithThresholds(2, 2))
	c := h.liveness[0]

	assert.Nil(t, c.lastError())
	runN(c, 1)
	assert.True(t, c.isHealthy())
	assert.EqualError(t, c.lastError(), "down")
	runN(c, 1)
	assert.False(t, c.isHealthy())

	down = false
	runN(c, 1)
	assert.False(t, c.isHealthy(), "one pass is below the success threshold")
	runN(c, 1)
	assert.True(t, c.isHealthy())
	assert.NoError(t, c.lastError())
}

func TestWithThresholdsIgnoresNonPositive(t *testing.T) {
	c := newCheck("x", time.Second, passing(), []CheckOption{WithThresholds(0, -1)})
	assert.Equal(t, 3, c.failureThreshold)
	assert.Equal(t, 1, c.successThreshold)
}

func TestStartStop(t *testing.T) {
	h := New()
	h.AddLivenessCheck("goroutines", time.Second, failing("err"))
	h.AddReadinessCheck("postgres", time.Second, passing())
	h.SetReady(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.Start(ctx, 10*time.Millisecond)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				h.IsReady()
				h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
				h.ReadyEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
			}
		}()
	}
	wg.Wait()

	h.Stop()
	h.Stop()
}

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(100000)(context.Background()))

	err := GoroutineCountCheck(0)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds threshold")
}

func TestGCMaxPauseCheck(t *testing.T) {
	assert.NoError(t, GCMaxPauseCheck(time.Hour)(context.Background()))
}

func TestBacklogAgeCheck(t *testing.T) {
	ctx := context.Background()
	oldest := func(at time.Time, ok bool, err error) OldestFunc {
		return func(context.Context) (time.Time, bool, error) { return at, ok, err }
	}

	assert.NoError(t, BacklogAgeCheck(time.Minute, oldest(time.Time{}, false, nil))(ctx), "empty backlog")
	assert.NoError(t, BacklogAgeCheck(time.Minute, oldest(time.Now().Add(-10*time.Second), true, nil))(ctx))

	err := BacklogAgeCheck(time.Minute, oldest(time.Now().Add(-time.Hour), true, nil))(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit 1m0s")

	err = BacklogAgeCheck(time.Minute, oldest(time.Time{}, false, errors.New("conn reset")))(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn reset")
}
