package streaming

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------
// Fake data source
// -----------------------------------------------------------------------------

// scriptedSource returns a scripted sequence of (bar, err) results, then
// repeats the last one.
type scriptedSource struct {
	mu      sync.Mutex
	results []fetchResult
	calls   int
}

type fetchResult struct {
	bar *models.MBar
	err error
}

func (s *scriptedSource) Name() string { return "scripted" }

func (s *scriptedSource) FetchLatest(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.calls
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	s.calls++
	r := s.results[idx]
	return r.bar, r.err
}

func (s *scriptedSource) FetchHistory(ctx context.Context, symbol, exchange, interval string, nBars, futContract int) ([]models.MBar, error) {
	return nil, nil
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// -----------------------------------------------------------------------------

func bar(ts int64, close float64) *models.MBar {
	return &models.MBar{Timestamp: ts, Open: close, High: close, Low: close, Close: close, Volume: 100}
}

func newTestEngine(m *ConnectionManager, src *scriptedSource) *Engine {
	cfg := &models.MConfig{}
	cfg.Streaming.FailureBackoffSeconds = 1

	e := NewEngine(m, src, cfg, testLogger())
	e.failureBackoff = 5 * time.Millisecond
	return e
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 2*time.Millisecond, msg)
}

// -----------------------------------------------------------------------------
// Task lifecycle tests
// -----------------------------------------------------------------------------

func TestTaskPushesBarsEachCycle(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{
		{bar: bar(1700000000, 10.0)},
		{bar: bar(1700000060, 10.5)},
	}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 2 }, "expected two pushes")

	events := pusher.snapshot()
	first, isBar := events[0].(models.MBarEvent)
	require.True(t, isBar)
	assert.Equal(t, 10.0, first.Close)
	assert.Equal(t, "AAPL", first.Symbol)
	assert.Equal(t, "NASDAQ", first.Exchange)
	assert.Equal(t, "in_1_minute", first.Interval)

	second, isBar := events[1].(models.MBarEvent)
	require.True(t, isBar)
	assert.Equal(t, 10.5, second.Close)

	m.Disconnect(h.ID)
	e.Wait()
}

func TestTaskStopsAfterUnsubscribe(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	e.Start(context.Background())

	// Unsubscribe before the task's first liveness check has a chance
	m.RemoveSubscription(h.ID, "AAPL", "NASDAQ")
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})
	e.Wait()

	assert.Empty(t, pusher.snapshot(), "no pushes after unsubscribe")
	assert.Equal(t, 0, src.callCount(), "no polls after unsubscribe")
	assert.Equal(t, int64(0), e.ActiveTasks())
}

func TestTaskStopsAfterDisconnect(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	e.Start(context.Background())
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 1 }, "expected a first push")

	m.Disconnect(h.ID)
	e.Wait()

	// No ghost pushes after teardown
	n := len(pusher.snapshot())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, len(pusher.snapshot()))
}

func TestTaskReportsFailuresAndRecovers(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{
		{err: assert.AnError},
		{err: assert.AnError},
		{err: assert.AnError},
		{bar: bar(1700000000, 42.0)},
	}}

	sub := testSub("TSLA", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 4 }, "expected 3 error events then a bar")

	events := pusher.snapshot()
	for i := 0; i < 3; i++ {
		errEvent, isErr := events[i].(models.MStreamErrorEvent)
		require.True(t, isErr, "event %d should be a stream error", i)
		assert.Equal(t, "TSLA", errEvent.Symbol)
		assert.Equal(t, "NASDAQ", errEvent.Exchange)
		assert.NotEmpty(t, errEvent.Error)
	}

	barEvent, isBar := events[3].(models.MBarEvent)
	require.True(t, isBar)
	assert.Equal(t, 42.0, barEvent.Close)

	m.Disconnect(h.ID)
	e.Wait()
}

func TestNilBarIsReportedAsStreamError(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: nil, err: nil}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 1 }, "expected a stream error event")

	errEvent, isErr := pusher.snapshot()[0].(models.MStreamErrorEvent)
	require.True(t, isErr)
	assert.Equal(t, "no data", errEvent.Error)

	m.Disconnect(h.ID)
	e.Wait()
}

func TestDeliveryFailureStopsOnlyThatTask(t *testing.T) {
	m := NewConnectionManager(testLogger())

	deadPusher := &recordingPusher{}
	livePusher := &recordingPusher{}
	hDead := m.Connect(deadPusher)
	hLive := m.Connect(livePusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(hDead.ID, sub)
	require.True(t, ok)
	_, ok = m.AddSubscription(hLive.ID, sub)
	require.True(t, ok)

	deadPusher.fail()

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)

	e.StartTask(StreamingTask{ConnID: hDead.ID, Key: sub.Key()})
	e.StartTask(StreamingTask{ConnID: hLive.ID, Key: sub.Key()})

	// The healthy connection keeps receiving while the dead task exits
	eventually(t, func() bool { return len(livePusher.snapshot()) >= 2 }, "healthy stream should keep flowing")
	eventually(t, func() bool { return e.ActiveTasks() == 1 }, "dead task should have exited")

	assert.Empty(t, deadPusher.snapshot())

	m.Disconnect(hLive.ID)
	e.Wait()
}

func TestResubscribeReconfiguresInPlace(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 1 }, "expected a first push")

	// Replace the subscription with a new interval; no second task
	newSub := sub
	newSub.Interval = "in_5_minute"
	replaced, ok := m.AddSubscription(h.ID, newSub)
	require.True(t, ok)
	require.True(t, replaced)

	eventually(t, func() bool {
		events := pusher.snapshot()
		if len(events) == 0 {
			return false
		}
		last, isBar := events[len(events)-1].(models.MBarEvent)
		return isBar && last.Interval == "in_5_minute"
	}, "running task should pick up the new interval")

	assert.Equal(t, int64(1), e.ActiveTasks(), "re-subscribe must not spawn a second task")

	m.Disconnect(h.ID)
	e.Wait()
}

func TestContextCancelInterruptsSleep(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	sub.RefreshPeriod = time.Hour // would block forever without cancellation
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	e := newTestEngine(m, src)
	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return len(pusher.snapshot()) >= 1 }, "expected a first push")

	cancel()
	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not exit after context cancellation")
	}
}

// -----------------------------------------------------------------------------
// Mirror tests
// -----------------------------------------------------------------------------

type recordingArchive struct {
	mu   sync.Mutex
	rows []models.MBar
}

func (a *recordingArchive) Initialize() error { return nil }
func (a *recordingArchive) SaveBar(symbol, exchange, interval string, bar models.MBar) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rows = append(a.rows, bar)
	return nil
}
func (a *recordingArchive) CleanupOldData() error { return nil }
func (a *recordingArchive) Close() error          { return nil }

func (a *recordingArchive) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.rows)
}

func TestPushedBarsAreMirroredToArchive(t *testing.T) {
	m := NewConnectionManager(testLogger())
	pusher := &recordingPusher{}
	h := m.Connect(pusher)

	src := &scriptedSource{results: []fetchResult{{bar: bar(1700000000, 10.0)}}}

	sub := testSub("AAPL", "NASDAQ")
	_, ok := m.AddSubscription(h.ID, sub)
	require.True(t, ok)

	archive := &recordingArchive{}

	e := newTestEngine(m, src)
	e.Archive = archive
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e.Start(ctx)
	e.StartTask(StreamingTask{ConnID: h.ID, Key: sub.Key()})

	eventually(t, func() bool { return archive.count() >= 1 }, "bar should reach the archive")

	m.Disconnect(h.ID)
	e.Wait()
}
