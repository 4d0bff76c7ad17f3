package streaming

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"market-streamer/src/interfaces"
	"market-streamer/src/logger"
	"market-streamer/src/models"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Streaming engine
// -----------------------------------------------------------------------------

// StreamingTask is the identity of one repeating polling task: exactly one
// per (connection, symbol, exchange) at any instant.
type StreamingTask struct {
	ConnID uuid.UUID
	Key    models.MStreamKey
}

// -----------------------------------------------------------------------------

// Engine spawns and runs streaming tasks. A task has no cancel signal: it
// re-checks the registry at the top of every cycle and exits when its
// subscription or its connection is gone. Worst-case teardown latency is one
// refresh period (one backoff period while in a failure state).
type Engine struct {
	Manager *ConnectionManager
	Source  interfaces.IMarketDataSource
	Logger  *logger.Logger

	// Optional mirrors for pushed bars; never feed back into the stream.
	Archive   interfaces.IDatabase
	Cache     interfaces.ICache
	Publisher interfaces.IPublisher

	failureBackoff time.Duration

	ctx         context.Context
	wg          sync.WaitGroup
	activeTasks atomic.Int64
}

// -----------------------------------------------------------------------------

func NewEngine(manager *ConnectionManager, source interfaces.IMarketDataSource, cfg *models.MConfig, log *logger.Logger) *Engine {
	backoff := time.Duration(cfg.Streaming.FailureBackoffSeconds) * time.Second
	if backoff <= 0 {
		backoff = 5 * time.Second
	}

	return &Engine{
		Manager:        manager,
		Source:         source,
		Logger:         log,
		failureBackoff: backoff,
		ctx:            context.Background(),
	}
}

// -----------------------------------------------------------------------------

// Start binds the engine to its lifecycle context. Cancelling it interrupts
// the sleeps of all running tasks so the process can shut down promptly.
func (e *Engine) Start(ctx context.Context) {
	e.ctx = ctx
}

// -----------------------------------------------------------------------------

// StartTask spawns the repeating task for one subscription. The caller must
// guarantee no other task is running for the same (connection, symbol,
// exchange); re-subscribing to an existing pair reconfigures the registry
// entry and must NOT start a second task.
func (e *Engine) StartTask(task StreamingTask) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.activeTasks.Add(1)
		defer e.activeTasks.Add(-1)
		e.run(task)
	}()
}

// -----------------------------------------------------------------------------

// run is the task loop: liveness check, poll, push, sleep, repeat.
func (e *Engine) run(task StreamingTask) {
	for {
		// Liveness: connection registered AND subscription still present.
		sub, alive := e.Manager.GetSubscription(task.ConnID, task.Key)
		if !alive {
			e.Logger.Debug("Task %s %s:%s terminated: subscription gone", task.ConnID, task.Key.Exchange, task.Key.Symbol)
			return
		}

		pusher, alive := e.Manager.Pusher(task.ConnID)
		if !alive {
			return
		}

		bar, err := e.Source.FetchLatest(e.ctx, sub.Symbol, sub.Exchange, sub.Interval)
		if err != nil || bar == nil {
			reason := "no data"
			if err != nil {
				reason = err.Error()
			}

			event := models.MStreamErrorEvent{
				Error:    reason,
				Symbol:   sub.Symbol,
				Exchange: sub.Exchange,
			}
			if pushErr := pusher.Push(event); pushErr != nil {
				// Connection already gone; no retries.
				return
			}

			if !e.sleep(e.failureBackoff) {
				return
			}
			continue
		}

		event := models.MBarEvent{
			Datetime: bar.Time().Format(time.RFC3339),
			Open:     bar.Open,
			High:     bar.High,
			Low:      bar.Low,
			Close:    bar.Close,
			Volume:   bar.Volume,
			Symbol:   sub.Symbol,
			Exchange: sub.Exchange,
			Interval: sub.Interval,
		}

		if pushErr := pusher.Push(event); pushErr != nil {
			// Delivery failure is fatal to this task only.
			return
		}

		e.mirror(sub, *bar)

		// The subscription is re-read at the top of the next cycle, so a
		// re-subscribe with new cadence or interval takes effect after this
		// sleep at the latest.
		if !e.sleep(sub.RefreshPeriod) {
			return
		}
	}
}

// -----------------------------------------------------------------------------

// mirror archives, caches and publishes a pushed bar, best-effort; failures
// are logged and never reach the stream.
func (e *Engine) mirror(sub models.MSubscription, bar models.MBar) {
	if e.Archive != nil {
		if err := e.Archive.SaveBar(sub.Symbol, sub.Exchange, sub.Interval, bar); err != nil {
			e.Logger.Warning("Archive failed for %s:%s: %v", sub.Exchange, sub.Symbol, err)
		}
	}

	if e.Cache != nil {
		if err := e.Cache.SetLatestBar(e.ctx, sub.Symbol, sub.Exchange, sub.Interval, bar); err != nil {
			e.Logger.Warning("Cache write failed for %s:%s: %v", sub.Exchange, sub.Symbol, err)
		}
	}

	if e.Publisher != nil && e.Publisher.IsConnected() {
		e.Publisher.OnBar(sub.Symbol, sub.Exchange, sub.Interval, bar)
	}
}

// -----------------------------------------------------------------------------

// sleep waits for d or until the engine context is cancelled. Returns false
// when the task should exit.
func (e *Engine) sleep(d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-e.ctx.Done():
		return false
	}
}

// -----------------------------------------------------------------------------

// ActiveTasks returns the number of currently running streaming tasks.
func (e *Engine) ActiveTasks() int64 {
	return e.activeTasks.Load()
}

// -----------------------------------------------------------------------------

// Wait blocks until every running task has exited.
func (e *Engine) Wait() {
	e.wg.Wait()
}
