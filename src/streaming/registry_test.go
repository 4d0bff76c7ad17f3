package streaming

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/logger"
	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------
// Test helpers
// -----------------------------------------------------------------------------

// recordingPusher collects pushed events; can be flipped to fail permanently.
type recordingPusher struct {
	mu     sync.Mutex
	events []interface{}
	failed bool
}

func (p *recordingPusher) Push(event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failed {
		return fmt.Errorf("connection closed")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPusher) fail() {
	p.mu.Lock()
	p.failed = true
	p.mu.Unlock()
}

func (p *recordingPusher) snapshot() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interface{}, len(p.events))
	copy(out, p.events)
	return out
}

func testLogger() *logger.Logger {
	return logger.NewLogger("ERROR", "test")
}

func testSub(symbol, exchange string) models.MSubscription {
	return models.MSubscription{
		Symbol:        symbol,
		Exchange:      exchange,
		Interval:      "in_1_minute",
		RefreshPeriod: 10 * time.Millisecond,
	}
}

// -----------------------------------------------------------------------------
// Registry tests
// -----------------------------------------------------------------------------

func TestConnectAssignsDistinctHandles(t *testing.T) {
	m := NewConnectionManager(testLogger())

	h1 := m.Connect(&recordingPusher{})
	h2 := m.Connect(&recordingPusher{})

	assert.NotEqual(t, h1.ID, h2.ID)
	assert.Equal(t, 2, m.ConnectionCount())
}

func TestAddSubscriptionUniquePerPair(t *testing.T) {
	m := NewConnectionManager(testLogger())
	h := m.Connect(&recordingPusher{})

	replaced, ok := m.AddSubscription(h.ID, testSub("AAPL", "NASDAQ"))
	require.True(t, ok)
	assert.False(t, replaced)

	// Same pair, different settings: replaced in place, no second entry
	newSub := testSub("AAPL", "NASDAQ")
	newSub.Interval = "in_5_minute"
	newSub.RefreshPeriod = time.Minute

	replaced, ok = m.AddSubscription(h.ID, newSub)
	require.True(t, ok)
	assert.True(t, replaced)
	assert.Equal(t, 1, m.SubscriptionCount())

	got, exists := m.GetSubscription(h.ID, newSub.Key())
	require.True(t, exists)
	assert.Equal(t, "in_5_minute", got.Interval)
	assert.Equal(t, time.Minute, got.RefreshPeriod)
}

func TestSameSymbolDifferentExchangeAreDistinct(t *testing.T) {
	m := NewConnectionManager(testLogger())
	h := m.Connect(&recordingPusher{})

	_, ok := m.AddSubscription(h.ID, testSub("GOLD", "MCX"))
	require.True(t, ok)
	_, ok = m.AddSubscription(h.ID, testSub("GOLD", "COMEX"))
	require.True(t, ok)

	assert.Equal(t, 2, m.SubscriptionCount())
}

func TestRemoveSubscriptionIsIdempotent(t *testing.T) {
	m := NewConnectionManager(testLogger())
	h := m.Connect(&recordingPusher{})

	_, ok := m.AddSubscription(h.ID, testSub("AAPL", "NASDAQ"))
	require.True(t, ok)

	m.RemoveSubscription(h.ID, "AAPL", "NASDAQ")
	assert.Equal(t, 0, m.SubscriptionCount())

	// Removing again, or removing something never present, must not panic
	m.RemoveSubscription(h.ID, "AAPL", "NASDAQ")
	m.RemoveSubscription(h.ID, "TSLA", "NASDAQ")
	m.RemoveSubscription(uuid.New(), "AAPL", "NASDAQ")
}

func TestDisconnectRemovesSubscriptions(t *testing.T) {
	m := NewConnectionManager(testLogger())
	h := m.Connect(&recordingPusher{})

	_, ok := m.AddSubscription(h.ID, testSub("AAPL", "NASDAQ"))
	require.True(t, ok)

	m.Disconnect(h.ID)

	assert.Equal(t, 0, m.ConnectionCount())
	assert.Equal(t, 0, m.SubscriptionCount())

	_, exists := m.GetSubscription(h.ID, models.MStreamKey{Symbol: "AAPL", Exchange: "NASDAQ"})
	assert.False(t, exists)

	// Late mutations against a gone connection are no-ops
	_, ok = m.AddSubscription(h.ID, testSub("TSLA", "NASDAQ"))
	assert.False(t, ok)
}

func TestSubscriptionsAreIsolatedPerConnection(t *testing.T) {
	m := NewConnectionManager(testLogger())
	h1 := m.Connect(&recordingPusher{})
	h2 := m.Connect(&recordingPusher{})

	_, ok := m.AddSubscription(h1.ID, testSub("AAPL", "NASDAQ"))
	require.True(t, ok)
	_, ok = m.AddSubscription(h2.ID, testSub("AAPL", "NASDAQ"))
	require.True(t, ok)

	m.Disconnect(h1.ID)

	// The other connection's identical pair is untouched
	_, exists := m.GetSubscription(h2.ID, models.MStreamKey{Symbol: "AAPL", Exchange: "NASDAQ"})
	assert.True(t, exists)
	assert.Equal(t, 1, m.SubscriptionCount())
}

func TestConcurrentRegistryMutations(t *testing.T) {
	m := NewConnectionManager(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h := m.Connect(&recordingPusher{})
			for j := 0; j < 50; j++ {
				sub := testSub(fmt.Sprintf("SYM%d", j%5), "NYSE")
				m.AddSubscription(h.ID, sub)
				m.GetSubscription(h.ID, sub.Key())
				m.ListSubscriptions(h.ID)
				if j%2 == 0 {
					m.RemoveSubscription(h.ID, sub.Symbol, sub.Exchange)
				}
			}
			m.Disconnect(h.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, m.ConnectionCount())
	assert.Equal(t, 0, m.SubscriptionCount())
}
