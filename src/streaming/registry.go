package streaming

import (
	"sync"

	"market-streamer/src/interfaces"
	"market-streamer/src/logger"
	"market-streamer/src/models"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Connection registry
// -----------------------------------------------------------------------------

// ConnectionHandle identifies one registered connection.
type ConnectionHandle struct {
	ID uuid.UUID
}

// -----------------------------------------------------------------------------

// connEntry is the per-connection state: the push channel and the
// subscription set, unique per (symbol, exchange).
type connEntry struct {
	pusher interfaces.IStreamPusher
	subs   map[models.MStreamKey]models.MSubscription
}

// -----------------------------------------------------------------------------

// ConnectionManager owns the registry of live connections and their
// subscription sets. Every mutation and every liveness read goes through the
// same lock, so no reader can observe a half-applied update: after
// Disconnect returns, GetSubscription reports "not present" for that
// connection, which is what makes running tasks terminate.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*connEntry
	Logger      *logger.Logger
}

// -----------------------------------------------------------------------------

func NewConnectionManager(log *logger.Logger) *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[uuid.UUID]*connEntry),
		Logger:      log,
	}
}

// -----------------------------------------------------------------------------

// Connect registers a new connection with an empty subscription set and
// returns its handle. The transport channel itself is owned by the caller.
func (m *ConnectionManager) Connect(pusher interfaces.IStreamPusher) ConnectionHandle {
	id := uuid.New()

	m.mu.Lock()
	m.connections[id] = &connEntry{
		pusher: pusher,
		subs:   make(map[models.MStreamKey]models.MSubscription),
	}
	m.mu.Unlock()

	m.Logger.Info("Connection registered: %s", id)
	return ConnectionHandle{ID: id}
}

// -----------------------------------------------------------------------------

// Disconnect atomically removes the connection entry. Bound tasks observe the
// absence on their next liveness check and exit.
func (m *ConnectionManager) Disconnect(id uuid.UUID) {
	m.mu.Lock()
	_, existed := m.connections[id]
	delete(m.connections, id)
	m.mu.Unlock()

	if existed {
		m.Logger.Info("Connection removed: %s", id)
	}
}

// -----------------------------------------------------------------------------

// AddSubscription inserts or replaces the subscription matching on
// (symbol, exchange). Replacing reconfigures interval and refresh period in
// place; the already-running task picks the new values up on its next cycle.
// replaced reports whether a subscription for the pair already existed, ok
// whether the connection is still registered.
func (m *ConnectionManager) AddSubscription(id uuid.UUID, sub models.MSubscription) (replaced bool, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.connections[id]
	if !exists {
		return false, false
	}

	key := sub.Key()
	_, replaced = entry.subs[key]
	entry.subs[key] = sub
	return replaced, true
}

// -----------------------------------------------------------------------------

// RemoveSubscription removes the matching subscription if present; no-op
// otherwise.
func (m *ConnectionManager) RemoveSubscription(id uuid.UUID, symbol, exchange string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.connections[id]
	if !exists {
		return
	}

	delete(entry.subs, models.MStreamKey{Symbol: symbol, Exchange: exchange})
}

// -----------------------------------------------------------------------------

// GetSubscription is the liveness check used by streaming tasks: it reports
// in one consistent read whether the connection is registered AND still holds
// a subscription for the stream key.
func (m *ConnectionManager) GetSubscription(id uuid.UUID, key models.MStreamKey) (models.MSubscription, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.connections[id]
	if !exists {
		return models.MSubscription{}, false
	}

	sub, exists := entry.subs[key]
	return sub, exists
}

// -----------------------------------------------------------------------------

// ListSubscriptions returns a snapshot of the connection's subscription set.
func (m *ConnectionManager) ListSubscriptions(id uuid.UUID) []models.MSubscription {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.connections[id]
	if !exists {
		return nil
	}

	subs := make([]models.MSubscription, 0, len(entry.subs))
	for _, sub := range entry.subs {
		subs = append(subs, sub)
	}
	return subs
}

// -----------------------------------------------------------------------------

// Pusher returns the push channel bound to a connection.
func (m *ConnectionManager) Pusher(id uuid.UUID) (interfaces.IStreamPusher, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.connections[id]
	if !exists {
		return nil, false
	}
	return entry.pusher, true
}

// -----------------------------------------------------------------------------

// ConnectionIDs returns a snapshot of the registered connection identities.
func (m *ConnectionManager) ConnectionIDs() []uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}

// -----------------------------------------------------------------------------

// ConnectionCount returns the number of registered connections.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// -----------------------------------------------------------------------------

// SubscriptionCount returns the number of active subscriptions across all
// connections.
func (m *ConnectionManager) SubscriptionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, entry := range m.connections {
		total += len(entry.subs)
	}
	return total
}
