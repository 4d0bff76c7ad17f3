package publishers

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"market-streamer/src/logger"
	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------

// NATSPublisher mirrors every pushed bar onto a NATS subject so downstream
// consumers (recorders, signal engines) can tap the stream without holding a
// websocket subscription.
type NATSPublisher struct {
	Config *models.MConfig
	Logger *logger.Logger

	name string
	nc   *nats.Conn

	mu        sync.RWMutex
	connected bool
}

// -----------------------------------------------------------------------------

func NewNATSPublisher(cfg *models.MConfig, log *logger.Logger) *NATSPublisher {
	return &NATSPublisher{
		Config: cfg,
		Logger: log,
		name:   "NATSPublisher",
	}
}

// -----------------------------------------------------------------------------

// Connect establishes the connection to the NATS server.
func (np *NATSPublisher) Connect() error {
	np.mu.Lock()
	defer np.mu.Unlock()

	if np.nc != nil && np.nc.IsConnected() {
		return nil
	}

	opts := []nats.Option{
		nats.Name(np.Config.Publisher.ClientID),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),

		// Connection Event Handlers
		nats.RetryOnFailedConnect(true),
		nats.ClosedHandler(func(nc *nats.Conn) {
			np.Logger.Error("%s : NATS connection closed unexpectedly", np.name)
			np.setConnected(false)
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			np.Logger.Warning("%s : NATS disconnected, attempting reconnect: %v", np.name, err)
			np.setConnected(false)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			np.Logger.Info("%s : NATS successfully reconnected to %s", np.name, nc.ConnectedUrl())
			np.setConnected(true)
		}),
	}

	var err error
	np.nc, err = nats.Connect(np.Config.Publisher.URL, opts...)
	if err != nil {
		return fmt.Errorf("nats connection failed: %w", err)
	}

	np.connected = true
	np.Logger.Info("%s : successfully connected to NATS at %s", np.name, np.nc.ConnectedUrl())
	return nil
}

// -----------------------------------------------------------------------------

// OnBar publishes one pushed bar over NATS Core (fire-and-forget delivery).
func (np *NATSPublisher) OnBar(symbol, exchange, interval string, bar models.MBar) {
	subject := np.getSubject(fmt.Sprintf("bars.%s.%s", exchange, symbol))

	payload := map[string]interface{}{
		"symbol":    symbol,
		"exchange":  exchange,
		"interval":  interval,
		"timestamp": bar.Timestamp,
		"open":      bar.Open,
		"high":      bar.High,
		"low":       bar.Low,
		"close":     bar.Close,
		"volume":    bar.Volume,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		np.Logger.Error("%s : failed to serialize bar for subject %s: %v", np.name, subject, err)
		return
	}

	if err := np.publish(subject, data); err != nil {
		np.Logger.Error("%s : failed to publish bar for %s:%s to subject %s: %v",
			np.name, exchange, symbol, subject, err)
	}
}

// -----------------------------------------------------------------------------

func (np *NATSPublisher) publish(subject string, data []byte) error {
	if !np.IsConnected() {
		return fmt.Errorf("nats client not connected")
	}
	return np.nc.Publish(subject, data)
}

// -----------------------------------------------------------------------------

// getSubject prefixes the subject for consistency, if configured.
func (np *NATSPublisher) getSubject(subject string) string {
	if np.Config.Publisher.SubjectPrefix != "" {
		return np.Config.Publisher.SubjectPrefix + "." + subject
	}
	return subject
}

// -----------------------------------------------------------------------------

// Disconnect flushes and closes the NATS connection.
func (np *NATSPublisher) Disconnect() error {
	np.mu.Lock()
	defer np.mu.Unlock()

	if np.nc == nil {
		return nil
	}

	if err := np.nc.Flush(); err != nil {
		np.Logger.Warning("%s : flush before close failed: %v", np.name, err)
	}
	np.nc.Close()
	np.nc = nil
	np.connected = false

	np.Logger.Info("%s : disconnected from NATS", np.name)
	return nil
}

// -----------------------------------------------------------------------------

func (np *NATSPublisher) IsConnected() bool {
	np.mu.RLock()
	defer np.mu.RUnlock()
	return np.connected && np.nc != nil && np.nc.IsConnected()
}

// -----------------------------------------------------------------------------

func (np *NATSPublisher) setConnected(v bool) {
	np.mu.Lock()
	np.connected = v
	np.mu.Unlock()
}
