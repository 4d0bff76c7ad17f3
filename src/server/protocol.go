package server

import (
	"encoding/json"
	"fmt"
	"time"

	"market-streamer/src/intervals"
	"market-streamer/src/models"
	"market-streamer/src/streaming"
)

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage translates one inbound protocol message into registry
// mutations and task spawns. Every failure is answered on the same
// connection and never closes it.
func (s *FastAPIServer) HandleClientMessage(client *Client, message []byte) {
	var msg models.MSubscriptionMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		client.Push(models.MErrorEvent{Error: "Invalid message format"})
		return
	}

	switch msg.Action {
	case "subscribe":
		s.handleSubscribe(client, msg)
	case "unsubscribe":
		s.handleUnsubscribe(client, msg)
	default:
		client.Push(models.MErrorEvent{Error: fmt.Sprintf("Unsupported action: %s", msg.Action)})
	}
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleSubscribe(client *Client, msg models.MSubscriptionMessage) {
	// Protocol defaults
	if msg.Interval == "" {
		msg.Interval = intervals.DefaultName
	}
	if msg.RefreshPeriod <= 0 {
		msg.RefreshPeriod = s.Config.Streaming.DefaultRefreshSeconds
	}

	if msg.Symbol == "" || msg.Exchange == "" {
		client.Push(models.MErrorEvent{Error: "symbol and exchange are required"})
		return
	}

	if !intervals.IsSupported(msg.Interval) {
		client.Push(models.MErrorEvent{Error: fmt.Sprintf("Invalid interval: %s", msg.Interval)})
		return
	}

	sub := models.MSubscription{
		Symbol:        msg.Symbol,
		Exchange:      msg.Exchange,
		Interval:      msg.Interval,
		RefreshPeriod: time.Duration(msg.RefreshPeriod) * time.Second,
	}

	replaced, ok := s.Manager.AddSubscription(client.handle.ID, sub)
	if !ok {
		// Connection already torn down; nothing to do.
		return
	}

	// A re-subscribe to an existing pair reconfigures the running task via
	// the registry; spawning a second one would double the pushes.
	if !replaced {
		s.Streams.StartTask(streaming.StreamingTask{
			ConnID: client.handle.ID,
			Key:    sub.Key(),
		})
	}

	s.Logger.Info("Subscribed %s to %s:%s (%s, every %s)", client.handle.ID, sub.Exchange, sub.Symbol, sub.Interval, sub.RefreshPeriod)
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleUnsubscribe(client *Client, msg models.MSubscriptionMessage) {
	s.Manager.RemoveSubscription(client.handle.ID, msg.Symbol, msg.Exchange)
	s.Logger.Info("Unsubscribed %s from %s:%s", client.handle.ID, msg.Exchange, msg.Symbol)
}
