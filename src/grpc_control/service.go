package grpc_control

import (
	context "context"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"market-streamer/src/logger"
	"market-streamer/src/models"
	"market-streamer/src/streaming"
)

// -----------------------------------------------------------------------------
// StreamControl Implementation
// -----------------------------------------------------------------------------

type StreamControlImpl struct {
	UnimplementedStreamControlServer
	Name      string
	config    *models.MConfig
	logger    *logger.Logger
	manager   *streaming.ConnectionManager
	engine    *streaming.Engine
	startedAt time.Time
}

// -----------------------------------------------------------------------------

// NewStreamControl creates a new StreamControlImpl instance
func NewStreamControl(cfg *models.MConfig, log *logger.Logger, manager *streaming.ConnectionManager, engine *streaming.Engine) *StreamControlImpl {
	return &StreamControlImpl{
		Name:      "GRPCStreamControl",
		config:    cfg,
		logger:    log,
		manager:   manager,
		engine:    engine,
		startedAt: time.Now().UTC(),
	}
}

// -----------------------------------------------------------------------------

// GetStatus implements the gRPC GetStatus method
func (s *StreamControlImpl) GetStatus(ctx context.Context, _ *emptypb.Empty) (*ServerStatus, error) {
	s.logger.Debug("%s : received GetStatus request", s.Name)

	return &ServerStatus{
		Name:          s.config.Name,
		Connections:   int64(s.manager.ConnectionCount()),
		Subscriptions: int64(s.manager.SubscriptionCount()),
		ActiveTasks:   s.engine.ActiveTasks(),
		StartedAt:     s.startedAt.Unix(),
	}, nil
}

// -----------------------------------------------------------------------------

// ListConnections implements the gRPC ListConnections method
func (s *StreamControlImpl) ListConnections(ctx context.Context, _ *emptypb.Empty) (*ListConnectionsResponse, error) {
	s.logger.Debug("%s : received ListConnections request", s.Name)

	resp := &ListConnectionsResponse{}
	for _, id := range s.manager.ConnectionIDs() {
		resp.Connections = append(resp.Connections, &ConnectionInfo{
			Id:                id.String(),
			SubscriptionCount: int64(len(s.manager.ListSubscriptions(id))),
		})
	}
	return resp, nil
}

// -----------------------------------------------------------------------------

// ListSubscriptions implements the gRPC ListSubscriptions method
func (s *StreamControlImpl) ListSubscriptions(ctx context.Context, req *ListSubscriptionsRequest) (*ListSubscriptionsResponse, error) {
	s.logger.Debug("%s : received ListSubscriptions request (connection_id=%q)", s.Name, req.ConnectionId)

	resp := &ListSubscriptionsResponse{}
	for _, id := range s.manager.ConnectionIDs() {
		if req.ConnectionId != "" && req.ConnectionId != id.String() {
			continue
		}
		for _, sub := range s.manager.ListSubscriptions(id) {
			resp.Subscriptions = append(resp.Subscriptions, &SubscriptionInfo{
				ConnectionId:   id.String(),
				Symbol:         sub.Symbol,
				Exchange:       sub.Exchange,
				Interval:       sub.Interval,
				RefreshSeconds: int64(sub.RefreshPeriod / time.Second),
			})
		}
	}
	return resp, nil
}
