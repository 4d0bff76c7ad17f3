package grpc_control

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"market-streamer/src/logger"
	"market-streamer/src/models"
	"market-streamer/src/streaming"
)

// -----------------------------------------------------------------------------
// GRPCService handles gRPC server lifecycle
// -----------------------------------------------------------------------------

type GRPCService struct {
	server   *grpc.Server
	listener net.Listener
	config   *models.MConfig
	logger   *logger.Logger
	running  bool
}

// -----------------------------------------------------------------------------

// NewGRPCService creates a new GRPCService instance
func NewGRPCService(cfg *models.MConfig, log *logger.Logger, manager *streaming.ConnectionManager, engine *streaming.Engine) (*GRPCService, error) {
	address := fmt.Sprintf("%s:%d", cfg.GrpcHost, cfg.GrpcPort)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	server := grpc.NewServer(
		grpc.MaxRecvMsgSize(4*1024*1024),
		grpc.MaxSendMsgSize(4*1024*1024),
	)

	// Register services
	RegisterStreamControlServer(server, NewStreamControl(cfg, log, manager, engine))

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("grpc_control.StreamControl", grpc_health_v1.HealthCheckResponse_SERVING)

	return &GRPCService{
		server:   server,
		listener: listener,
		config:   cfg,
		logger:   log,
		running:  false,
	}, nil
}

// -----------------------------------------------------------------------------

// Start serves gRPC requests until Stop is called. Non-blocking.
func (g *GRPCService) Start() {
	g.logger.Info("Starting gRPC service on %s", g.listener.Addr().String())

	go func() {
		g.running = true
		if err := g.server.Serve(g.listener); err != nil && err != grpc.ErrServerStopped {
			g.logger.Error("gRPC server failed: %v", err)
		}
		g.running = false
	}()
}

// -----------------------------------------------------------------------------

// Stop gracefully stops the gRPC server
func (g *GRPCService) Stop(ctx context.Context) error {
	g.logger.Info("Stopping gRPC service...")

	if g.server != nil {
		done := make(chan struct{})
		go func() {
			g.server.GracefulStop()
			close(done)
		}()

		select {
		case <-ctx.Done():
			g.logger.Warning("gRPC graceful shutdown timeout, forcing stop...")
			g.server.Stop()
		case <-done:
			g.logger.Info("gRPC service stopped gracefully")
		}
	}

	if g.listener != nil {
		g.listener.Close()
	}

	g.running = false
	return nil
}

// -----------------------------------------------------------------------------

// IsRunning returns whether the gRPC server is running
func (g *GRPCService) IsRunning() bool {
	return g.running
}
