// Package grpc exposes the standard grpc.health.v1.Health service so that
// load balancers and orchestrators can probe the list service.
package grpc

import (
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the list API reports its health under. The empty
// name reports the health of the whole server.
const ServiceName = "helpmeshop.Lists"

// Handler owns the health state served over gRPC.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler returns a Handler that reports NOT_SERVING until the first
// successful probe.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC health handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the status of the server and of ServiceName.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Health returns the underlying health server.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}
