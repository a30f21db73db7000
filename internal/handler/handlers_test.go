package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/handler/grpc"
	"github.com/MKhiriev/help-me-shop/internal/handler/http"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{
			name:     "http and grpc",
			cfg:      config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090", RequestTimeout: 3 * time.Second},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "http only",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "grpc health only",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "nothing to serve",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)

			if tt.wantHTTP {
				assert.IsType(t, &http.Handler{}, h.HTTP)
			} else {
				assert.Nil(t, h.HTTP)
			}
			if tt.wantGRPC {
				assert.IsType(t, &grpc.Handler{}, h.GRPC)
			} else {
				assert.Nil(t, h.GRPC)
			}
		})
	}
}

func TestNewHandlers_GRPCStartsNotServing(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)

	resp, err := h.GRPC.Health().Check(t.Context(), &healthpb.HealthCheckRequest{Service: grpc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
