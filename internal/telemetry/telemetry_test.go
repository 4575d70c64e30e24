package telemetry

import (
	"context"
	"testing"

	"projectflow/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), zap.NewNop().Sugar(), config.TelemetryConfig{ServiceName: "projectflow"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
