package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSimulatedChargeSucceeds(t *testing.T) {
	gateway := NewSimulatedGateway()

	status, err := gateway.Charge(context.Background(), 500, uuid.New())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, status)
}

func TestSimulatedChargeIdempotent(t *testing.T) {
	gateway := NewSimulatedGateway()
	key := uuid.New()

	first, err := gateway.Charge(context.Background(), 500, key)
	require.NoError(t, err)

	second, err := gateway.Charge(context.Background(), 500, key)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
