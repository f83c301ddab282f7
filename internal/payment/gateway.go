// Package payment simulates the gateway. There is no real charge anywhere in
// this system; the interface exists so a real integration can slot in later.
package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const StatusSuccess = "success"

type Gateway interface {
	Charge(ctx context.Context, amount float64, idempotencyKey uuid.UUID) (string, error)
}

type simulatedGateway struct {
	mu      sync.RWMutex
	charges map[string]string
}

func NewSimulatedGateway() Gateway {
	return &simulatedGateway{charges: make(map[string]string)}
}

// Charge always succeeds. Repeat calls with the same key return the recorded
// status instead of charging twice.
func (g *simulatedGateway) Charge(ctx context.Context, amount float64, idempotencyKey uuid.UUID) (string, error) {
	key := idempotencyKey.String()

	g.mu.RLock()
	if status, exists := g.charges[key]; exists {
		g.mu.RUnlock()
		return status, nil
	}
	g.mu.RUnlock()

	g.mu.Lock()
	g.charges[key] = StatusSuccess
	g.mu.Unlock()

	return StatusSuccess, nil
}
