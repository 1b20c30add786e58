package app

import (
	"fmt"

	"github.com/venturepath/venturepath-backend/internal/clients/anthropic"
	"github.com/venturepath/venturepath-backend/internal/logger"
)

type Clients struct {
	AI anthropic.Client
}

// wireClients builds the process-wide external clients once; everything
// downstream takes them by injection.
func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	ai, err := anthropic.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init anthropic client: %w", err)
	}
	return Clients{AI: ai}, nil
}
