package command

import (
	"fmt"

	"github.com/pixil98/go-service"

	"github.com/ChrisLebbano/embermud/internal/auth"
	"github.com/ChrisLebbano/embermud/internal/combat"
	"github.com/ChrisLebbano/embermud/internal/commands"
	"github.com/ChrisLebbano/embermud/internal/listener"
	"github.com/ChrisLebbano/embermud/internal/messaging"
	"github.com/ChrisLebbano/embermud/internal/session"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the static world assets
	stores, err := cfg.Storage.BuildStores()
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	// Build the world registry
	world, err := cfg.World.BuildWorld(stores)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Set up messaging
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewNatsPublisher(natsServer, world)

	// Combat scheduling and command dispatch
	combatMgr := combat.NewManager(world, publisher)
	handler := commands.NewHandler(world, combatMgr, publisher)

	// Sessions and transports
	authenticator := auth.NewMemory(stores.Accounts)
	sessionMgr := session.NewManager(world, combatMgr, handler, authenticator, publisher, natsServer, cfg.Session.Options()...)
	cm := listener.NewConnectionManager(sessionMgr)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		worker, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = worker
	}

	return service.WorkerList{
		"nats":      natsServer,
		"listeners": &listeners,
	}, nil
}
