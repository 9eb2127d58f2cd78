package manager

/**
 * manager.go - builds and runs app components from config
 */

import (
	"context"
	"time"

	"github.com/ifgraph/ifgraph/api"
	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/inventory"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/metrics"
	"github.com/ifgraph/ifgraph/upstream"
	"github.com/ifgraph/ifgraph/utils/profiler"
)

/* Time given to in-flight requests on shutdown */
const shutdownTimeout = 5 * time.Second

/**
 * Manager owns the api server and its dependencies
 */
type Manager struct {
	cfg       config.Config
	inventory *inventory.Inventory
	upstream  *upstream.Client
	server    *api.Server
}

/**
 * New prepares components, nothing is listening yet
 */
func New(cfg config.Config) (*Manager, error) {

	log := logging.For("manager")
	log.Info("Initializing...")

	inv, err := inventory.New(cfg.Inventory, cfg.System)
	if err != nil {
		return nil, err
	}

	log.Infof("Inventory %q: %d interfaces", cfg.Inventory.Kind, len(inv.Names()))

	client := upstream.NewClient(cfg.Upstream)

	return &Manager{
		cfg:       cfg,
		inventory: inv,
		upstream:  client,
		server:    api.New(cfg, client, inv),
	}, nil
}

/**
 * Start metrics, profiler and api. Blocks until api stops.
 */
func (m *Manager) Start() error {

	log := logging.For("manager")

	metrics.Start(m.cfg.Metrics)
	profiler.Start(m.cfg.Profiler)

	log.Infof("Using upstream %s%s", m.cfg.Upstream.Host, m.cfg.Upstream.GraphsPath)

	return m.server.Start()
}

/**
 * Stop api server, waiting for in-flight requests
 */
func (m *Manager) Stop() error {

	log := logging.For("manager")
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return m.server.Shutdown(ctx)
}
