package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/session"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

// DexHandManagerServiceServer implements the gRPC service on top of the
// session core: dispatcher for lifecycle RPCs, hand store for the
// inventory RPCs.
type DexHandManagerServiceServer struct {
	apiv1.UnimplementedDexHandManagerServiceServer
	dispatcher *session.Dispatcher
	hands      *store.Store
	requireTLS bool
	log        zerolog.Logger
}

// core bundles the orchestration pieces the app wires together.
type core struct {
	service    *DexHandManagerServiceServer
	supervisor *session.Supervisor
	metricsReg *prometheus.Registry
}

func newCore(cfg *Config, log zerolog.Logger) (*core, error) {
	exits := make(chan *control.Handle, 16)

	spawner, err := control.NewSpawner(cfg.ReadinessGrace(), exits, log)
	if err != nil {
		return nil, fmt.Errorf("create spawner: %w", err)
	}

	registry := session.NewRegistry(log)

	metricsReg := prometheus.NewRegistry()
	metrics := session.NewMetrics(metricsReg, registry)

	hands := store.New()
	for _, hc := range cfg.Hands {
		sc, err := hc.StoreConfig()
		if err != nil {
			return nil, fmt.Errorf("configured hand: %w", err)
		}
		h, err := hands.Register(sc)
		if err != nil {
			return nil, fmt.Errorf("configured hand: %w", err)
		}
		log.Info().Str("hand", h.Name).Msg("hand registered from config")
	}

	dispatcher := session.NewDispatcher(session.DispatcherConfig{
		Registry:  registry,
		Spawner:   spawner,
		Hands:     hands,
		StopGrace: cfg.StopGrace(),
		Metrics:   metrics,
		Log:       log,
	})

	return &core{
		service: &DexHandManagerServiceServer{
			dispatcher: dispatcher,
			hands:      hands,
			requireTLS: cfg.TLS.Enabled,
			log:        log,
		},
		supervisor: session.NewSupervisor(registry, exits, cfg.SweepInterval(), metrics, log),
		metricsReg: metricsReg,
	}, nil
}
