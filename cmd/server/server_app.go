package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	apiv1 "github.com/haoyan-ts/dexhand-manager/api/v1"
)

// GRPCServer encapsulates the listener, the gRPC server instance, the
// background supervisor and the optional debug HTTP listener.
type GRPCServer struct {
	lis   net.Listener
	s     *grpc.Server
	run   func(context.Context)
	debug *http.Server
	log   zerolog.Logger
}

// NewGRPCServer wires the orchestration core into a gRPC server bound to
// the configured address. With TLS enabled the server requires client
// certificates (mTLS) and enforces per-session ownership via SPIFFE IDs;
// in plaintext mode the interceptors are omitted.
func NewGRPCServer(cfg *Config, log zerolog.Logger) (*GRPCServer, error) {
	c, err := newCore(cfg, log)
	if err != nil {
		return nil, err
	}

	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	var opts []grpc.ServerOption
	if cfg.TLS.Enabled {
		cert, err := tls.X509KeyPair([]byte(cfg.TLS.Cert), []byte(cfg.TLS.Key))
		if err != nil {
			return nil, fmt.Errorf("failed to load server key pair: %w", err)
		}
		caPool := x509.NewCertPool()
		if ok := caPool.AppendCertsFromPEM([]byte(cfg.TLS.CACert)); !ok {
			return nil, fmt.Errorf("failed to append CA certificate to pool")
		}
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      caPool,
			ClientCAs:    caPool,
			ClientAuth:   tls.RequireAndVerifyClientCert,
			MinVersion:   tls.VersionTLS13,
		}
		opts = append(opts,
			grpc.Creds(credentials.NewTLS(tlsConfig)),
			grpc.UnaryInterceptor(injectSpiffeIDUnary),
			grpc.StreamInterceptor(injectSpiffeIDStream),
		)
	}

	s := grpc.NewServer(opts...)
	apiv1.RegisterDexHandManagerServiceServer(s, c.service)

	var debug *http.Server
	if cfg.Debug != "" {
		debug = &http.Server{Addr: cfg.Debug, Handler: newDebugRouter(c.metricsReg)}
	}

	return &GRPCServer{
		lis:   lis,
		s:     s,
		run:   c.supervisor.Run,
		debug: debug,
		log:   log,
	}, nil
}

// Serve runs the supervisor and the gRPC server until ctx is cancelled,
// then drains in-flight RPCs with a graceful stop.
func (g *GRPCServer) Serve(ctx context.Context) error {
	supCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go g.run(supCtx)

	if g.debug != nil {
		go func() {
			g.log.Info().Str("address", g.debug.Addr).Msg("debug listener running")
			if err := g.debug.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				g.log.Warn().Err(err).Msg("debug listener failed")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- g.s.Serve(g.lis) }()

	select {
	case <-ctx.Done():
		g.log.Info().Msg("shutting down")
		g.Stop()
		<-errCh
		return nil
	case err := <-errCh:
		g.Stop()
		return err
	}
}

// Addr returns the network address the server is bound to.
func (g *GRPCServer) Addr() net.Addr { return g.lis.Addr() }

// Stop gracefully stops the gRPC server and the debug listener.
func (g *GRPCServer) Stop() {
	g.s.GracefulStop()
	if g.debug != nil {
		_ = g.debug.Close()
	}
}
