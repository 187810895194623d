// Package server wires the compat runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"github.com/sdkgate/sdkgate/internal/platform/config"
	"github.com/sdkgate/sdkgate/internal/platform/timeouts"
	"github.com/sdkgate/sdkgate/internal/services/compat/adminauth"
	compatservice "github.com/sdkgate/sdkgate/internal/services/compat/api/grpc/compat"
	"github.com/sdkgate/sdkgate/internal/services/compat/buildinfo"
	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
	compatsqlite "github.com/sdkgate/sdkgate/internal/services/compat/storage/sqlite"
	"github.com/sdkgate/sdkgate/internal/services/compat/watch"
	"github.com/sdkgate/sdkgate/internal/services/compat/xmlconfig"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	ConfigDir string `env:"SDKGATE_COMPAT_CONFIG_DIR"`
	DBPath    string `env:"SDKGATE_COMPAT_DB_PATH"`
	BuildType string `env:"SDKGATE_BUILD_TYPE"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "compat.db")
	}
	return cfg
}

// Server hosts the compat gRPC API, the change registry, and the
// config-reload lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *compatsqlite.Store
	watcher    *watch.Watcher
	registry   *registry.Registry
}

// New creates a configured compat server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured compat server for the provided address.
//
// Startup is all-or-nothing: a malformed config document or an unusable
// override store fails construction rather than serving partial state.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	build, err := buildinfo.Parse(env.BuildType)
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("parse build type: %w", err)
	}
	grants, err := adminauth.LoadConfigFromEnv(nil)
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("load admin grant config: %w", err)
	}

	store, err := openOverrideStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	reg := registry.New()
	configDir := strings.TrimSpace(env.ConfigDir)
	if configDir != "" {
		records, err := xmlconfig.LoadDir(configDir)
		if err != nil {
			_ = store.Close()
			_ = listener.Close()
			return nil, fmt.Errorf("load compat config: %w", err)
		}
		reg.MergeChanges(records)
		log.Printf("loaded %d compat change records from %s", len(records), configDir)
	}

	overrides, err := store.ListOverrides(context.Background())
	if err != nil {
		_ = store.Close()
		_ = listener.Close()
		return nil, fmt.Errorf("hydrate overrides: %w", err)
	}
	for _, override := range overrides {
		reg.SetOverride(registry.ChangeID(override.ChangeID), override.PackageName, override.Enabled)
	}
	if len(overrides) > 0 {
		log.Printf("restored %d persisted overrides", len(overrides))
	}

	var watcher *watch.Watcher
	if configDir != "" {
		watcher, err = watch.Start(watch.Config{Dir: configDir, Logf: log.Printf}, func() {
			reloadConfig(reg, configDir)
		})
		if err != nil {
			_ = store.Close()
			_ = listener.Close()
			return nil, fmt.Errorf("watch compat config: %w", err)
		}
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := compatservice.NewService(reg, store, build, grants)
	healthServer := health.NewServer()
	compatv1.RegisterCompatServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(compatv1.CompatService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		watcher:    watcher,
		registry:   reg,
	}, nil
}

// reloadConfig re-reads the config directory after a document change. A
// failing reload leaves the registry as it was.
func reloadConfig(reg *registry.Registry, dir string) {
	records, err := xmlconfig.LoadDir(dir)
	if err != nil {
		log.Printf("reload compat config: %v", err)
		return
	}
	reg.MergeChanges(records)
	log.Printf("reloaded %d compat change records from %s", len(records), dir)
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a compat server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("compat server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.stopWithDrain()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// stopWithDrain stops the gRPC server gracefully, falling back to a hard
// stop when in-flight requests do not drain within the shutdown timeout.
func (s *Server) stopWithDrain() {
	drained := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(timeouts.Shutdown):
		s.grpcServer.Stop()
		<-drained
	}
}

// Close releases compat server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			log.Printf("close config watcher: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close override store: %v", err)
		}
	}
}

func openOverrideStore(path string) (*compatsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := compatsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open compat sqlite store: %w", err)
	}
	return store, nil
}
