package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dstore/internal/config"
	adminhttp "dstore/internal/http"
	"dstore/internal/rpc"
	"dstore/pkg/cluster"
	"dstore/pkg/globalstore"
)

var (
	configPath = flag.String("config", "dstore.yaml", "path to config file")
	listenAddr = flag.String("addr", "", "gRPC listen address (overrides config)")
)

// stats adapts the stores to the admin server's read-only view.
type stats struct {
	store   *globalstore.Store
	members *globalstore.Membership
	queues  *globalstore.QueueStore
}

func (s stats) Keys() int    { return s.store.Len() }
func (s stats) Members() int { return s.members.Len() }
func (s stats) Queues() int  { return s.queues.Len() }

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(&cfg)

	if *listenAddr != "" {
		cfg.Global.ListenAddr = *listenAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := globalstore.New()
	members := globalstore.NewMembership()
	queues := globalstore.NewQueueStore()

	server := rpc.NewServer(store, members, queues, cfg.Global.ListenAddr, cfg.Global.ChunkBytes)
	if err := server.Start(); err != nil {
		slog.Error("failed to start gRPC server", "error", err)
		os.Exit(1)
	}

	admin := adminhttp.NewServer(stats{store, members, queues}, cfg.Global.HTTPPort)
	if err := admin.Start(); err != nil {
		slog.Error("failed to start admin server", "error", err)
		os.Exit(1)
	}

	if len(cfg.ZK.Servers) > 0 {
		zk, err := cluster.NewZKDiscovery(cfg.ZK.Servers, cfg.ZK.RootPath)
		if err != nil {
			slog.Error("failed to connect to zookeeper", "error", err)
			os.Exit(1)
		}
		defer zk.Close()
		if err := zk.RegisterGlobal(cfg.Global.ListenAddr); err != nil {
			slog.Error("failed to register global endpoint", "error", err)
			os.Exit(1)
		}
		slog.Info("registered global endpoint in zookeeper", "addr", cfg.Global.ListenAddr)
	}

	<-ctx.Done()

	slog.Info("shutting down")
	server.Stop()
	if err := admin.Stop(); err != nil {
		slog.Warn("admin server shutdown failed", "error", err)
	}
}
