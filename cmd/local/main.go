package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dstore/internal/config"
	"dstore/internal/shell"
	"dstore/pkg/cluster"
	"dstore/pkg/localstore"
	"dstore/pkg/node"
	"dstore/pkg/rpc"
)

var (
	configPath = flag.String("config", "dstore.yaml", "path to config file")
	localAddr  = flag.String("addr", "", "this node's address (overrides config)")
	globalAddr = flag.String("global", "", "global endpoint address (overrides config and zookeeper)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.InitLogger(&cfg)

	if *localAddr != "" {
		cfg.Local.Addr = *localAddr
	}
	endpoint, err := resolveGlobal(cfg)
	if err != nil {
		slog.Error("failed to resolve global endpoint", "error", err)
		os.Exit(1)
	}

	client, err := rpc.Dial(endpoint, cfg.Local.RequestTimeout, cfg.Global.ChunkBytes)
	if err != nil {
		slog.Error("failed to dial global", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.Join(ctx, cfg.Local.Addr); err != nil {
		slog.Error("couldn't join cluster", "error", err)
		os.Exit(1)
	}
	slog.Info("joined cluster", "addr", cfg.Local.Addr, "global", endpoint)

	n := node.New(cfg.Local.Addr, localstore.New(), client, cfg.Global.ChunkBytes)
	go n.RunSync(ctx, cfg.Local.SyncInterval)

	fmt.Printf("dstore node %s (global: %s)\nUse `.exit` to leave the shell.\n", cfg.Local.Addr, endpoint)
	sh := shell.New(n, os.Stdin, os.Stdout, cancel)
	sh.Run(ctx)
}

// resolveGlobal picks the Global endpoint: flag, then ZooKeeper discovery
// when configured, then the static config value.
func resolveGlobal(cfg config.Config) (string, error) {
	if *globalAddr != "" {
		return *globalAddr, nil
	}
	if len(cfg.ZK.Servers) > 0 {
		zk, err := cluster.NewZKDiscovery(cfg.ZK.Servers, cfg.ZK.RootPath)
		if err != nil {
			return "", err
		}
		defer zk.Close()
		return zk.LookupGlobal()
	}
	return cfg.Local.GlobalAddr, nil
}
