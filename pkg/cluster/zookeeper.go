// Package cluster resolves the Global endpoint through ZooKeeper, so Locals
// don't need a hard-coded address when one is available.
package cluster

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
)

const globalNode = "/global"

type ZKDiscovery struct {
	conn     *zk.Conn
	rootPath string
}

// servers: ["zk1:2181", "zk2:2181"]
func NewZKDiscovery(servers []string, rootPath string) (*ZKDiscovery, error) {
	conn, _, err := zk.Connect(servers, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("zk connect: %w", err)
	}
	return &ZKDiscovery{conn: conn, rootPath: rootPath}, nil
}

func (d *ZKDiscovery) Close() error {
	d.conn.Close()
	return nil
}

func (d *ZKDiscovery) ensurePath(path string) error {
	parts := strings.Split(path, "/")
	cur := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		cur = cur + "/" + p
		exists, _, err := d.conn.Exists(cur)
		if err != nil {
			return err
		}
		if !exists {
			_, err = d.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll))
			if err != nil && err != zk.ErrNodeExists {
				return err
			}
		}
	}
	return nil
}

// RegisterGlobal publishes the Global endpoint as an ephemeral node; it
// disappears with the session when the process dies.
func (d *ZKDiscovery) RegisterGlobal(addr string) error {
	if err := d.waitConnected(10 * time.Second); err != nil {
		return err
	}
	if err := d.ensurePath(d.rootPath); err != nil {
		return fmt.Errorf("ensure root path: %w", err)
	}

	_, err := d.conn.Create(d.rootPath+globalNode, []byte(addr), zk.FlagEphemeral, zk.WorldACL(zk.PermAll))
	if err != nil && err != zk.ErrNodeExists {
		return fmt.Errorf("create ephemeral node: %w", err)
	}
	return nil
}

// LookupGlobal reads the published Global endpoint.
func (d *ZKDiscovery) LookupGlobal() (string, error) {
	if err := d.waitConnected(10 * time.Second); err != nil {
		return "", err
	}
	data, _, err := d.conn.Get(d.rootPath + globalNode)
	if err != nil {
		return "", fmt.Errorf("zk get: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("zk: empty global endpoint at %s%s", d.rootPath, globalNode)
	}
	return string(data), nil
}

func (d *ZKDiscovery) waitConnected(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		st := d.conn.State()
		if st == zk.StateConnected || st == zk.StateHasSession {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("zk: not connected after %s, state=%v", timeout, st)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
