package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// rpcNodeChecker implements NodeHealthChecker against the local CometBFT RPC
// listener.
type rpcNodeChecker struct {
	rpcAddr string
	client  *http.Client
}

// NewRPCNodeChecker returns a checker bound to the given CometBFT RPC address.
func NewRPCNodeChecker(rpcAddr string) *rpcNodeChecker {
	return &rpcNodeChecker{
		rpcAddr: rpcAddr,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *rpcNodeChecker) get(path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rpcAddr+path, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc %s returned status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CheckRPC reports whether the RPC endpoint answers /health.
func (c *rpcNodeChecker) CheckRPC() error {
	return c.get("/health", nil)
}

// CheckSync returns whether the node is still catching up and its latest
// height.
func (c *rpcNodeChecker) CheckSync() (syncing bool, height int64, err error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}
	if err := c.get("/status", &status); err != nil {
		return false, 0, err
	}

	height, _ = strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	return status.Result.SyncInfo.CatchingUp, height, nil
}

// CheckConsensus is a no-op for non-validator nodes. A validator deployment
// would cross-check its address against the active set here.
func (c *rpcNodeChecker) CheckConsensus() error {
	return nil
}

// GetPeerCount returns the number of connected peers.
func (c *rpcNodeChecker) GetPeerCount() (int, error) {
	var netInfo struct {
		Result struct {
			NPeers string `json:"n_peers"`
		} `json:"result"`
	}
	if err := c.get("/net_info", &netInfo); err != nil {
		return 0, err
	}

	peers, _ := strconv.Atoi(netInfo.Result.NPeers)
	return peers, nil
}

// GetBlockHeight returns the latest committed height.
func (c *rpcNodeChecker) GetBlockHeight() (int64, error) {
	_, height, err := c.CheckSync()
	return height, err
}
