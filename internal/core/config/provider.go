package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/camtune/camtune/internal/core/observability/log"
)

// Provider holds the most recently loaded UserConfig and re-reads the file
// on demand. Until a file loads successfully it serves built-in defaults;
// after a failed reload it keeps serving the last good config. Current is
// safe to call while Watch reloads in the background; Reload itself is not
// meant to be called concurrently with itself.
type Provider struct {
	path string
	log  log.Log

	mu      sync.RWMutex
	current UserConfig

	lastSum uint64
	haveSum bool
}

func NewProvider(path string, logger log.Log) *Provider {
	return &Provider{
		path:    path,
		log:     logger,
		current: Default(),
	}
}

func (p *Provider) Current() UserConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads the config file if its contents changed since the last
// attempt. The content fingerprint is recorded even when parsing fails so a
// broken file is reported once, not every poll.
func (p *Provider) Reload() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	sum := xxhash.Sum64(data)
	if p.haveSum && sum == p.lastSum {
		return nil
	}
	p.lastSum = sum
	p.haveSum = true

	cfg, err := Parse(data, p.log)
	if err != nil {
		p.log.Warn("keeping existing camera settings", log.Err(err))
		return err
	}

	p.mu.Lock()
	p.current = cfg
	p.mu.Unlock()
	p.log.Info("camera settings loaded", log.String("path", p.path))
	return nil
}

// Watch polls the file until ctx is done. A missing file is not an event;
// the game may start before the user writes one.
func (p *Provider) Watch(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.Reload(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				p.log.Debug("config reload failed", log.Err(err))
			}
		}
	}
}
