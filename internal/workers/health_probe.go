// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type probeTarget struct {
	name     string
	pinger   Pinger
	optional bool
}

// HealthProbe pings its targets on an interval and reports SERVING only when
// every required target answers. Optional targets are pinged and logged but
// never change the status.
type HealthProbe struct {
	targets  []probeTarget
	status   StatusSetter
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	serving *bool
}

func NewHealthProbe(status StatusSetter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &HealthProbe{
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

// WithTarget adds a required dependency to probe. A nil pinger is skipped.
func (p *HealthProbe) WithTarget(name string, pinger Pinger) *HealthProbe {
	return p.addTarget(name, pinger, false)
}

// WithOptionalTarget adds a dependency whose failures are only logged.
func (p *HealthProbe) WithOptionalTarget(name string, pinger Pinger) *HealthProbe {
	return p.addTarget(name, pinger, true)
}

func (p *HealthProbe) addTarget(name string, pinger Pinger, optional bool) *HealthProbe {
	if pinger != nil {
		p.targets = append(p.targets, probeTarget{name: name, pinger: pinger, optional: optional})
	}
	return p
}

// Run probes once right away, then every interval until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Int("targets", len(p.targets)).Msg("starting health probe")

	go func() {
		p.Probe(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info().Msg("health probe stopped")
				return
			case <-ticker.C:
				p.Probe(ctx)
			}
		}
	}()
}

// Probe pings every target once, each bounded by the probe interval, and
// reports the result.
func (p *HealthProbe) Probe(ctx context.Context) bool {
	serving := true
	for _, target := range p.targets {
		pingCtx, cancel := context.WithTimeout(ctx, p.interval)
		err := target.pinger.Ping(pingCtx)
		cancel()

		if err != nil {
			p.logger.Warn().Err(err).Str("target", target.name).Bool("optional", target.optional).Msg("health check failed")
			if !target.optional {
				serving = false
			}
		}
	}

	p.report(serving)
	return serving
}

func (p *HealthProbe) report(serving bool) {
	p.mu.Lock()
	changed := p.serving == nil || *p.serving != serving
	p.serving = &serving
	p.mu.Unlock()

	if changed {
		p.logger.Info().Bool("serving", serving).Msg("health status changed")
	}
	if p.status != nil {
		p.status.SetServing(serving)
	}
}
