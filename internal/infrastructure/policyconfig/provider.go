package policyconfig

import (
	"context"
	"path/filepath"
	"sync"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/policy"
	"corporatepay/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Provider serves the active configuration snapshot. Swaps are atomic
// under the mutex, so concurrent evaluations always see a consistent
// policy/templates pair.
type Provider struct {
	mu    sync.RWMutex
	file  File
	terms map[string]entities.PenaltyTerms
	path  string
	log   zerolog.Logger
}

var _ interfaces.IPolicyProvider = (*Provider)(nil)

func NewProvider(file File, path string, log zerolog.Logger) *Provider {
	p := &Provider{path: path, log: log}
	p.swap(file)
	return p
}

func (p *Provider) swap(file File) {
	terms := make(map[string]entities.PenaltyTerms, len(file.Penalties))
	for _, t := range file.Penalties {
		terms[t.CounterpartyID] = t
	}
	p.mu.Lock()
	p.file = file
	p.terms = terms
	p.mu.Unlock()
}

func (p *Provider) Policy() policy.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Policy
}

func (p *Provider) Templates() policy.TemplateRules {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Templates
}

// PenaltyTerms resolves the terms for a counterparty, falling back to the
// "*" wildcard entry when one is configured.
func (p *Provider) PenaltyTerms(counterpartyID string) (entities.PenaltyTerms, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if t, ok := p.terms[counterpartyID]; ok {
		return t, true
	}
	t, ok := p.terms["*"]
	return t, ok
}

func (p *Provider) AutoDisputeEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Scan.AutoDispute
}

// Scan returns the active scan settings.
func (p *Provider) Scan() ScanConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.file.Scan
}

// Watch re-reads the config file whenever it changes and blocks until ctx
// is cancelled. The directory is watched rather than the file itself so
// atomic rename-style rewrites keep firing events. A file that fails to
// load leaves the previous snapshot active.
func (p *Provider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(p.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			file, err := Load(p.path)
			if err != nil {
				p.log.Error().Err(err).Str("path", p.path).Msg("policy config reload rejected")
				continue
			}
			p.swap(file)
			p.log.Info().Str("path", p.path).Msg("policy config reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.log.Error().Err(err).Msg("policy config watcher error")
		}
	}
}
