// Command assist answers SAP Fiori Launchpad troubleshooting questions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/ai"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/config/env"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/cli"
	"github.com/custodia-labs/launchpad-assist/internal/connectors"
	"github.com/custodia-labs/launchpad-assist/internal/connectors/filesystem"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driven"
	"github.com/custodia-labs/launchpad-assist/internal/core/services"
	"github.com/custodia-labs/launchpad-assist/internal/core/services/router"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/markdown"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	env.LoadDotEnv()

	var inner driven.ConfigStore
	if opts.NoConfig {
		inner = memory.NewConfigStore()
	} else {
		store, err := file.NewConfigStore("")
		if err != nil {
			return nil, fmt.Errorf("opening settings: %w", err)
		}
		inner = store
	}
	settingsSvc := services.NewSettingsService(env.New(inner), ai.NewConfigValidator())

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	cache := services.NewCorpusCache(connectors.Open(settings.KnowledgeBase.Path), markdown.New())

	llm := ai.InitLLM(&settings.LLM)
	r := router.New(llm.LLMService, router.ConfigFromSettings(settings.Router))

	traces, err := openTraceStore(settings.Trace, opts.NoTraceDB)
	if err != nil {
		llm.Close()
		return nil, err
	}

	s := &cli.Services{
		Settings:  settingsSvc,
		Ask:       services.NewAskService(r, cache, traces, llm.Provider),
		Playbooks: services.NewPlaybookService(),
		Traces:    services.NewTraceService(traces),
		Close: func() error {
			llm.Close()
			return traces.Close()
		},
	}

	kb := settings.KnowledgeBase
	if kb.Watch && !kb.IsRemote() {
		s.Watch = func(ctx context.Context) error {
			return watchKnowledgeBase(ctx, kb.Path, cache)
		}
	}
	return s, nil
}

// openTraceStore returns the sqlite store, or an in-memory ring when
// persistence is off.
func openTraceStore(cfg domain.TraceSettings, inMemory bool) (driven.TraceStore, error) {
	if inMemory || !cfg.Enabled {
		return memory.NewTraceStore(memory.DefaultTraceCapacity), nil
	}

	var (
		store *sqlite.Store
		err   error
	)
	if cfg.Path != "" {
		store, err = sqlite.Open(cfg.Path)
	} else {
		store, err = sqlite.NewStore("")
	}
	if err != nil {
		return nil, fmt.Errorf("opening trace store: %w", err)
	}
	return store, nil
}

// watchKnowledgeBase drops the cached corpus whenever markdown files change.
func watchKnowledgeBase(ctx context.Context, path string, cache *services.CorpusCache) error {
	w, err := filesystem.NewWatcher(path, filesystem.DefaultDebounce, func() {
		logger.Info("Knowledge base changed, reloading on next question")
		cache.Invalidate()
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}
