package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/cachemanager"
	"github.com/zjrosen/arbor/internal/domain/resolve"
	"github.com/zjrosen/arbor/internal/infrastructure/sqlite"
	"github.com/zjrosen/arbor/internal/log"
	"github.com/zjrosen/arbor/internal/paths"
	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/registry"
	"github.com/zjrosen/arbor/internal/render"
	"github.com/zjrosen/arbor/internal/tracing"
)

// newLookupCache returns the cache manager backing registry lookups. Watch
// and browse share one across service rebuilds and flush it when manifests
// change, so stale entries never outlive the files they came from.
func newLookupCache() *cachemanager.InMemoryCacheManager[string, any] {
	return cachemanager.NewInMemoryCacheManager[string, any](
		"lookup", cfg.Cache.TTL, cachemanager.DefaultCleanupInterval)
}

// newService loads manifests and builds the resolution stack. The lookup
// decorators layer cache innermost and tracing outermost, so trace events
// see cache hits too. With caching disabled in config the cache decorator
// stays in place but passes everything through.
func newService(cache cachemanager.CacheManager[string, any], provider *tracing.Provider) (*manifest.Service, error) {
	opts := []manifest.Option{
		manifest.WithLookup(func(next resolve.Lookup) resolve.Lookup {
			return registry.NewCached(next, cache, cfg.Cache.TTL, !cfg.Cache.Enabled)
		}),
	}
	if provider != nil && provider.Enabled() {
		opts = append(opts,
			manifest.WithLookup(func(next resolve.Lookup) resolve.Lookup {
				return tracing.NewTracedLookup(next)
			}),
			manifest.WithHooks(tracing.NewTraceHooks(provider.Tracer())),
		)
	}

	svc, err := manifest.NewService(os.DirFS(manifestDir()), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading manifests from %s: %w\nRun 'arbor init' to create a starter manifest directory", manifestDir(), err)
	}
	return svc, nil
}

// newTracing builds the trace provider from config. Callers shut it down
// through shutdownTracing so buffered spans flush before exit.
func newTracing() (*tracing.Provider, error) {
	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "arbor",
	})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	return provider, nil
}

func shutdownTracing(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "trace provider shutdown failed", err)
	}
}

// openHistory opens the run history database under the arbor directory.
func openHistory() (*sqlite.DB, error) {
	db, err := sqlite.NewDB(paths.DBPath(arborDir))
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	return db, nil
}

// resolveAndRecord resolves a descriptor through svc under a fresh trace ID
// and records the outcome as a history run unless noHistory is set. Both
// resolve and each watch iteration go through here so their runs diff
// against each other.
func resolveAndRecord(ctx context.Context, svc *manifest.Service, renderer render.Renderer, descriptor string, noHistory bool) (presentation.NodeDTO, error) {
	traceID := tracing.GenerateTraceID()
	ctx = tracing.ContextWithTraceID(ctx, traceID)

	run := sqlite.NewRun(descriptor)
	run.SetTraceID(traceID)

	start := time.Now()
	root, err := svc.Resolve(ctx, descriptor)
	run.DurationMS = time.Since(start).Milliseconds()

	if err != nil {
		run.MarkFailed(err)
		if !noHistory {
			saveRun(run)
		}
		return presentation.NodeDTO{}, err
	}

	dto := presentation.FromNode(root)
	run.NodeCount = root.Size()

	// Snapshots stay unstyled and unbounded so history diffs compare
	// content, not terminal styling.
	snap := renderer.Plain()
	snap.Width = 0
	run.Snapshot = snap.Render(dto)
	if !noHistory {
		saveRun(run)
	}
	return dto, nil
}

// saveRun records a run in the history database. Recording is best effort:
// a resolve that already printed its tree should not fail on bookkeeping.
func saveRun(run *sqlite.Run) {
	if !cfg.History.Enabled {
		return
	}

	db, err := openHistory()
	if err != nil {
		log.ErrorErr(log.CatDB, "history unavailable", err)
		return
	}
	defer func() { _ = db.Close() }()

	repo := db.RunRepository()
	if err := repo.Save(run); err != nil {
		log.ErrorErr(log.CatDB, "saving run failed", err, "run", run.ID)
		return
	}
	pruneRuns(repo)
}

// pruneRuns enforces history.keep. Runs sharing the cutoff second with the
// oldest kept run survive until the next prune.
func pruneRuns(repo sqlite.RunRepository) {
	keep := cfg.History.Keep
	if keep <= 0 {
		return
	}

	runs, err := repo.List(0)
	if err != nil || len(runs) <= keep {
		return
	}

	cutoff := runs[keep-1].CreatedAt
	if _, err := repo.DeleteOlderThan(cutoff); err != nil {
		log.ErrorErr(log.CatDB, "pruning history failed", err)
	}
}
