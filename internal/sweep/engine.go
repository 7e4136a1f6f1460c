/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/fulmenhq/docsweep/pkg/buildinfo"
	"github.com/fulmenhq/docsweep/pkg/config"
	"github.com/fulmenhq/docsweep/pkg/ignore"
	"github.com/fulmenhq/docsweep/pkg/logger"
	"github.com/fulmenhq/docsweep/pkg/safeio"
)

// Engine runs the sweep phases in order: navigation, docs, assets, detection.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates an engine for cfg; nil means config.Default().
func NewEngine(cfg *config.Config) *Engine {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Engine{cfg: cfg}
}

// Run sweeps the project at target. Findings never produce an error; an
// error means the sweep itself could not complete.
func (e *Engine) Run(ctx context.Context, target string) (*Report, error) {
	start := time.Now()
	cfg := e.cfg

	root, err := safeio.NewRoot(target)
	if err != nil {
		return nil, err
	}
	matcher, err := referenceMatcher(root.Path(), cfg.References.RespectIgnore)
	if err != nil {
		return nil, err
	}
	filter, err := newPathFilter(cfg.Exclude, matcher)
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Extracting declared links from %s", cfg.Navigation.File))
	nav, err := ReadNavigation(ctx, root, cfg.Navigation.File, cfg.Content.Dir, cfg.Content.Extensions)
	if err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("Found %d declared links", len(nav.Links)), logger.Int("broken", len(nav.Broken)))

	logger.Info("Scanning documentation files", logger.String("dir", cfg.Content.Dir))
	docs, err := ScanDocs(ctx, root, cfg.Content.Dir, cfg.Content.Extensions, filter)
	if err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("Found %d existing documentation files", len(docs)))

	logger.Info("Analyzing assets")
	assets, err := ScanAssets(ctx, root, AssetScan{
		Roots:      cfg.Assets.Roots,
		Extensions: cfg.Assets.Extensions,
		AllFiles:   cfg.Assets.AllFiles,
	}, filter)
	if err != nil {
		return nil, err
	}
	refs, err := ScanReferences(ctx, root, ReferenceScan{
		Dirs:       cfg.References.Dirs,
		ScanRoot:   cfg.References.ScanRoot,
		Extensions: cfg.References.Extensions,
	}, filter)
	if err != nil {
		return nil, err
	}
	unused := UnusedAssets(assets, refs, AssetUsage{
		Implicit:      cfg.Assets.Implicit,
		StripPrefixes: cfg.Assets.StripPrefixes,
	})
	logger.Info(fmt.Sprintf("Found %d assets, %d referenced", len(assets), len(refs)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("Detecting issues")
	findings := Findings{
		DeadFiles:     DeadFiles(docs, nav.Links, cfg.Content.Index),
		BrokenLinks:   nav.Broken,
		PossibleTypos: PossibleTypos(nav.Links, docs, cfg.Typos.Threshold),
		UnusedAssets:  unused,
	}

	report := &Report{
		Metadata: Metadata{
			Root:          root.Path(),
			Version:       buildinfo.Version(),
			GeneratedAt:   start,
			ExecutionTime: time.Since(start),
			ConfigSource:  cfg.Source,
		},
		Stats: Stats{
			DeclaredLinks:   len(nav.Links),
			DocFiles:        len(docs),
			Assets:          len(assets),
			AssetReferences: len(refs),
		},
		Findings: findings,
	}
	logger.Debug("Sweep completed",
		logger.Int("issues", findings.Total()),
		logger.Duration("duration", report.Metadata.ExecutionTime))
	return report, nil
}

// referenceMatcher always skips dependency and VCS trees; .gitignore and
// .docsweepignore rules are opt-in.
func referenceMatcher(root string, respectIgnore bool) (*ignore.Matcher, error) {
	if !respectIgnore {
		return ignore.NewBaseMatcher(root)
	}
	m, err := ignore.NewMatcher(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore rules: %w", err)
	}
	return m, nil
}
