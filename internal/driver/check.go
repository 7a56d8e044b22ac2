// Package driver orchestrates analysis: it discovers files, parses each into
// a tree, schedules the configured rules across files, and collects the
// resulting diagnostics. Rules stay pure; all policy (configuration, caching,
// concurrency) lives here.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"doclint/internal/config"
	"doclint/internal/diag"
	"doclint/internal/docparse"
	"doclint/internal/rules"
	"doclint/internal/source"
)

// Options tunes one driver run on top of the loaded configuration.
type Options struct {
	// Jobs overrides cfg.Jobs when positive.
	Jobs int
	// NoCache disables the disk cache for this run.
	NoCache bool
	// Enable force-enables rules by name regardless of configuration.
	Enable []string
	// CacheDir overrides the default cache location (tests).
	CacheDir string
}

// FileResult holds one file's diagnostics.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
}

// Result is the outcome of a whole run. Bag merges every file's diagnostics
// in deterministic order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Bag     *diag.Bag
}

// activeRule pairs a rule with its effective severity for this run.
type activeRule struct {
	rule rules.Rule
	sev  diag.Severity
}

// CheckPath analyzes a file or directory tree and returns the merged
// diagnostics. Files are processed concurrently; output order is by file,
// then by source position.
func (o Options) CheckPath(ctx context.Context, path string, cfg *config.Config) (*Result, error) {
	files, baseDir, err := listFiles(path, cfg)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(baseDir)
	result := &Result{
		FileSet: fileSet,
		Files:   make([]FileResult, len(files)),
		Bag:     diag.NewBag(cfg.MaxDiagnostics),
	}
	if len(files) == 0 {
		return result, nil
	}

	active := o.activeRules(cfg)
	ruleIDs := make([]string, 0, len(active))
	for _, ar := range active {
		ruleIDs = append(ruleIDs, fmt.Sprintf("%s@%d", ar.rule.Descriptor().Code.ID(), ar.sev))
	}

	var cache *DiskCache
	if cfg.Cache && !o.NoCache {
		if o.CacheDir != "" {
			cache, err = OpenDiskCacheAt(o.CacheDir)
		} else {
			cache, err = OpenDiskCache("doclint")
		}
		if err != nil {
			// A missing cache never fails the run.
			cache = nil
		}
	}

	// Preload sequentially: FileSet is not safe for concurrent mutation.
	fileIDs := make([]source.FileID, len(files))
	for i, f := range files {
		id, err := fileSet.Load(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
		fileIDs[i] = id
	}

	jobs := o.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(fileIDs[i])
			fr := checkFile(gctx, file, cfg, active, ruleIDs, cache)
			fr.Path = files[i]
			result.Files[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range result.Files {
		result.Bag.Merge(result.Files[i].Bag)
	}
	result.Bag.Sort()
	return result, nil
}

// checkFile runs the active rules over one file, consulting the cache first.
func checkFile(ctx context.Context, file *source.File, cfg *config.Config, active []activeRule, ruleIDs []string, cache *DiskCache) FileResult {
	fr := FileResult{FileID: file.ID}

	key := cacheKey(file.Hash, cfg.Fingerprint(), ruleIDs)
	if cache != nil {
		if payload, ok, err := cache.Get(key); err == nil && ok {
			fr.Bag = bagFromPayload(payload, file.ID, cfg.MaxDiagnostics)
			fr.Cached = true
			return fr
		}
	}

	bag := diag.NewBag(cfg.MaxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	tree := docparse.Parse(file, docparse.Options{Reporter: rep})
	for _, ar := range active {
		if ctx.Err() != nil {
			break
		}
		ar.rule.Check(ctx, tree, rep, ar.sev)
	}
	fr.Bag = bag

	// Cancelled runs must not poison the cache with partial results.
	if cache != nil && ctx.Err() == nil {
		_ = cache.Put(key, payloadFromBag(bag))
	}
	return fr
}

// activeRules resolves which rules run and at which severity.
func (o Options) activeRules(cfg *config.Config) []activeRule {
	forced := make(map[string]bool, len(o.Enable))
	for _, name := range o.Enable {
		forced[name] = true
	}
	var active []activeRule
	for _, r := range rules.All() {
		desc := r.Descriptor()
		if !cfg.Enabled(desc) && !forced[desc.Name] {
			continue
		}
		sev := cfg.SeverityFor(desc)
		if sev == diag.SevOff {
			continue
		}
		active = append(active, activeRule{rule: r, sev: sev})
	}
	return active
}

// listFiles returns the sorted list of files to analyze and the base
// directory for relative path display.
func listFiles(path string, cfg *config.Config) ([]string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}

	if !info.IsDir() {
		return []string{path}, filepath.Dir(path), nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && cfg.MatchesExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	// Sorted for a deterministic run order.
	sort.Strings(files)
	return files, path, nil
}
