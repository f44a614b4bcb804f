// Package batch orchestrates transforms over many files: discovery,
// bounded parallelism, backups, and lock-file bookkeeping. Per-file
// failures never abort the rest of the batch.
package batch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	stdsync "sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/config"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/lockfile"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
)

type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

type Options struct {
	Direction   Direction
	Paths       []string
	Description string
	DryRun      bool
	Force       bool
	MaxParallel int
}

// FileResult is the outcome of processing one file.
type FileResult struct {
	Path   string
	Output string
	Status Status
	Result transform.Result
	Err    error

	sourceHash string
}

type Summary struct {
	Converted int
	Skipped   int
	Failed    int
	Warnings  int
	Results   []FileResult
}

// TransformOptions builds the per-call transform options from config.
func TransformOptions(cfg *config.Config, description string) transform.Options {
	return transform.Options{
		Description:       description,
		CustomComponents:  cfg.Components.Custom,
		CustomImports:     cfg.Components.Imports,
		EnhanceCodeTitles: cfg.EnhanceCodeTitles,
		TitlePatterns:     cfg.TitlePatterns(),
	}
}

// Run discovers source files and transforms them with bounded
// parallelism. Already-written outputs are left intact if the context is
// cancelled partway through.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Summary, error) {
	files, err := Discover(opts.Paths, sourcePattern(opts.Direction))
	if err != nil {
		return nil, err
	}

	lockDir := cfg.ConfigDir
	if lockDir == "" {
		lockDir = "."
	}

	lock, err := lockfile.Load(lockDir)
	if err != nil {
		return nil, err
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = cfg.Parallel
	}

	topts := TransformOptions(cfg, opts.Description)

	results := make(map[string]FileResult, len(files))
	var resultsMu stdsync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, path := range files {
		path := path
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}

			result := processFile(path, cfg, opts, topts, lock)

			resultsMu.Lock()
			results[path] = result
			resultsMu.Unlock()
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, oops.Wrapf(waitErr, "waiting for transform workers")
	}

	summary := &Summary{}
	for _, path := range files {
		result, ok := results[path]
		if !ok {
			continue
		}

		summary.Results = append(summary.Results, result)
		summary.Warnings += result.Result.WarningCount()

		switch result.Status {
		case StatusConverted:
			summary.Converted++
			if !opts.DryRun {
				lock.SetEntry(lockKey(lockDir, path), &lockfile.Entry{
					SourceHash:  result.sourceHash,
					Output:      result.Output,
					ConvertedAt: time.Now().UTC(),
				})
			}
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	if !opts.DryRun {
		if saveErr := lock.Save(lockDir); saveErr != nil {
			return nil, saveErr
		}
	}

	return summary, nil
}

func processFile(
	path string,
	cfg *config.Config,
	opts Options,
	topts transform.Options,
	lock *lockfile.LockFile,
) FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{
			Path:   path,
			Status: StatusFailed,
			Err: oops.
				Code("READ_FAILED").
				With("path", path).
				Wrapf(err, "reading source file"),
		}
	}

	hash := lockfile.HashContent(content)
	outputPath := OutputPath(path, opts.Direction, cfg.OutputExt)

	lockDir := cfg.ConfigDir
	if lockDir == "" {
		lockDir = "."
	}

	if !opts.Force {
		if entry := lock.GetEntry(lockKey(lockDir, path)); entry != nil && entry.SourceHash == hash {
			if _, statErr := os.Stat(outputPath); statErr == nil {
				return FileResult{Path: path, Output: outputPath, Status: StatusSkipped}
			}
		}
	}

	var result transform.Result
	switch opts.Direction {
	case DirectionReverse:
		result = transform.Reverse(string(content), topts)
	default:
		result = transform.Forward(string(content), topts)
	}

	if !result.Success() {
		return FileResult{Path: path, Output: outputPath, Status: StatusFailed, Result: result}
	}

	if !opts.DryRun {
		if cfg.Backup {
			if backupErr := backupExisting(outputPath); backupErr != nil {
				return FileResult{Path: path, Output: outputPath, Status: StatusFailed, Result: result, Err: backupErr}
			}
		}

		if writeErr := writeFileAtomic(outputPath, []byte(result.Content)); writeErr != nil {
			return FileResult{Path: path, Output: outputPath, Status: StatusFailed, Result: result, Err: writeErr}
		}
	}

	return FileResult{
		Path:       path,
		Output:     outputPath,
		Status:     StatusConverted,
		Result:     result,
		sourceHash: hash,
	}
}

// Discover expands directories into files matching pattern and accepts
// explicit file arguments as-is. Results are sorted and de-duplicated.
func Discover(paths []string, pattern string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := map[string]struct{}{}
	var files []string

	add := func(path string) {
		cleaned := filepath.Clean(path)
		if _, exists := seen[cleaned]; exists {
			return
		}
		seen[cleaned] = struct{}{}
		files = append(files, cleaned)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, oops.
				Code("FILE_NOT_FOUND").
				With("path", path).
				Wrapf(err, "checking input path %q", path)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		matches, globErr := doublestar.Glob(os.DirFS(path), pattern, doublestar.WithFilesOnly())
		if globErr != nil {
			return nil, oops.
				Code("READ_FAILED").
				With("path", path).
				With("pattern", pattern).
				Wrapf(globErr, "matching files under %q", path)
		}

		for _, match := range matches {
			add(filepath.Join(path, filepath.FromSlash(match)))
		}
	}

	sort.Strings(files)
	return files, nil
}

// OutputPath swaps the source extension for the target one: .md becomes
// the configured output extension going forward, anything else becomes
// .md going back.
func OutputPath(path string, direction Direction, outputExt string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if direction == DirectionReverse {
		return base + ".md"
	}

	if outputExt == "" {
		outputExt = config.DefaultOutputExt
	}
	return base + outputExt
}

func sourcePattern(direction Direction) string {
	if direction == DirectionReverse {
		return "**/*.mdx"
	}
	return "**/*.md"
}

func lockKey(lockDir string, path string) string {
	rel, err := filepath.Rel(lockDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Clean(path)
	}
	return filepath.ToSlash(rel)
}

// backupExisting copies a pre-existing output file to <path>.bak before
// it is overwritten.
func backupExisting(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading existing output for backup")
	}

	backupPath := path + ".bak"
	if writeErr := os.WriteFile(backupPath, content, 0o644); writeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", backupPath).
			Wrapf(writeErr, "writing backup file")
	}

	return nil
}

func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".transpiler-*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "creating temporary file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(content); err != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing temporary file")
	}

	if err := tempFile.Close(); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "closing temporary file")
	}

	if err := os.Chmod(tempPath, fs.FileMode(0o644)); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "setting output permissions")
	}

	if err := os.Rename(tempPath, path); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "replacing destination file")
	}

	return nil
}
