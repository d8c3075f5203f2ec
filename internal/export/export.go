// Package export renders curriculum JSON files into standalone flowchart and
// preview files.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/currhub/currhub/internal/curriculum"
	"github.com/currhub/currhub/internal/flowchart"
	"github.com/currhub/currhub/internal/progress"
	"github.com/currhub/currhub/internal/theme"
	"github.com/currhub/currhub/internal/ui"
)

// ErrNoInput is returned when the patterns match no files.
var ErrNoInput = errors.New("no curriculum files matched")

// Options configures an export run.
type Options struct {
	OutDir      string
	Concurrency int
	Theme       theme.Theme
	Reporter    progress.Reporter
	Logger      *zap.Logger
}

// Result describes the files written for one input.
type Result struct {
	Source    string
	Flowchart string
	Page      string
	Courses   int
}

// Expand resolves glob patterns (with ** support) to a sorted, de-duplicated
// list of files, dropping any that match an exclude pattern.
func Expand(patterns, exclude []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// excluded reports whether path matches any of the patterns, either as a
// whole or by its base name.
func excluded(path string, patterns []string) bool {
	normalized := filepath.ToSlash(path)
	base := filepath.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.PathMatch(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Run exports every file into opts.OutDir as <name>.mmd and <name>.html. Files
// are processed concurrently; the first failure cancels the rest.
func Run(ctx context.Context, files []string, opts Options) ([]Result, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Discard{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Theme == "" {
		opts.Theme = theme.Light
	}

	names, err := outputNames(files)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	results := make([]Result, len(files))
	opts.Reporter.Start(len(files))
	defer opts.Reporter.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := exportOne(file, names[i], opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			opts.Logger.Debug("exported curriculum",
				zap.String("source", file),
				zap.Int("courses", res.Courses),
			)
			opts.Reporter.Step(filepath.Base(file))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func exportOne(file, name string, opts Options) (Result, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Result{}, err
	}
	doc, err := curriculum.Parse(data)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Source:    file,
		Flowchart: filepath.Join(opts.OutDir, name+".mmd"),
		Page:      filepath.Join(opts.OutDir, name+".html"),
		Courses:   doc.CourseCount(),
	}

	if err := os.WriteFile(res.Flowchart, []byte(flowchart.Compile(doc)), 0644); err != nil {
		return Result{}, fmt.Errorf("writing flowchart: %w", err)
	}

	f, err := os.Create(res.Page)
	if err != nil {
		return Result{}, fmt.Errorf("creating page: %w", err)
	}
	page := ui.StandalonePage(doc.ProgramTitle, opts.Theme, ui.StandalonePreview(doc))
	if err := page.Render(f); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("rendering page: %w", err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("writing page: %w", err)
	}
	return res, nil
}

// outputNames derives the output base name of each file and rejects two
// inputs that would overwrite each other.
func outputNames(files []string) ([]string, error) {
	names := make([]string, len(files))
	owner := make(map[string]string)
	for i, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		if prev, ok := owner[name]; ok {
			return nil, fmt.Errorf("%s and %s would both export as %q", prev, f, name)
		}
		owner[name] = f
		names[i] = name
	}
	return names, nil
}
