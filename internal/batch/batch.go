// Package batch converts a directory tree of SVG icons into
// .excalidraw documents, using a bounded pool of workers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/svg2excalidraw/convert"
	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/svgicon"
)

// Extension of the output files.
const Extension = ".excalidraw"

// ErrNoInput is returned when the input directory has no SVG file.
var ErrNoInput = errors.New("no SVG files found")

var sizeToken = regexp.MustCompile(`^(ic_fluent_[a-z0-9_]+?)_(\d+)(.*)$`)

// StripSizeToken removes the size of Fluent icon names:
// ic_fluent_add_24_regular becomes ic_fluent_add_regular.
// Other names are returned unchanged.
func StripSizeToken(stem string) string {
	m := sizeToken.FindStringSubmatch(stem)
	if m == nil {
		return stem
	}
	return m[1] + m[3]
}

// Config describes one batch run.
type Config struct {
	InputDir, OutputDir string

	// PreserveColors keeps the colors of both channels for every file.
	PreserveColors bool

	// Workers is the number of files converted concurrently.
	// Zero means runtime.GOMAXPROCS.
	Workers int

	// Options is the base configuration; the filled flag and
	// the color policies are set per file.
	Options convert.Options

	// NewIDs returns the identifier source of one file.
	// Nil means random identifiers.
	NewIDs func(file string) idgen.Source

	// Now defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Result counts the files of a run.
type Result struct {
	Total      int
	Converted  int
	Duplicates int
	Failed     int
}

// Summary formats the final report of a run on dir.
func (r Result) Summary(dir string) string {
	s := fmt.Sprintf("Processed %d SVGs from %s: %d converted, %d duplicates skipped", r.Total, dir, r.Converted, r.Duplicates)
	if r.Failed > 0 {
		s += fmt.Sprintf(", %d failed", r.Failed)
	}
	return s
}

// FileOptions returns the options for the given file: "_color" variants
// are filled and keep their fill colors, "_filled" variants are filled.
func FileOptions(base convert.Options, file string, preserveColors bool) convert.Options {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
	isColor := strings.Contains(stem, "_color")
	opts := base
	opts.Filled = isColor || strings.Contains(stem, "_filled")
	opts.FillPolicy, opts.StrokePolicy = svgicon.Normalize, svgicon.Normalize
	if preserveColors || isColor {
		opts.FillPolicy = svgicon.Preserve
	}
	if preserveColors {
		opts.StrokePolicy = svgicon.Preserve
	}
	return opts
}

// OutputPath returns the output file of the given input,
// relative to the input directory.
func OutputPath(rel string) string {
	dir, base := filepath.Split(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, StripSizeToken(stem)+Extension)
}

// listInputs returns the .svg files of dir, relative to it, sorted.
func listInputs(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".svg" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	slices.Sort(files)
	return files, err
}

type job struct {
	input, output string // relative paths
}

// Run converts every file of the input directory. Files sharing the same
// output (sizes variants of one icon) are converted once, the first
// one in lexical order winning. Conversion failures are logged and counted;
// only I/O errors on the directories and cancellation abort the run.
func Run(ctx context.Context, cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = svgicon.Logger()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	files, err := listInputs(cfg.InputDir)
	if err != nil {
		return Result{}, err
	}
	if len(files) == 0 {
		return Result{}, fmt.Errorf("%w under %s", ErrNoInput, cfg.InputDir)
	}

	res := Result{Total: len(files)}
	var jobs []job
	seen := make(map[string]bool)
	for _, file := range files {
		out := OutputPath(file)
		if seen[out] {
			res.Duplicates++
			continue
		}
		seen[out] = true
		jobs = append(jobs, job{input: file, output: out})
	}

	var mu sync.Mutex // protects res
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := convertFile(cfg, j, now())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed++
				logger.Error("convert", "file", j.input, "error", err)
				return nil
			}
			res.Converted++
			logger.Debug("convert", "file", j.input, "output", j.output)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, ctx.Err()
}

func convertFile(cfg Config, j job, now time.Time) error {
	opts := FileOptions(cfg.Options, j.input, cfg.PreserveColors)
	var ids idgen.Source = idgen.Random{}
	if cfg.NewIDs != nil {
		ids = cfg.NewIDs(j.input)
	}
	opts.IDs = ids

	icon, err := svgicon.ReadIcon(filepath.Join(cfg.InputDir, j.input), opts.ErrorMode)
	if err != nil {
		return err
	}
	sc, err := convert.Convert(icon, opts)
	if err != nil {
		return err
	}
	doc := excalidraw.FromScene(sc, ids, now)

	path := filepath.Join(cfg.OutputDir, j.output)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
