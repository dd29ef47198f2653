package sitemap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/romangod6/sitemapgen/internal/models"
)

// DefaultOutput is the file written inside the scanned directory.
const DefaultOutput = "sitemap.xml"

// Reporter receives the human-readable progress lines of a run.
type Reporter interface {
	Progress(format string, v ...interface{})
}

// RunRecorder persists a finished run. It is optional.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *models.Run) error
}

type Generator struct {
	Options  Options
	Dir      string
	Output   string
	Reporter Reporter
	Recorder RunRecorder
	Now      func() time.Time
}

// OutputPath is where the sitemap will be written. A relative Output is
// resolved against Dir.
func (g *Generator) OutputPath() string {
	output := g.Output
	if output == "" {
		output = DefaultOutput
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(g.dir(), output)
}

func (g *Generator) dir() string {
	if g.Dir == "" {
		return "."
	}
	return g.Dir
}

// Generate scans the directory, builds and renders the sitemap, and replaces
// the output file. Any I/O error aborts the run without touching the output.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	report := g.Reporter
	if report == nil {
		report = discard{}
	}

	files, err := ScanDir(g.dir())
	if err != nil {
		return nil, err
	}
	report.Progress("Scanning directory... Found %d HTML files.", len(files))

	builder := NewBuilder(g.Options)
	res := builder.BuildEntries(files, now())
	for _, d := range res.Decisions {
		if d.Skipped {
			report.Progress("   Skipping private file: %s", d.File)
			continue
		}
		report.Progress("   + Added: %s (Priority: %s)", d.File, d.Priority)
	}

	data, err := Render(res.Entries)
	if err != nil {
		return nil, err
	}

	outPath := g.OutputPath()
	if err := writeFileAtomic(outPath, data); err != nil {
		return nil, err
	}
	report.Progress("")
	report.Progress("SUCCESS: %s generated successfully.", filepath.Base(outPath))

	if g.Recorder != nil {
		run := models.NewRun(builder.baseURL, outPath)
		run.Scanned = len(files)
		run.Skipped = res.Skipped()
		run.Entries = res.Entries
		if err := g.Recorder.RecordRun(ctx, run); err != nil {
			return res, fmt.Errorf("failed to record run: %w", err)
		}
	}

	return res, nil
}

// writeFileAtomic writes to a temp file next to path and renames it in place,
// so a failed run never leaves a truncated sitemap behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

type discard struct{}

func (discard) Progress(string, ...interface{}) {}
