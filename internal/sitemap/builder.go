// Package sitemap turns a directory of HTML pages into a Sitemaps protocol document.
package sitemap

import (
	"strings"
	"time"

	"github.com/romangod6/sitemapgen/internal/models"
)

const (
	// HomePage is the page that is also published as the bare domain root.
	HomePage = "index.html"

	rootPriority = "1.0"
)

// Options is the immutable input of a Builder.
type Options struct {
	BaseURL         string
	HomePage        string
	DefaultPriority string
	Ignore          []string
	Priorities      []PriorityRule
}

// Decision records what happened to a single scanned file.
type Decision struct {
	File     string
	Skipped  bool
	Priority string
}

// Result is the outcome of BuildEntries.
type Result struct {
	Entries   []models.URL
	Decisions []Decision
}

// Skipped lists the ignored files in scan order.
func (r *Result) Skipped() []string {
	var out []string
	for _, d := range r.Decisions {
		if d.Skipped {
			out = append(out, d.File)
		}
	}
	return out
}

type Builder struct {
	baseURL  string
	homePage string
	ignore   map[string]struct{}
	table    *PriorityTable
}

func NewBuilder(opts Options) *Builder {
	ignore := make(map[string]struct{}, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignore[name] = struct{}{}
	}

	homePage := opts.HomePage
	if homePage == "" {
		homePage = HomePage
	}

	return &Builder{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		homePage: homePage,
		ignore:   ignore,
		table:    NewPriorityTable(opts.Priorities, opts.DefaultPriority),
	}
}

// ShouldInclude reports whether filename is outside the ignore set.
// Callers are expected to have filtered the listing down to .html files.
func (b *Builder) ShouldInclude(filename string) bool {
	_, ignored := b.ignore[filename]
	return !ignored
}

func (b *Builder) Classify(filename string) string {
	return b.table.Classify(filename)
}

// BuildEntries walks filenames in the given order. The home page produces an
// extra entry for the bare root, placed before its own entry.
func (b *Builder) BuildEntries(filenames []string, today time.Time) *Result {
	lastMod := today.Format(models.DateLayout)
	res := &Result{}

	for _, name := range filenames {
		if !b.ShouldInclude(name) {
			res.Decisions = append(res.Decisions, Decision{File: name, Skipped: true})
			continue
		}

		priority := b.Classify(name)
		if name == b.homePage {
			res.Entries = append(res.Entries, models.URL{
				Loc:        b.baseURL + "/",
				LastMod:    lastMod,
				ChangeFreq: models.ChangeFreqWeekly,
				Priority:   rootPriority,
			})
		}

		res.Entries = append(res.Entries, models.URL{
			Loc:        b.baseURL + "/" + name,
			LastMod:    lastMod,
			ChangeFreq: models.ChangeFreqMonthly,
			Priority:   priority,
		})
		res.Decisions = append(res.Decisions, Decision{File: name, Priority: priority})
	}

	return res
}
