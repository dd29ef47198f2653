package sitemap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/romangod6/sitemapgen/internal/models"
)

// Violation describes one problem found in a sitemap document.
type Violation struct {
	Index   int    // position of the <url>, -1 for document-level problems
	Loc     string
	Problem string
}

func (v Violation) String() string {
	if v.Index < 0 {
		return v.Problem
	}
	return fmt.Sprintf("url #%d (%s): %s", v.Index+1, v.Loc, v.Problem)
}

// ParseSitemap decodes a document with a single <urlset> root.
func ParseSitemap(r io.Reader) (*models.URLSet, error) {
	dec := xml.NewDecoder(r)

	var set models.URLSet
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap: %w", err)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse sitemap: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return nil, fmt.Errorf("failed to parse sitemap: unexpected second root element <%s>", se.Name.Local)
		}
	}

	return &set, nil
}

// Verify parses r and checks every entry against the Sitemaps protocol.
// A nil slice means the document is valid.
func Verify(r io.Reader) ([]Violation, error) {
	set, err := ParseSitemap(r)
	if err != nil {
		return nil, err
	}
	return Check(set), nil
}

// VerifyFile is Verify for a path on disk.
func VerifyFile(path string) ([]Violation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sitemap: %w", err)
	}
	defer f.Close()

	return Verify(f)
}

func Check(set *models.URLSet) []Violation {
	var violations []Violation

	if set.XMLName.Space != models.SitemapNamespace {
		violations = append(violations, Violation{
			Index:   -1,
			Problem: fmt.Sprintf("urlset namespace is %q, want %q", set.XMLName.Space, models.SitemapNamespace),
		})
	}

	for i, u := range set.URLs {
		add := func(format string, v ...interface{}) {
			violations = append(violations, Violation{Index: i, Loc: u.Loc, Problem: fmt.Sprintf(format, v...)})
		}

		if u.Loc == "" {
			add("empty <loc>")
		}
		if _, err := time.Parse(models.DateLayout, u.LastMod); err != nil {
			add("<lastmod> %q is not a YYYY-MM-DD date", u.LastMod)
		}
		if u.ChangeFreq != "" && !u.ChangeFreq.Valid() {
			add("unknown <changefreq> %q", u.ChangeFreq)
		}
		if err := ValidatePriority(u.Priority); err != nil {
			add("<priority> %q: %v", u.Priority, err)
		}
	}

	return violations
}
