package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/romangod6/sitemapgen/internal/models"
)

// Render serializes entries into a sitemap document. The output only depends
// on its input, so identical entries always give identical bytes.
func Render(entries []models.URL) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")
	if err := enc.Encode(models.NewURLSet(entries)); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
