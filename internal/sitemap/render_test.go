package sitemap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/romangod6/sitemapgen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Document(t *testing.T) {
	entries := []models.URL{
		{Loc: "https://example.com/", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqWeekly, Priority: "1.0"},
		{Loc: "https://example.com/about.html", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqMonthly, Priority: "0.7"},
	}

	data, err := Render(entries)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
    <url>
        <loc>https://example.com/</loc>
        <lastmod>2024-05-01</lastmod>
        <changefreq>weekly</changefreq>
        <priority>1.0</priority>
    </url>
    <url>
        <loc>https://example.com/about.html</loc>
        <lastmod>2024-05-01</lastmod>
        <changefreq>monthly</changefreq>
        <priority>0.7</priority>
    </url>
</urlset>
`
	assert.Equal(t, want, string(data))
}

func TestRender_EscapesText(t *testing.T) {
	data, err := Render([]models.URL{
		{Loc: "https://example.com/a&b.html", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqMonthly, Priority: "0.5"},
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), "<loc>https://example.com/a&amp;b.html</loc>")
}

func TestRender_RoundTripsThroughVerify(t *testing.T) {
	res := NewBuilder(shopOptions()).BuildEntries(
		[]string{"index.html", "shop-tech.html", "product-42.html", "checkout.html"}, testDay)

	data, err := Render(res.Entries)
	require.NoError(t, err)

	set, err := ParseSitemap(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, models.SitemapNamespace, set.XMLName.Space)
	assert.Equal(t, res.Entries, set.URLs)
	assert.Empty(t, Check(set))
	assert.Equal(t, 1, strings.Count(string(data), "<urlset"))
}

func TestRender_Deterministic(t *testing.T) {
	res := NewBuilder(shopOptions()).BuildEntries([]string{"index.html", "hub.html"}, testDay)

	first, err := Render(res.Entries)
	require.NoError(t, err)
	second, err := Render(res.Entries)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
