package sitemap

import (
	"testing"
	"time"

	"github.com/romangod6/sitemapgen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)

func shopOptions() Options {
	return Options{
		BaseURL:    "https://example.com",
		Ignore:     []string{"checkout.html", "404.html"},
		Priorities: shopRules,
	}
}

func TestBuilder_ShouldInclude(t *testing.T) {
	b := NewBuilder(shopOptions())

	assert.False(t, b.ShouldInclude("checkout.html"))
	assert.False(t, b.ShouldInclude("404.html"))
	assert.True(t, b.ShouldInclude("index.html"))
	assert.True(t, b.ShouldInclude("Checkout.html"))
}

func TestBuilder_BuildEntries_ShopExample(t *testing.T) {
	b := NewBuilder(shopOptions())
	res := b.BuildEntries([]string{"index.html", "shop-tech.html", "product-42.html", "checkout.html"}, testDay)

	want := []models.URL{
		{Loc: "https://example.com/", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqWeekly, Priority: "1.0"},
		{Loc: "https://example.com/index.html", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqMonthly, Priority: "1.0"},
		{Loc: "https://example.com/shop-tech.html", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqMonthly, Priority: "0.9"},
		{Loc: "https://example.com/product-42.html", LastMod: "2024-05-01", ChangeFreq: models.ChangeFreqMonthly, Priority: "0.8"},
	}
	assert.Equal(t, want, res.Entries)
	assert.Equal(t, []string{"checkout.html"}, res.Skipped())

	require.Len(t, res.Decisions, 4)
	assert.Equal(t, Decision{File: "product-42.html", Priority: "0.8"}, res.Decisions[2])
	assert.Equal(t, Decision{File: "checkout.html", Skipped: true}, res.Decisions[3])
}

func TestBuilder_BuildEntries_HomePageRootUsesFixedPriority(t *testing.T) {
	opts := shopOptions()
	opts.Priorities = []PriorityRule{{Match: "index.html", Priority: "0.4"}}
	res := NewBuilder(opts).BuildEntries([]string{"index.html"}, testDay)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "https://example.com/", res.Entries[0].Loc)
	assert.Equal(t, "1.0", res.Entries[0].Priority)
	assert.Equal(t, models.ChangeFreqWeekly, res.Entries[0].ChangeFreq)
	assert.Equal(t, "0.4", res.Entries[1].Priority)
	assert.Equal(t, models.ChangeFreqMonthly, res.Entries[1].ChangeFreq)
}

func TestBuilder_BuildEntries_IgnoredHomePage(t *testing.T) {
	opts := shopOptions()
	opts.Ignore = append(opts.Ignore, "index.html")
	res := NewBuilder(opts).BuildEntries([]string{"index.html", "about.html"}, testDay)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "https://example.com/about.html", res.Entries[0].Loc)
	assert.Equal(t, []string{"index.html"}, res.Skipped())
}

func TestBuilder_BuildEntries_CustomHomePage(t *testing.T) {
	opts := shopOptions()
	opts.HomePage = "home.html"
	res := NewBuilder(opts).BuildEntries([]string{"home.html", "index.html"}, testDay)

	require.Len(t, res.Entries, 3)
	assert.Equal(t, "https://example.com/", res.Entries[0].Loc)
	assert.Equal(t, "https://example.com/home.html", res.Entries[1].Loc)
	assert.Equal(t, "https://example.com/index.html", res.Entries[2].Loc)
}

func TestBuilder_BuildEntries_TrailingSlashBaseURL(t *testing.T) {
	opts := shopOptions()
	opts.BaseURL = "https://example.com/"
	res := NewBuilder(opts).BuildEntries([]string{"hub.html"}, testDay)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "https://example.com/hub.html", res.Entries[0].Loc)
}

func TestBuilder_BuildEntries_KeepsInputOrder(t *testing.T) {
	res := NewBuilder(shopOptions()).BuildEntries([]string{"zeta.html", "alpha.html"}, testDay)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "https://example.com/zeta.html", res.Entries[0].Loc)
	assert.Equal(t, "https://example.com/alpha.html", res.Entries[1].Loc)
}

func TestBuilder_BuildEntries_Empty(t *testing.T) {
	res := NewBuilder(shopOptions()).BuildEntries(nil, testDay)
	assert.Empty(t, res.Entries)
	assert.Empty(t, res.Skipped())
}
