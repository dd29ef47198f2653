// internal/models/sitemap.go
package models

import "encoding/xml"

// SitemapNamespace is the namespace every <urlset> must declare.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet represents the structure of an XML sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap.
type URL struct {
	Loc        string     `xml:"loc" json:"loc"`
	LastMod    string     `xml:"lastmod,omitempty" json:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty" json:"changefreq"`
	Priority   string     `xml:"priority,omitempty" json:"priority"`
}

// NewURLSet wraps entries in a namespaced urlset.
func NewURLSet(urls []URL) *URLSet {
	return &URLSet{
		Xmlns: SitemapNamespace,
		URLs:  urls,
	}
}
