package main

import (
	"fmt"
	"path/filepath"

	"github.com/romangod6/sitemapgen/internal/sitemap"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check a sitemap against the Sitemaps protocol",
	Long: "Parses a sitemap and reports entries with an empty <loc>, a malformed <lastmod>, " +
		"an unknown <changefreq> or a <priority> outside 0.0-1.0. Defaults to the configured output file.",
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Site.Output
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Site.Dir, path)
		}
	}

	violations, err := sitemap.VerifyFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(violations) == 0 {
		fmt.Fprintf(out, "OK: %s is a valid sitemap\n", path)
		return nil
	}

	for _, v := range violations {
		fmt.Fprintf(out, "  - %s\n", v)
	}
	return fmt.Errorf("%d problem(s) found in %s", len(violations), path)
}
