package main

import (
	"strings"

	"github.com/romangod6/sitemapgen/internal/sitemap"
	"github.com/romangod6/sitemapgen/internal/storage"
	"github.com/romangod6/sitemapgen/internal/utils"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan a directory and write its sitemap",
	Long:  "Scans the configured directory for .html files and writes sitemap.xml, replacing any previous file.",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

type generateOptions struct {
	dir     string
	out     string
	baseURL string
}

var generateFlags = map[*cobra.Command]*generateOptions{}

func addGenerateFlags(cmd *cobra.Command) {
	opts := &generateOptions{}
	generateFlags[cmd] = opts

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to scan (overrides site.dir)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, relative to the scanned directory (overrides site.output)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Site base URL (overrides site.baseurl)")
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if opts := generateFlags[cmd]; opts != nil {
		if cmd.Flags().Changed("dir") {
			cfg.Site.Dir = opts.dir
		}
		if cmd.Flags().Changed("out") {
			cfg.Site.Output = opts.out
		}
		if cmd.Flags().Changed("base-url") {
			cfg.Site.BaseURL = strings.TrimRight(opts.baseURL, "/")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	var logger *utils.RunLogger
	if cfg.Log.Dir != "" {
		logger, err = utils.NewFileRunLogger(cmd.OutOrStdout(), cfg.Log.Dir)
		if err != nil {
			return err
		}
	} else {
		logger = utils.NewRunLogger(cmd.OutOrStdout())
	}
	defer logger.Close()

	gen := &sitemap.Generator{
		Options:  cfg.BuilderOptions(),
		Dir:      cfg.Site.Dir,
		Output:   cfg.Site.Output,
		Reporter: logger,
	}

	if cfg.HistoryEnabled() {
		store, err := storage.Open(cfg.History.Driver, cfg.History.DSN)
		if err != nil {
			return err
		}
		defer store.Close()
		gen.Recorder = store
	}

	res, err := gen.Generate(cmd.Context())
	if err != nil {
		logger.LogError("Sitemap generation failed: %v", err)
		return err
	}

	if gen.Recorder != nil {
		logger.LogInfo("Recorded run with %d entries in %s history", len(res.Entries), cfg.History.Driver)
	}
	if path := logger.Path(); path != "" {
		logger.LogDebug("Run log written to %s", path)
	}
	return nil
}
