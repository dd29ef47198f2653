// Package main provides the sitemapgen CLI, which writes a sitemap.xml for a
// directory of static HTML pages.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/romangod6/sitemapgen/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitemapgen",
	Short: "Generate sitemap.xml for a directory of HTML pages",
	Long: "sitemapgen scans a directory for .html files and writes a Sitemaps protocol document, " +
		"assigning each page a priority from filename rules and leaving out ignored pages.",
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./config.yaml or ./config/config.yaml)")
	addGenerateFlags(rootCmd)
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(configPath)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
