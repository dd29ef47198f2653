package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/romangod6/sitemapgen/internal/sitemap"
	"github.com/romangod6/sitemapgen/internal/storage"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SITEMAPGEN_SITE_BASEURL.
const EnvPrefix = "SITEMAPGEN"

type Config struct {
	Site struct {
		BaseURL  string
		HomePage string
		Dir      string
		Output   string
	}
	Rules struct {
		DefaultPriority string
		Ignore          []string
		Priorities      []sitemap.PriorityRule
	}
	History struct {
		Driver string
		DSN    string
	}
	Log struct {
		Dir string
	}
}

// LoadConfig reads config.yaml from path, or from . and ./config when path is
// empty. A missing file in the search path is not an error: the defaults
// describe a complete configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.Site.BaseURL = strings.TrimRight(config.Site.BaseURL, "/")
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site.baseurl", "https://kynaruniverse.co.uk")
	v.SetDefault("site.homepage", sitemap.HomePage)
	v.SetDefault("site.dir", ".")
	v.SetDefault("site.output", sitemap.DefaultOutput)

	v.SetDefault("rules.defaultpriority", sitemap.DefaultPriority)
	v.SetDefault("rules.ignore", []string{
		"checkout.html",
		"success.html",
		"account.html",
		"404.html",
		"google-site-verification.html",
	})
	v.SetDefault("rules.priorities", []map[string]string{
		{"match": "index.html", "priority": "1.0"},
		{"match": "shop-tech.html", "priority": "0.9"},
		{"match": "shop-life.html", "priority": "0.9"},
		{"match": "shop-family.html", "priority": "0.9"},
		{"match": "hub.html", "priority": "0.8"},
		{"match": "product", "priority": "0.8"},
		{"match": "about.html", "priority": "0.7"},
		{"match": "legal.html", "priority": "0.3"},
	})

	// keys without a default are invisible to AutomaticEnv during Unmarshal
	v.SetDefault("history.driver", "")
	v.SetDefault("history.dsn", "")
	v.SetDefault("log.dir", "")
}

func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return errors.New("site.baseurl must not be empty")
	}
	if c.Site.HomePage == "" {
		return errors.New("site.homepage must not be empty")
	}
	if err := sitemap.ValidatePriority(c.Rules.DefaultPriority); err != nil {
		return fmt.Errorf("rules.defaultpriority %q: %w", c.Rules.DefaultPriority, err)
	}
	for i, rule := range c.Rules.Priorities {
		if rule.Match == "" {
			return fmt.Errorf("rules.priorities[%d]: match must not be empty", i)
		}
		if err := sitemap.ValidatePriority(rule.Priority); err != nil {
			return fmt.Errorf("rules.priorities[%d] (%s) %q: %w", i, rule.Match, rule.Priority, err)
		}
	}

	switch c.History.Driver {
	case "", storage.DriverSQLite, storage.DriverPostgres:
	default:
		return fmt.Errorf("history.driver %q is not one of %q, %q", c.History.Driver, storage.DriverSQLite, storage.DriverPostgres)
	}

	return nil
}

// BuilderOptions is the immutable view of the rules handed to the builder.
func (c *Config) BuilderOptions() sitemap.Options {
	ignore := make([]string, len(c.Rules.Ignore))
	copy(ignore, c.Rules.Ignore)
	priorities := make([]sitemap.PriorityRule, len(c.Rules.Priorities))
	copy(priorities, c.Rules.Priorities)

	return sitemap.Options{
		BaseURL:         c.Site.BaseURL,
		HomePage:        c.Site.HomePage,
		DefaultPriority: c.Rules.DefaultPriority,
		Ignore:          ignore,
		Priorities:      priorities,
	}
}

// HistoryEnabled reports whether runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Driver != "" && c.History.DSN != ""
}
