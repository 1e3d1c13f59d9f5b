package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/mdblog"
	"github.com/eringen/mdblog/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	appConfig mdblog.SiteConfig
	appLog    *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mdblog",
	Short: "mdblog - a markdown blog with a generated sitemap and feed",
	Long: `mdblog reads markdown posts listed in posts.json, serves the list and
post pages, writes sitemap.xml and rss.xml for static hosting, and
scaffolds new posts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initializeConfig(cmd)
	},
}

// fileConfig is the shape of mdblog.yaml and the MDBLOG_* environment.
type fileConfig struct {
	Name              string   `mapstructure:"name"`
	URL               string   `mapstructure:"url"`
	Description       string   `mapstructure:"description"`
	Author            string   `mapstructure:"author"`
	Language          string   `mapstructure:"language"`
	Addr              string   `mapstructure:"addr"`
	StaticDir         string   `mapstructure:"static_dir"`
	ContentDir        string   `mapstructure:"content_dir"`
	ManifestName      string   `mapstructure:"manifest"`
	OutputDir         string   `mapstructure:"output_dir"`
	ImageDir          string   `mapstructure:"image_dir"`
	FallbackPosts     []string `mapstructure:"fallback_posts"`
	ExtraCandidates   []string `mapstructure:"extra_candidates"`
	ExcerptLength     int      `mapstructure:"excerpt_length"`
	FeedExcerptLength int      `mapstructure:"feed_excerpt_length"`
	FeedLimit         int      `mapstructure:"feed_limit"`
	ThumbnailWidth    int      `mapstructure:"thumbnail_width"`
	SessionSecret     string   `mapstructure:"session_secret"`
	CookieSecure      bool     `mapstructure:"cookie_secure"`
}

func (c fileConfig) siteConfig() mdblog.SiteConfig {
	return mdblog.SiteConfig{
		Name:              c.Name,
		URL:               c.URL,
		Description:       c.Description,
		Author:            c.Author,
		Language:          c.Language,
		Addr:              c.Addr,
		StaticDir:         c.StaticDir,
		ContentDir:        c.ContentDir,
		ManifestName:      c.ManifestName,
		OutputDir:         c.OutputDir,
		ImageDir:          c.ImageDir,
		FallbackPosts:     c.FallbackPosts,
		ExtraCandidates:   c.ExtraCandidates,
		ExcerptLength:     c.ExcerptLength,
		FeedExcerptLength: c.FeedExcerptLength,
		FeedLimit:         c.FeedLimit,
		ThumbnailWidth:    c.ThumbnailWidth,
		SessionSecret:     c.SessionSecret,
		CookieSecure:      c.CookieSecure,
	}.WithDefaults()
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"content-dir": "content_dir",
	"output-dir":  "output_dir",
	"url":         "url",
	"addr":        "addr",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./mdblog.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	pf.String("content-dir", "", "directory holding the posts and posts.json")
	pf.String("output-dir", "", "directory for sitemap.xml, rss.xml and thumbs")
	pf.String("url", "", "canonical site URL")
	pf.String("addr", "", "listen address for serve")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	d := mdblog.SiteConfig{}.WithDefaults()
	for key, value := range map[string]any{
		"name":                d.Name,
		"url":                 d.URL,
		"description":         d.Description,
		"author":              d.Author,
		"language":            d.Language,
		"addr":                d.Addr,
		"static_dir":          d.StaticDir,
		"content_dir":         d.ContentDir,
		"manifest":            d.ManifestName,
		"output_dir":          d.OutputDir,
		"image_dir":           d.ImageDir,
		"fallback_posts":      d.FallbackPosts,
		"extra_candidates":    []string{},
		"excerpt_length":      d.ExcerptLength,
		"feed_excerpt_length": d.FeedExcerptLength,
		"feed_limit":          d.FeedLimit,
		"thumbnail_width":     d.ThumbnailWidth,
		"session_secret":      "",
		"cookie_secure":       false,
	} {
		v.SetDefault(key, value)
	}

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("mdblog")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MDBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	appLog = logger.NewWithLevel(cmd.ErrOrStderr(), level)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		appLog.Debug("no config file found, using defaults and environment")
	} else {
		appLog.Debug("using config file", "path", v.ConfigFileUsed())
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	appConfig = fc.siteConfig()
	return nil
}
