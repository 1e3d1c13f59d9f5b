package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/eringen/mdblog"
	"github.com/eringen/mdblog/internal/logger"
)

const debounceDuration = 500 * time.Millisecond

var watchBuild bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate sitemap.xml, rss.xml and thumbnails",
	Long: `The build command loads every post listed in the manifest and writes
sitemap.xml and rss.xml into the output directory, along with thumbnails
for wide local featured images. A missing or malformed manifest fails the
build. With --watch it rebuilds whenever the content directory changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := mdblog.NewBuilder(appConfig, appLog)
		if err := runBuild(contextOf(cmd), b); err != nil {
			return err
		}
		if !watchBuild {
			return nil
		}
		ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()
		appLog.Info("watching for changes", "dir", appConfig.ContentDir)
		return watch(ctx, appConfig.ContentDir, debounceDuration, appLog, func() error {
			return runBuild(ctx, b)
		})
	},
}

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml only",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := mdblog.NewBuilder(appConfig, appLog).BuildSitemap(contextOf(cmd))
		return err
	},
}

var rssCmd = &cobra.Command{
	Use:   "rss",
	Short: "Generate rss.xml only",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := mdblog.NewBuilder(appConfig, appLog).BuildRSS(contextOf(cmd))
		return err
	},
}

func runBuild(ctx context.Context, b *mdblog.Builder) error {
	start := time.Now()
	res, err := b.Build(ctx)
	if err != nil {
		return err
	}
	appLog.Info("build complete",
		"posts", res.Posts,
		"thumbnails", res.Thumbnails,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// watch calls rebuild after changes under dir settle for debounce. Builds
// run on the watching goroutine, so only one runs at a time.
func watch(ctx context.Context, dir string, debounce time.Duration, log *logger.Logger, rebuild func() error) error {
	log = logger.OrDiscard(log)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Warn("watch new directory", "path", event.Name, "error", err)
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := rebuild(); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	buildCmd.Flags().BoolVarP(&watchBuild, "watch", "w", false, "rebuild when the content directory changes")
	rootCmd.AddCommand(buildCmd, sitemapCmd, rssCmd)
}
