package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/mdblog"
	"github.com/eringen/mdblog/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog over HTTP",
	Long: `The serve command renders the list and post pages on every request
from the content directory, and serves sitemap.xml, rss.xml, the raw posts,
static assets and thumbnails. A session secret is required for the theme
cookie (MDBLOG_SESSION_SECRET or session_secret in mdblog.yaml).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := mdblog.New(appConfig, views.Funcs(), mdblog.WithLogger(appLog))

		ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- app.Start() }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		appLog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
