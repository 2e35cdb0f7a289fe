package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/server"
	"github.com/papapumpkin/folio/internal/site"
	"github.com/papapumpkin/folio/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve page text as a read-only HTTP API",
	Long: `Serve the generated page text over HTTP:

  GET /healthz
  GET /api/pages/{about,writing,now}
  GET /api/posts
  GET /api/posts/:index
  GET /api/slugs/:slug

Page routes return JSON with the text and its line classification, or plain
text with ?format=text.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().Bool("watch", false, "reload content when files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}

	logger, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, issues, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	printer := ui.New()
	if len(issues) > 0 {
		printer.ValidateResult(cat.Len(), issues)
	}

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	s := site.New(cat)
	srv := server.New(s, server.Options{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	w, err := startWatcher(cfg, logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error { return srv.Run(ctx) })
	if w != nil {
		g.Go(func() error {
			return reloadLoop(ctx, w, cfg, logger,
				func(c *catalog.Catalog) {
					s.Swap(c)
					printer.Reloaded(c.Len())
				},
				func(err error) { printer.Error(fmt.Sprintf("reload failed: %v", err)) })
		})
	}
	printer.Banner(cfg.Site.Name, cfg.Site.Tagline)
	if w != nil {
		printer.Info("watching " + cfg.ContentDir)
	}
	printer.Serving(cfg.Server.Addr)
	return g.Wait()
}
