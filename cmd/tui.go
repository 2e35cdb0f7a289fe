package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/site"
	"github.com/papapumpkin/folio/internal/tui"
)

// tuiCmd opens the interactive site.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal site",
	Long: `Open the full-screen site: a sidebar for the about, writing, and now
pages, and a viewport where each page decodes in as it opens. With --watch
and a content directory, edits on disk are reloaded while the site runs.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-splash", false, "skip the startup splash animation")
	tuiCmd.Flags().Bool("watch", false, "reload content when files change")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStdoutTTY() {
		return fmt.Errorf("folio tui requires a TTY (terminal)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	// The alternate screen owns the terminal, so logs only go to log.file.
	logger, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, _, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	w, err := startWatcher(cfg, logger)
	if err != nil {
		return err
	}

	p := tui.NewProgram(site.New(cat), tui.Options{
		Name:    cfg.Site.Name,
		Tagline: cfg.Site.Tagline,
		Links:   cfg.Site.Links,
		Cascade: cfg.Animation.CascadeOptions(),
		FPS:     cfg.Animation.FPS,
		Splash:  !noSplash,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	if w != nil {
		g.Go(func() error {
			return reloadLoop(ctx, w, cfg, logger,
				func(c *catalog.Catalog) { p.Send(tui.MsgReload{Catalog: c}) },
				func(err error) { p.Send(tui.MsgReloadFailed{Err: err}) })
		})
	}
	g.Go(func() error {
		defer cancel()
		logger.Info("tui started", zap.Int("posts", cat.Len()))
		return tui.Run(p)
	})
	return g.Wait()
}
