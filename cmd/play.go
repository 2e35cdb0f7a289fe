package cmd

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/folio/internal/cascade"
)

var playCmd = &cobra.Command{
	Use:   "play <about|writing|now|post> [index]",
	Short: "Play a page's cascade animation inline",
	Long: `Play a page's reveal animation in place on the terminal, without the
full-screen interface. Play exits once every line has resolved. With --idle
it keeps glitching settled text until interrupted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Bool("idle", false, "keep glitching after the page resolves until interrupted")
	playCmd.Flags().Int("width", 0, "wrap width in cells (default: terminal width)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, _, err := loadSite(cfg)
	if err != nil {
		return err
	}
	text, err := pageText(s, args)
	if err != nil {
		return err
	}

	idle, _ := cmd.Flags().GetBool("idle")
	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = terminalWidth()
	}

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	page := cascade.NewPage(text, cfg.Animation.CascadeOptions(), rng, time.Now())

	player := cascade.Player{
		Out:          cmd.OutOrStdout(),
		Width:        width,
		PreviewLines: cfg.Animation.PreviewLines,
		FPS:          cfg.Animation.FPS,
		Idle:         idle,
		Color:        isStdoutTTY(),
	}
	if err := player.Play(cmd.Context(), page); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
