package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/folio/internal/site"
	"github.com/papapumpkin/folio/internal/ui"
)

var pageCmd = &cobra.Command{
	Use:   "page <about|writing|now|post> [index]",
	Short: "Print the text of a page",
	Long: `Print a page's generated text without animation. Posts are addressed by
their zero-based position in the writing index, so entry [001] is post 0.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, _, err := loadSite(cfg)
		if err != nil {
			return err
		}
		ui.NewWriter(cmd.OutOrStdout()).Posts(s.Catalog())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(listCmd)
}

// pageText resolves a page name and optional post index from args. A post
// index outside the catalog yields site.NotFound, not an error.
func pageText(s *site.Site, args []string) (string, error) {
	index := 0
	if len(args) > 1 {
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("invalid post index %q: %w", args[1], err)
		}
		index = i
	}
	return s.Resolve(args[0], index)
}
