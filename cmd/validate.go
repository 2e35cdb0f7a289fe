package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/folio/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content for missing titles, dates, and bad front matter",
	Long: `Load the content source and report every document that would be shown
with defaults. Exits non-zero when any issue is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, issues, err := loadSite(cfg)
		if err != nil {
			return err
		}
		ui.NewWriter(cmd.ErrOrStderr()).ValidateResult(s.Catalog().Len(), issues)
		if len(issues) > 0 {
			return fmt.Errorf("content has %d issue(s)", len(issues))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
