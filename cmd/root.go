package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/folio/internal/site"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Animated terminal portfolio and blog",
	Long: `Folio renders a personal site in the terminal. Pages decode line by line
out of scrambled glyphs, and settled text glitches now and then.

Run with no arguments to open the interactive site. When stdout is not a
terminal the about page is printed instead.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRootDefault,
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .folio.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("content-dir", "", "read content from this directory instead of the embedded pages")
	pf.String("log-file", "", "write logs to this file")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("content_dir", pf.Lookup("content-dir"))
	_ = viper.BindPFlag("log.file", pf.Lookup("log-file"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".folio")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("FOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the TUI on a terminal and prints the about page
// otherwise.
func runRootDefault(cmd *cobra.Command, _ []string) error {
	if isStdoutTTY() {
		return runTUI(tuiCmd, nil)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, _, err := loadSite(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Text(site.PageAbout, 0))
	return err
}
