// Package cmd implements the command-line interface for goimpressum.
// It provides the root command and subcommands for running impressum
// extraction, serving it over HTTP, and training the recognition model.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/goimpressum/cmd/scrape"
	"github.com/jonesrussell/goimpressum/cmd/serve"
	"github.com/jonesrussell/goimpressum/cmd/train"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	// rootCmd represents the root command for the goimpressum CLI.
	rootCmd = &cobra.Command{
		Use:   "goimpressum",
		Short: "Extract contact details from impressum pages",
		Long: `goimpressum extracts a company name, contact person, and email
address from the legal-disclosure (impressum) pages of small business
websites, scoring each field with a confidence value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env file early so environment variables are available.
	_ = godotenv.Load()

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("goimpressum version %s\n", version)
		},
	})

	rootCmd.AddCommand(scrape.Command(&cfgFile, &debug))
	rootCmd.AddCommand(serve.Command(&cfgFile, &debug))
	rootCmd.AddCommand(train.Command(&cfgFile, &debug))
}
