// Package scrape implements the scrape command: run the extraction
// pipeline over the input URLs and persist the ranked results.
package scrape

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goimpressum/cmd/common"
	"github.com/jonesrussell/goimpressum/internal/extract"
	"github.com/jonesrussell/goimpressum/internal/fetcher"
	"github.com/jonesrussell/goimpressum/internal/output"
	"github.com/jonesrussell/goimpressum/internal/pipeline"
	"github.com/jonesrussell/goimpressum/internal/recognize"
)

// Command returns the scrape command.
func Command(cfgFile *string, debug *bool) *cobra.Command {
	var (
		urls       []string
		maxWorkers int
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Extract contact details from the configured URLs",
		Long: `Scrape fetches each input URL, discovers its impressum page, extracts
company name, contact person, and email address, and writes the ranked
records as a JSON array.

Examples:
  # Scrape the URLs from the config file
  goimpressum scrape

  # Scrape specific URLs with 8 workers
  goimpressum scrape -u https://example.de -u https://example.com -w 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, *cfgFile, *debug, urls, maxWorkers, outputPath)
		},
	}

	cmd.Flags().StringSliceVarP(&urls, "url", "u", nil, "URL to scrape (repeatable; overrides config)")
	cmd.Flags().IntVarP(&maxWorkers, "workers", "w", 0, "maximum concurrent workers (overrides config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "results file path (overrides config)")

	return cmd
}

// runScrape wires the pipeline and executes one extraction run.
func runScrape(cmd *cobra.Command, cfgFile string, debug bool, urls []string, maxWorkers int, outputPath string) error {
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	cfg := deps.Config
	if len(urls) == 0 {
		urls = cfg.Pipeline.URLs
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs: pass --url or set pipeline.urls in the config")
	}
	if maxWorkers <= 0 {
		maxWorkers = cfg.Pipeline.MaxWorkers
	}
	if maxWorkers > len(urls) {
		maxWorkers = len(urls)
	}
	if outputPath == "" {
		outputPath = cfg.Pipeline.OutputPath
	}

	// The recognition model must be available before any extraction;
	// failure here is fatal.
	model, err := recognize.LoadOrTrain(cfg.Model.ArtifactPath)
	if err != nil {
		return fmt.Errorf("recognition model unavailable: %w", err)
	}
	deps.Logger.Info("recognition model ready", "version", model.Version)

	builder := pipeline.NewRecordBuilder(
		fetcher.New(cfg.Fetcher, deps.Logger),
		extract.New(model),
		deps.Logger,
	)
	orchestrator := pipeline.NewOrchestrator(builder, deps.Logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records := orchestrator.Run(ctx, urls, maxWorkers)

	if err := output.WriteJSON(outputPath, records); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	output.PrintSummary(os.Stdout, records)
	fmt.Printf("\nFull results exported to %s\n", outputPath)

	return nil
}
