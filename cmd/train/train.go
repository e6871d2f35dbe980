// Package train implements the offline model-training command.
package train

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goimpressum/cmd/common"
	"github.com/jonesrussell/goimpressum/internal/recognize"
)

// Command returns the train command.
func Command(cfgFile *string, debug *bool) *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the recognition model and write its artifact",
		Long: `Train builds a new versioned recognition model from labeled examples
and writes the artifact to the configured path. Training is an offline
batch job, separate from the request-time pipeline; each run produces a
fresh model version rather than mutating an existing one.

Examples:
  # Train from the built-in corpus
  goimpressum train

  # Train from a labeled examples file
  goimpressum train --data examples.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(*cfgFile, *debug, dataPath)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "labeled examples JSON file (default: built-in corpus)")

	return cmd
}

// runTrain trains a new model and persists its artifact.
func runTrain(cfgFile string, debug bool, dataPath string) error {
	deps, err := common.NewCommandDeps(cfgFile, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	examples, err := loadExamples(dataPath)
	if err != nil {
		return err
	}

	model, err := recognize.Train(examples)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	artifactPath := deps.Config.Model.ArtifactPath
	if err := model.Save(artifactPath); err != nil {
		return fmt.Errorf("failed to save model artifact: %w", err)
	}

	deps.Logger.Info("model trained",
		"version", model.Version,
		"examples", len(examples),
		"artifact", artifactPath,
	)
	fmt.Printf("Trained model %s from %d examples -> %s\n", model.Version, len(examples), artifactPath)

	return nil
}

// loadExamples reads labeled examples from path, or returns the
// built-in corpus when path is empty.
func loadExamples(path string) ([]recognize.Example, error) {
	if path == "" {
		return recognize.DefaultCorpus(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read examples file: %w", err)
	}

	var examples []recognize.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parse examples file: %w", err)
	}

	return examples, nil
}
