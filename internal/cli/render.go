package cli

import (
	"github.com/dshills/dangermd/internal/config"
	"github.com/dshills/dangermd/internal/danger"
	"github.com/dshills/dangermd/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Shared render flags
var (
	flagResults string
	flagID      string
	flagFormat  string
	flagOut     string
	flagFailOn  string
)

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagResults, "results", "-", "Danger results JSON file (- for stdin)")
	cmd.Flags().StringVar(&flagID, "id", "", "Build identifier embedded in the comment marker")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Exit 1 when results reach this level (none, fails, warnings)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagID != "" {
		m["id"] = flagID
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["failOn"] = flagFailOn
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

// setup loads the effective config and a logger on the command's stderr.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig, buildOverrides())
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

// loadResults reads the results file and logs what it found.
func loadResults(log *zap.Logger) (danger.Results, error) {
	results, err := danger.LoadFile(flagResults)
	if err != nil {
		return danger.Results{}, err
	}
	c := results.Counts()
	log.Debug("loaded results",
		zap.String("source", flagResults),
		zap.Int("fails", c.Fails),
		zap.Int("warnings", c.Warnings),
		zap.Int("messages", c.Messages),
		zap.Int("markdowns", c.Markdowns))
	return results, nil
}

// applyThreshold sets the findings exit code when results meet failOn.
func applyThreshold(log *zap.Logger, results danger.Results, failOn string) {
	if danger.MeetsThreshold(results, failOn) {
		log.Info("results meet fail-on threshold", zap.String("failOn", failOn))
		exitCode = ExitFindings
	}
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render Danger results as a Markdown comment",
	Long:  "Read Danger results JSON and write the pull-request comment body, including the hidden identity marker.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		results, err := loadResults(log)
		if err != nil {
			log.Error("loading results", zap.Error(err))
			exitCode = ExitRuntimeError
			return nil
		}

		if err := output.WriteReport(cmd.OutOrStdout(), cfg.ID, results, cfg.Format, flagOut); err != nil {
			log.Error("writing output", zap.Error(err))
			exitCode = ExitRuntimeError
			return nil
		}

		applyThreshold(log, results, cfg.FailOn)
		return nil
	},
}

func init() {
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	renderCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
