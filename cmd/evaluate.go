package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frcutil/drivekit/config"
	"github.com/frcutil/drivekit/core/constraint"
	"github.com/frcutil/drivekit/core/feedforward"
	"github.com/frcutil/drivekit/core/kinematics"
	coremetrics "github.com/frcutil/drivekit/core/metrics"
	"github.com/frcutil/drivekit/core/profile"
	"github.com/frcutil/drivekit/infra/logger"
	inframetrics "github.com/frcutil/drivekit/infra/metrics"
	"github.com/frcutil/drivekit/pkg/export"
)

var (
	samplesPath string
	outPath     string
	outFormat   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate constraint envelopes along a path",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&samplesPath, "samples", "s", "samples.json", "path samples file (JSON)")
	evaluateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	evaluateCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format: json or csv")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("evaluate")

	drive, err := kinematics.NewDifferentialDriveKinematics(cfg.Drivetrain.TrackWidthMeters)
	if err != nil {
		return fmt.Errorf("kinematics: %w", err)
	}
	ff, err := feedforward.NewSimpleMotorFeedforward(cfg.Feedforward.KS, cfg.Feedforward.KV, cfg.Feedforward.KA)
	if err != nil {
		return fmt.Errorf("feedforward: %w", err)
	}
	voltage, err := constraint.NewDifferentialDriveVoltageConstraint(ff, drive, cfg.Constraint.MaxVoltage)
	if err != nil {
		return fmt.Errorf("voltage constraint: %w", err)
	}

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := inframetrics.NewPromSink()
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sink = promSink
		go func() {
			if err := inframetrics.StartPromServer(cfg.Metrics.PrometheusPort); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}

	samples, err := readSamples(samplesPath)
	if err != nil {
		return err
	}

	eval, err := profile.NewEvaluator([]constraint.Constraint{voltage}, logg, sink)
	if err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	res := eval.Evaluate(samples)
	logg.Infof("evaluated %d points in %s (run %s)", len(res.Points), res.Elapsed, res.RunID)

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	switch outFormat {
	case "json":
		return export.WriteJSON(out, res.Points)
	case "csv":
		return export.WriteCSV(out, res.Points)
	default:
		return fmt.Errorf("unsupported format: %s", outFormat)
	}
}

func readSamples(path string) ([]profile.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	var samples []profile.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	return samples, nil
}
