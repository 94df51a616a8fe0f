// Package main provides the CLI entry point for plotcfg.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/models"
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/output"
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/panel"
	"github.com/ukaji3/uplotconfig-go/pkg/plotconfig/parser"
)

type flags struct {
	outputPath string
	pretty     bool
	xlsxPath   string
	dataPath   string
	sheet      string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "plotcfg [panel.hcl|panel.toml|panel.json]",
		Short: "Assemble plot configurations from panel definitions",
		Long: `plotcfg reads a panel definition (scales, axes, series, cursor)
and prints the assembled plot configuration as JSON. It can also render
the panel and its frame data into an Excel chart.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, stderr, args[0], fl)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&fl.xlsxPath, "xlsx", "", "Also render the panel into this Excel workbook")
	rootCmd.Flags().StringVar(&fl.dataPath, "data", "", "Workbook to read frame data from (default: frame in the panel file)")
	rootCmd.Flags().StringVar(&fl.sheet, "sheet", "", "Sheet to read frame data from (default: first sheet)")
	rootCmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(stdout, stderr io.Writer, panelPath string, fl flags) error {
	level := slog.LevelInfo
	if fl.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Load panel definition
	def, err := panel.Load(panelPath, panel.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("loading panel failed: %w", err)
	}

	cfg := def.Build(panel.Options{Logger: logger})

	// Serialize to JSON
	jsonData, err := output.ToJSON(cfg, fl.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if fl.outputPath != "" {
		if err := os.WriteFile(fl.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("config written", "path", fl.outputPath)
	} else {
		fmt.Fprintln(stdout, string(jsonData))
	}

	if fl.xlsxPath == "" {
		return nil
	}

	frame, err := loadFrame(def, fl)
	if err != nil {
		return fmt.Errorf("reading frame failed: %w", err)
	}

	opts := output.DefaultWorkbookOptions()
	opts.Title = def.Title
	opts.Logger = logger
	if err := output.WriteWorkbook(cfg, frame, fl.xlsxPath, opts); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Info("workbook written", "path", fl.xlsxPath, "rows", frame.Len())

	return nil
}

// loadFrame returns the frame from --data when given, else the one embedded
// in the panel definition.
func loadFrame(def *panel.Definition, fl flags) (*models.Frame, error) {
	if fl.dataPath != "" {
		return parser.ReadFrameFile(fl.dataPath, fl.sheet)
	}
	if def.Frame == nil {
		return nil, fmt.Errorf("panel %s has no frame; use --data", def.Source)
	}
	return def.Frame, nil
}
