package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/solidify/internal/config"
	"github.com/JonMunkholm/solidify/internal/core"
	"github.com/JonMunkholm/solidify/internal/history"
	"github.com/JonMunkholm/solidify/internal/job"
	"github.com/JonMunkholm/solidify/internal/tabio"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		inputs        []string
		output        string
		delimiter     string
		columns       []int
		single        bool
		multi         bool
		filler        string
		warnSimilar   float64
		warnUnmatched bool
		jobPath       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Consolidate input files into one table",
		Long: `Consolidate two or more CSV/TSV (or xlsx) files into one table.

Records are identified by the key columns (--common): 1-based indices,
negative values counting from the right, and 0 standing for a synthetic
per-row identity that never matches anything. Records found in several
inputs merge into one row; records found in only some inputs are padded
with the filler string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := runParams{
				inputs:        inputs,
				output:        output,
				columns:       columns,
				single:        single,
				multi:         multi,
				filler:        filler,
				warnSimilar:   warnSimilar,
				warnUnmatched: warnUnmatched,
			}

			if jobPath != "" {
				j, err := job.Load(jobPath)
				if err != nil {
					return err
				}
				applyJob(cmd, &p, j)
				if delimiter == "" && j.Delimiter != "" {
					delimiter = j.Delimiter
				}
			}
			if delimiter == "" {
				delimiter = `\t`
			}

			d, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}
			p.delimiter = d

			if cmd.Flags().Changed("warn-similar") || p.warnSimilar != 0 {
				if err := checkSimilarityLevel(p.warnSimilar, p.columns); err != nil {
					return err
				}
			}
			if err := checkInputs(p.inputs, p.output); err != nil {
				return err
			}
			return runConsolidation(a.cfg, p)
		},
	}

	cmd.Flags().StringSliceVarP(&inputs, "inputs", "i", nil,
		"CSV/TSV files to consolidate (at least two)")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"path for the consolidated file (must differ from all inputs; overwritten if it exists)")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "",
		`delimiter character (default "\t")`)
	cmd.Flags().IntSliceVarP(&columns, "common", "c", nil,
		"indices of columns identifying a record (1-based; negative from the right, 0 for a per-row identity)")
	cmd.Flags().BoolVar(&single, "single", false,
		"allow consolidation when all inputs contain a single column")
	cmd.Flags().BoolVar(&multi, "multi", false,
		"still allow consolidation when there are multiple ways to merge records")
	cmd.Flags().StringVar(&filler, "filler", "",
		"filler string for output cells with otherwise missing values")
	cmd.Flags().Float64Var(&warnSimilar, "warn-similar", 0,
		"warn about pairs of keys within this edit distance")
	cmd.Flags().BoolVar(&warnUnmatched, "warn-unmatched", false,
		"warn about any unmatched records")
	cmd.Flags().StringVar(&jobPath, "job", "",
		"YAML job file supplying defaults for the flags above")

	return cmd
}

// applyJob fills params from a job file; flags the user actually passed
// win over file values.
func applyJob(cmd *cobra.Command, p *runParams, j *job.Job) {
	if !cmd.Flags().Changed("inputs") && len(j.Inputs) > 0 {
		p.inputs = j.Inputs
	}
	if !cmd.Flags().Changed("output") && j.Output != "" {
		p.output = j.Output
	}
	if !cmd.Flags().Changed("common") && len(j.Columns) > 0 {
		p.columns = j.Columns
	}
	if !cmd.Flags().Changed("single") {
		p.single = j.AllowSingleColumn
	}
	if !cmd.Flags().Changed("multi") {
		p.multi = j.AllowMultiMerge
	}
	if !cmd.Flags().Changed("filler") && j.Filler != "" {
		p.filler = j.Filler
	}
	if !cmd.Flags().Changed("warn-similar") {
		p.warnSimilar = j.WarnSimilar
	}
	if !cmd.Flags().Changed("warn-unmatched") {
		p.warnUnmatched = j.WarnUnmatched
	}
}

// countingSink forwards findings and keeps a tally for the run summary.
type countingSink struct {
	next  core.DiagnosticSink
	count int
}

func (s *countingSink) Warn(lines ...string) {
	s.count++
	s.next.Warn(lines...)
}

func runConsolidation(cfg *config.Config, p runParams) error {
	start := time.Now()

	sheets := make([]*core.Sheet, len(p.inputs))
	for i, path := range p.inputs {
		rows, err := tabio.ReadInput(path, p.delimiter)
		if err != nil {
			return err
		}
		sheet, err := core.NewSheet(rows, p.columns, i)
		if err != nil {
			return fmt.Errorf("could not process %s: %w", path, err)
		}
		sheets[i] = sheet
	}

	sink := &countingSink{next: &core.WriterSink{W: os.Stderr}}
	merged, err := core.Consolidate(sheets, core.Options{
		Filler:              p.filler,
		AllowMultiMerge:     p.multi,
		AllowSingleColumn:   p.single,
		WarnUnmatched:       p.warnUnmatched,
		SimilarityWarnLevel: p.warnSimilar,
		Diag:                sink,
		MultiMergeFlag:      "--multi",
		SingleColumnFlag:    "--single",
	})
	if err != nil {
		return err
	}

	if err := tabio.WriteOutput(p.output, merged, p.delimiter); err != nil {
		return err
	}

	slog.Info("consolidated",
		"inputs", len(sheets),
		"output", p.output,
		"rows", len(merged),
		"warnings", sink.count,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	recordRun(cfg, p, len(merged), sink.count, start)
	return nil
}

// recordRun appends the run to the history store. Best effort: history
// trouble is logged, never surfaced as a run failure.
func recordRun(cfg *config.Config, p runParams, rows, warnings int, start time.Time) {
	if cfg.History.Disabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("could not open history store", "error", err)
		return
	}
	defer store.Close()

	err = store.Record(context.Background(), history.Run{
		ID:          uuid.New(),
		StartedAt:   start,
		Inputs:      p.inputs,
		Output:      p.output,
		KeyColumns:  p.columns,
		RowsWritten: rows,
		Warnings:    warnings,
	})
	if err != nil {
		slog.Warn("could not record run", "error", err)
	}
}
