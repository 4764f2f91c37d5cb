package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lifespan-backend/internal/lifecalc"
)

func newCalculateCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Score a factor record read from a JSON or YAML file",
		Long:  "Score a factor record. The record is read from --file, or from stdin when the flag is empty or \"-\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readFactors(file, opts.in)
			if err != nil {
				return err
			}
			table, err := opts.baseline()
			if err != nil {
				return err
			}
			result := lifecalc.NewEngine(lifecalc.WithBaselineTable(table)).Calculate(record)

			if opts.output == outputJSON {
				return opts.writeJSON(struct {
					lifecalc.CalculationResult
					Breakdown []lifecalc.BreakdownEntry `json:"breakdown"`
				}{result, result.Breakdown()})
			}
			return printResult(opts.out, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Factor record file (.json, .yaml or .yml)")
	return cmd
}

func readFactors(path string, stdin io.Reader) (lifecalc.FactorRecord, error) {
	var (
		raw []byte
		err error
	)
	if path == "" || path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return lifecalc.FactorRecord{}, fmt.Errorf("read factors: %w", err)
	}

	var record lifecalc.FactorRecord
	if isJSON(path, raw) {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		err = dec.Decode(&record)
	} else {
		err = yaml.Unmarshal(raw, &record)
	}
	if err != nil {
		return lifecalc.FactorRecord{}, fmt.Errorf("parse factors: %w", err)
	}
	return record, nil
}

func isJSON(path string, raw []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

func printResult(w io.Writer, r lifecalc.CalculationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Baseline\t%.1f\t(%s, %s)\n", r.BaseLifespan, r.Country, r.Gender)
	for _, row := range r.Breakdown() {
		if row.IsModifier() {
			fmt.Fprintf(tw, "%s\tx%.1f\t%s\n", row.Modifier.Factor, row.Modifier.Multiplier, row.Modifier.Description)
			continue
		}
		fmt.Fprintf(tw, "%s\t%+.1f\t%s\n", row.Adjustment.Factor, row.Adjustment.Delta, row.Adjustment.Impact)
	}
	fmt.Fprintf(tw, "Total adjustment\t%+.1f\t\n", r.TotalAdjustment)
	fmt.Fprintf(tw, "Adjusted lifespan\t%.1f\t%s\n", r.AdjustedLifespan, r.HealthScore)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", rec.Priority, rec.Category, rec.Suggestion)
		}
	}
	return nil
}
