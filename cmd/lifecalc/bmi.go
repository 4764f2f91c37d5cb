package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"lifespan-backend/internal/lifecalc"
)

func newBMICmd(opts *options) *cobra.Command {
	var bmi, height, weight float64

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Classify a BMI value, or compute it from height and weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			value := bmi
			if value <= 0 {
				value = lifecalc.ComputeBMI(height, weight)
			}
			analysis, ok := lifecalc.ClassifyBMI(value)
			if !ok {
				return fmt.Errorf("provide --bmi or both --height and --weight")
			}
			rounded := lifecalc.RoundOneDecimal(decimal.NewFromFloat(value))

			if opts.output == outputJSON {
				return opts.writeJSON(struct {
					BMI float64 `json:"bmi"`
					lifecalc.BMIAnalysis
				}{rounded, analysis})
			}
			fmt.Fprintf(opts.out, "BMI %.1f: %s\n%s\n%s\n", rounded, analysis.Category, analysis.HealthNote, analysis.Recommendation)
			return nil
		},
	}

	cmd.Flags().Float64Var(&bmi, "bmi", 0, "BMI value")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in centimetres")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms")
	return cmd
}
