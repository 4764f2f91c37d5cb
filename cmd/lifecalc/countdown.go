package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifespan-backend/internal/lifecalc"
)

func newCountdownCmd(opts *options) *cobra.Command {
	var (
		dob      string
		lifespan float64
	)

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show the time left until the projected end of life",
		RunE: func(cmd *cobra.Command, args []string) error {
			born, err := time.ParseInLocation("2006-01-02", dob, time.UTC)
			if err != nil {
				return fmt.Errorf("invalid --dob %q (expected YYYY-MM-DD)", dob)
			}
			if lifespan <= 0 {
				return fmt.Errorf("--lifespan must be positive")
			}
			left := lifecalc.TimeLeft(born, lifespan, opts.now().UTC())

			if opts.output == outputJSON {
				return opts.writeJSON(left)
			}
			if left.Expired {
				fmt.Fprintln(opts.out, "Projected lifespan already reached")
				return nil
			}
			fmt.Fprintf(opts.out, "%d years, %d days, %d hours, %d minutes, %d seconds\n",
				left.Years, left.Days, left.Hours, left.Minutes, left.Seconds)
			return nil
		},
	}

	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD) [REQUIRED]")
	cmd.Flags().Float64Var(&lifespan, "lifespan", 0, "Projected lifespan in years [REQUIRED]")
	_ = cmd.MarkFlagRequired("dob")
	_ = cmd.MarkFlagRequired("lifespan")
	return cmd
}
