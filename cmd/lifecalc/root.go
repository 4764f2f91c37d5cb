package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lifespan-backend/internal/lifecalc"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type options struct {
	baselinePath string
	output       string

	in  io.Reader
	out io.Writer
	now func() time.Time
}

func newOptions() *options {
	return &options{
		output: outputText,
		in:     os.Stdin,
		out:    os.Stdout,
		now:    time.Now,
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lifecalc",
		Short:         "Estimate life expectancy from lifestyle factors",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.output = strings.ToLower(strings.TrimSpace(opts.output))
			switch opts.output {
			case outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("invalid output format %q (must be text or json)", opts.output)
			}
		},
	}
	cmd.SetIn(opts.in)
	cmd.SetOut(opts.out)

	cmd.PersistentFlags().StringVar(&opts.baselinePath, "baseline", "", "YAML file overriding the baseline table")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format (text/json)")

	cmd.AddCommand(newCalculateCmd(opts))
	cmd.AddCommand(newBMICmd(opts))
	cmd.AddCommand(newCountdownCmd(opts))
	cmd.AddCommand(newFactorsCmd(opts))
	return cmd
}

func (o *options) baseline() (lifecalc.BaselineTable, error) {
	if strings.TrimSpace(o.baselinePath) == "" {
		return lifecalc.DefaultBaselineTable(), nil
	}
	return lifecalc.LoadBaselineTable(o.baselinePath)
}

func (o *options) writeJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
