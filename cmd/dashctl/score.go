package main

import (
	"encoding/json"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/wellness"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

func newScoreCmd() *cobra.Command {
	var (
		bmi, weight, height, sleep float64
		water, steps, mood         int
		asJSON                     bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the wellness score of a set of metrics",
		Long: `Compute the wellness score of a set of metrics.

Metrics left at zero count as not provided. BMI is computed from
--weight and --height when --bmi is not given.

Examples:
  dashctl score --bmi 22 --water 8 --sleep 8 --steps 10000 --mood 9
  dashctl score --weight 70 --height 175 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := wellness.MetricSet{
				WaterIntakeGlasses: water,
				SleepHours:         sleep,
				Steps:              steps,
				MoodScore:          mood,
			}
			if bmi == 0 {
				bmi = wellness.ComputeBMI(weight, height)
			}
			if bmi > 0 {
				m.BMI = &bmi
			}

			score := wellness.Aggregate(m)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(score)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, f := range score.Factors {
				fmt.Fprintf(w, "%s\t%d/%d\t%s\n", f.Name, f.Score, f.Max, wellness.FactorVariant(f))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wellness score: %d%% (%s)\n", score.Percentage, score.Grade.Text())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&bmi, "bmi", 0, "body mass index")
	flags.Float64Var(&weight, "weight", 0, "weight in kg")
	flags.Float64Var(&height, "height", 0, "height in cm")
	flags.IntVar(&water, "water", 0, "glasses of water")
	flags.Float64Var(&sleep, "sleep", 0, "hours of sleep")
	flags.IntVar(&steps, "steps", 0, "steps walked")
	flags.IntVar(&mood, "mood", 0, "mood from 1 to 10")
	flags.BoolVar(&asJSON, "json", false, "print the score as JSON")
	return cmd
}
