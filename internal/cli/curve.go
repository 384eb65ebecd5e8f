package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"newton_cooling/internal/cooling"
)

type curveOutput struct {
	Step    float64          `json:"step" yaml:"step"`
	Samples []cooling.Sample `json:"samples" yaml:"samples"`
}

func newCurveCmd(a *app) *cobra.Command {
	var (
		m      measurementFlags
		output string
		step   string
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the fitted temperature curve",
		Long: `Sample T(t) = Ta + C e^(-k (t - t1)) from the estimated moment of death
to the last measurement, every --step minutes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			stepValue := a.cfg.Model.DefaultCurveStep
			if step != "" {
				v, err := cooling.ParseStep(step)
				if err != nil {
					return err
				}
				stepValue = v
			}

			samples, err := a.curves.Curve(cmd.Context(), m.raw(), stepValue)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, curveOutput{Step: stepValue, Samples: samples})
			}
			_, err = fmt.Fprintln(out, renderCurve(samples))
			return err
		},
	}

	m.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&step, "step", "", "sampling step in minutes (default from config)")
	return cmd
}

func renderCurve(samples []cooling.Sample) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("t (min)", "T")
	for _, s := range samples {
		t.Row(
			strconv.FormatFloat(s.Time, 'f', 2, 64),
			strconv.FormatFloat(s.Temperature, 'f', 3, 64),
		)
	}
	return t.String()
}
