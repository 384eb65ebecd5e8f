package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"newton_cooling/internal/cooling"
)

// estimateOutput is what --output json|yaml prints.
type estimateOutput struct {
	Result  cooling.Result        `json:"result" yaml:"result"`
	Display cooling.DisplayValues `json:"display" yaml:"display"`
}

func newEstimateCmd(a *app) *cobra.Command {
	var (
		m      measurementFlags
		output string
		steps  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the time since death",
		Long: `Solve for the cooling constant k and the offset t0 at which the body
was at T0. Times are in minutes relative to any origin; t0 is relative to t1.

With --at the discovery clock time is shifted back by |t0| to give a
wall-clock time of death.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			res, err := a.est.Estimate(cmd.Context(), m.raw())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, estimateOutput{Result: res, Display: cooling.Display(res)})
			}
			printEstimate(out, res, steps)
			return nil
		},
	}

	m.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&steps, "steps", false, "print the step-by-step derivation")
	return cmd
}

func printEstimate(w io.Writer, res cooling.Result, steps bool) {
	s := newStyles(w, defaultTheme)
	d := cooling.Display(res)

	if steps {
		fmt.Fprintln(w, s.heading.Render("Derivation"))
		fmt.Fprintln(w, res.Transcript)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, s.heading.Render("Estimate"))
	s.row(w, "k", d.K+" /min")
	s.row(w, "elapsed since death", d.ElapsedSinceDeath+" min")
	s.row(w, "t0 (relative to t1)", d.T0+" min")
	if d.TimeOfDeath != "" {
		s.row(w, "time of death", d.TimeOfDeath)
	}
}
