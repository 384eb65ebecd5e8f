package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"newton_cooling/internal/cooling"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// measurementFlags are shared by estimate and curve. Values stay strings so
// the model reports parse failures in its own words.
type measurementFlags struct {
	ambient   string
	atDeath   string
	time1     string
	temp1     string
	time2     string
	temp2     string
	discovery string
}

func (m *measurementFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&m.ambient, "ta", "", "ambient temperature Ta")
	f.StringVar(&m.atDeath, "t0", "", "body temperature at death T0 (default from config)")
	f.StringVar(&m.time1, "t1", "", "time of the first measurement")
	f.StringVar(&m.temp1, "T1", "", "body temperature at t1")
	f.StringVar(&m.time2, "t2", "", "time of the second measurement")
	f.StringVar(&m.temp2, "T2", "", "body temperature at t2")
	f.StringVar(&m.discovery, "at", "", "discovery time HH:MM, enables the wall-clock estimate")
}

func (m *measurementFlags) raw() cooling.RawInput {
	return cooling.RawInput{
		Ambient:       m.ambient,
		AtDeath:       m.atDeath,
		Time1:         m.time1,
		Temp1:         m.temp1,
		Time2:         m.time2,
		Temp2:         m.temp2,
		DiscoveryTime: m.discovery,
	}
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}
