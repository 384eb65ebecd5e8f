package cooling

import "strconv"

// DisplayValues are Result fields rounded for presentation.
type DisplayValues struct {
	K                 string `json:"k" yaml:"k"`
	ElapsedSinceDeath string `json:"elapsed_since_death" yaml:"elapsed_since_death"`
	T0                string `json:"t0" yaml:"t0"`
	TimeOfDeath       string `json:"time_of_death,omitempty" yaml:"time_of_death,omitempty"`
}

// Display rounds k to six decimals and times to two.
func Display(r Result) DisplayValues {
	d := DisplayValues{
		K:                 strconv.FormatFloat(r.K, 'f', 6, 64),
		ElapsedSinceDeath: strconv.FormatFloat(r.ElapsedSinceDeath, 'f', 2, 64),
		T0:                strconv.FormatFloat(r.T0, 'f', 2, 64),
	}
	if r.TimeOfDeath != nil {
		d.TimeOfDeath = r.TimeOfDeath.String()
	}
	return d
}
