package cooling

import (
	"fmt"
	"strconv"
	"strings"
)

// formatFloat renders v with the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Transcript walks through the derivation with every intermediate value
// interpolated at full precision.
func Transcript(in Input, r Result) string {
	f := formatFloat
	var b strings.Builder

	b.WriteString("1) Differential equation:\n")
	b.WriteString("   dT/dt = -k(T - Ta)\n\n")

	b.WriteString("2) Separation and integration:\n")
	b.WriteString("   ∫ dT/(T - Ta) = ∫ -k dt\n")
	b.WriteString("   ln|T - Ta| = -k t + C\n")
	b.WriteString("   T - Ta = C e^(-k t)\n")
	b.WriteString("   T(t) = Ta + C e^(-k t)\n\n")

	b.WriteString("3) Condition at t1:\n")
	b.WriteString("   T1 = Ta + C e^0\n")
	fmt.Fprintf(&b, "   C = T1 - Ta = %s - %s = %s\n\n", f(in.Temp1), f(in.Ambient), f(r.C))

	b.WriteString("4) Condition at t2:\n")
	b.WriteString("   T2 - Ta = C e^(-k·(t2 - t1))\n")
	fmt.Fprintf(&b, "   e^(-k·%s) = (T2 - Ta)/C = %s\n", f(r.Dt), f(r.Ratio))
	fmt.Fprintf(&b, "   -k·%s = ln(%s) = %s\n", f(r.Dt), f(r.Ratio), f(r.LnRatio))
	fmt.Fprintf(&b, "   k = -ln(%s)/%s = %s\n\n", f(r.Ratio), f(r.Dt), f(r.K))

	b.WriteString("5) Temperature at death (T0):\n")
	b.WriteString("   T0 - Ta = C e^(-k·t0)\n")
	fmt.Fprintf(&b, "   e^(-k·t0) = (T0 - Ta)/C = %s\n", f(r.Ratio0))
	fmt.Fprintf(&b, "   -k·t0 = ln(%s) = %s\n", f(r.Ratio0), f(r.LnRatio0))
	fmt.Fprintf(&b, "   t0 = -ln(%s)/k = %s\n\n", f(r.Ratio0), f(r.T0))

	b.WriteString("Time from death to t1:\n")
	fmt.Fprintf(&b, "|t0| = %s min", f(r.ElapsedSinceDeath))

	if r.TimeOfDeath != nil {
		fmt.Fprintf(&b, "\n\nEstimated time of death: %s", r.TimeOfDeath)
	}
	return b.String()
}
