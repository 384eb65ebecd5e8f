// Package cooling estimates a time of death from Newton's Law of Cooling.
//
// The model is T(t) = Ta + C·e^(−k·t) with the first measurement as time
// origin. Two measurements fix C and the decay constant k; the assumed body
// temperature at death then fixes the (negative) offset t0. Everything in
// this package is pure arithmetic: no I/O, no shared state, and identical
// inputs always produce identical outputs.
package cooling
