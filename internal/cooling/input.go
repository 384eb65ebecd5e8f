package cooling

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names used in parse and degenerate-input errors.
const (
	FieldAmbient       = "Ta"
	FieldAtDeath       = "T0"
	FieldTime1         = "t1"
	FieldTemp1         = "T1"
	FieldTime2         = "t2"
	FieldTemp2         = "T2"
	FieldDiscoveryTime = "discovery_time"
)

// RawInput holds unparsed field values as typed by a user.
type RawInput struct {
	Ambient       string
	AtDeath       string
	Time1         string
	Temp1         string
	Time2         string
	Temp2         string
	DiscoveryTime string // optional, "HH:MM" 24-hour
}

// Input is a parsed calculation request. Temperatures and times are in
// whatever consistent units the caller uses; the clock conversion assumes
// minutes.
type Input struct {
	Ambient float64 // Ta
	AtDeath float64 // T0, body temperature at death
	Time1   float64 // t1, time origin
	Temp1   float64 // T1
	Time2   float64 // t2
	Temp2   float64 // T2

	// Discovery is the wall-clock time at which t1 was taken. Nil disables
	// the time-of-death conversion.
	Discovery *ClockTime
}

// ClockTime is a 24-hour time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseInput converts raw field values into an Input. It only checks that
// every number is finite; physical consistency is checked by Estimate.
func ParseInput(raw RawInput) (Input, error) {
	var in Input
	fields := []struct {
		name string
		src  string
		dst  *float64
	}{
		{FieldAmbient, raw.Ambient, &in.Ambient},
		{FieldAtDeath, raw.AtDeath, &in.AtDeath},
		{FieldTime1, raw.Time1, &in.Time1},
		{FieldTemp1, raw.Temp1, &in.Temp1},
		{FieldTime2, raw.Time2, &in.Time2},
		{FieldTemp2, raw.Temp2, &in.Temp2},
	}
	for _, f := range fields {
		v, err := ParseNumber(f.name, f.src)
		if err != nil {
			return Input{}, err
		}
		*f.dst = v
	}

	if s := strings.TrimSpace(raw.DiscoveryTime); s != "" {
		ct, err := ParseClock(s)
		if err != nil {
			return Input{}, err
		}
		in.Discovery = &ct
	}
	return in, nil
}

// ParseNumber parses a single decimal field, reporting failures against name.
func ParseNumber(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, parseErrorf(name, "field %s is empty or not a number", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, parseErrorf(name, "field %s is empty or not a number", name)
	}
	return v, nil
}

// ParseClock parses zero-padded "HH:MM" in 24-hour form.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !isTwoDigits(hh) || !isTwoDigits(mm) {
		return ClockTime{}, parseErrorf(FieldDiscoveryTime, "discovery time %q must be HH:MM", s)
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return ClockTime{}, parseErrorf(FieldDiscoveryTime, "discovery time %q must be HH:MM", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func isTwoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
