package cooling

import (
	"fmt"
	"math"
)

const minutesPerDay = 24 * 60

// WallClock is a time of day on a 12-hour clock.
type WallClock struct {
	Hour24   int    `json:"hour24" yaml:"hour24"`     // 0-23
	Hour12   int    `json:"hour12" yaml:"hour12"`     // 1-12
	Minute   int    `json:"minute" yaml:"minute"`     // 0-59
	Meridiem string `json:"meridiem" yaml:"meridiem"` // AM | PM
	// DayOffset counts calendar days back from the discovery day; 0 means
	// the same day.
	DayOffset int `json:"day_offset" yaml:"day_offset"`
}

// String formats the time as "H:MM AM".
func (w WallClock) String() string {
	return fmt.Sprintf("%d:%02d %s", w.Hour12, w.Minute, w.Meridiem)
}

// TimeOfDeath subtracts elapsedMinutes from the discovery time.
func TimeOfDeath(discovery ClockTime, elapsedMinutes float64) WallClock {
	total := float64(discovery.Hour*60+discovery.Minute) - elapsedMinutes

	// Minutes are rounded half away from zero, which may produce 60; carry
	// it into the hour instead of printing "x:60".
	rounded := math.Round(total)

	// Normalize in float64; the day count alone may exceed int.
	m := math.Mod(rounded, minutesPerDay)
	if m < 0 {
		m += minutesPerDay
	}
	hour := int(m / 60)
	minute := int(math.Mod(m, 60))

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return WallClock{
		Hour24:    hour,
		Hour12:    h12,
		Minute:    minute,
		Meridiem:  meridiem,
		DayOffset: daysBack(rounded),
	}
}

// daysBack returns how many midnights lie between a rounded minute-of-day
// total and the discovery day, saturating at math.MaxInt.
func daysBack(rounded float64) int {
	if rounded >= 0 {
		return 0
	}
	days := math.Ceil(-rounded / minutesPerDay)
	if days >= math.MaxInt {
		return math.MaxInt
	}
	return int(days)
}
