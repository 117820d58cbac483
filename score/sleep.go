package score

import (
	"errors"
	"math"
	"time"
)

const (
	MinGoodSleepHours = 7.0
	MaxGoodSleepHours = 9.0
	TargetSleepHours  = 8.0

	// stored quality values
	SleepQualityGood = "Baik"
	SleepQualityPoor = "Buruk"
)

var ErrInvalidClock = errors.New("invalid clock time, expect HH:MM")

type SleepFeedback string

const (
	SleepEnough SleepFeedback = "enough"
	SleepShort  SleepFeedback = "short"
	SleepLong   SleepFeedback = "long"
)

// SleepSummary is what the tracker shows for one night
type SleepSummary struct {
	Duration float64       `json:"duration"`
	Quality  string        `json:"quality"`
	Percent  float64       `json:"percent"`
	Feedback SleepFeedback `json:"feedback"`
}

// SleepDuration returns the hours slept between two clock times on a local
// day. A wake time not after the sleep time belongs to the next day.
func SleepDuration(day time.Time, sleepAt, wakeAt string) (float64, error) {
	sh, sm, err := parseClock(sleepAt)
	if err != nil {
		return 0, err
	}
	wh, wm, err := parseClock(wakeAt)
	if err != nil {
		return 0, err
	}

	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	sleepTime := time.Date(base.Year(), base.Month(), base.Day(), sh, sm, 0, 0, base.Location())
	wakeTime := time.Date(base.Year(), base.Month(), base.Day(), wh, wm, 0, 0, base.Location())
	if !wakeTime.After(sleepTime) {
		wakeTime = wakeTime.AddDate(0, 0, 1)
	}

	return wakeTime.Sub(sleepTime).Hours(), nil
}

func SleepQuality(hours float64) string {
	if hours >= MinGoodSleepHours && hours <= MaxGoodSleepHours {
		return SleepQualityGood
	}
	return SleepQualityPoor
}

// SleepPercent is the share of the target sleep, capped at 100
func SleepPercent(hours float64) float64 {
	return math.Min(hours/TargetSleepHours*100, 100)
}

func SleepFeedbackOf(hours float64) SleepFeedback {
	switch {
	case hours < MinGoodSleepHours:
		return SleepShort
	case hours > MaxGoodSleepHours:
		return SleepLong
	default:
		return SleepEnough
	}
}

func SummarizeSleep(hours float64) SleepSummary {
	return SleepSummary{
		Duration: hours,
		Quality:  SleepQuality(hours),
		Percent:  SleepPercent(hours),
		Feedback: SleepFeedbackOf(hours),
	}
}

func parseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	return t.Hour(), t.Minute(), nil
}
