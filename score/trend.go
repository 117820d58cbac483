package score

import (
	"fmt"
	"sort"
	"time"
)

const (
	// TrendWindow is the maximum number of recent samples a delta spans
	TrendWindow = 4

	// PlaceholderLength is the size of the synthetic series shown without data
	PlaceholderLength = 4
)

// Sample is a weekly review percent at the time the store wrote it
type Sample struct {
	Percent   int
	Timestamp time.Time
}

// Point is a labeled sample ready to be rendered
type Point struct {
	Index       int       `json:"index"`
	Label       string    `json:"label"`
	Percent     int       `json:"percent"`
	Timestamp   time.Time `json:"date"`
	Placeholder bool      `json:"placeholder,omitempty"`
}

type Direction string

const (
	Improving Direction = "improving"
	Worsening Direction = "worsening"
	Steady    Direction = "steady"
)

// Trend is the base percent corrected by the recent weekly window
type Trend struct {
	AdjustedPercent int      `json:"adjusted_percent"`
	Delta           int      `json:"delta"`
	WindowSize      int      `json:"window_size"`
	Series          []Point  `json:"series"`
	Labels          []string `json:"labels"`
	Placeholder     bool     `json:"placeholder"`
}

// Direction reads a positive delta as improvement
func (t Trend) Direction() Direction {
	switch {
	case t.Delta > 0:
		return Improving
	case t.Delta < 0:
		return Worsening
	default:
		return Steady
	}
}

func WeekLabel(index int) string {
	return fmt.Sprintf("Week %d", index)
}

// SortSamples orders samples by timestamp. Samples sharing a timestamp keep
// their input order.
func SortSamples(samples []Sample) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// WindowDelta returns the window size and the change between the first and
// the last sample of the window. Samples must be sorted.
func WindowDelta(sorted []Sample) (int, int) {
	windowSize := clamp(TrendWindow, 0, len(sorted))
	if windowSize == 0 {
		return 0, 0
	}

	last := sorted[len(sorted)-1].Percent
	start := sorted[len(sorted)-windowSize].Percent
	return windowSize, last - start
}

// Aggregate combines a base percent with a weekly series
func Aggregate(basePercent int, samples []Sample) Trend {
	sorted := SortSamples(samples)
	windowSize, delta := WindowDelta(sorted)

	t := Trend{
		AdjustedPercent: clamp(basePercent-delta, 0, 100),
		Delta:           delta,
		WindowSize:      windowSize,
	}

	if len(sorted) == 0 {
		t.Series = placeholderSeries()
		t.Placeholder = true
	} else {
		t.Series = make([]Point, 0, len(sorted))
		for i, s := range sorted {
			t.Series = append(t.Series, Point{
				Index:     i + 1,
				Label:     WeekLabel(i + 1),
				Percent:   s.Percent,
				Timestamp: s.Timestamp,
			})
		}
	}

	t.Labels = make([]string, 0, len(t.Series))
	for _, p := range t.Series {
		t.Labels = append(t.Labels, p.Label)
	}

	return t
}

func placeholderSeries() []Point {
	points := make([]Point, 0, PlaceholderLength)
	for i := 1; i <= PlaceholderLength; i++ {
		points = append(points, Point{
			Index:       i,
			Label:       WeekLabel(i),
			Percent:     0,
			Placeholder: true,
		})
	}
	return points
}
