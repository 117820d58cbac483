package score

import (
	"errors"
)

const (
	// MaxAnswer is the top of the 0..4 Likert scale used by every questionnaire
	MaxAnswer = 4

	AssessmentItems   = 15
	WeeklyReviewItems = 10
)

var (
	ErrAnswerCount       = errors.New("answer count does not match the questionnaire")
	ErrEmptyQuestionnaire = errors.New("questionnaire must have at least one item")
)

type Status string

const (
	Healthy Status = "healthy"
	Fair    Status = "fair"
	Poor    Status = "poor"
	Bad     Status = "bad"
)

type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Orange Color = "orange"
	Red    Color = "red"
)

var colorHex = map[Color]string{
	Green:  "#22C55E",
	Yellow: "#FACC15",
	Orange: "#F97316",
	Red:    "#EF4444",
}

// Hex returns the chart colour of a status colour
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return "#8884d8"
}

// Result is the reduction of a questionnaire response
type Result struct {
	Percent int    `json:"percent" bson:"percent"`
	Status  Status `json:"status" bson:"status"`
	Color   Color  `json:"color" bson:"color"`
}

// Remainder is the share of the pie that is not negative symptoms
func (r Result) Remainder() int {
	if r.Percent >= 100 {
		return 0
	}
	return 100 - r.Percent
}

// Percent normalizes a list of answers into [0, 100].
// Values are not range checked. An empty list scores 0.
func Percent(answers []int) int {
	if len(answers) == 0 {
		return 0
	}

	sum := 0
	for _, a := range answers {
		sum += a
	}

	return roundHalfUp(100*sum, len(answers)*MaxAnswer)
}

// Bucket maps a percent to its status and colour.
// Each bucket includes its upper bound: 25, 50, 75.
func Bucket(percent int) (Status, Color) {
	switch {
	case percent <= 25:
		return Healthy, Green
	case percent <= 50:
		return Fair, Yellow
	case percent <= 75:
		return Poor, Orange
	default:
		return Bad, Red
	}
}

func Calculate(answers []int) Result {
	p := Percent(answers)
	status, color := Bucket(p)
	return Result{
		Percent: p,
		Status:  status,
		Color:   color,
	}
}

// Questionnaire fixes the number of items of a form
type Questionnaire struct {
	Name  string
	Items int
}

var (
	AssessmentQuestionnaire   = Questionnaire{Name: "assessment", Items: AssessmentItems}
	WeeklyReviewQuestionnaire = Questionnaire{Name: "weekly_review", Items: WeeklyReviewItems}
)

func NewQuestionnaire(name string, items int) (Questionnaire, error) {
	if items <= 0 {
		return Questionnaire{}, ErrEmptyQuestionnaire
	}
	return Questionnaire{Name: name, Items: items}, nil
}

// Normalize pads unanswered items with 0. Extra answers are kept so that
// Score can reject them.
func (q Questionnaire) Normalize(answers []int) []int {
	if len(answers) >= q.Items {
		return answers
	}
	normalized := make([]int, q.Items)
	copy(normalized, answers)
	return normalized
}

func (q Questionnaire) Score(answers []int) (Result, error) {
	if q.Items <= 0 {
		return Result{}, ErrEmptyQuestionnaire
	}
	if len(answers) != q.Items {
		return Result{}, ErrAnswerCount
	}
	return Calculate(answers), nil
}

// roundHalfUp returns num/den rounded with .5 towards positive infinity.
// It stays in integers so that x.5 is never lost to float error.
func roundHalfUp(num, den int) int {
	n, d := 2*num+den, 2*den
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
