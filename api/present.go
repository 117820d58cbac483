package api

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/utils"
)

// statusView is a score result with its localized texts
type statusView struct {
	Percent    int          `json:"percent"`
	Status     score.Status `json:"status"`
	Label      string       `json:"label"`
	Color      score.Color  `json:"color"`
	Hex        string       `json:"hex"`
	Message    string       `json:"message"`
	Motivation string       `json:"motivation"`
}

func presentResult(loc *i18n.Localizer, r score.Result) statusView {
	return statusView{
		Percent:    r.Percent,
		Status:     r.Status,
		Label:      utils.Translate(loc, "status."+string(r.Status), nil),
		Color:      r.Color,
		Hex:        r.Color.Hex(),
		Message:    utils.Translate(loc, "message."+string(r.Status), nil),
		Motivation: utils.Translate(loc, "motivation."+string(r.Status), nil),
	}
}

type pieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// pieChart splits a result into the negative symptoms and the rest
func pieChart(loc *i18n.Localizer, r score.Result) []pieSlice {
	return []pieSlice{
		{
			Label: utils.Translate(loc, "pie.negative", nil),
			Value: r.Percent,
			Color: r.Color.Hex(),
		},
		{
			Label: utils.Translate(loc, "pie.positive", nil),
			Value: r.Remainder(),
			Color: score.Green.Hex(),
		},
	}
}

// localizeTrend translates the week labels of a trend
func localizeTrend(loc *i18n.Localizer, t score.Trend) score.Trend {
	series := make([]score.Point, 0, len(t.Series))
	labels := make([]string, 0, len(t.Series))
	for _, p := range t.Series {
		p.Label = utils.Translate(loc, "week.label", map[string]interface{}{"Index": p.Index})
		series = append(series, p)
		labels = append(labels, p.Label)
	}
	t.Series = series
	t.Labels = labels
	return t
}

type question struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Text  string `json:"text"`
}

type scaleOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type questionnaireView struct {
	Name      string        `json:"name"`
	Title     string        `json:"title"`
	Scale     []scaleOption `json:"scale"`
	Questions []question    `json:"questions"`
}

func presentQuestionnaire(loc *i18n.Localizer, q score.Questionnaire) questionnaireView {
	v := questionnaireView{
		Name:      q.Name,
		Title:     utils.Translate(loc, q.Name+".title", nil),
		Scale:     make([]scaleOption, 0, len(schema.ScaleKeys)),
		Questions: make([]question, 0, q.Items),
	}

	for i, key := range schema.ScaleKeys {
		v.Scale = append(v.Scale, scaleOption{Value: i, Label: utils.Translate(loc, key, nil)})
	}

	for i := 0; i < q.Items; i++ {
		key := schema.QuestionKey(q.Name, i)
		v.Questions = append(v.Questions, question{
			Index: i + 1,
			Key:   key,
			Text:  utils.Translate(loc, key, nil),
		})
	}

	return v
}

// normalizeAnswers checks the answers of a submission and pads the
// unanswered items
func normalizeAnswers(q score.Questionnaire, answers []int) ([]int, error) {
	if len(answers) > q.Items {
		return nil, score.ErrAnswerCount
	}

	for i, a := range answers {
		if a < 0 || a > score.MaxAnswer {
			return nil, fmt.Errorf("answer %d is out of range: %d", i+1, a)
		}
	}

	return q.Normalize(answers), nil
}
