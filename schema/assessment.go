package schema

import (
	"time"

	"github.com/bitmark-inc/innercore-api/score"
)

const (
	AssessmentCollection = "assessments"
)

// Assessment is the one-time baseline. It is keyed by the uid so that a
// user can own at most one.
type Assessment struct {
	ID        string       `json:"-" bson:"_id"`
	Percent   int          `json:"percent" bson:"percent"`
	Status    score.Status `json:"status" bson:"status"`
	Color     score.Color  `json:"color" bson:"color"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

func NewAssessment(uid string, r score.Result, now time.Time) Assessment {
	return Assessment{
		ID:        uid,
		Percent:   r.Percent,
		Status:    r.Status,
		Color:     r.Color,
		CreatedAt: now,
	}
}

func (a Assessment) Result() score.Result {
	return score.Result{Percent: a.Percent, Status: a.Status, Color: a.Color}
}
