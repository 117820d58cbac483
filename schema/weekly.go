package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/innercore-api/score"
)

const (
	WeeklyReviewCollection = "weekly_reviews"
)

// WeeklyReview is appended on every weekly submission
type WeeklyReview struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UID     string             `json:"-" bson:"uid"`
	Answers []int              `json:"answers" bson:"answers"`
	Percent int                `json:"percent" bson:"percent"`
	Date    time.Time          `json:"date" bson:"date"`
}

func (w WeeklyReview) Sample() score.Sample {
	return score.Sample{Percent: w.Percent, Timestamp: w.Date}
}

func WeeklySamples(reviews []WeeklyReview) []score.Sample {
	samples := make([]score.Sample, 0, len(reviews))
	for _, r := range reviews {
		samples = append(samples, r.Sample())
	}
	return samples
}
