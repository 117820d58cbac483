package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SleepRecordCollection = "sleep_records"
)

// SleepRecord - one night logged in the sleep tracker. CreatedAt is the
// chosen day, not the time of the submission.
type SleepRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UID       string             `json:"-" bson:"uid"`
	SleepTime string             `json:"sleep_time" bson:"sleep_time"`
	WakeTime  string             `json:"wake_time" bson:"wake_time"`
	Duration  float64            `json:"duration" bson:"duration"`
	Quality   string             `json:"quality" bson:"quality"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
