package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/innercore-api/score"
)

const (
	DashboardCollection    = "dashboards"
	StatusChangeCollection = "status_changes"
)

// Dashboard is the snapshot kept by the refresh workflow
type Dashboard struct {
	ID              string       `json:"-" bson:"_id"`
	BasePercent     int          `json:"base_percent" bson:"base_percent"`
	AdjustedPercent int          `json:"adjusted_percent" bson:"adjusted_percent"`
	Delta           int          `json:"delta" bson:"delta"`
	WindowSize      int          `json:"window_size" bson:"window_size"`
	Status          score.Status `json:"status" bson:"status"`
	Color           score.Color  `json:"color" bson:"color"`
	Reviews         int          `json:"reviews" bson:"reviews"`
	UpdatedAt       time.Time    `json:"updated_at" bson:"updated_at"`
}

// StatusChange records the adjusted percent crossing a status bucket
type StatusChange struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UID        string             `json:"-" bson:"uid"`
	From       score.Status       `json:"from" bson:"from"`
	To         score.Status       `json:"to" bson:"to"`
	OldPercent int                `json:"old_percent" bson:"old_percent"`
	NewPercent int                `json:"new_percent" bson:"new_percent"`
	Timestamp  int64              `json:"ts" bson:"ts"`
}
