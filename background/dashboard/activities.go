package dashboard

import (
	"context"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/store"
)

// RefreshResult is what the workflow needs to know about a refresh.
// Change is set only when the adjusted percent moved to another status.
type RefreshResult struct {
	AdjustedPercent int                  `json:"adjusted_percent"`
	Status          score.Status         `json:"status"`
	Change          *schema.StatusChange `json:"change"`
}

// BuildDashboard aggregates the base assessment with the weekly reviews
func BuildDashboard(uid string, assessment schema.Assessment, reviews []schema.WeeklyReview) schema.Dashboard {
	trend := score.Aggregate(assessment.Percent, schema.WeeklySamples(reviews))
	status, color := score.Bucket(trend.AdjustedPercent)

	return schema.Dashboard{
		ID:              uid,
		BasePercent:     assessment.Percent,
		AdjustedPercent: trend.AdjustedPercent,
		Delta:           trend.Delta,
		WindowSize:      trend.WindowSize,
		Status:          status,
		Color:           color,
		Reviews:         len(reviews),
	}
}

// RefreshDashboardActivity rebuilds the dashboard snapshot of a user and
// compares it with the previous one
func (w *DashboardWorker) RefreshDashboardActivity(ctx context.Context, uid string) (*RefreshResult, error) {
	logger := activity.GetLogger(ctx)

	assessment, err := w.Mongo.GetAssessment(uid)
	if err != nil {
		return nil, err
	}

	reviews, err := w.Mongo.ListWeeklyReviews(uid)
	if err != nil {
		return nil, err
	}

	previous, err := w.Mongo.GetDashboard(uid)
	if err != nil {
		if err != store.ErrDashboardNotFound {
			return nil, err
		}
		previous = nil
	}

	d := BuildDashboard(uid, *assessment, reviews)
	if err := w.Mongo.SaveDashboard(d); err != nil {
		return nil, err
	}

	logger.Info("Dashboard refreshed.", zap.String("uid", uid), zap.Int("adjusted", d.AdjustedPercent))

	result := &RefreshResult{
		AdjustedPercent: d.AdjustedPercent,
		Status:          d.Status,
	}

	if previous != nil && score.StatusChanged(previous.AdjustedPercent, d.AdjustedPercent) {
		result.Change = &schema.StatusChange{
			From:       previous.Status,
			To:         d.Status,
			OldPercent: previous.AdjustedPercent,
			NewPercent: d.AdjustedPercent,
			Timestamp:  time.Now().Unix(),
		}
	}

	return result, nil
}

// RecordStatusChangeActivity appends a status change to the history of a user
func (w *DashboardWorker) RecordStatusChangeActivity(ctx context.Context, uid string, change schema.StatusChange) error {
	activity.GetLogger(ctx).Info("Status changed.", zap.String("uid", uid),
		zap.String("from", string(change.From)), zap.String("to", string(change.To)))

	change.UID = uid
	return w.Mongo.AppendStatusChange(change)
}
