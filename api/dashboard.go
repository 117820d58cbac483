package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/store"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// dashboard combines the assessment with the recent weekly reviews
func (s *Server) dashboard(c *gin.Context) {
	uid := c.GetString("requester")

	profile, err := s.mongoStore.GetProfile(uid)
	if err == store.ErrProfileNotFound {
		profile = &schema.Profile{}
	} else if shouldInterupt(err, c) {
		return
	}

	a, err := s.mongoStore.GetAssessment(uid)
	if shouldInterupt(err, c) {
		return
	}

	reviews, err := s.mongoStore.ListWeeklyReviews(uid)
	if shouldInterupt(err, c) {
		return
	}

	loc := localizer(c)
	trend := localizeTrend(loc, score.Aggregate(a.Percent, schema.WeeklySamples(reviews)))

	status, color := score.Bucket(trend.AdjustedPercent)
	current := score.Result{
		Percent: trend.AdjustedPercent,
		Status:  status,
		Color:   color,
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       profile.Name,
		"initial":    profile.Initial(),
		"assessment": presentResult(loc, a.Result()),
		"current":    presentResult(loc, current),
		"trend":      trend,
		"direction":  trend.Direction(),
		"pie":        pieChart(loc, current),
	})
}

// dashboardHistory lists the status changes recorded by the dashboard worker
func (s *Server) dashboardHistory(c *gin.Context) {
	limit := int64(defaultHistoryLimit)
	if l := c.Query("limit"); l != "" {
		n, err := strconv.ParseInt(l, 10, 64)
		if err != nil || n <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		if n > maxHistoryLimit {
			n = maxHistoryLimit
		}
		limit = n
	}

	changes, err := s.mongoStore.ListStatusChanges(c.GetString("requester"), limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes": changes,
	})
}
