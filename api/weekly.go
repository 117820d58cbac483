package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/utils"
)

func (s *Server) weeklyReviewQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questionnaire": presentQuestionnaire(localizer(c), score.WeeklyReviewQuestionnaire),
	})
}

func (s *Server) submitWeeklyReview(c *gin.Context) {
	uid := c.GetString("requester")

	var params struct {
		Answers []int `json:"answers"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	answers, err := normalizeAnswers(score.WeeklyReviewQuestionnaire, params.Answers)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := score.WeeklyReviewQuestionnaire.Score(answers)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.mongoStore.AppendWeeklyReview(schema.WeeklyReview{
		UID:     uid,
		Answers: answers,
		Percent: result.Percent,
	})
	if shouldInterupt(err, c) {
		return
	}

	s.refreshDashboard(uid)

	loc := localizer(c)
	c.JSON(http.StatusOK, gin.H{
		"message": utils.Translate(loc, "notice.weekly_saved", nil),
		"review":  review,
		"result":  presentResult(loc, result),
	})
}

// weeklyReviewHistory lists the reviews of the requester oldest first with
// their week labels
func (s *Server) weeklyReviewHistory(c *gin.Context) {
	reviews, err := s.mongoStore.ListWeeklyReviews(c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	series := []score.Point{}
	if len(reviews) > 0 {
		series = localizeTrend(localizer(c), score.Aggregate(0, schema.WeeklySamples(reviews))).Series
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"series":  series,
	})
}
