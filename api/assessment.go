package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/innercore-api/journey"
	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/utils"
)

func (s *Server) assessmentQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questionnaire": presentQuestionnaire(localizer(c), score.AssessmentQuestionnaire),
	})
}

// submitAssessment scores and stores the one-time assessment. A user who
// already owns one is sent to the dashboard.
func (s *Server) submitAssessment(c *gin.Context) {
	uid := c.GetString("requester")
	state := c.MustGet("state").(journey.State)
	if state == journey.Ready {
		abortAssessmentExists(c, uid)
		return
	}

	var params struct {
		Answers []int `json:"answers"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	answers, err := normalizeAnswers(score.AssessmentQuestionnaire, params.Answers)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := score.AssessmentQuestionnaire.Score(answers)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	err = s.mongoStore.CreateAssessment(schema.NewAssessment(uid, result, time.Now().UTC()))
	if err == store.ErrAssessmentExists {
		abortAssessmentExists(c, uid)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	s.refreshDashboard(uid)

	state, err = journey.Transition(state, journey.AssessmentSubmitted)
	if shouldInterupt(err, c) {
		return
	}

	loc := localizer(c)
	c.JSON(http.StatusOK, gin.H{
		"message": utils.Translate(loc, "notice.assessment_saved", nil),
		"result":  presentResult(loc, result),
		"pie":     pieChart(loc, result),
		"state":   state,
		"next":    state.Next(),
	})
}

func abortAssessmentExists(c *gin.Context, uid string) {
	log.WithField("uid", uid).Info("assessment has been submitted")

	e := errorAssessmentExists
	e.State = string(journey.Ready)
	e.Next = string(journey.ScreenDashboard)
	abortWithEncoding(c, http.StatusConflict, e)
}

func (s *Server) getAssessment(c *gin.Context) {
	a, err := s.mongoStore.GetAssessment(c.GetString("requester"))
	if err == store.ErrAssessmentNotFound {
		e := errorAssessmentRequired
		e.State = string(journey.AssessmentPending)
		e.Next = string(journey.ScreenAssessment)
		abortWithEncoding(c, http.StatusConflict, e)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	loc := localizer(c)
	c.JSON(http.StatusOK, gin.H{
		"result":     presentResult(loc, a.Result()),
		"pie":        pieChart(loc, a.Result()),
		"created_at": a.CreatedAt,
	})
}
