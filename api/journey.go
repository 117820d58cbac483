package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/innercore-api/journey"
)

// journeyMiddleware resolves the journey state of the requester from the
// stored documents and attaches it as "state" in gin's context
func (s *Server) journeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := journey.Resolve(s.mongoStore, c.GetString("requester"))
		if shouldInterupt(err, c) {
			return
		}

		c.Set("state", state)
		c.Next()
	}
}

// requireState rejects requests whose journey state is not one of the
// given states. The response carries the screen the client should go to.
func (s *Server) requireState(states ...journey.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.MustGet("state").(journey.State)
		if state.In(states...) {
			c.Next()
			return
		}

		e := errorJourneyState
		if state == journey.AssessmentPending {
			e = errorAssessmentRequired
		}
		e.State = string(state)
		e.Next = string(state.Next())
		abortWithEncoding(c, http.StatusConflict, e)
	}
}

func (s *Server) currentJourney(c *gin.Context) {
	state := c.MustGet("state").(journey.State)
	c.JSON(http.StatusOK, gin.H{
		"state": state,
		"next":  state.Next(),
	})
}
