package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/innercore-api/journey"
	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/utils"
)

func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.mongoStore.GetProfile(c.GetString("requester"))
	if err == store.ErrProfileNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"initial": profile.Initial(),
		"genders": schema.Genders,
	})
}

// updateProfile overwrites the profile of the requester. Saving the first
// profile moves the journey forward to the assessment.
func (s *Server) updateProfile(c *gin.Context) {
	var params struct {
		Name   string `json:"name" binding:"required"`
		Age    string `json:"age"`
		Job    string `json:"job"`
		Gender string `json:"gender"`
		Email  string `json:"email"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !validGender(params.Gender) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	profile := schema.Profile{
		Name:   strings.TrimSpace(params.Name),
		Age:    strings.TrimSpace(params.Age),
		Job:    strings.TrimSpace(params.Job),
		Gender: params.Gender,
		Email:  strings.TrimSpace(params.Email),
	}

	if err := s.mongoStore.SetProfile(c.GetString("requester"), profile); shouldInterupt(err, c) {
		return
	}

	state, err := journey.Transition(c.MustGet("state").(journey.State), journey.ProfileSaved)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": utils.Translate(localizer(c), "notice.profile_saved", nil),
		"profile": profile,
		"initial": profile.Initial(),
		"state":   state,
		"next":    state.Next(),
	})
}

func validGender(gender string) bool {
	if gender == "" {
		return true
	}
	for _, g := range schema.Genders {
		if string(g) == gender {
			return true
		}
	}
	return false
}
