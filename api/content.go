package api

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/utils"
)

// randomIndex picks the challenge of the day
var randomIndex = rand.Intn

// assetURL prefixes a path with the public address of the assets
func assetURL(path string) string {
	base := strings.TrimRight(viper.GetString("assets.base_url"), "/")
	return base + path
}

func (s *Server) randomChallenge(c *gin.Context) {
	challenge := schema.Challenges[randomIndex(len(schema.Challenges))]

	c.JSON(http.StatusOK, gin.H{
		"challenge": gin.H{
			"type": challenge,
			"text": utils.Translate(localizer(c), "challenge."+string(challenge), nil),
		},
	})
}

func (s *Server) stretches(c *gin.Context) {
	loc := localizer(c)

	type stretchView struct {
		schema.Stretch
		Description string `json:"description"`
	}

	stretches := make([]stretchView, 0, len(schema.Stretches))
	for _, stretch := range schema.Stretches {
		stretch.ImageURL = assetURL(stretch.ImageURL)
		stretches = append(stretches, stretchView{
			Stretch:     stretch,
			Description: utils.Translate(loc, "stretch."+stretch.Key, nil),
		})
	}

	c.JSON(http.StatusOK, gin.H{"stretches": stretches})
}

func (s *Server) audioTracks(c *gin.Context) {
	tracks := make([]schema.AudioTrack, 0, len(schema.AudioTracks))
	for _, track := range schema.AudioTracks {
		track.FileURL = assetURL(track.FileURL)
		if track.ImageURL != "" {
			track.ImageURL = assetURL(track.ImageURL)
		}
		tracks = append(tracks, track)
	}

	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

// selfCare returns the planner download and its tips
func (s *Server) selfCare(c *gin.Context) {
	loc := localizer(c)

	tips := make([]string, 0, schema.SelfCareTips)
	for i := 1; i <= schema.SelfCareTips; i++ {
		tips = append(tips, utils.Translate(loc, "self_care.tip."+strconv.Itoa(i), nil))
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       utils.Translate(loc, "self_care.title", nil),
		"description": utils.Translate(loc, "self_care.description", nil),
		"download":    assetURL("/pdfs/" + schema.SelfCarePlannerFile),
		"tips":        tips,
		"print":       utils.Translate(loc, "self_care.print", nil),
	})
}
