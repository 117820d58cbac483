package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/utils"
)

const sleepTips = 5

type sleepSummaryView struct {
	score.SleepSummary
	Message string `json:"message"`
}

func presentSleep(loc *i18n.Localizer, hours float64) sleepSummaryView {
	summary := score.SummarizeSleep(hours)
	return sleepSummaryView{
		SleepSummary: summary,
		Message:      utils.Translate(loc, "sleep.feedback."+string(summary.Feedback), nil),
	}
}

func sleepTipList(loc *i18n.Localizer) []string {
	tips := make([]string, 0, sleepTips)
	for i := 1; i <= sleepTips; i++ {
		tips = append(tips, utils.Translate(loc, "sleep.tip."+strconv.Itoa(i), nil))
	}
	return tips
}

// addSleepRecord logs one night. The day and the clock times are read in
// the timezone of the request, or the configured one.
func (s *Server) addSleepRecord(c *gin.Context) {
	var params struct {
		SleepTime string `json:"sleep_time" binding:"required"`
		WakeTime  string `json:"wake_time" binding:"required"`
		Date      string `json:"date"`
		Timezone  string `json:"timezone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	timezone := params.Timezone
	if timezone == "" {
		timezone = viper.GetString("sleep.timezone")
	}
	location := utils.GetLocation(timezone)
	if location == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTimezone)
		return
	}

	day := time.Now().In(location)
	if params.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", params.Date, location)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate, err)
			return
		}
		day = d
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, location)

	hours, err := score.SleepDuration(day, params.SleepTime, params.WakeTime)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidClock, err)
		return
	}

	record, err := s.mongoStore.AppendSleepRecord(schema.SleepRecord{
		UID:       c.GetString("requester"),
		SleepTime: params.SleepTime,
		WakeTime:  params.WakeTime,
		Duration:  hours,
		Quality:   score.SleepQuality(hours),
		CreatedAt: day,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":  record,
		"summary": presentSleep(localizer(c), hours),
	})
}

// sleepRecords lists the nights of the requester, newest first, with the
// summary of the latest one
func (s *Server) sleepRecords(c *gin.Context) {
	records, err := s.mongoStore.ListSleepRecords(c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	loc := localizer(c)
	response := gin.H{
		"records": records,
		"tips":    sleepTipList(loc),
	}

	if len(records) > 0 {
		response["summary"] = presentSleep(loc, records[0].Duration)
	} else {
		response["summary"] = nil
		response["message"] = utils.Translate(loc, "sleep.feedback.none", nil)
	}

	c.JSON(http.StatusOK, response)
}
